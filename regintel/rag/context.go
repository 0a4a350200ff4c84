package rag

import (
	"fmt"
	"strings"

	"github.com/markboenigk/regintel/regintel/types"
)

const (
	// MaxSources caps how many retrieved records make it into the prompt.
	MaxSources = 3
	// MaxHistory caps how much conversation history is replayed to the model.
	MaxHistory = 5

	// ContentPreviewChars bounds per-source content in the normal chat path.
	ContentPreviewChars = 200
	// DebugContentChars bounds per-source content in the debug-context path.
	DebugContentChars = 1200
)

// BuildContext formats up to MaxSources records into the text block inserted
// into the prompt, and selects the system-prompt variant.
//
// The variant is chosen from the first record's collection, not per record.
// Search always targets a single collection, so a mixed result set cannot
// occur today; if it ever does, the whole block is labeled by its first
// record.
func BuildContext(sources []types.SourceRecord, maxContentChars int) (string, string) {
	if len(sources) == 0 {
		return "", PromptGeneral
	}
	if len(sources) > MaxSources {
		sources = sources[:MaxSources]
	}

	collection := sources[0].Collection
	schema := SchemaFor(collection)

	var b strings.Builder
	fmt.Fprintf(&b, "Relevant sources from %s:\n", displayName(collection))
	for i, src := range sources {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, src.Title, attributionLine(schema, src.Metadata))
		fmt.Fprintf(&b, "   %s...\n\n", truncate(src.Content, maxContentChars))
	}
	return b.String(), promptKeyFor(collection)
}

func promptKeyFor(collection string) string {
	switch collection {
	case CollectionRSSFeeds:
		return PromptNews
	case CollectionFDAWarningLetters:
		return PromptCompliance
	default:
		return PromptGeneral
	}
}

func attributionLine(schema Schema, meta map[string]any) string {
	parts := make([]string, 0, len(schema.Attribution))
	for _, attr := range schema.Attribution {
		value, _ := meta[attr.Field].(string)
		parts = append(parts, fmt.Sprintf("%s: %s", attr.Label, value))
	}
	return strings.Join(parts, ", ")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// displayName turns a collection identifier into a heading,
// e.g. "fda_warning_letters" -> "Fda Warning Letters".
func displayName(collection string) string {
	words := strings.Split(collection, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
