package rag

import (
	"encoding/json"
	"strings"

	"github.com/markboenigk/regintel/regintel/types"
)

const (
	CollectionRSSFeeds          = "rss_feeds"
	CollectionFDAWarningLetters = "fda_warning_letters"

	contentField = "text_content"
)

// FieldSpec is one string-valued metadata field and the placeholder used
// when a hit does not carry it.
type FieldSpec struct {
	Name    string
	Default string
}

// Attribution is one "Label: value" pair rendered in a source's context
// header line.
type Attribution struct {
	Label string
	Field string
}

// Schema describes how raw hits from one collection map onto SourceRecords.
// Adding a collection is a new registry entry, not a new code branch.
type Schema struct {
	Collection       string
	ContentField     string
	TitleFields      []string // resolution order
	TitlePlaceholder string
	Fields           []FieldSpec
	ListFields       []string
	Attribution      []Attribution
}

var registry = map[string]Schema{
	CollectionRSSFeeds: {
		Collection:       CollectionRSSFeeds,
		ContentField:     contentField,
		TitleFields:      []string{"article_title", "company_name"},
		TitlePlaceholder: "Unknown Title",
		Fields: []FieldSpec{
			{Name: "article_title", Default: "Unknown Title"},
			{Name: "published_date", Default: "Unknown Date"},
			{Name: "feed_name", Default: "Unknown Feed"},
			{Name: "chunk_type", Default: "Unknown"},
		},
		ListFields: []string{"companies", "products", "regulations", "regulatory_bodies"},
		Attribution: []Attribution{
			{Label: "Feed", Field: "feed_name"},
			{Label: "Date", Field: "published_date"},
		},
	},
	CollectionFDAWarningLetters: {
		Collection:       CollectionFDAWarningLetters,
		ContentField:     contentField,
		TitleFields:      []string{"company_name"},
		TitlePlaceholder: "Unknown Company",
		Fields: []FieldSpec{
			{Name: "company_name", Default: "Unknown Company"},
			{Name: "letter_date", Default: "Unknown Date"},
			{Name: "chunk_type", Default: "Unknown"},
			{Name: "chunk_id", Default: "Unknown"},
		},
		ListFields: []string{
			"violations", "required_actions", "systemic_issues",
			"regulatory_consequences", "product_types", "product_categories",
		},
		Attribution: []Attribution{
			{Label: "Company", Field: "company_name"},
			{Label: "Date", Field: "letter_date"},
		},
	},
}

// SchemaFor returns the schema registered for collection. Unrecognized
// collections fall back to the rss_feeds mapping.
func SchemaFor(collection string) Schema {
	if s, ok := registry[collection]; ok {
		return s
	}
	return registry[CollectionRSSFeeds]
}

// OutputFields lists the fields requested from the vector search for this
// schema: the chunk content plus every metadata field.
func (s Schema) OutputFields() []string {
	fields := make([]string, 0, 1+len(s.Fields)+len(s.ListFields))
	fields = append(fields, s.ContentField)
	for _, f := range s.Fields {
		fields = append(fields, f.Name)
	}
	fields = append(fields, s.ListFields...)
	return fields
}

// Normalize maps one raw hit onto the uniform SourceRecord shape. Every
// metadata key of the schema is present in the result; missing string
// fields get their placeholder and missing list fields an empty slice.
func Normalize(hit map[string]any, collection string) types.SourceRecord {
	s := SchemaFor(collection)

	meta := make(map[string]any, len(s.Fields)+len(s.ListFields))
	for _, f := range s.Fields {
		meta[f.Name] = stringField(hit, f.Name, f.Default)
	}
	for _, name := range s.ListFields {
		meta[name] = listField(hit, name)
	}

	title := s.TitlePlaceholder
	for _, name := range s.TitleFields {
		if v, ok := hit[name].(string); ok && strings.TrimSpace(v) != "" {
			title = v
			break
		}
	}

	content, _ := hit[s.ContentField].(string)
	return types.SourceRecord{
		Title:      title,
		Content:    content,
		Metadata:   meta,
		Collection: collection,
	}
}

func stringField(hit map[string]any, name, fallback string) string {
	if v, ok := hit[name].(string); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// listField tolerates the shapes Milvus hands back for array fields:
// a JSON array, a []string, or the array serialized as a JSON string.
func listField(hit map[string]any, name string) []string {
	switch v := hit[name].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		var out []string
		if err := json.Unmarshal([]byte(v), &out); err == nil {
			return out
		}
		if strings.TrimSpace(v) != "" {
			return []string{v}
		}
	}
	return []string{}
}
