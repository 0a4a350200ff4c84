package rag

import (
	"github.com/magiconair/properties"
	"go.uber.org/zap"

	"github.com/markboenigk/regintel/regintel/utils/logging"
)

// System prompt variants. The variant is selected by BuildContext from the
// collection the sources came from.
const (
	PromptNews       = "news_analysis"
	PromptCompliance = "compliance"
	PromptGeneral    = "general"
)

var defaultPrompts = map[string]string{
	PromptNews: "You are RegIntel, an AI assistant specialized in regulatory intelligence " +
		"and FDA compliance. You are answering from regulatory news coverage. Ground your " +
		"answer in the provided source excerpts and mention feed names and publication " +
		"dates where they support the answer.",
	PromptCompliance: "You are RegIntel, an AI assistant specialized in regulatory intelligence " +
		"and FDA compliance. You are answering from FDA warning letters. Focus on the " +
		"violations, required actions, and regulatory consequences described in the " +
		"provided source excerpts.",
	PromptGeneral: "You are RegIntel, an AI assistant specialized in regulatory intelligence " +
		"and FDA compliance. Provide helpful, accurate information based on the sources " +
		"provided. If no relevant sources are available, clearly state that you cannot " +
		"provide specific information on that topic.",
}

// Prompts holds the system prompt per variant key.
type Prompts struct {
	byKey map[string]string
}

// LoadPrompts returns the built-in prompts, overridden by any
// system_prompt_<key> entries in the given .properties file. An empty path
// or an unreadable file leaves the defaults in place.
func LoadPrompts(path string) *Prompts {
	byKey := make(map[string]string, len(defaultPrompts))
	for k, v := range defaultPrompts {
		byKey[k] = v
	}
	if path != "" {
		props, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			logging.AppLogger.Warn("prompts file load failed, using defaults",
				zap.String("path", path), zap.Error(err))
		} else {
			for key := range byKey {
				if v := props.GetString("system_prompt_"+key, ""); v != "" {
					byKey[key] = v
				}
			}
		}
	}
	return &Prompts{byKey: byKey}
}

// System returns the prompt for key, falling back to the general variant.
func (p *Prompts) System(key string) string {
	if v, ok := p.byKey[key]; ok {
		return v
	}
	return p.byKey[PromptGeneral]
}
