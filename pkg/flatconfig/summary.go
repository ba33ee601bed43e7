package flatconfig

import (
	"slices"

	"github.com/leapstack-labs/flatlint/pkg/parser"
)

// ItemSummary is a serializable view of a ConfigItem.
type ItemSummary struct {
	Name        string            `json:"name" yaml:"name"`
	Files       []string          `json:"files,omitempty" yaml:"files,omitempty"`
	Ignores     []string          `json:"ignores,omitempty" yaml:"ignores,omitempty"`
	EcmaVersion string            `json:"ecmaVersion,omitempty" yaml:"ecmaVersion,omitempty"`
	SourceType  string            `json:"sourceType,omitempty" yaml:"sourceType,omitempty"`
	Globals     map[string]string `json:"globals,omitempty" yaml:"globals,omitempty"`
	Parser      string            `json:"parser,omitempty" yaml:"parser,omitempty"`
	JSX         bool              `json:"jsx,omitempty" yaml:"jsx,omitempty"`
	Strict      bool              `json:"impliedStrict,omitempty" yaml:"impliedStrict,omitempty"`
	Plugins     []string          `json:"plugins,omitempty" yaml:"plugins,omitempty"`
	Processor   string            `json:"processor,omitempty" yaml:"processor,omitempty"`
	Rules       map[string]string `json:"rules,omitempty" yaml:"rules,omitempty"`
}

// Summarize converts items into their serializable form.
func Summarize(items []ConfigItem) []ItemSummary {
	out := make([]ItemSummary, 0, len(items))
	for _, item := range items {
		out = append(out, summarizeItem(item))
	}
	return out
}

func summarizeItem(item ConfigItem) ItemSummary {
	s := ItemSummary{
		Name:    item.Name,
		Files:   item.Files,
		Ignores: item.Ignores,
	}

	if lo := item.LanguageOptions; lo != nil {
		s.EcmaVersion = lo.EcmaVersion
		s.SourceType = lo.SourceType
		if len(lo.Globals) > 0 {
			s.Globals = make(map[string]string, len(lo.Globals))
			for name, writable := range lo.Globals {
				if writable {
					s.Globals[name] = "writable"
				} else {
					s.Globals[name] = "readonly"
				}
			}
		}
		if mp, ok := lo.Parser.(parser.MetaProvider); ok {
			s.Parser = mp.Meta().Name
		} else if lo.Parser != nil {
			s.Parser = "unknown"
		}
		if lo.ParserOptions != nil {
			s.JSX = lo.ParserOptions.EcmaFeatures.JSX
			s.Strict = lo.ParserOptions.EcmaFeatures.ImpliedStrict
		}
	}

	for name := range item.Plugins {
		s.Plugins = append(s.Plugins, name)
	}
	slices.Sort(s.Plugins)

	if item.Processor != nil {
		s.Processor = item.Processor.Name
	}

	if len(item.Rules) > 0 {
		s.Rules = make(map[string]string, len(item.Rules))
		for id, setting := range item.Rules {
			s.Rules[id] = setting.String()
		}
	}
	return s
}
