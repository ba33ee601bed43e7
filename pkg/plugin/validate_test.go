package plugin

import (
	"testing"

	"github.com/leapstack-labs/flatlint/pkg/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopCapability struct{}

func (nopCapability) ParseForLint(string, parser.Options) (*parser.LintResult, error) {
	return &parser.LintResult{AST: &parser.Program{}}, nil
}

func TestValidate_Incompatible(t *testing.T) {
	tests := []struct {
		name     string
		module   *Module
		wantPath string
	}{
		{"nil module", nil, "module"},
		{"no configs", &Module{}, "configs"},
		{"empty configs", &Module{Configs: map[string]*Preset{}}, "configs.flat"},
		{"nil flat preset", &Module{Configs: map[string]*Preset{"flat": nil}}, "configs.flat"},
		{"only recommended preset", &Module{Configs: map[string]*Preset{"recommended": {}}}, "configs.flat"},
		{"no language options", &Module{Configs: map[string]*Preset{"flat": {}}}, "configs.flat.languageOptions"},
		{
			"no parser",
			&Module{Configs: map[string]*Preset{"flat": {LanguageOptions: &PresetLanguageOptions{}}}},
			"configs.flat.languageOptions.parser",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Validate("mdx", tt.module)
			require.Error(t, err)
			assert.Nil(t, p)

			var incompatible *IncompatibleError
			require.ErrorAs(t, err, &incompatible)
			assert.Equal(t, tt.wantPath, incompatible.Path())
			assert.Contains(t, err.Error(), "mdx")
		})
	}
}

func TestValidate_Ready(t *testing.T) {
	capability := nopCapability{}
	mod := &Module{
		Configs: map[string]*Preset{
			FlatPreset: {LanguageOptions: &PresetLanguageOptions{Parser: capability}},
		},
	}

	p, err := Validate("mdx", mod)
	require.NoError(t, err)
	assert.Equal(t, "mdx", p.Name)
	assert.Equal(t, "mdx", p.Meta.Name, "meta name defaults to the plugin name")
	assert.Equal(t, capability, p.Parser)

	_, ok := p.NewProcessor(ProcessorOptions{})
	assert.False(t, ok, "no processor factory was supplied")
}
