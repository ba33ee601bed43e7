package plugin

import (
	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/parser"
)

// FlatPreset is the key of the preset that carries the parser.
const FlatPreset = "flat"

// Module is the raw shape a plugin factory returns. Any field may be missing;
// it is only trusted after Validate narrows it to a Plugin.
type Module struct {
	Meta         parser.Meta
	Configs      map[string]*Preset
	Rules        map[string]core.RuleInfo
	NewProcessor func(ProcessorOptions) Processor
}

// Preset is a plugin-supplied configuration preset.
type Preset struct {
	LanguageOptions *PresetLanguageOptions
	Rules           map[string]core.RuleSetting
}

// PresetLanguageOptions holds the parser a preset installs.
type PresetLanguageOptions struct {
	Parser parser.Capability
}

// ProcessorOptions configures a processor instance.
type ProcessorOptions struct {
	LintCodeBlocks bool
}

// VirtualFile is a piece of a document handed to the linter as its own file.
type VirtualFile struct {
	Filename string `json:"filename"`
	Lang     string `json:"lang,omitempty"`
	Text     string `json:"-"`
	Line     int    `json:"line"`   // 1-based document line of the first content line
	Offset   int    `json:"offset"` // byte offset of the first content byte
}

// Processor splits a document into virtual files and merges the messages
// reported for them back into document coordinates.
type Processor interface {
	Preprocess(text, filename string) ([]VirtualFile, error)
	Postprocess(messages [][]core.Message, filename string) []core.Message
}

// Plugin is a validated plugin: the parser path is known to be present.
type Plugin struct {
	Name   string
	Meta   parser.Meta
	Parser parser.Capability
	Rules  map[string]core.RuleInfo

	newProcessor func(ProcessorOptions) Processor
}

// NewProcessor creates a processor if the plugin ships one.
func (p *Plugin) NewProcessor(opts ProcessorOptions) (Processor, bool) {
	if p.newProcessor == nil {
		return nil, false
	}
	proc := p.newProcessor(opts)
	return proc, proc != nil
}
