package commands

import (
	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
	"github.com/spf13/cobra"
)

// pluginStatus is the serializable load result of one plugin.
type pluginStatus struct {
	Name    string `json:"name" yaml:"name"`
	State   string `json:"state" yaml:"state"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Parser  string `json:"parser,omitempty" yaml:"parser,omitempty"`
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
	Rules   int    `json:"rules" yaml:"rules"`
	Active  bool   `json:"active" yaml:"active"`
}

// NewPluginsCommand creates the plugins command.
func NewPluginsCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List registered parser plugins and whether they load",
		Long: `Load every registered plugin and report the outcome of the structure
check. The plugin selected by markdown.plugin is marked active.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx := NewCommandContext(cmd)
			r := cmdCtx.WithFormat(cmd, format)

			names := plugin.List()
			statuses := make([]pluginStatus, 0, len(names))
			for _, name := range names {
				outcome := plugin.NewLoader(name,
					plugin.WithDiagnostics(plugin.SlogDiagnostics{Logger: cmdCtx.Logger}),
				).Load(cmd.Context())
				statuses = append(statuses, newPluginStatus(name, outcome, name == cmdCtx.Cfg.Markdown.Plugin))
			}
			return renderPlugins(r, statuses)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json, yaml")

	return cmd
}

func newPluginStatus(name string, outcome plugin.Outcome, active bool) pluginStatus {
	s := pluginStatus{Name: name, State: outcome.State.String(), Active: active}
	p, ok := outcome.Ready()
	if !ok {
		s.Reason = outcome.Reason.String()
		return s
	}
	s.Parser = p.Meta.Name
	s.Version = p.Meta.Version
	s.Rules = len(p.Rules)
	return s
}

func renderPlugins(r *output.Renderer, statuses []pluginStatus) error {
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(statuses)
	case output.ModeYAML:
		return r.YAML(statuses)
	}

	rows := make([][]string, 0, len(statuses))
	for _, s := range statuses {
		marker := ""
		if s.Active {
			marker = "*"
		}
		detail := s.Parser
		if s.Version != "" {
			detail += " " + s.Version
		}
		if s.Reason != "" {
			detail = r.Title(s.Reason)
		}
		rows = append(rows, []string{marker + s.Name, r.Title(s.State), detail})
	}

	r.Header("Plugins")
	r.Table([]string{"Name", "State", "Detail"}, rows)
	return nil
}
