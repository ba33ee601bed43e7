package commands

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/leapstack-labs/flatlint/internal/cli/output"
	"github.com/spf13/cobra"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
	Platform  string `json:"platform"`
}

// resolve fills the runtime fields, and the commit from the embedded VCS
// revision when it was not set at link time.
func (v VersionInfo) resolve() VersionInfo {
	v.GoVersion = runtime.Version()
	v.Platform = runtime.GOOS + "/" + runtime.GOARCH
	if v.Commit == "" || v.Commit == "unknown" {
		v.Commit = "unknown"
		if bi, ok := debug.ReadBuildInfo(); ok {
			for _, s := range bi.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					v.Commit = s.Value
				}
			}
		}
	}
	if v.BuildDate == "" {
		v.BuildDate = "unknown"
	}
	return v
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info VersionInfo) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display flatlint version and build information.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := info.resolve()
			if output.Mode(format) == output.ModeJSON {
				return output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.ModeJSON).JSON(v)
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "flatlint v%s\n", v.Version)
			_, _ = fmt.Fprintln(out, "Flat config composer for markdown and MDX linting")
			_, _ = fmt.Fprintf(out, "Commit: %s\n", v.Commit)
			_, _ = fmt.Fprintf(out, "Built: %s\n", v.BuildDate)
			_, _ = fmt.Fprintf(out, "Go version: %s\n", v.GoVersion)
			_, _ = fmt.Fprintf(out, "OS/Arch: %s\n", v.Platform)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, json")

	return cmd
}
