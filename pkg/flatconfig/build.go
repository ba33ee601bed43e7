package flatconfig

import (
	"context"
	"log/slog"
	"slices"
)

// IgnoresName is the name of the global ignores item.
const IgnoresName = "flatlint/ignores"

// BuildOptions configures a full configuration build.
type BuildOptions struct {
	// Ignores are appended to DefaultIgnores.
	Ignores []string
	// Markdown enables the markdown contribution. Loader must be set too.
	Markdown        bool
	Loader          PluginLoader
	MarkdownOptions MarkdownOptions
	Logger          *slog.Logger
}

// Build composes the configuration items in order: global ignores first,
// then the markdown contribution when enabled.
func Build(ctx context.Context, opts BuildOptions) []ConfigItem {
	ignores := slices.Concat(DefaultIgnores, opts.Ignores)
	items := []ConfigItem{{Name: IgnoresName, Ignores: ignores}}

	if !opts.Markdown {
		return items
	}
	mdOpts := opts.MarkdownOptions
	if mdOpts.Logger == nil {
		mdOpts.Logger = opts.Logger
	}
	return append(items, Markdown(ctx, opts.Loader, mdOpts)...)
}
