package flatconfig

// File patterns used by the built-in blocks.
const (
	GlobSrcExt = "?([cm])[jt]s?(x)"
	GlobSrc    = "**/*." + GlobSrcExt

	GlobMarkdown      = "**/*.md"
	GlobMDX           = "**/*.mdx"
	GlobMarkdownOrMDX = "**/*.{md,mdx}"

	// GlobMarkdownCode matches the virtual files a processor extracts from
	// fenced code blocks, e.g. README.md/0.ts.
	GlobMarkdownCode = GlobMarkdownOrMDX + "/" + GlobSrc
)

// DefaultIgnores are patterns excluded from every run.
var DefaultIgnores = []string{
	"**/node_modules",
	"**/dist",
	"**/package-lock.json",
	"**/yarn.lock",
	"**/pnpm-lock.yaml",
	"**/bun.lockb",
	"**/output",
	"**/coverage",
	"**/temp",
	"**/.temp",
	"**/tmp",
	"**/.tmp",
	"**/.history",
	"**/.vitepress/cache",
	"**/.nuxt",
	"**/.next",
	"**/.svelte-kit",
	"**/.vercel",
	"**/.changeset",
	"**/.idea",
	"**/.cache",
	"**/.output",
	"**/.vite-inspect",
	"**/.yarn",
	"**/CHANGELOG*.md",
	"**/*.min.*",
	"**/LICENSE*",
	"**/__snapshots__",
	"**/auto-import?(s).d.ts",
	"**/components.d.ts",
}

// ComponentGlob returns the pattern matching virtual files of the given
// extension extracted from markdown documents, e.g. "vue".
func ComponentGlob(ext string) string {
	return GlobMarkdownOrMDX + "/**/*." + ext
}
