package mdx

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// RemarkRuleID is the rule reported for code blocks that do not parse.
const RemarkRuleID = "mdx/remark"

// codeLoaders maps fence languages to the esbuild loader that checks them.
var codeLoaders = map[string]api.Loader{
	"js":         api.LoaderJS,
	"javascript": api.LoaderJS,
	"mjs":        api.LoaderJS,
	"cjs":        api.LoaderJS,
	"jsx":        api.LoaderJSX,
	"ts":         api.LoaderTS,
	"typescript": api.LoaderTS,
	"mts":        api.LoaderTS,
	"cts":        api.LoaderTS,
	"tsx":        api.LoaderTSX,
}

// extAliases normalizes long language names to file extensions.
var extAliases = map[string]string{
	"javascript": "js",
	"typescript": "ts",
}

// Block is a fenced code block lifted out of a document.
type Block struct {
	plugin.VirtualFile
	// Indent is the column offset of the block content, for blocks nested
	// in lists or quotes.
	Indent int
}

// Processor splits documents into the document itself plus one virtual file
// per lintable code block, and maps block messages back afterwards.
type Processor struct {
	opts plugin.ProcessorOptions
	md   goldmark.Markdown

	mu     sync.Mutex
	blocks map[string][]Block
}

var _ plugin.Processor = (*Processor)(nil)

// NewProcessor creates a processor.
func NewProcessor(opts plugin.ProcessorOptions) *Processor {
	return &Processor{
		opts:   opts,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		blocks: make(map[string][]Block),
	}
}

// ExtractBlocks returns the fenced code blocks of src whose language is a
// script dialect, named <filename>/<index>.<ext>.
func (p *Processor) ExtractBlocks(src, filename string) []Block {
	li := newLineIndex(src)
	markdown := src
	if fm, ok := findFrontmatter(li); ok {
		markdown = fm.blank(li)
	}
	source := []byte(markdown)
	doc := p.md.Parser().Parse(text.NewReader(source))

	var blocks []Block
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		lang := strings.ToLower(string(fcb.Language(source)))
		if _, ok := codeLoaders[lang]; !ok {
			return ast.WalkSkipChildren, nil
		}
		lines := fcb.Lines()
		if lines.Len() == 0 {
			return ast.WalkSkipChildren, nil
		}

		var body strings.Builder
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			body.Write(seg.Value(source))
		}
		first := lines.At(0)
		line := li.line(first.Start)
		ext := lang
		if alias, ok := extAliases[lang]; ok {
			ext = alias
		}
		blocks = append(blocks, Block{
			VirtualFile: plugin.VirtualFile{
				Filename: fmt.Sprintf("%s/%d.%s", filename, len(blocks), ext),
				Lang:     lang,
				Text:     body.String(),
				Line:     line + 1,
				Offset:   first.Start,
			},
			Indent: first.Start - li.start(line),
		})
		return ast.WalkSkipChildren, nil
	})
	return blocks
}

// Preprocess returns the document followed by its code blocks when code
// block linting is enabled.
func (p *Processor) Preprocess(src, filename string) ([]plugin.VirtualFile, error) {
	files := []plugin.VirtualFile{{Filename: filename, Text: src, Line: 1}}
	if !p.opts.LintCodeBlocks {
		return files, nil
	}

	blocks := p.ExtractBlocks(src, filename)
	p.mu.Lock()
	p.blocks[filename] = blocks
	p.mu.Unlock()

	for _, b := range blocks {
		files = append(files, b.VirtualFile)
	}
	return files, nil
}

// Postprocess merges per-file messages into document coordinates. messages
// is indexed like the Preprocess result for the same filename.
func (p *Processor) Postprocess(messages [][]core.Message, filename string) []core.Message {
	p.mu.Lock()
	blocks := p.blocks[filename]
	delete(p.blocks, filename)
	p.mu.Unlock()

	var out []core.Message
	for i, msgs := range messages {
		if i == 0 {
			out = append(out, msgs...)
			continue
		}
		if i-1 >= len(blocks) {
			break
		}
		b := blocks[i-1]
		for _, m := range msgs {
			out = append(out, b.adjust(m))
		}
	}
	slices.SortStableFunc(out, func(a, b core.Message) int {
		return cmp.Or(cmp.Compare(a.Line, b.Line), cmp.Compare(a.Column, b.Column))
	})
	return out
}

func (b Block) adjust(m core.Message) core.Message {
	if m.Line > 0 {
		m.Line += b.Line - 1
		m.Column += b.Indent
	}
	if m.EndLine > 0 {
		m.EndLine += b.Line - 1
		m.EndColumn += b.Indent
	}
	return m
}

// Check reports syntax errors in a code block. Positions are relative to
// the block; Postprocess maps them into the document.
func (p *Processor) Check(vf plugin.VirtualFile) []core.Message {
	loader, ok := codeLoaders[vf.Lang]
	if !ok {
		return nil
	}
	result := api.Transform(vf.Text, api.TransformOptions{
		Loader:     loader,
		Sourcefile: vf.Filename,
		LogLevel:   api.LogLevelSilent,
	})

	var msgs []core.Message
	for _, e := range result.Errors {
		msgs = append(msgs, toMessage(e, core.SeverityError))
	}
	for _, w := range result.Warnings {
		msgs = append(msgs, toMessage(w, core.SeverityWarn))
	}
	return msgs
}

func toMessage(m api.Message, sev core.Severity) core.Message {
	out := core.Message{
		RuleID:   RemarkRuleID,
		Severity: sev,
		Message:  m.Text,
		Fatal:    sev == core.SeverityError,
	}
	if loc := m.Location; loc != nil {
		out.Line = loc.Line
		out.Column = loc.Column + 1
		if loc.Length > 0 {
			out.EndLine = loc.Line
			out.EndColumn = loc.Column + loc.Length + 1
		}
	}
	return out
}
