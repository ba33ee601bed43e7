package mdx

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelim = "---"

// frontmatter locates a YAML block fenced by --- lines at the top of a document.
type frontmatter struct {
	openLine  int
	closeLine int
	raw       string
	data      map[string]any
}

// FrontmatterError reports invalid YAML in a document's frontmatter.
type FrontmatterError struct {
	Line    int // 1-based document line where the YAML starts
	Message string
	Err     error
}

func (e *FrontmatterError) Error() string {
	return fmt.Sprintf("invalid frontmatter at line %d: %s", e.Line, e.Message)
}

func (e *FrontmatterError) Unwrap() error {
	return e.Err
}

// findFrontmatter returns the frontmatter block if the document opens with
// one. It does not parse the YAML.
func findFrontmatter(li *lineIndex) (*frontmatter, bool) {
	if li.count() < 2 || strings.TrimRight(li.text(0), " \t") != frontmatterDelim {
		return nil, false
	}
	for l := 1; l < li.count(); l++ {
		if strings.TrimRight(li.text(l), " \t") == frontmatterDelim {
			return &frontmatter{
				openLine:  0,
				closeLine: l,
				raw:       li.src[li.next(0):li.start(l)],
			}, true
		}
	}
	return nil, false
}

func (fm *frontmatter) contains(line int) bool {
	return line >= fm.openLine && line <= fm.closeLine
}

// parse decodes the YAML content into fm.data.
func (fm *frontmatter) parse() error {
	data := map[string]any{}
	if err := yaml.Unmarshal([]byte(fm.raw), &data); err != nil {
		return &FrontmatterError{
			Line:    fm.openLine + 2,
			Message: err.Error(),
			Err:     err,
		}
	}
	fm.data = data
	return nil
}

// blank returns src with the frontmatter replaced by spaces, preserving
// offsets and line breaks so the markdown parser sees only blank lines.
func (fm *frontmatter) blank(li *lineIndex) string {
	end := li.end(fm.closeLine)
	b := []byte(li.src)
	for i := 0; i < end; i++ {
		if b[i] != '\n' && b[i] != '\r' {
			b[i] = ' '
		}
	}
	return string(b)
}
