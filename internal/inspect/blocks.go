package inspect

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/flatlint/pkg/core"
	"github.com/leapstack-labs/flatlint/pkg/plugin"
)

// Checker reports problems in one virtual file.
type Checker interface {
	Check(vf plugin.VirtualFile) []core.Message
}

// BlockReport lists a document's code blocks and the messages reported for
// them in document coordinates.
type BlockReport struct {
	File     string               `json:"file" yaml:"file"`
	Blocks   []plugin.VirtualFile `json:"blocks" yaml:"blocks"`
	Messages []core.Message       `json:"messages" yaml:"messages"`
}

// Blocks splits the file with proc and checks every code block. The
// document itself, the first virtual file, is not checked.
func Blocks(proc plugin.Processor, path string) (*BlockReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	files, err := proc.Preprocess(string(content), path)
	if err != nil {
		return nil, fmt.Errorf("failed to split %s: %w", path, err)
	}

	checker, _ := proc.(Checker)
	messages := make([][]core.Message, len(files))
	for i, vf := range files {
		if i == 0 || checker == nil {
			continue
		}
		messages[i] = checker.Check(vf)
	}

	report := &BlockReport{
		File:     path,
		Blocks:   []plugin.VirtualFile{},
		Messages: proc.Postprocess(messages, path),
	}
	if len(files) > 1 {
		report.Blocks = files[1:]
	}
	if report.Messages == nil {
		report.Messages = []core.Message{}
	}
	return report, nil
}
