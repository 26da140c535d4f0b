package lint

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// File holds a parsed Markdown document and its source. Front matter is
// stripped before parsing; LineOfOffset still reports lines of the
// original file.
type File struct {
	Path        string
	Source      []byte
	AST         ast.Node
	FrontMatter []byte
	lineOffset  int
}

// NewFile parses source as Markdown and returns a File.
func NewFile(path string, source []byte) (*File, error) {
	prefix, content := StripFrontMatter(source)
	node := goldmark.DefaultParser().Parse(text.NewReader(content))

	return &File{
		Path:        path,
		Source:      content,
		AST:         node,
		FrontMatter: prefix,
		lineOffset:  bytes.Count(prefix, []byte("\n")),
	}, nil
}

// LineOfOffset converts a byte offset in Source to a 1-based line number
// of the original file.
func (f *File) LineOfOffset(offset int) int {
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	return 1 + f.lineOffset + bytes.Count(f.Source[:max(offset, 0)], []byte("\n"))
}
