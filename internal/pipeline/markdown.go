package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/alnah/go-splittext/internal/textline"
)

// MarkdownSource yields the text of a Markdown document as raw lines.
// Paragraphs and headings become one line followed by a blank line, list
// items (nested ones included) and table rows one line each, code blocks keep
// their lines. Raw HTML is dropped.
type MarkdownSource struct {
	lines [][]byte
	next  int
}

// NewMarkdownSource reads the whole document from r and parses it with
// goldmark (GFM). Parsing runs in a goroutine so ctx can abandon it, since
// goldmark has no context support.
func NewMarkdownSource(ctx context.Context, r io.Reader) (*MarkdownSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", textline.ErrReadInput, err)
	}

	done := make(chan [][]byte, 1)
	go func() {
		done <- extractLines(src)
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case lines := <-done:
		return &MarkdownSource{lines: lines}, nil
	}
}

// Next returns the next line or io.EOF.
func (s *MarkdownSource) Next() ([]byte, error) {
	if s.next >= len(s.lines) {
		return nil, io.EOF
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

func extractLines(src []byte) [][]byte {
	doc := markdown.Parser().Parse(text.NewReader(src))
	x := &extractor{src: src}
	_ = ast.Walk(doc, x.block)
	return x.lines
}

type extractor struct {
	src   []byte
	lines [][]byte
}

func (x *extractor) emit(line []byte) {
	x.lines = append(x.lines, bytes.TrimRight(line, "\r\n"))
}

func (x *extractor) block(n ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		switch n.Kind() {
		case ast.KindList:
			// A nested list continues its parent's items.
			if p := n.Parent(); p == nil || p.Kind() != ast.KindListItem {
				x.emit(nil)
			}
		case east.KindTable:
			x.emit(nil)
		}
		return ast.WalkContinue, nil
	}

	switch n.Kind() {
	case ast.KindParagraph, ast.KindHeading:
		x.emit(x.inline(n))
		x.emit(nil)
		return ast.WalkSkipChildren, nil
	case ast.KindTextBlock, east.KindTableHeader, east.KindTableRow:
		x.emit(x.inline(n))
		return ast.WalkSkipChildren, nil
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		segs := n.Lines()
		for i := 0; i < segs.Len(); i++ {
			seg := segs.At(i)
			x.emit(seg.Value(x.src))
		}
		x.emit(nil)
		return ast.WalkSkipChildren, nil
	case ast.KindHTMLBlock:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// inline flattens the inline content of n into a single line.
func (x *extractor) inline(n ast.Node) []byte {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if c.Kind() == east.KindTableCell {
				buf.WriteByte(' ')
			}
			return ast.WalkContinue, nil
		}
		switch v := c.(type) {
		case *ast.Text:
			buf.Write(v.Segment.Value(x.src))
			if v.SoftLineBreak() || v.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(v.Value)
		case *ast.AutoLink:
			buf.Write(v.Label(x.src))
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return buf.Bytes()
}
