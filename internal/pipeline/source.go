package pipeline

import "github.com/alnah/go-splittext/internal/textline"

// LineSource yields raw input lines and io.EOF once exhausted.
// The returned slice may be overwritten by the following call.
type LineSource interface {
	Next() ([]byte, error)
}

// Compile-time interface implementation checks.
var (
	_ LineSource = (*textline.Reader)(nil)
	_ LineSource = (*MarkdownSource)(nil)
)
