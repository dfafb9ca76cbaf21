package pipeline

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/alnah/go-splittext/internal/justify"
)

// ErrWriteOutput wraps failures of the output stream.
var ErrWriteOutput = errors.New("failed to write output")

// Emitter writes page rows to an output stream, one line per row.
type Emitter struct {
	w     *bufio.Writer
	pages int
}

// NewEmitter buffers writes to w. Call Flush when done.
func NewEmitter(w io.Writer) *Emitter {
	return &Emitter{w: bufio.NewWriter(w)}
}

// WritePage writes the rows of p. It matches justify.FlushFunc.
func (e *Emitter) WritePage(p *justify.Page) error {
	return e.WriteRows(p.Rows())
}

// WriteRows writes each row followed by a newline, stopping at the first
// empty row. A call that succeeds counts as one page.
func (e *Emitter) WriteRows(rows [][]byte) error {
	for _, r := range rows {
		if len(r) == 0 {
			break
		}
		if _, err := e.w.Write(r); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		if err := e.w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
	}
	e.pages++
	return nil
}

// Pages returns the number of pages written without error.
func (e *Emitter) Pages() int { return e.pages }

// Flush writes any buffered data to the underlying stream.
func (e *Emitter) Flush() error {
	if err := e.w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}
