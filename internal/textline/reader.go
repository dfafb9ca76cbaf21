package textline

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// ErrReadInput wraps failures of the underlying input stream.
var ErrReadInput = errors.New("failed to read input")

// Reader yields raw lines from a stream. The slice returned by Next is only
// valid until the following call.
type Reader struct {
	br  *bufio.Reader
	buf []byte
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next raw line without its terminator.
// It returns io.EOF once the stream is exhausted; a last line without a
// trailing newline is still returned first.
func (r *Reader) Next() ([]byte, error) {
	r.buf = r.buf[:0]
	for {
		chunk, err := r.br.ReadSlice('\n')
		r.buf = append(r.buf, chunk...)
		switch {
		case err == nil:
			return trimEOL(r.buf), nil
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(r.buf) == 0 {
				return nil, io.EOF
			}
			return trimEOL(r.buf), nil
		default:
			return nil, fmt.Errorf("%w: %v", ErrReadInput, err)
		}
	}
}

func trimEOL(p []byte) []byte {
	if n := len(p); n > 0 && p[n-1] == '\n' {
		p = p[:n-1]
		if n := len(p); n > 0 && p[n-1] == '\r' {
			p = p[:n-1]
		}
	}
	return p
}
