package textline

import (
	"errors"
	"fmt"
)

// Blank is the normalized form of a line without words.
var Blank = []byte{'\n'}

// ErrWordTooLong indicates a word that cannot fit in a single column.
var ErrWordTooLong = errors.New("word wider than column")

// WordTooLongError reports the offending word and the column width it exceeded.
type WordTooLongError struct {
	Word  string
	Width int // visible width of Word
	Limit int // configured column width
}

func (e *WordTooLongError) Error() string {
	return fmt.Sprintf("%v: %q is %d characters wide, column is %d", ErrWordTooLong, e.Word, e.Width, e.Limit)
}

func (e *WordTooLongError) Unwrap() error {
	return ErrWordTooLong
}

// isSpace matches the ASCII whitespace set. Non-breaking spaces and other
// multi-byte separators stay inside words.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsBlank reports whether line is the blank-line marker.
func IsBlank(line []byte) bool {
	return len(line) == 1 && line[0] == '\n'
}

// Normalize appends the normalized form of raw to dst[:0] and returns it.
// Words are rejoined with a single space and the result ends with '\n'.
// The capacity of dst is reused, so callers that keep the returned slice
// between calls never shrink their buffer.
func Normalize(dst, raw []byte, width int) ([]byte, error) {
	out := dst[:0]
	i := 0
	for i < len(raw) {
		for i < len(raw) && isSpace(raw[i]) {
			i++
		}
		if i == len(raw) {
			break
		}
		start := i
		for i < len(raw) && !isSpace(raw[i]) {
			i++
		}
		word := raw[start:i]
		if w := VisibleLen(word); w > width {
			return out, &WordTooLongError{Word: string(word), Width: w, Limit: width}
		}
		if len(out) > 0 {
			out = append(out, ' ')
		}
		out = append(out, word...)
	}
	return append(out, '\n'), nil
}
