package splittext

import (
	"fmt"
	"strings"
)

// Mode selects how a run is executed.
type Mode string

// Execution modes.
const (
	ModeSequential Mode = "sequential"
	ModePipelined  Mode = "pipelined"
)

// ParseMode parses a mode name (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeSequential, ModePipelined:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (must be sequential or pipelined)", ErrInvalidMode, s)
}

// InputFormat selects how the input stream is split into raw lines.
type InputFormat string

// Input formats.
const (
	FormatText     InputFormat = "text"
	FormatMarkdown InputFormat = "markdown"
)

// ParseInputFormat parses a format name (case-insensitive).
func ParseInputFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatMarkdown:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q (must be text or markdown)", ErrInvalidInputFormat, s)
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithLayout sets the page layout. Defaults to DefaultLayout().
func WithLayout(l Layout) Option {
	return func(f *Formatter) {
		f.layout = l
	}
}

// WithMode sets the execution mode. Defaults to ModeSequential.
func WithMode(m Mode) Option {
	return func(f *Formatter) {
		f.mode = m
	}
}

// WithInputFormat sets the input format. Defaults to FormatText.
func WithInputFormat(in InputFormat) Option {
	return func(f *Formatter) {
		f.format = in
	}
}

// WithLineBuffer sets how many normalized lines may wait between the reading
// and layout stages in pipelined mode. Zero keeps the default, a negative
// value makes the hand-off unbuffered.
func WithLineBuffer(n int) Option {
	return func(f *Formatter) {
		f.buffers.LineBuffer = n
	}
}

// WithFrameBuffer sets how many finished pages may wait for the writer in
// pipelined mode. Zero keeps the default, a negative value makes the
// hand-off unbuffered.
func WithFrameBuffer(n int) Option {
	return func(f *Formatter) {
		f.buffers.FrameBuffer = n
	}
}
