package splittext

import (
	"context"
	"fmt"
	"io"

	"github.com/alnah/go-splittext/internal/pipeline"
	"github.com/alnah/go-splittext/internal/textline"
)

// Stats summarizes a run.
type Stats struct {
	Lines int // input lines laid out, discarded blank lines excluded
	Pages int // pages written, the last partial page included
}

// Formatter lays out text streams. It holds no per-run state and may be
// used by several goroutines at once.
type Formatter struct {
	layout  Layout
	mode    Mode
	format  InputFormat
	buffers pipeline.Config
}

// New creates a Formatter with the default layout, sequential mode and
// text input. Options are applied in order and the result is validated.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{
		layout: DefaultLayout(),
		mode:   ModeSequential,
		format: FormatText,
	}

	for _, opt := range opts {
		opt(f)
	}

	if err := f.layout.Validate(); err != nil {
		return nil, err
	}
	if _, err := ParseMode(string(f.mode)); err != nil {
		return nil, err
	}
	if _, err := ParseInputFormat(string(f.format)); err != nil {
		return nil, err
	}
	return f, nil
}

// Layout returns the validated layout.
func (f *Formatter) Layout() Layout { return f.layout }

// Mode returns the execution mode.
func (f *Formatter) Mode() Mode { return f.mode }

// Format reads r to the end and writes the laid out pages to w.
// Pages finished before an error are still written. The returned Stats is
// never nil and counts what was done up to the failure.
func (f *Formatter) Format(ctx context.Context, r io.Reader, w io.Writer) (stats *Stats, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("internal error: %v", rec)
		}
	}()
	stats = &Stats{}

	src, err := f.source(ctx, r)
	if err != nil {
		return stats, err
	}

	var st pipeline.Stats
	switch f.mode {
	case ModePipelined:
		st, err = pipeline.RunPipelined(ctx, src, f.layout.internal(), w, f.buffers)
	default:
		st, err = pipeline.RunSequential(ctx, src, f.layout.internal(), w)
	}
	stats.Lines, stats.Pages = st.Lines, st.Pages
	return stats, err
}

func (f *Formatter) source(ctx context.Context, r io.Reader) (pipeline.LineSource, error) {
	if f.format == FormatMarkdown {
		return pipeline.NewMarkdownSource(ctx, r)
	}
	return textline.NewReader(r), nil
}
