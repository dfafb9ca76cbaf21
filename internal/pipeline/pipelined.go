package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-splittext/internal/justify"
	"github.com/alnah/go-splittext/internal/textline"
)

// Default channel capacities for RunPipelined.
const (
	DefaultLineBuffer  = 64
	DefaultFrameBuffer = 2
)

// Config sizes the channels between pipelined stages.
// Zero selects the default; a negative value makes the channel unbuffered.
type Config struct {
	LineBuffer  int // normalized lines queued between reader and layout
	FrameBuffer int // pages queued between layout and writer
}

func (c Config) withDefaults() Config {
	if c.LineBuffer == 0 {
		c.LineBuffer = DefaultLineBuffer
	}
	if c.FrameBuffer == 0 {
		c.FrameBuffer = DefaultFrameBuffer
	}
	c.LineBuffer = max(c.LineBuffer, 0)
	c.FrameBuffer = max(c.FrameBuffer, 0)
	return c
}

// RunPipelined lays out src into w using three concurrent stages:
//
//	read + normalize -> lines -> layout -> frames -> write
//
// Each stage owns its buffers and every message moves ownership downstream.
// A stage stops when its input channel closes. Layout and write errors cancel
// the blocked senders. A read or normalize error only closes the line channel,
// so the pages completed before it still reach w and output is identical to
// RunSequential, including on failure. A panic in a stage is returned as an
// error. Cancelling ctx does not interrupt a Next call that is blocked on its
// stream.
func RunPipelined(ctx context.Context, src LineSource, l justify.Layout, w io.Writer, cfg Config) (Stats, error) {
	cfg = cfg.withDefaults()
	g, ctx := errgroup.WithContext(ctx)

	lines := make(chan []byte, cfg.LineBuffer)
	frames := make(chan [][]byte, cfg.FrameBuffer)

	// readErr is written before lines is closed and read after the close
	// is observed or after Wait.
	var readErr error
	var lineCount int
	em := NewEmitter(w)

	g.Go(func() error {
		defer close(lines)
		readErr = recoverStage(func() error {
			return readStage(ctx, src, l.Width, lines)
		})()
		return nil
	})

	g.Go(recoverStage(func() error {
		defer close(frames)
		pg := justify.NewPaginator(l)
		defer func() { lineCount = pg.Lines() }()

		send := func(p *justify.Page) error {
			select {
			case frames <- p.Snapshot():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		for line := range lines {
			if err := pg.Feed(line, send); err != nil {
				return err
			}
		}
		if readErr != nil {
			return nil
		}
		return pg.Finish(send)
	}))

	g.Go(recoverStage(func() error {
		for frame := range frames {
			if err := em.WriteRows(frame); err != nil {
				return err
			}
		}
		return em.Flush()
	}))

	err := g.Wait()
	if err == nil {
		err = readErr
	}
	return Stats{Lines: lineCount, Pages: em.Pages()}, err
}

// recoverStage returns fn with a panic turned into an error.
func recoverStage(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("internal error: %v", r)
			}
		}()
		return fn()
	}
}

func readStage(ctx context.Context, src LineSource, width int, out chan<- []byte) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		raw, err := src.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line, err := textline.Normalize(nil, raw, width)
		if err != nil {
			return err
		}
		select {
		case out <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
