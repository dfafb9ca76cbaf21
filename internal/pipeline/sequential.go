package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/alnah/go-splittext/internal/justify"
	"github.com/alnah/go-splittext/internal/textline"
)

// Stats summarizes a run.
//
// Lines counts the lines that passed the blank-line guard and reached layout;
// a blank line the engine then drops at the top of a column is included.
// Pages counts the pages accepted by the output writer, the final partial
// page included, so a page lost to a write error is not counted.
type Stats struct {
	Lines int
	Pages int
}

// RunSequential lays out every line of src and writes the pages to w.
// Pages completed before a failure are still written; the partial page is
// not. The context is checked between lines.
func RunSequential(ctx context.Context, src LineSource, l justify.Layout, w io.Writer) (Stats, error) {
	pg := justify.NewPaginator(l)
	em := NewEmitter(w)

	err := layoutAll(ctx, src, pg, l.Width, em.WritePage)
	if err == nil {
		err = pg.Finish(em.WritePage)
	}
	if ferr := em.Flush(); err == nil {
		err = ferr
	}
	return Stats{Lines: pg.Lines(), Pages: em.Pages()}, err
}

func layoutAll(ctx context.Context, src LineSource, pg *justify.Paginator, width int, flush justify.FlushFunc) error {
	var line []byte
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
		line, err = textline.Normalize(line, raw, width)
		if err != nil {
			return err
		}
		if err := pg.Feed(line, flush); err != nil {
			return err
		}
	}
}
