package splittext

import (
	"fmt"

	"github.com/alnah/go-splittext/internal/justify"
)

// Default layout values.
const (
	DefaultColumns = 3
	DefaultRows    = 47
	DefaultWidth   = 22
	DefaultSpacing = 10
)

// Separator is the row written after every full page.
const Separator = justify.Separator

// Layout describes the page grid.
type Layout struct {
	Columns int // columns per page
	Rows    int // rows per column
	Width   int // visible characters per cell
	Spacing int // spaces between adjacent columns
}

// DefaultLayout returns the 3 x 47 layout with 22-character columns.
func DefaultLayout() Layout {
	return Layout{
		Columns: DefaultColumns,
		Rows:    DefaultRows,
		Width:   DefaultWidth,
		Spacing: DefaultSpacing,
	}
}

// PageWidth returns the visible width of a full row.
func (l Layout) PageWidth() int {
	return l.internal().PageWidth()
}

// Validate checks every field is at least 1 and that a page row can hold
// the separator.
func (l Layout) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"columns", l.Columns},
		{"rows", l.Rows},
		{"width", l.Width},
		{"spacing", l.Spacing},
	}
	for _, f := range fields {
		if f.value < 1 {
			return fmt.Errorf("%w: %s must be at least 1, got %d", ErrInvalidLayout, f.name, f.value)
		}
	}

	if c := l.internal().RowCapacity(); c < len(Separator)+1 {
		return fmt.Errorf("%w: row capacity %d, separator needs %d", ErrPageTooNarrow, c, len(Separator)+1)
	}
	return nil
}

func (l Layout) internal() justify.Layout {
	return justify.Layout{
		Columns: l.Columns,
		Rows:    l.Rows,
		Width:   l.Width,
		Spacing: l.Spacing,
	}
}
