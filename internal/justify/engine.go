package justify

import (
	"bytes"
	"errors"

	"github.com/alnah/go-splittext/internal/textline"
)

// ErrUnbreakableCell indicates a cell window that contains no word boundary.
// Normalized input never produces one because no word exceeds the width.
var ErrUnbreakableCell = errors.New("no word boundary inside cell")

// Engine writes justified cells into a Page.
type Engine struct {
	layout Layout
	page   *Page
}

// NewEngine returns an engine filling p according to l.
func NewEngine(l Layout, p *Page) *Engine {
	return &Engine{layout: l, page: p}
}

// Advance consumes as much of line as fits, starting at cur, and returns the
// cursor for the next call. The returned Offset equals len(line) once the
// line is exhausted. A returned cursor at row 0 of column 0 with unread bytes
// left means the page is full: flush it and call Advance again.
func (e *Engine) Advance(cur Cursor, line []byte) (Cursor, error) {
	l := e.layout
	off := cur.Offset
	row := cur.Row
	for col := cur.Column; col < l.Columns; col++ {
		for ; row < l.Rows; row++ {
			rest := line[off:]
			p, spaces := scan(rest, l.Width)

			// The line ends inside this cell.
			if p == len(rest) {
				if len(rest) == 0 || (row == 0 && textline.IsBlank(rest)) {
					return Cursor{Row: row, Column: col, Offset: len(line)}, nil
				}
				text := bytes.TrimSuffix(rest, []byte{'\n'})
				e.page.write(row, text)
				e.page.pad(row, l.Width-textline.VisibleLen(text))
				e.spacing(row, col)
				nr, nc := l.next(row, col)
				return Cursor{Row: nr, Column: nc, Offset: len(line)}, nil
			}

			// The cell ends exactly on a word boundary.
			if (rest[p] == ' ' || rest[p] == '\n') && rest[p-1] != ' ' {
				e.page.write(row, rest[:p])
				e.spacing(row, col)
				off += p + 1
				continue
			}

			n, err := e.justify(row, rest, p, spaces)
			if err != nil {
				return Cursor{Row: row, Column: col, Offset: off}, err
			}
			e.spacing(row, col)
			off += n
		}
		row = 0
	}
	return Cursor{Offset: off}, nil
}

// scan walks rest until width visible characters have been passed or the
// line ends. It returns the index of the first byte beyond the cell and the
// number of spaces crossed.
func scan(rest []byte, width int) (p, spaces int) {
	visible := 0
	for p < len(rest) && visible < width {
		if rest[p] == ' ' {
			spaces++
		}
		p++
		if p == len(rest) || textline.IsRuneStart(rest[p]) {
			visible++
		}
	}
	return p, spaces
}

// justify writes the words wholly inside rest[:p] stretched to the cell
// width and returns the number of bytes consumed, trailing space included.
func (e *Engine) justify(row int, rest []byte, p, spaces int) (int, error) {
	words := spaces
	if words == 0 {
		return 0, ErrUnbreakableCell
	}

	// The partial word cut by the cell edge is given back as whitespace.
	budget := spaces
	for q := p - 1; rest[q] != ' '; q-- {
		if textline.IsRuneStart(rest[q]) {
			budget++
		}
	}

	gap, extra := 1, 0
	if words > 1 {
		gap = budget / (words - 1)
		extra = budget % (words - 1)
	}

	i := 0
	for w := 0; w < words; w++ {
		end := i + bytes.IndexByte(rest[i:], ' ')
		word := rest[i:end]
		e.page.write(row, word)
		switch {
		case words == 1:
			e.page.pad(row, e.layout.Width-textline.VisibleLen(word))
		case w < words-2:
			e.page.pad(row, gap)
		case w == words-2:
			e.page.pad(row, gap+extra)
		}
		i = end + 1
	}
	return i, nil
}

func (e *Engine) spacing(row, col int) {
	if col != e.layout.Columns-1 {
		e.page.pad(row, e.layout.Spacing)
	}
}
