package justify

// Cursor tracks the engine position: the next cell to fill and the offset of
// the first unread byte in the current line.
type Cursor struct {
	Row    int
	Column int
	Offset int
}

// AtPageStart reports whether the cursor points at the first cell of a page.
func (c Cursor) AtPageStart() bool {
	return c.Row == 0 && c.Column == 0
}

// next returns the cell following (row, col) in reading order, wrapping to
// (0, 0) after the last cell of the page.
func (l Layout) next(row, col int) (int, int) {
	switch {
	case row < l.Rows-1:
		return row + 1, col
	case col < l.Columns-1:
		return 0, col + 1
	default:
		return 0, 0
	}
}
