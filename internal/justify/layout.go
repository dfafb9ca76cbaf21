package justify

// Separator is the row appended after the last content row of a full page.
const Separator = "\n %%% \n"

// Layout describes the page geometry. All fields must be at least 1.
type Layout struct {
	Columns int // cells per row
	Rows    int // rows per page
	Width   int // visible characters per cell
	Spacing int // spaces between adjacent columns
}

// PageWidth returns the visible width of a full row.
func (l Layout) PageWidth() int {
	return l.Columns*l.Width + l.Spacing*(l.Columns-1)
}

// RowCapacity returns the byte capacity allocated per row. Rows may hold
// multi-byte characters, so twice the visible width is reserved.
func (l Layout) RowCapacity() int {
	return 2*l.PageWidth() + 1
}
