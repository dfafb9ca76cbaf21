package justify

// Page is the row grid for one output page. Row Rows holds the separator.
// An empty row marks the end of the written content.
type Page struct {
	rows [][]byte
	n    int
}

// NewPage allocates a page for l. The page is reused across flushes.
func NewPage(l Layout) *Page {
	rows := make([][]byte, l.Rows+1)
	for i := range rows {
		rows[i] = make([]byte, 0, l.RowCapacity())
	}
	return &Page{rows: rows, n: l.Rows}
}

// Rows returns every row slot including the separator slot.
// The slices alias the page and are overwritten after Reset.
func (p *Page) Rows() [][]byte {
	return p.rows
}

// Empty reports whether nothing has been written since the last Reset.
func (p *Page) Empty() bool {
	return len(p.rows[0]) == 0
}

// Reset clears every row while keeping its capacity.
func (p *Page) Reset() {
	for i := range p.rows {
		p.rows[i] = p.rows[i][:0]
	}
}

// SetSeparator writes the page separator into the extra row.
func (p *Page) SetSeparator() {
	p.rows[p.n] = append(p.rows[p.n][:0], Separator...)
}

// Snapshot copies every row slot, empty ones included.
func (p *Page) Snapshot() [][]byte {
	out := make([][]byte, len(p.rows))
	for i, r := range p.rows {
		out[i] = append([]byte(nil), r...)
	}
	return out
}

func (p *Page) write(row int, b []byte) {
	p.rows[row] = append(p.rows[row], b...)
}

func (p *Page) pad(row, n int) {
	for ; n > 0; n-- {
		p.rows[row] = append(p.rows[row], ' ')
	}
}
