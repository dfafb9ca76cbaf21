package justify

// FlushFunc receives a page ready for output. The page is reset once the
// function returns, so implementations must copy rows they keep.
type FlushFunc func(*Page) error

// Paginator feeds normalized lines through the blank-line guard and the
// engine, flushing each page as it fills.
type Paginator struct {
	engine *Engine
	page   *Page
	guard  BlankGuard
	cur    Cursor
	pages  int
	lines  int
}

// NewPaginator allocates the page buffer for l. The layout must be valid.
func NewPaginator(l Layout) *Paginator {
	page := NewPage(l)
	return &Paginator{engine: NewEngine(l, page), page: page}
}

// Feed lays out one normalized line. The line is not retained.
func (p *Paginator) Feed(line []byte, flush FlushFunc) error {
	if p.guard.Discard(line, p.cur) {
		return nil
	}
	p.lines++
	p.cur.Offset = 0
	for p.cur.Offset < len(line) {
		next, err := p.engine.Advance(p.cur, line)
		if err != nil {
			return err
		}
		p.cur = next
		if p.cur.AtPageStart() && !p.page.Empty() {
			p.page.SetSeparator()
			if err := p.emit(flush); err != nil {
				return err
			}
		}
	}
	return nil
}

// Finish flushes the last, partially filled page. It carries no separator.
func (p *Paginator) Finish(flush FlushFunc) error {
	if p.page.Empty() {
		return nil
	}
	return p.emit(flush)
}

func (p *Paginator) emit(flush FlushFunc) error {
	p.pages++
	err := flush(p.page)
	p.page.Reset()
	return err
}

// Pages returns the number of pages flushed so far.
func (p *Paginator) Pages() int { return p.pages }

// Lines returns the number of lines that passed the blank-line guard.
func (p *Paginator) Lines() int { return p.lines }
