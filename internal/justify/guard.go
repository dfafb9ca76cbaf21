package justify

import "github.com/alnah/go-splittext/internal/textline"

// BlankGuard collapses runs of blank lines and drops blank lines that would
// open a page.
type BlankGuard struct {
	prevBlank bool
}

// Discard reports whether line must be skipped at cursor cur.
func (g *BlankGuard) Discard(line []byte, cur Cursor) bool {
	if !textline.IsBlank(line) {
		g.prevBlank = false
		return false
	}
	if g.prevBlank || cur.AtPageStart() {
		return true
	}
	g.prevBlank = true
	return false
}
