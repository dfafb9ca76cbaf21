// Package splittext reflows plain text into fixed-width, justified,
// multi-column pages.
//
// # Quick Start
//
// Create a formatter and stream text through it:
//
//	f, err := splittext.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	stats, err := f.Format(ctx, os.Stdin, os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	log.Printf("%d pages, %d lines", stats.Pages, stats.Lines)
//
// # Layout
//
// A page is a grid of Rows x Columns cells. Each cell is Width visible
// characters wide and columns are separated by Spacing spaces:
//
//	f, err := splittext.New(splittext.WithLayout(splittext.Layout{
//	    Columns: 2,
//	    Rows:    40,
//	    Width:   30,
//	    Spacing: 4,
//	}))
//
// Text fills the first column top to bottom, then the next column. Every
// cell is justified: the space left over after the last whole word is
// spread between the words, with the remainder placed before the last one.
// A line that ends inside a cell is left-aligned instead. Runs of blank
// lines collapse into one and a blank line never opens a page.
//
// Full pages are followed by the separator row " %%% " surrounded by empty
// lines. The last page is written as far as it was filled.
//
// Width is counted in visible characters: UTF-8 continuation bytes do not
// take a position. A word wider than Width aborts the run with an error
// matching ErrWordTooLong.
//
// # Execution Modes
//
// ModeSequential lays out and writes each page in the calling goroutine.
// ModePipelined runs reading, layout and writing in three goroutines joined
// by bounded channels. Both write the same bytes for the same input.
//
// # Input Formats
//
// FormatText treats every input line as a raw line. FormatMarkdown parses the
// whole document first and lays out its text content: one line per
// paragraph, heading, list item or table row, with markup removed.
package splittext
