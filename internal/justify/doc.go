// Package justify lays normalized lines out into justified, multi-column pages.
//
// The Engine fills page cells in reading order: down the rows of a column,
// then on to the next column. A single normalized line may span many cells
// and several pages; the Cursor returned by Engine.Advance records where the
// line stopped so the next call resumes at the same place. When the cursor
// wraps back to row 0 of column 0 the page is full and must be flushed.
//
// Paginator combines the Engine with a Page and the BlankGuard and is what
// the pipeline stages drive.
package justify
