// Package pipeline drives the layout engine from an input stream to an
// output stream.
//
// Two interchangeable strategies share the same stages:
//   - RunSequential reads, normalizes, lays out and emits in one goroutine.
//   - RunPipelined runs reading, layout and emission as three goroutines
//     joined by bounded channels, so a slow writer applies backpressure all
//     the way back to the reader.
//
// Both produce byte-identical output. Input arrives through a LineSource:
// textline.Reader for plain text or MarkdownSource for Markdown documents.
package pipeline
