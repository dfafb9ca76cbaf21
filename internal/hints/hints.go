// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// ForWordTooLong suggests a column width that fits the offending word.
func ForWordTooLong(wordWidth int) string {
	if wordWidth <= 0 {
		return format("increase the column width with --width")
	}
	return format(fmt.Sprintf("use --width %d or more, or remove the word from the input", wordWidth))
}

// ForTerminalInput explains how to provide input when stdin is a terminal.
func ForTerminalInput() string {
	return format("redirect input (splittext < file.txt), pipe it, or pass an input file")
}

// ForPageTooNarrow suggests widening the page so the separator fits.
func ForPageTooNarrow() string {
	return format("increase --width, --columns or --spacing")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-splittext/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-splittext") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPipelineBuffers returns a hint for oversized pipeline queues.
func ForPipelineBuffers(maxLines, maxFrames int) string {
	return format(fmt.Sprintf("--line-buffer accepts up to %d, --frame-buffer up to %d", maxLines, maxFrames))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
