package main

import (
	"fmt"
	"io"
)

// printUsage prints the command usage.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: splittext [flags] [input-file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Reflow text into justified, multi-column pages.")
	fmt.Fprintln(w, "Reads input-file, or stdin when it is redirected or piped.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -c, --columns <n>         Columns per page (default 3)")
	fmt.Fprintln(w, "  -l, --rows <n>            Rows per page (default 47)")
	fmt.Fprintln(w, "  -w, --width <n>           Column width in characters (default 22)")
	fmt.Fprintln(w, "  -s, --spacing <n>         Spaces between columns (default 10)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Execution:")
	fmt.Fprintln(w, "  -m, --multiprocess        Same as --mode pipelined")
	fmt.Fprintln(w, "      --mode <s>            sequential or pipelined")
	fmt.Fprintln(w, "      --line-buffer <n>     Lines queued before layout (pipelined)")
	fmt.Fprintln(w, "      --frame-buffer <n>    Pages queued before output (pipelined)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --markdown            Read the input as Markdown")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (default stdout)")
	fmt.Fprintln(w, "      --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --show-config         Print the resolved configuration and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Print the layout and a summary to stderr")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SPLITTEXT_CONFIG, SPLITTEXT_COLUMNS, SPLITTEXT_ROWS, SPLITTEXT_WIDTH,")
	fmt.Fprintln(w, "  SPLITTEXT_SPACING, SPLITTEXT_MODE, SPLITTEXT_FORMAT")
	fmt.Fprintln(w, "  Flags override environment, environment overrides the config file.")
}
