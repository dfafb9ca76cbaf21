package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that control the CLI itself.
type commonFlags struct {
	config     string
	quiet      bool
	verbose    bool
	help       bool
	version    bool
	showConfig bool
}

// layoutFlags holds page geometry flags.
type layoutFlags struct {
	columns int
	rows    int
	width   int
	spacing int
}

// modeFlags holds execution and input format flags.
type modeFlags struct {
	multiprocess bool
	mode         string
	markdown     bool
	lineBuffer   int
	frameBuffer  int
}

// cliFlags holds every flag of the command.
type cliFlags struct {
	common commonFlags
	layout layoutFlags
	mode   modeFlags
	output string

	// set records the flags given on the command line, so that only those
	// override config and environment values.
	set map[string]bool
}

// addCommonFlags adds CLI control flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "print the layout and a summary to stderr")
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVar(&f.showConfig, "show-config", false, "print the resolved configuration as YAML and exit")
}

// addLayoutFlags adds page geometry flags to a FlagSet.
// Defaults are zero: unset flags keep the config value.
func addLayoutFlags(fs *flag.FlagSet, f *layoutFlags) {
	fs.IntVarP(&f.columns, "columns", "c", 0, "columns per page (default 3)")
	fs.IntVarP(&f.rows, "rows", "l", 0, "rows per page (default 47)")
	fs.IntVarP(&f.width, "width", "w", 0, "column width in characters (default 22)")
	fs.IntVarP(&f.spacing, "spacing", "s", 0, "spaces between columns (default 10)")
}

// addModeFlags adds execution mode flags to a FlagSet.
func addModeFlags(fs *flag.FlagSet, f *modeFlags) {
	fs.BoolVarP(&f.multiprocess, "multiprocess", "m", false, "run read, layout and write concurrently")
	fs.StringVar(&f.mode, "mode", "", "execution mode: sequential, pipelined")
	fs.BoolVar(&f.markdown, "markdown", false, "read the input as Markdown")
	fs.IntVar(&f.lineBuffer, "line-buffer", 0, "lines queued before layout in pipelined mode (0 = default)")
	fs.IntVar(&f.frameBuffer, "frame-buffer", 0, "pages queued before output in pipelined mode (0 = default)")
}

// parseFlags parses the command line (without the program name) and returns
// the positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("splittext", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{set: make(map[string]bool)}

	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addLayoutFlags(fs, &f.layout)
	addModeFlags(fs, &f.mode)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, fs.Args(), nil
}
