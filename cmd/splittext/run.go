package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alnah/go-splittext"
	"github.com/alnah/go-splittext/internal/config"
	"github.com/alnah/go-splittext/internal/fileutil"
	"github.com/alnah/go-splittext/internal/hints"
	"github.com/alnah/go-splittext/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrTerminalInput = errors.New("no input: stdin is a terminal")
	ErrTooManyArgs   = errors.New("too many arguments")
	errFlagParse     = errors.New("invalid flags")
)

// runMain runs the command and returns the process exit code.
// args excludes the program name.
func runMain(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n\n", err)
		printUsage(env.Stderr)
		return exitCodeFor(fmt.Errorf("%w: %v", errFlagParse, err))
	}

	if flags.common.help {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	if flags.common.version {
		fmt.Fprintf(env.Stdout, "splittext %s\n", Version)
		return ExitSuccess
	}

	err = run(ctx, flags, positional, env)
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v%s\n", err, hintFor(err))
		if errors.Is(err, ErrTerminalInput) {
			fmt.Fprintln(env.Stderr)
			printUsage(env.Stderr)
		}
	}
	return exitCodeFor(err)
}

// run resolves the configuration, opens the streams and formats the input.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: %s", ErrTooManyArgs, strings.Join(args[1:], " "))
	}

	cfg, err := resolveConfig(flags, env)
	if err != nil {
		return err
	}

	if flags.common.showConfig {
		data, err := yamlutil.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	f, err := splittext.New(formatterOptions(cfg)...)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(args, env)
	if err != nil {
		return err
	}
	defer closeIn()

	out, closeOut, err := openOutput(flags.output, env)
	if err != nil {
		return err
	}

	if cfg.Verbose {
		printLayout(env.Stderr, cfg)
	}

	stats, err := f.Format(ctx, in, out)
	if cerr := closeOut(); err == nil && cerr != nil {
		err = fmt.Errorf("%w: %v", splittext.ErrWriteOutput, cerr)
	}

	if cfg.Verbose && stats != nil {
		fmt.Fprintf(env.Stderr, "Pages written: %d\n", stats.Pages)
		fmt.Fprintf(env.Stderr, "Lines laid out: %d\n", stats.Lines)
	}
	return err
}

// resolveConfig merges defaults, config file, environment and flags, in
// increasing order of precedence, and validates the result.
func resolveConfig(flags *cliFlags, env *Environment) (*config.Config, error) {
	var environ []string
	if env.Environ != nil {
		environ = env.Environ()
	}
	vars := envVars(environ)
	envCfg := loadEnvConfig(vars)
	if !flags.common.quiet {
		warnEnvVars(env.Stderr, vars)
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags applies the flags given on the command line over cfg.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.set["columns"] {
		cfg.Layout.Columns = flags.layout.columns
	}
	if flags.set["rows"] {
		cfg.Layout.Rows = flags.layout.rows
	}
	if flags.set["width"] {
		cfg.Layout.Width = flags.layout.width
	}
	if flags.set["spacing"] {
		cfg.Layout.Spacing = flags.layout.spacing
	}

	if flags.set["mode"] {
		cfg.Mode = flags.mode.mode
	}
	if flags.mode.multiprocess {
		cfg.Mode = string(splittext.ModePipelined)
	}
	if flags.mode.markdown {
		cfg.Input.Format = string(splittext.FormatMarkdown)
	}
	if flags.set["line-buffer"] {
		cfg.Pipeline.LineBuffer = flags.mode.lineBuffer
	}
	if flags.set["frame-buffer"] {
		cfg.Pipeline.FrameBuffer = flags.mode.frameBuffer
	}

	if flags.common.verbose {
		cfg.Verbose = true
	}
	if flags.common.quiet {
		cfg.Verbose = false
	}
}

// formatterOptions converts a validated config to library options.
func formatterOptions(cfg *config.Config) []splittext.Option {
	mode, _ := splittext.ParseMode(cfg.Mode)
	format, _ := splittext.ParseInputFormat(cfg.Input.Format)
	return []splittext.Option{
		splittext.WithLayout(cfg.SplitLayout()),
		splittext.WithMode(mode),
		splittext.WithInputFormat(format),
		splittext.WithLineBuffer(cfg.Pipeline.LineBuffer),
		splittext.WithFrameBuffer(cfg.Pipeline.FrameBuffer),
	}
}

// openInput returns the input file named in args, or stdin when args is
// empty. Interactive stdin is refused.
func openInput(args []string, env *Environment) (io.Reader, func(), error) {
	if len(args) == 0 {
		if env.IsTerminal != nil && env.IsTerminal(env.Stdin) {
			return nil, nil, ErrTerminalInput
		}
		return env.Stdin, func() {}, nil
	}

	f, err := fileutil.OpenInput(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}

// openOutput returns the output file at path, or stdout when path is empty.
func openOutput(path string, env *Environment) (io.Writer, func() error, error) {
	if path == "" {
		return env.Stdout, func() error { return nil }, nil
	}

	f, err := fileutil.CreateOutput(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// printLayout reports the resolved layout.
func printLayout(w io.Writer, cfg *config.Config) {
	l := cfg.SplitLayout()
	fmt.Fprintf(w, "Number of columns: %d\n", l.Columns)
	fmt.Fprintf(w, "Space between columns: %d\n", l.Spacing)
	fmt.Fprintf(w, "Page width: %d\n", l.PageWidth())
	fmt.Fprintf(w, "Number of rows per page: %d\n", l.Rows)
	fmt.Fprintf(w, "Column width: %d\n", l.Width)
	fmt.Fprintf(w, "Mode: %s\n", cfg.Mode)
	if cfg.Input.Format != string(splittext.FormatText) {
		fmt.Fprintf(w, "Input format: %s\n", cfg.Input.Format)
	}
}

// hintFor returns an actionable hint for err, or "".
func hintFor(err error) string {
	var wt *splittext.WordTooLongError
	switch {
	case errors.As(err, &wt):
		return hints.ForWordTooLong(wt.Width)
	case errors.Is(err, ErrTerminalInput):
		return hints.ForTerminalInput()
	case errors.Is(err, splittext.ErrPageTooNarrow):
		return hints.ForPageTooNarrow()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(triedPaths(err))
	case errors.Is(err, fileutil.ErrCreateOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, config.ErrValueTooLarge) && strings.Contains(err.Error(), "pipeline."):
		return hints.ForPipelineBuffers(config.MaxLineBuffer, config.MaxFrameBuffer)
	}
	return ""
}

// triedPaths extracts the searched locations from a config-not-found error.
func triedPaths(err error) []string {
	_, list, ok := strings.Cut(err.Error(), "tried ")
	if !ok {
		return nil
	}
	return strings.Split(list, ", ")
}
