package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/alnah/go-splittext/internal/config"
)

const envPrefix = "SPLITTEXT_"

// envConfig holds configuration from environment variables.
// Provides script-friendly overrides without requiring YAML files.
type envConfig struct {
	// Tier 1 - Essential
	ConfigPath string // SPLITTEXT_CONFIG: config file name or path
	Mode       string // SPLITTEXT_MODE: sequential, pipelined

	// Tier 2 - Layout
	Columns int // SPLITTEXT_COLUMNS
	Rows    int // SPLITTEXT_ROWS
	Width   int // SPLITTEXT_WIDTH
	Spacing int // SPLITTEXT_SPACING

	// Tier 3 - Input
	Format string // SPLITTEXT_FORMAT: text, markdown
}

// knownEnvVars lists valid SPLITTEXT_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"SPLITTEXT_CONFIG":  true,
	"SPLITTEXT_MODE":    true,
	"SPLITTEXT_COLUMNS": true,
	"SPLITTEXT_ROWS":    true,
	"SPLITTEXT_WIDTH":   true,
	"SPLITTEXT_SPACING": true,
	"SPLITTEXT_FORMAT":  true,
}

// layoutEnvVars must hold positive integers.
var layoutEnvVars = []string{"SPLITTEXT_COLUMNS", "SPLITTEXT_ROWS", "SPLITTEXT_WIDTH", "SPLITTEXT_SPACING"}

// envVars collects the SPLITTEXT_* entries of environ.
func envVars(environ []string) map[string]string {
	vars := make(map[string]string)
	for _, kv := range environ {
		name, value, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) {
			vars[name] = value
		}
	}
	return vars
}

// loadEnvConfig reads configuration from SPLITTEXT_* variables.
// Layout values that are not positive integers are ignored; warnEnvVars
// reports them.
func loadEnvConfig(vars map[string]string) *envConfig {
	return &envConfig{
		ConfigPath: vars["SPLITTEXT_CONFIG"],
		Mode:       vars["SPLITTEXT_MODE"],
		Columns:    positiveEnv(vars["SPLITTEXT_COLUMNS"]),
		Rows:       positiveEnv(vars["SPLITTEXT_ROWS"]),
		Width:      positiveEnv(vars["SPLITTEXT_WIDTH"]),
		Spacing:    positiveEnv(vars["SPLITTEXT_SPACING"]),
		Format:     vars["SPLITTEXT_FORMAT"],
	}
}

func positiveEnv(value string) int {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || v <= 0 {
		return 0
	}
	return v
}

// warnEnvVars logs warnings for unrecognized SPLITTEXT_* variables and for
// layout variables that will be ignored.
// Helps catch typos like SPLITTEXT_COLUMN instead of SPLITTEXT_COLUMNS.
func warnEnvVars(w io.Writer, vars map[string]string) {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
	for _, name := range layoutEnvVars {
		value, ok := vars[name]
		if ok && strings.TrimSpace(value) != "" && positiveEnv(value) == 0 {
			fmt.Fprintf(w, "warning: ignoring %s=%q, want a positive integer\n", name, value)
		}
	}
}

// applyEnvConfig applies set environment values over cfg.
// Order: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Mode != "" {
		cfg.Mode = env.Mode
	}
	if env.Columns > 0 {
		cfg.Layout.Columns = env.Columns
	}
	if env.Rows > 0 {
		cfg.Layout.Rows = env.Rows
	}
	if env.Width > 0 {
		cfg.Layout.Width = env.Width
	}
	if env.Spacing > 0 {
		cfg.Layout.Spacing = env.Spacing
	}
	if env.Format != "" {
		cfg.Input.Format = env.Format
	}
}
