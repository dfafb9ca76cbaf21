package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-splittext"
	"github.com/alnah/go-splittext/internal/fileutil"
	"github.com/alnah/go-splittext/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrValueTooLarge   = errors.New("value exceeds maximum")
)

// Upper bounds keep a single page and the pipeline queues in memory.
const (
	MaxColumns     = 64
	MaxRows        = 10000
	MaxWidth       = 1024
	MaxSpacing     = 1024
	MaxLineBuffer  = 1 << 16
	MaxFrameBuffer = 256
)

// appName is the directory under the user config dir searched for configs.
const appName = "go-splittext"

// Config holds all configuration for a formatting run.
type Config struct {
	Layout   LayoutConfig   `yaml:"layout"`
	Mode     string         `yaml:"mode"` // "sequential" or "pipelined"
	Input    InputConfig    `yaml:"input"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Verbose  bool           `yaml:"verbose"`
}

// LayoutConfig defines the page grid.
type LayoutConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
	Width   int `yaml:"width"`   // visible characters per column
	Spacing int `yaml:"spacing"` // spaces between columns
}

// InputConfig defines how input is read.
type InputConfig struct {
	Format string `yaml:"format"` // "text" or "markdown"
}

// PipelineConfig sizes the queues of pipelined mode.
type PipelineConfig struct {
	LineBuffer  int `yaml:"lineBuffer"`  // 0 = default, negative = unbuffered
	FrameBuffer int `yaml:"frameBuffer"` // 0 = default, negative = unbuffered
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	l := splittext.DefaultLayout()
	return &Config{
		Layout: LayoutConfig{
			Columns: l.Columns,
			Rows:    l.Rows,
			Width:   l.Width,
			Spacing: l.Spacing,
		},
		Mode:  string(splittext.ModeSequential),
		Input: InputConfig{Format: string(splittext.FormatText)},
	}
}

// SplitLayout converts the layout section to the library type.
func (c *Config) SplitLayout() splittext.Layout {
	return splittext.Layout{
		Columns: c.Layout.Columns,
		Rows:    c.Layout.Rows,
		Width:   c.Layout.Width,
		Spacing: c.Layout.Spacing,
	}
}

// Validate checks value ranges and names. Called automatically by LoadConfig
// and again by the CLI once flags and environment are merged.
func (c *Config) Validate() error {
	limits := []struct {
		field string
		value int
		max   int
	}{
		{"layout.columns", c.Layout.Columns, MaxColumns},
		{"layout.rows", c.Layout.Rows, MaxRows},
		{"layout.width", c.Layout.Width, MaxWidth},
		{"layout.spacing", c.Layout.Spacing, MaxSpacing},
		{"pipeline.lineBuffer", c.Pipeline.LineBuffer, MaxLineBuffer},
		{"pipeline.frameBuffer", c.Pipeline.FrameBuffer, MaxFrameBuffer},
	}
	for _, l := range limits {
		if err := validateMax(l.field, l.value, l.max); err != nil {
			return err
		}
	}

	if err := c.SplitLayout().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	if _, err := splittext.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode: %w", err)
	}
	if _, err := splittext.ParseInputFormat(c.Input.Format); err != nil {
		return fmt.Errorf("input.format: %w", err)
	}
	return nil
}

func validateMax(field string, value, limit int) error {
	if value > limit {
		return fmt.Errorf("%w: %s (%d, max %d)", ErrValueTooLarge, field, value, limit)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Fields missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-splittext/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, appName, name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
