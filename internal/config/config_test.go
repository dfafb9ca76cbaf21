package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-splittext"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if got := cfg.SplitLayout(); got != splittext.DefaultLayout() {
		t.Errorf("SplitLayout() = %+v, want %+v", got, splittext.DefaultLayout())
	}
	if cfg.Mode != "sequential" {
		t.Errorf("Mode = %q, want sequential", cfg.Mode)
	}
	if cfg.Input.Format != "text" {
		t.Errorf("Input.Format = %q, want text", cfg.Input.Format)
	}
	if cfg.Verbose {
		t.Error("Verbose = true, want false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults",
			modify: func(*Config) {},
		},
		{
			name:    "zero columns",
			modify:  func(c *Config) { c.Layout.Columns = 0 },
			wantErr: splittext.ErrInvalidLayout,
		},
		{
			name:    "negative spacing",
			modify:  func(c *Config) { c.Layout.Spacing = -1 },
			wantErr: splittext.ErrInvalidLayout,
		},
		{
			name:    "page narrower than separator",
			modify:  func(c *Config) { c.Layout = LayoutConfig{Columns: 1, Rows: 4, Width: 2, Spacing: 1} },
			wantErr: splittext.ErrPageTooNarrow,
		},
		{
			name:    "too many columns",
			modify:  func(c *Config) { c.Layout.Columns = MaxColumns + 1 },
			wantErr: ErrValueTooLarge,
		},
		{
			name:   "width at limit",
			modify: func(c *Config) { c.Layout.Width = MaxWidth },
		},
		{
			name:    "line buffer too large",
			modify:  func(c *Config) { c.Pipeline.LineBuffer = MaxLineBuffer + 1 },
			wantErr: ErrValueTooLarge,
		},
		{
			name:   "unbuffered pipeline",
			modify: func(c *Config) { c.Pipeline = PipelineConfig{LineBuffer: -1, FrameBuffer: -1} },
		},
		{
			name:    "unknown mode",
			modify:  func(c *Config) { c.Mode = "turbo" },
			wantErr: splittext.ErrInvalidMode,
		},
		{
			name:    "unknown input format",
			modify:  func(c *Config) { c.Input.Format = "docx" },
			wantErr: splittext.ErrInvalidInputFormat,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("full file by path", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "full.yaml", `
layout:
  columns: 2
  rows: 30
  width: 40
  spacing: 4
mode: pipelined
input:
  format: markdown
pipeline:
  lineBuffer: 16
  frameBuffer: 1
verbose: true
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := splittext.Layout{Columns: 2, Rows: 30, Width: 40, Spacing: 4}
		if got := cfg.SplitLayout(); got != want {
			t.Errorf("layout = %+v, want %+v", got, want)
		}
		if cfg.Mode != "pipelined" || cfg.Input.Format != "markdown" || !cfg.Verbose {
			t.Errorf("cfg = %+v", cfg)
		}
		if cfg.Pipeline.LineBuffer != 16 || cfg.Pipeline.FrameBuffer != 1 {
			t.Errorf("Pipeline = %+v", cfg.Pipeline)
		}
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "partial.yaml", "layout:\n  width: 30\n")
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Layout.Width != 30 {
			t.Errorf("Width = %d, want 30", cfg.Layout.Width)
		}
		if cfg.Layout.Columns != splittext.DefaultColumns || cfg.Layout.Rows != splittext.DefaultRows {
			t.Errorf("Layout = %+v, want defaults besides width", cfg.Layout)
		}
		if cfg.Mode != "sequential" {
			t.Errorf("Mode = %q, want sequential", cfg.Mode)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "typo.yaml", "layout:\n  colums: 2\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("empty file rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "empty.yaml", "")
		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "bad.yaml", "layout:\n  rows: 0\n")
		_, err := LoadConfig(path)
		if !errors.Is(err, splittext.ErrInvalidLayout) {
			t.Errorf("error = %v, want ErrInvalidLayout", err)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("name resolved in current directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "narrow.yml", "layout:\n  columns: 1\n")
		chdir(t, dir)

		cfg, err := LoadConfig("narrow")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Layout.Columns != 1 {
			t.Errorf("Columns = %d, want 1", cfg.Layout.Columns)
		}
	})

	t.Run("yaml preferred over yml", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "both.yaml", "layout:\n  rows: 10\n")
		writeConfig(t, dir, "both.yml", "layout:\n  rows: 20\n")
		chdir(t, dir)

		cfg, err := LoadConfig("both")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Layout.Rows != 10 {
			t.Errorf("Rows = %d, want 10 from both.yaml", cfg.Layout.Rows)
		}
	})

	t.Run("unknown name lists tried paths", func(t *testing.T) {
		chdir(t, t.TempDir())

		_, err := LoadConfig("absent")
		if !errors.Is(err, ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "absent.yaml") || !strings.Contains(err.Error(), "absent.yml") {
			t.Errorf("error %q should list tried paths", err)
		}
	})
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	originalWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(originalWd) })
}
