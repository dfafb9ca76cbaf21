package main

import (
	"testing"

	"github.com/alnah/go-splittext/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Flag parsing and set tracking
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, args, err := parseFlags([]string{"-c", "2", "--width=30", "-mv", "--markdown", "in.txt"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if f.layout.columns != 2 || f.layout.width != 30 {
		t.Errorf("layout = %+v", f.layout)
	}
	if !f.mode.multiprocess || !f.common.verbose || !f.mode.markdown {
		t.Errorf("bool flags not parsed: mode=%+v common=%+v", f.mode, f.common)
	}
	if len(args) != 1 || args[0] != "in.txt" {
		t.Errorf("args = %v, want [in.txt]", args)
	}
	for _, name := range []string{"columns", "width", "multiprocess", "verbose", "markdown"} {
		if !f.set[name] {
			t.Errorf("flag %q not recorded as set", name)
		}
	}
	if f.set["rows"] || f.set["spacing"] {
		t.Errorf("unset flags recorded: %v", f.set)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"unknown long flag", []string{"--pages"}},
		{"unknown short flag", []string{"-x"}},
		{"missing value", []string{"--width"}},
		{"non-numeric value", []string{"--rows", "many"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, _, err := parseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestMergeFlags - Only flags given on the command line override
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "no flags keep config",
			args: nil,
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Layout.Width != 30 || cfg.Mode != "sequential" {
					t.Errorf("cfg changed: %+v", cfg)
				}
			},
		},
		{
			name: "explicit zero is kept for validation",
			args: []string{"--width", "0"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Layout.Width != 0 {
					t.Errorf("Width = %d, want 0", cfg.Layout.Width)
				}
			},
		},
		{
			name: "multiprocess wins over mode",
			args: []string{"--mode", "sequential", "-m"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Mode != "pipelined" {
					t.Errorf("Mode = %q, want pipelined", cfg.Mode)
				}
			},
		},
		{
			name: "buffers",
			args: []string{"--line-buffer", "8", "--frame-buffer", "-1"},
			check: func(t *testing.T, cfg *config.Config) {
				if cfg.Pipeline.LineBuffer != 8 || cfg.Pipeline.FrameBuffer != -1 {
					t.Errorf("Pipeline = %+v", cfg.Pipeline)
				}
			},
		},
		{
			name: "verbose from flag",
			args: []string{"-v"},
			check: func(t *testing.T, cfg *config.Config) {
				if !cfg.Verbose {
					t.Error("Verbose = false, want true")
				}
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, _, err := parseFlags(tt.args)
			if err != nil {
				t.Fatalf("parseFlags: %v", err)
			}
			cfg := config.DefaultConfig()
			cfg.Layout.Width = 30
			mergeFlags(f, cfg)
			tt.check(t, cfg)
		})
	}
}
