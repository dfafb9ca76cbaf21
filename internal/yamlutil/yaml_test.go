package yamlutil_test

// Notes:
// - Marshal error branch: not tested because yaml.Marshal only fails with
//   unmarshalable types (channels, functions) that never reach it.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-splittext/internal/yamlutil"
)

type layout struct {
	Columns int `yaml:"columns"`
	Width   int `yaml:"width"`
}

type testConfig struct {
	Layout layout `yaml:"layout"`
	Mode   string `yaml:"mode"`
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Strict decoding over existing values
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		want    testConfig
		wantErr error
		errText string
	}{
		{
			name: "overrides present fields only",
			data: []byte("layout:\n  width: 30\n"),
			dest: &testConfig{Layout: layout{Columns: 3, Width: 22}, Mode: "sequential"},
			want: testConfig{Layout: layout{Columns: 3, Width: 30}, Mode: "sequential"},
		},
		{
			name: "all fields",
			data: []byte("layout: {columns: 2, width: 10}\nmode: pipelined\n"),
			dest: &testConfig{},
			want: testConfig{Layout: layout{Columns: 2, Width: 10}, Mode: "pipelined"},
		},
		{
			name:    "unknown top-level field",
			data:    []byte("mode: sequential\nverbos: true\n"),
			dest:    &testConfig{},
			errText: "yamlutil:",
		},
		{
			name:    "unknown nested field",
			data:    []byte("layout:\n  colums: 2\n"),
			dest:    &testConfig{},
			errText: "yamlutil:",
		},
		{
			name:    "type mismatch",
			data:    []byte("layout:\n  width: wide\n"),
			dest:    &testConfig{},
			errText: "yamlutil:",
		},
		{
			name:    "invalid syntax",
			data:    []byte("layout: [unclosed"),
			dest:    &testConfig{},
			errText: "yamlutil:",
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &testConfig{},
			wantErr: yamlutil.ErrNilData,
		},
		{
			name:    "nil destination",
			data:    []byte("mode: sequential"),
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			case tt.errText != "":
				if err == nil || !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("error = %v, want containing %q", err, tt.errText)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := *tt.dest.(*testConfig); got != tt.want {
				t.Errorf("decoded = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInputSizeLimit - Oversized input is rejected before parsing
// ---------------------------------------------------------------------------

func TestInputSizeLimit(t *testing.T) {
	t.Parallel()

	data := []byte("mode: " + strings.Repeat("x", yamlutil.MaxInputSize) + "\n")
	err := yamlutil.UnmarshalStrict(data, &testConfig{})
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
}

// ---------------------------------------------------------------------------
// TestMarshal - Encoding round trips through strict decoding
// ---------------------------------------------------------------------------

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := testConfig{Layout: layout{Columns: 3, Width: 22}, Mode: "sequential"}
	data, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"layout:", "columns: 3", "width: 22", "mode: sequential"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("output missing %q:\n%s", want, data)
		}
	}

	var out testConfig
	if err := yamlutil.UnmarshalStrict(data, &out); err != nil {
		t.Fatalf("decoding marshaled output: %v", err)
	}
	if out != in {
		t.Errorf("round trip = %+v, want %+v", out, in)
	}
}
