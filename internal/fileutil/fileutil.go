// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for file utility operations.
var (
	ErrFileNotFound  = errors.New("file not found")
	ErrIsDirectory   = errors.New("path is a directory")
	ErrCreateOutput  = errors.New("cannot create output file")
	ErrEmptyFilePath = errors.New("file path cannot be empty")
)

// OpenInput opens a regular file for reading.
func OpenInput(path string) (*os.File, error) {
	if path == "" {
		return nil, ErrEmptyFilePath
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("checking input file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Open(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	return f, nil
}

// CreateOutput creates or truncates path for writing. The parent directory
// must already exist.
func CreateOutput(path string) (*os.File, error) {
	if path == "" {
		return nil, ErrEmptyFilePath
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	f, err := os.Create(path) // #nosec G304 -- output path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCreateOutput, err)
	}
	return f, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "wide" -> false (config name)
//   - "./wide.yaml" -> true (relative path)
//   - "/etc/splittext/wide.yaml" -> true (absolute)
//   - "C:\configs\wide.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
