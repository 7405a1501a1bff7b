package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "style.css")
	if err := os.WriteFile(file, []byte("body{}"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{name: "existing file", path: file, expected: true},
		{name: "missing file", path: filepath.Join(dir, "nope.css"), expected: false},
		{name: "directory is not a file", path: dir, expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FileExists(tt.path); got != tt.expected {
				t.Errorf("FileExists(%q) = %v, want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "bare name", input: "fontbundle", expected: false},
		{name: "relative path", input: "./custom.yaml", expected: true},
		{name: "absolute path", input: "/etc/fontbundle.yaml", expected: true},
		{name: "windows path", input: `C:\tools\fb.yaml`, expected: true},
		{name: "hyphenated name", input: "my-config", expected: false},
		{name: "empty string", input: "", expected: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := IsFilePath(tt.input); got != tt.expected {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDirWritable(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if !DirWritable(dir) {
		t.Errorf("DirWritable(%q) = false, want true", dir)
	}

	// Probe file must not survive.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe file left behind: %v", entries)
	}

	if DirWritable(filepath.Join(dir, "missing-subdir")) {
		t.Error("DirWritable() = true for nonexistent directory")
	}
}
