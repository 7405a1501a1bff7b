// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than
// a name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "fontbundle" -> false (config name)
//   - "./custom.yaml" -> true (relative path)
//   - "/etc/fontbundle.yaml" -> true (absolute)
//   - "C:\tools\fb.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// DirWritable returns true if a file can be created inside dir.
// It probes with a temp file and removes it.
func DirWritable(dir string) bool {
	f, err := os.CreateTemp(dir, ".fontbundle-probe-*")
	if err != nil {
		return false
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return true
}
