package main

import (
	"reflect"
	"testing"
)

func TestParseBundleFlags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		expected   bundleFlags
		positional []string
	}{
		{
			name:       "no flags",
			args:       []string{},
			expected:   bundleFlags{},
			positional: []string{},
		},
		{
			name: "long flags",
			args: []string{"--output", "out.css", "--cache-dir", "cache", "--base-url", "https://cdn.example.com/", "--timeout", "30s"},
			expected: bundleFlags{
				output:   "out.css",
				cacheDir: "cache",
				baseURL:  "https://cdn.example.com/",
				timeout:  "30s",
			},
			positional: []string{},
		},
		{
			name:       "short flags with positional input",
			args:       []string{"-o", "out.css", "-q", "theme.css"},
			expected:   bundleFlags{output: "out.css", quiet: true},
			positional: []string{"theme.css"},
		},
		{
			name:       "config and verbose",
			args:       []string{"-c", "fontbundle", "-v"},
			expected:   bundleFlags{config: "fontbundle", verbose: true},
			positional: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, positional, err := parseBundleFlags(tt.args)
			if err != nil {
				t.Fatalf("parseBundleFlags() error: %v", err)
			}
			if *got != tt.expected {
				t.Errorf("flags = %+v, want %+v", *got, tt.expected)
			}
			if !reflect.DeepEqual(positional, tt.positional) {
				t.Errorf("positional = %v, want %v", positional, tt.positional)
			}
		})
	}
}

func TestParseBundleFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := parseBundleFlags([]string{"--bogus"})
	if err == nil {
		t.Error("parseBundleFlags() accepted unknown flag")
	}
}
