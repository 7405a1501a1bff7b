package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	fontbundle "github.com/alnah/go-fontbundle"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fontbundle.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if cfg.Input.File != fontbundle.DefaultInputFile {
		t.Errorf("Input.File = %q, want %q", cfg.Input.File, fontbundle.DefaultInputFile)
	}
	if cfg.Output.File != fontbundle.DefaultOutputFile {
		t.Errorf("Output.File = %q, want %q", cfg.Output.File, fontbundle.DefaultOutputFile)
	}
	if cfg.Cache.Dir != fontbundle.DefaultCacheDir {
		t.Errorf("Cache.Dir = %q, want %q", cfg.Cache.Dir, fontbundle.DefaultCacheDir)
	}
	if cfg.Remote.BaseURL != fontbundle.DefaultBaseURL {
		t.Errorf("Remote.BaseURL = %q, want %q", cfg.Remote.BaseURL, fontbundle.DefaultBaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
input:
  file: theme.css
output:
  file: theme-bundled.css
remote:
  baseUrl: https://cdn.example.com/katex/
  timeout: 45s
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.Input.File != "theme.css" {
		t.Errorf("Input.File = %q, want theme.css", cfg.Input.File)
	}
	if cfg.Output.File != "theme-bundled.css" {
		t.Errorf("Output.File = %q, want theme-bundled.css", cfg.Output.File)
	}
	if cfg.Remote.BaseURL != "https://cdn.example.com/katex/" {
		t.Errorf("Remote.BaseURL = %q", cfg.Remote.BaseURL)
	}
	if got := cfg.TimeoutDuration(); got != 45*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 45s", got)
	}

	// Unset fields keep their defaults.
	if cfg.Cache.Dir != fontbundle.DefaultCacheDir {
		t.Errorf("Cache.Dir = %q, want default %q", cfg.Cache.Dir, fontbundle.DefaultCacheDir)
	}
	if cfg.Remote.UserAgent != fontbundle.DefaultUserAgent {
		t.Errorf("Remote.UserAgent = %q, want default", cfg.Remote.UserAgent)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{
			name:     "unknown field rejected",
			content:  "bogus: true\n",
			expected: ErrConfigParse,
		},
		{
			name:     "invalid base URL scheme",
			content:  "remote:\n  baseUrl: ftp://example.com/\n",
			expected: ErrInvalidBaseURL,
		},
		{
			name:     "unparseable base URL",
			content:  "remote:\n  baseUrl: '::://bad'\n",
			expected: ErrInvalidBaseURL,
		},
		{
			name:     "invalid timeout",
			content:  "remote:\n  timeout: soon\n",
			expected: ErrInvalidTimeout,
		},
		{
			name:     "negative timeout",
			content:  "remote:\n  timeout: -5s\n",
			expected: ErrInvalidTimeout,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeConfig(t, tt.content)
			_, err := LoadConfig(path)
			if !errors.Is(err, tt.expected) {
				t.Errorf("LoadConfig() error = %v, want %v", err, tt.expected)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("LoadConfig() error = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigEmptyName(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig("")
	if !errors.Is(err, ErrEmptyConfigName) {
		t.Errorf("LoadConfig(\"\") error = %v, want ErrEmptyConfigName", err)
	}
}

func TestTimeoutDurationUnset(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if got := cfg.TimeoutDuration(); got != 0 {
		t.Errorf("TimeoutDuration() = %v, want 0", got)
	}
}
