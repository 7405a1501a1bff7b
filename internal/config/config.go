// Package config loads and validates bundler configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	fontbundle "github.com/alnah/go-fontbundle"
	"github.com/alnah/go-fontbundle/internal/fileutil"
	"github.com/alnah/go-fontbundle/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidBaseURL  = errors.New("invalid remote base URL")
	ErrInvalidTimeout  = errors.New("invalid remote timeout")
)

// Config holds all configuration for a bundling run.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Cache  CacheConfig  `yaml:"cache"`
	Remote RemoteConfig `yaml:"remote"`
}

// InputConfig defines the stylesheet to read.
type InputConfig struct {
	File string `yaml:"file"` // Stylesheet path (default: katex.min.css)
}

// OutputConfig defines where the bundled stylesheet is written.
type OutputConfig struct {
	File string `yaml:"file"` // Output path, overwritten on every run (default: katex-bundled.css)
}

// CacheConfig defines the local font cache.
type CacheConfig struct {
	Dir string `yaml:"dir"` // Directory font files are cached under (default: fonts)
}

// RemoteConfig defines the upstream font source.
type RemoteConfig struct {
	BaseURL   string `yaml:"baseUrl"`   // Version-pinned base URL, reference path appended verbatim
	UserAgent string `yaml:"userAgent"` // Identifying header sent on downloads
	Timeout   string `yaml:"timeout"`   // Go duration, e.g. "30s"; empty = no timeout
}

// DefaultConfig returns the pinned KaTeX defaults.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{File: fontbundle.DefaultInputFile},
		Output: OutputConfig{File: fontbundle.DefaultOutputFile},
		Cache:  CacheConfig{Dir: fontbundle.DefaultCacheDir},
		Remote: RemoteConfig{
			BaseURL:   fontbundle.DefaultBaseURL,
			UserAgent: fontbundle.DefaultUserAgent,
		},
	}
}

// Validate checks that remote settings are usable.
func (c *Config) Validate() error {
	if c.Remote.BaseURL != "" {
		u, err := url.Parse(c.Remote.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidBaseURL, c.Remote.BaseURL)
		}
	}
	if c.Remote.Timeout != "" {
		d, err := time.ParseDuration(c.Remote.Timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Remote.Timeout)
		}
	}
	return nil
}

// TimeoutDuration returns the parsed remote timeout, or zero when unset.
// Call Validate first; an unparseable value returns zero here.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Remote.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Remote.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback). Fields left
// empty in the file keep their defaults.
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
// Tries locations in order: current directory, ~/.config/go-fontbundle/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-fontbundle", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
