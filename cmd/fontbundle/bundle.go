package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	fontbundle "github.com/alnah/go-fontbundle"
	"github.com/alnah/go-fontbundle/internal/config"
)

// Sentinel errors for the bundle command.
var (
	ErrInvalidFlags    = errors.New("invalid flags")
	ErrInputNotFound   = errors.New("input stylesheet not found")
	ErrReadStylesheet  = errors.New("failed to read input stylesheet")
	ErrWriteStylesheet = errors.New("failed to write bundled stylesheet")
)

// runBundleCmd reads the input stylesheet, bundles its font references,
// and overwrites the output file. A missing input file is the single fatal
// condition: the command reports it and writes nothing.
func runBundleCmd(args []string, env *Environment) error {
	flags, positional, err := parseBundleFlags(args)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	// Copy so flag overrides never leak back into the shared environment.
	cfg := *env.Config
	if flags.config != "" {
		loaded, err := config.LoadConfig(flags.config)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	applyFlagOverrides(&cfg, flags, positional)
	if err := cfg.Validate(); err != nil {
		return err
	}

	css, err := os.ReadFile(cfg.Input.File) // #nosec G304 -- input path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrInputNotFound, cfg.Input.File)
		}
		return fmt.Errorf("%w: %v", ErrReadStylesheet, err)
	}

	progress := io.Discard
	if !flags.quiet {
		progress = env.Stdout
		fmt.Fprintf(env.Stdout, "Reading %s...\n", cfg.Input.File)
	}

	opts := []fontbundle.Option{
		fontbundle.WithBaseURL(cfg.Remote.BaseURL),
		fontbundle.WithCacheDir(cfg.Cache.Dir),
		fontbundle.WithUserAgent(cfg.Remote.UserAgent),
		fontbundle.WithProgress(progress),
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, fontbundle.WithTimeout(d))
	}

	b, err := fontbundle.NewBundler(opts...)
	if err != nil {
		return err
	}

	result, err := b.Bundle(context.Background(), fontbundle.Input{Stylesheet: string(css)})
	if err != nil {
		return err
	}

	if err := os.WriteFile(cfg.Output.File, []byte(result.CSS), 0o644); err != nil { // #nosec G306 -- stylesheet is world-readable by design
		return fmt.Errorf("%w: %v", ErrWriteStylesheet, err)
	}

	if !flags.quiet {
		printSummary(env.Stdout, &cfg, result, len(css), flags.verbose)
	}
	return nil
}

// applyFlagOverrides layers flag values over the loaded config.
// An optional positional argument overrides the input file.
func applyFlagOverrides(cfg *config.Config, flags *bundleFlags, positional []string) {
	if len(positional) > 0 {
		cfg.Input.File = positional[0]
	}
	if flags.output != "" {
		cfg.Output.File = flags.output
	}
	if flags.cacheDir != "" {
		cfg.Cache.Dir = flags.cacheDir
	}
	if flags.baseURL != "" {
		cfg.Remote.BaseURL = flags.baseURL
	}
	if flags.userAgent != "" {
		cfg.Remote.UserAgent = flags.userAgent
	}
	if flags.timeout != "" {
		cfg.Remote.Timeout = flags.timeout
	}
}

// printSummary reports counts and byte sizes for the completed run.
func printSummary(w io.Writer, cfg *config.Config, result *fontbundle.Result, inputSize int, verbose bool) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Done!")
	fmt.Fprintf(w, "  Input:  %s (%d bytes)\n", cfg.Input.File, inputSize)
	fmt.Fprintf(w, "  Fonts:  %d of %d encoded (%d bytes raw)\n", result.Encoded, result.Found, result.RawFontBytes)
	fmt.Fprintf(w, "  Output: %s (%d bytes)\n", cfg.Output.File, len(result.CSS))

	if len(result.Skipped) > 0 {
		fmt.Fprintf(w, "  Skipped: %d reference(s) left unchanged\n", len(result.Skipped))
		if verbose {
			for _, s := range result.Skipped {
				fmt.Fprintf(w, "    %s: %s\n", s.Path, s.Reason)
			}
		}
	}
}
