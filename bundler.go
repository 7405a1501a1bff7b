package fontbundle

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Compile-time interface implementation check.
var _ fontFetcher = (*cachingFetcher)(nil)

// Bundler rewrites font references in a stylesheet into embedded data
// URIs. Create with NewBundler and run with Bundle.
type Bundler struct {
	cfg      bundlerConfig
	fetcher  fontFetcher
	progress io.Writer
}

// NewBundler creates a Bundler with default configuration (pinned KaTeX
// CDN, fonts/ cache directory, silent progress). Use options to customize
// behavior (e.g., WithBaseURL, WithCacheDir, WithTimeout).
func NewBundler(opts ...Option) (*Bundler, error) {
	b := &Bundler{
		cfg: bundlerConfig{
			baseURL:   DefaultBaseURL,
			userAgent: DefaultUserAgent,
			cacheDir:  DefaultCacheDir,
		},
		progress: io.Discard,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.cfg.baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	client := b.cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: b.cfg.timeout}
	}

	// Create fetcher if not injected (e.g., by tests).
	if b.fetcher == nil {
		b.fetcher = &cachingFetcher{
			baseURL:   b.cfg.baseURL,
			userAgent: b.cfg.userAgent,
			cacheDir:  b.cfg.cacheDir,
			client:    client,
			progress:  b.progress,
		}
	}

	return b, nil
}

// Bundle runs the full transform: discover references, resolve each one
// from cache or network, encode, and substitute. A reference that fails to
// resolve is logged, recorded in Result.Skipped, and left unchanged in the
// output; it never aborts the run. The context is checked between
// references and applies to every download.
func (b *Bundler) Bundle(ctx context.Context, input Input) (*Result, error) {
	refs := findFontReferences(input.Stylesheet)

	result := &Result{Found: len(refs)}
	replacements := make(map[string]string, len(refs))

	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := b.fetcher.Fetch(ctx, ref)
		if err != nil {
			fmt.Fprintf(b.progress, "  [ERROR] failed to process %s: %v\n", ref, err)
			result.Skipped = append(result.Skipped, SkippedFont{Path: ref, Reason: err.Error()})
			continue
		}

		result.RawFontBytes += int64(len(data))
		replacements[ref] = dataURI(mimeTypeFor(ref), data)
		result.Encoded++
	}

	result.CSS = substituteReferences(input.Stylesheet, replacements)
	return result, nil
}
