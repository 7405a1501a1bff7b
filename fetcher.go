package fontbundle

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// fontFetcher obtains the raw bytes for a single font reference.
type fontFetcher interface {
	Fetch(ctx context.Context, ref string) ([]byte, error)
}

// cachingFetcher reads fonts from a local cache directory and falls back
// to downloading from the remote base URL, persisting what it fetches.
type cachingFetcher struct {
	baseURL   string
	userAgent string
	cacheDir  string
	client    *http.Client
	progress  io.Writer
}

// Fetch returns the bytes for one reference. A file already present at the
// cache path is trusted as-is and short-circuits the network. Downloads
// are written to the cache before returning, so a later run skips them.
func (f *cachingFetcher) Fetch(ctx context.Context, ref string) ([]byte, error) {
	localPath, err := f.localPath(ref)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(localPath) // #nosec G304 -- path is validated against traversal above
	if err == nil {
		fmt.Fprintf(f.progress, "  [cached] %s\n", ref)
		return data, nil
	}
	if !os.IsNotExist(err) {
		// Cache file exists but is unreadable; treat as a fetch failure
		// rather than silently re-downloading over it.
		return nil, fmt.Errorf("reading cached font: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(localPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	url := f.baseURL + ref
	fmt.Fprintf(f.progress, "  [download] %s\n", url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s for %s", ErrUnexpectedStatus, resp.Status, url)
	}

	data, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if err := os.WriteFile(localPath, data, 0o600); err != nil {
		return nil, fmt.Errorf("caching font: %w", err)
	}

	return data, nil
}

// localPath maps a reference to its on-disk cache location: the cache dir
// plus the reference path minus the fonts/ prefix. With the default cache
// dir "fonts" this mirrors the reference path exactly.
func (f *cachingFetcher) localPath(ref string) (string, error) {
	rel := strings.TrimPrefix(ref, fontPathPrefix)
	if containsDotDot(rel) {
		return "", fmt.Errorf("%w: %s", ErrUnsafeReference, ref)
	}
	return filepath.Join(f.cacheDir, filepath.FromSlash(rel)), nil
}

// containsDotDot reports whether any path segment is "..".
func containsDotDot(rel string) bool {
	for _, seg := range strings.Split(rel, "/") {
		if seg == ".." {
			return true
		}
	}
	return false
}
