package fontbundle

import (
	"io"
	"net/http"
	"time"
)

// DefaultKaTeXVersion pins the upstream KaTeX release the default base URL
// points at. Bundled output is reproducible for a given version.
const DefaultKaTeXVersion = "0.16.9"

// Default endpoints and filenames. The CLI uses these when no config file
// or flags override them.
const (
	DefaultBaseURL    = "https://cdnjs.cloudflare.com/ajax/libs/KaTeX/" + DefaultKaTeXVersion + "/"
	DefaultUserAgent  = "go-fontbundle/1.0"
	DefaultCacheDir   = "fonts"
	DefaultInputFile  = "katex.min.css"
	DefaultOutputFile = "katex-bundled.css"
)

// fontPathPrefix is the leading path component every discovered reference
// carries; the scanner only matches url() tokens under it.
const fontPathPrefix = "fonts/"

// Input contains bundling parameters.
type Input struct {
	Stylesheet string // Stylesheet text to transform
}

// Result holds the transformed stylesheet and a summary of the run.
type Result struct {
	CSS          string        // Transformed stylesheet text
	Found        int           // Unique font references discovered
	Encoded      int           // References successfully fetched and embedded
	RawFontBytes int64         // Total size of fetched font payloads
	Skipped      []SkippedFont // References left unchanged, with reasons
}

// SkippedFont records a reference that could not be fetched or encoded.
type SkippedFont struct {
	Path   string // Reference path as written in the stylesheet
	Reason string // Error message from the failed fetch
}

// Option configures a Bundler.
type Option func(*Bundler)

// bundlerConfig holds internal configuration for Bundler.
type bundlerConfig struct {
	baseURL    string
	userAgent  string
	cacheDir   string
	timeout    time.Duration
	httpClient *http.Client
}

// WithBaseURL sets the remote base URL fonts are fetched from. The
// reference path is appended verbatim, so the URL should end with a slash.
func WithBaseURL(u string) Option {
	return func(b *Bundler) {
		b.cfg.baseURL = u
	}
}

// WithUserAgent sets the User-Agent header sent on font downloads.
func WithUserAgent(ua string) Option {
	return func(b *Bundler) {
		b.cfg.userAgent = ua
	}
}

// WithCacheDir sets the local directory font files are cached under.
func WithCacheDir(dir string) Option {
	return func(b *Bundler) {
		b.cfg.cacheDir = dir
	}
}

// WithTimeout sets the per-download HTTP timeout. The default is no
// timeout. Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("fontbundle: WithTimeout duration must be positive")
	}
	return func(b *Bundler) {
		b.cfg.timeout = d
	}
}

// WithHTTPClient injects a custom HTTP client (e.g., for tests). When set,
// WithTimeout is ignored; configure the client's Timeout directly.
func WithHTTPClient(c *http.Client) Option {
	return func(b *Bundler) {
		b.cfg.httpClient = c
	}
}

// WithProgress sets the writer progress lines are printed to ([cached],
// [download], [ERROR]). The default discards them.
func WithProgress(w io.Writer) Option {
	return func(b *Bundler) {
		b.progress = w
	}
}
