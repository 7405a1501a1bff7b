package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// bundleFlags holds all flags for the bundle command.
type bundleFlags struct {
	config    string
	output    string
	cacheDir  string
	baseURL   string
	userAgent string
	timeout   string
	quiet     bool
	verbose   bool
}

// parseBundleFlags parses bundle command flags and returns positional args.
func parseBundleFlags(args []string) (*bundleFlags, []string, error) {
	fs := flag.NewFlagSet("bundle", flag.ContinueOnError)
	f := &bundleFlags{}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output stylesheet path")
	fs.StringVar(&f.cacheDir, "cache-dir", "", "local font cache directory")
	fs.StringVar(&f.baseURL, "base-url", "", "remote base URL fonts are fetched from")
	fs.StringVar(&f.userAgent, "user-agent", "", "User-Agent header for downloads")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "download timeout (e.g., 30s, 2m)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "list skipped references in the summary")

	fs.Usage = func() { printBundleUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
