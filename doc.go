// Package fontbundle rewrites a stylesheet so that external font-file
// references become embedded base64 data URIs, producing a self-contained
// CSS file.
//
// # Quick Start
//
// Create a bundler, feed it stylesheet text, and write the result:
//
//	b, err := fontbundle.NewBundler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Bundle(ctx, fontbundle.Input{
//	    Stylesheet: css,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("katex-bundled.css", []byte(result.CSS), 0644)
//
// The result contains the transformed CSS (result.CSS) and a run summary:
// how many references were found and encoded, the raw font payload size,
// and which references were skipped with their reasons.
//
// # Bundling Pipeline
//
// Bundling follows these stages:
//
//  1. Reference discovery: a single pattern match over the raw text for
//     url(fonts/...) tokens, in all three quoting variants. The stylesheet
//     is never parsed as CSS.
//  2. Asset retrieval: each unique reference is read from the local cache
//     directory, or downloaded from the pinned CDN and cached.
//  3. Encoding: raw font bytes become data:<mime>;base64,... URIs, with
//     the MIME type derived from the file extension.
//  4. Substitution: every textual occurrence of an encoded reference is
//     replaced; references that failed to resolve are left untouched.
//
// A failure on one font never aborts the others: the output degrades to a
// partially-bundled but still valid stylesheet.
//
// # Configuration
//
// Use functional options to customize the bundler:
//
//	b, err := fontbundle.NewBundler(
//	    fontbundle.WithBaseURL("https://cdnjs.cloudflare.com/ajax/libs/KaTeX/0.16.9/"),
//	    fontbundle.WithCacheDir("fonts"),
//	    fontbundle.WithTimeout(30*time.Second),
//	    fontbundle.WithProgress(os.Stdout),
//	)
//
// The defaults target the KaTeX distribution on cdnjs, version-pinned via
// DefaultKaTeXVersion.
//
// # Caching
//
// Fonts are cached on disk under the cache directory, mirroring the
// reference's relative path. Any file already present at the cache path is
// trusted as-is; no checksum or revalidation is performed, so a manually
// placed substitute font is used verbatim. Re-running skips the network
// for cached fonts but always rewrites the output.
package fontbundle
