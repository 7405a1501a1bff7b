package fontbundle

import (
	"regexp"
	"sort"
)

// fontURLPattern matches url() tokens whose argument lives under fonts/,
// in all three quoting variants:
//
//	url(fonts/KaTeX_Main-Regular.woff2)
//	url("fonts/KaTeX_Main-Regular.woff2")
//	url('fonts/KaTeX_Main-Regular.woff2')
//
// The stylesheet is opaque text; nothing outside the matched tokens is
// ever touched.
var fontURLPattern = regexp.MustCompile(`url\(["']?(fonts/[^)"']+)["']?\)`)

// findFontReferences extracts the unique font reference paths from a
// stylesheet. The result is sorted lexicographically so processing order
// and progress output are deterministic. No matches yields an empty slice.
func findFontReferences(css string) []string {
	matches := fontURLPattern.FindAllStringSubmatch(css, -1)

	seen := make(map[string]struct{}, len(matches))
	refs := make([]string, 0, len(matches))
	for _, m := range matches {
		path := m[1]
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}
		refs = append(refs, path)
	}

	sort.Strings(refs)
	return refs
}
