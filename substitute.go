package fontbundle

import (
	"sort"
	"strings"
)

// substituteReferences replaces every textual occurrence of each mapped
// reference with its data URI, covering the unquoted, double-quoted, and
// single-quoted url() forms. Replacement is global: a stylesheet that
// references the same font several times has every occurrence rewritten.
// References absent from the mapping are left byte-identical.
func substituteReferences(css string, replacements map[string]string) string {
	// Deterministic application order; data URIs contain no url( token, so
	// one replacement can never create a match for another.
	refs := make([]string, 0, len(replacements))
	for ref := range replacements {
		refs = append(refs, ref)
	}
	sort.Strings(refs)

	for _, ref := range refs {
		uri := replacements[ref]
		css = strings.ReplaceAll(css, `url(`+ref+`)`, `url(`+uri+`)`)
		css = strings.ReplaceAll(css, `url("`+ref+`")`, `url("`+uri+`")`)
		css = strings.ReplaceAll(css, `url('`+ref+`')`, `url('`+uri+`')`)
	}
	return css
}
