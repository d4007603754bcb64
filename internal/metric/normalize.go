// Package metric implements the resolution layer that maps the loosely
// labeled fields of a body-composition analyzer export onto canonical
// metric identifiers. Exports from different firmware versions never agree
// on naming ("ECW/TBW", "ecw_tbw", "水腫率"), so lookups go through a
// normalized-key bucket store with a deliberate tie-break policy rather
// than exact map access.
package metric

import "unicode"

// NormalizeKey reduces a raw field name to a comparison token: lower-cased,
// with everything that is not a letter or digit discarded. Spaces, slashes,
// underscores, parentheses and unit markers all collapse, so "ECW/TBW",
// "ecw_tbw" and "ECW TBW" normalize identically. CJK characters count as
// letters, which keeps Chinese labels addressable.
func NormalizeKey(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			out = append(out, unicode.ToLower(r))
		}
	}
	return string(out)
}
