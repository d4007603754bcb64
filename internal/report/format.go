// Package report assembles the final Markdown recommendation document from
// the narrative engine's sections, or from an externally generated insight
// text that replaces the rule-based body wholesale.
package report

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormatTestTimestamp reformats a device test timestamp for display. Exports
// carry the moment as a bare digit run (sometimes with separators), so the
// digits are isolated first and matched against the three known widths.
// Anything else is shown verbatim, absence as "—".
func FormatTestTimestamp(v any) string {
	if v == nil {
		return "—"
	}
	text := strings.TrimSpace(fmt.Sprint(v))
	if text == "" {
		return "—"
	}
	var digits strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	switch d := digits.String(); len(d) {
	case 14:
		if t, err := time.Parse("20060102150405", d); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	case 12:
		if t, err := time.Parse("200601021504", d); err == nil {
			return t.Format("2006-01-02 15:04")
		}
	case 8:
		if t, err := time.Parse("20060102", d); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return text
}
