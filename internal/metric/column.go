package metric

import (
	"regexp"
	"sort"
	"strings"
)

// Device exports number their columns ("18. Body Fat Mass"); the prefix is
// stripped before pattern comparison and header-length tie-breaks.
var numericPrefixRe = regexp.MustCompile(`^\s*\d+\.?\s*`)

type columnCandidate struct {
	header      string
	penalty     int
	specificity int
	stripped    int
}

// FindColumn picks the single best-matching header for a canonical field,
// given candidate substring patterns. Naive substring matching over a real
// export produces several plausible matches per field — the measured value,
// its control/target counterpart, its percentage form and its reference
// limits all share vocabulary — so selection runs in two stages: a
// disambiguation filter rejects decorated headers the patterns did not ask
// for, then a composite penalty ranks the survivors so the primary measured
// value wins. The penalty weights are policy, not device constants.
func FindColumn(headers []string, patterns []string) (string, bool) {
	lowered := make([]string, len(patterns))
	for i, p := range patterns {
		lowered[i] = strings.ToLower(p)
	}

	var candidates []columnCandidate
	for _, header := range headers {
		lower := strings.ToLower(header)
		stripped := numericPrefixRe.ReplaceAllString(lower, "")
		if !columnMatches(header, lower, stripped, lowered) {
			continue
		}
		candidates = append(candidates, columnCandidate{
			header:      header,
			penalty:     columnPenalty(lower),
			specificity: columnSpecificity(lower, stripped, lowered),
			stripped:    len(numericPrefixRe.ReplaceAllString(header, "")),
		})
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.penalty != b.penalty {
			return a.penalty < b.penalty
		}
		if a.specificity != b.specificity {
			return a.specificity > b.specificity
		}
		return a.stripped < b.stripped
	})
	return candidates[0].header, true
}

// columnMatches applies the candidate and disambiguation filters: the header
// must contain a pattern (directly or after prefix stripping), and a header
// decorated as a limit, control, percentage or ratio column only survives
// when some pattern asked for that decoration. This keeps a plain "weight"
// pattern from landing on "Weight Control" or "Weight (Lower Limit)".
func columnMatches(header, lower, stripped string, patterns []string) bool {
	for _, pattern := range patterns {
		if !strings.Contains(lower, pattern) && !strings.Contains(stripped, pattern) {
			continue
		}
		if strings.Contains(lower, "lower limit") || strings.Contains(lower, "upper limit") {
			if !strings.Contains(pattern, "limit") {
				continue
			}
		}
		if strings.Contains(lower, "control") && !strings.Contains(pattern, "control") {
			continue
		}
		if strings.Contains(header, "%") {
			if !strings.Contains(pattern, "%") && !strings.Contains(pattern, "percent") {
				continue
			}
		}
		if strings.Contains(header, "/") {
			if !strings.Contains(pattern, "/") && !strings.Contains(pattern, "ratio") {
				continue
			}
		}
		return true
	}
	return false
}

func columnPenalty(lower string) int {
	penalty := 0
	if strings.Contains(lower, "lower limit") || strings.Contains(lower, "upper limit") {
		penalty += 20
	}
	if strings.Contains(lower, "control") {
		penalty += 15
	}
	if strings.Contains(lower, "%") {
		penalty += 10
	}
	if strings.Contains(lower, "/") {
		penalty += 5
	}
	return penalty
}

// columnSpecificity is the length of the longest pattern the header
// contains; longer patterns beat vaguer ones on penalty ties.
func columnSpecificity(lower, stripped string, patterns []string) int {
	best := 0
	for _, pattern := range patterns {
		if strings.Contains(lower, pattern) || strings.Contains(stripped, pattern) {
			if len(pattern) > best {
				best = len(pattern)
			}
		}
	}
	return best
}
