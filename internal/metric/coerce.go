package metric

import (
	"fmt"
	"strconv"
	"strings"
)

// missingSentinels are texts device exports use for "no data". They coerce
// to a miss, never to zero.
var missingSentinels = map[string]bool{
	"-":    true,
	"NA":   true,
	"N/A":  true,
	"nan":  true,
	"None": true,
}

// ToNumber converts a heterogeneous raw cell value into a float. nil misses;
// native numeric types cast directly; strings are trimmed, checked against
// the missing-value sentinels, stripped of thousands-separator commas and
// parsed. Anything unparseable degrades to a miss — downstream callers treat
// a miss as "datum unavailable", never as zero.
func ToNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case bool:
		return 0, false
	case string:
		return parseNumberText(v)
	default:
		return parseNumberText(fmt.Sprint(v))
	}
}

func parseNumberText(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" || missingSentinels[text] {
		return 0, false
	}
	text = strings.ReplaceAll(text, ",", "")
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
