package metric

import "testing"

func TestNormalizeKeyCollapsesPunctuation(t *testing.T) {
	cases := map[string]string{
		"ECW/TBW":      "ecwtbw",
		"ecw_tbw":      "ecwtbw",
		"ECW TBW":      "ecwtbw",
		"18. BMI":      "18bmi",
		"體重":           "體重",
		"Weight (kg)":  "weightkg",
		"bfm% of arm":  "bfmofarm",
		"":             "",
		"  -- / () ":   "",
		"50kHz-RA  PA": "50khzrapa",
	}
	for in, want := range cases {
		if got := NormalizeKey(in); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNormalizeKeyEquivalentVariantsShareBucket(t *testing.T) {
	variants := []string{"ECW/TBW", "ecw_tbw", "Ecw Tbw", "(ECW)/(TBW)"}
	first := NormalizeKey(variants[0])
	for _, v := range variants[1:] {
		if NormalizeKey(v) != first {
			t.Fatalf("variant %q normalized to %q, want %q", v, NormalizeKey(v), first)
		}
	}
}
