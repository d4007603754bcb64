package metric

import "testing"

func TestFindColumnPrefersPlainMeasurementOverDecorations(t *testing.T) {
	headers := []string{
		"15. Weight (Lower Limit)",
		"16. Weight (Upper Limit)",
		"17. Weight Control",
		"18. Weight (%)",
		"19. Weight",
	}
	col, ok := FindColumn(headers, []string{"weight"})
	if !ok {
		t.Fatal("no column resolved")
	}
	if col != "19. Weight" {
		t.Fatalf("resolved %q, want the plain measurement column", col)
	}
}

func TestFindColumnRejectsDecorationsWithoutMatchingPattern(t *testing.T) {
	headers := []string{"Weight Control", "Weight (Lower Limit)"}
	if col, ok := FindColumn(headers, []string{"weight"}); ok {
		t.Fatalf("resolved %q, want no candidate to survive filtering", col)
	}
}

func TestFindColumnControlPatternMatchesControlColumn(t *testing.T) {
	headers := []string{"42. BFM Control", "14. Body Fat Mass"}
	col, ok := FindColumn(headers, []string{"fat control", "bfm control"})
	if !ok || col != "42. BFM Control" {
		t.Fatalf("resolved %q %v, want BFM Control", col, ok)
	}
}

func TestFindColumnRatioGuard(t *testing.T) {
	headers := []string{"33. ECW/TBW", "30. ECW (L)"}
	col, ok := FindColumn(headers, []string{"ecw/tbw"})
	if !ok || col != "33. ECW/TBW" {
		t.Fatalf("resolved %q %v, want ECW/TBW", col, ok)
	}
	col, ok = FindColumn(headers, []string{"ecw"})
	if !ok || col != "30. ECW (L)" {
		t.Fatalf("resolved %q %v, want plain ECW column", col, ok)
	}
}

func TestFindColumnStripsNumericPrefix(t *testing.T) {
	headers := []string{"18. Body Fat Mass"}
	col, ok := FindColumn(headers, []string{"body fat mass"})
	if !ok || col != "18. Body Fat Mass" {
		t.Fatalf("resolved %q %v", col, ok)
	}
}

func TestFindColumnSpecificityBreaksPenaltyTies(t *testing.T) {
	headers := []string{"Skeletal Muscle Mass", "SMM of Something Long"}
	col, ok := FindColumn(headers, []string{"skeletal muscle mass", "smm"})
	if !ok || col != "Skeletal Muscle Mass" {
		t.Fatalf("resolved %q %v, want the longest-pattern match", col, ok)
	}
}

func TestFindColumnPercentGuard(t *testing.T) {
	headers := []string{"BFM% of Right Arm", "BFM of Right Arm"}
	col, ok := FindColumn(headers, []string{"bfm% of right arm"})
	if !ok || col != "BFM% of Right Arm" {
		t.Fatalf("resolved %q %v, want the percent column via percent-specific pattern", col, ok)
	}
	col, ok = FindColumn(headers, []string{"bfm of right arm"})
	if !ok || col != "BFM of Right Arm" {
		t.Fatalf("resolved %q %v, want the plain mass column", col, ok)
	}
}

func TestFindColumnNoMatch(t *testing.T) {
	if col, ok := FindColumn([]string{"Height", "Age"}, []string{"weight"}); ok {
		t.Fatalf("resolved %q, want miss", col)
	}
}
