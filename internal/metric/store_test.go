package metric

import "testing"

func TestResolveEquivalentVariantsReturnSameValue(t *testing.T) {
	store := NewStore([]Entry{{Key: "ECW/TBW", Value: "0.372"}})
	a, ok := store.Resolve("ECW/TBW")
	if !ok {
		t.Fatal("resolve ECW/TBW: miss")
	}
	b, ok := store.Resolve("ecw_tbw")
	if !ok {
		t.Fatal("resolve ecw_tbw: miss")
	}
	if a.Value != b.Value {
		t.Fatalf("values differ: %v vs %v", a.Value, b.Value)
	}
}

func TestResolveExactMatchBeatsDecoratedVariant(t *testing.T) {
	// Both keys normalize into distinct buckets, but a "Weight" candidate
	// must never land on the control column even when the bucket holds
	// several raw spellings.
	store := NewStore([]Entry{
		{Key: "Weight Control", Value: "-2.0"},
		{Key: "WEIGHT", Value: "71.8"},
		{Key: "Weight", Value: "71.8"},
	})
	e, ok := store.Resolve("Weight")
	if !ok {
		t.Fatal("resolve: miss")
	}
	if e.Key != "Weight" {
		t.Fatalf("resolved %q, want exact key Weight", e.Key)
	}
}

func TestResolveSubstringContainmentInBucketOrder(t *testing.T) {
	store := NewStore([]Entry{
		{Key: "Body Fat Mass (kg)", Value: "20.5"},
		{Key: "Body Fat Mass Norm", Value: "15.0"},
	})
	e, ok := store.Resolve("body fat mass")
	if !ok {
		t.Fatal("resolve: miss")
	}
	if e.Value != "20.5" {
		t.Fatalf("resolved %v, want first containing entry 20.5", e.Value)
	}
}

func TestResolveShortestKeyFallback(t *testing.T) {
	// Both raw keys normalize to "weightkg" yet neither equals nor contains
	// the candidate text, so the shortest raw key wins the bucket.
	store := NewStore([]Entry{
		{Key: "weight kg --", Value: "70.0"},
		{Key: "weight_kg", Value: "71.8"},
	})
	e, ok := store.Resolve("Weight.Kg")
	if !ok {
		t.Fatal("resolve: miss")
	}
	if e.Key != "weight_kg" {
		t.Fatalf("resolved %q, want shortest raw key", e.Key)
	}
}

func TestResolveLaterCandidateOnlyOnEmptyBucket(t *testing.T) {
	store := NewStore([]Entry{
		{Key: "Skeletal Muscle Mass", Value: "27.9"},
		{Key: "體重", Value: "71.8"},
	})
	e, ok := store.Resolve("smm_kg", "skeletal muscle mass", "體重")
	if !ok {
		t.Fatal("resolve: miss")
	}
	if e.Key != "Skeletal Muscle Mass" {
		t.Fatalf("resolved %q, want first non-empty candidate's entry", e.Key)
	}
}

func TestResolveKeepsNilValuedEntries(t *testing.T) {
	store := NewStore([]Entry{{Key: "VFL_level", Value: nil}})
	if _, ok := store.Resolve("vfl_level"); !ok {
		t.Fatal("nil-valued entry should still be present")
	}
	if _, ok := store.Number("vfl_level"); ok {
		t.Fatal("nil value must coerce to a miss, not zero")
	}
}

func TestNumberAndTextAccessors(t *testing.T) {
	store := NewStoreFromMap(map[string]any{
		"體重":     "71.8",
		"Gender": "  M ",
		"Note":   "   ",
	})
	if v, ok := store.Number("weight", "體重"); !ok || v != 71.8 {
		t.Fatalf("Number = %v %v, want 71.8 true", v, ok)
	}
	if s, ok := store.Text("gender"); !ok || s != "M" {
		t.Fatalf("Text = %q %v, want M true", s, ok)
	}
	if _, ok := store.Text("note"); ok {
		t.Fatal("blank text should report a miss")
	}
	if _, ok := store.Number("nonexistent"); ok {
		t.Fatal("unknown key should report a miss")
	}
}
