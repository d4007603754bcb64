package metric

import "testing"

func TestToNumberSentinelsCoerceToMiss(t *testing.T) {
	for _, v := range []any{"-", "NA", "N/A", "nan", "None", "", "   ", nil} {
		if got, ok := ToNumber(v); ok {
			t.Fatalf("ToNumber(%v) = %v, want miss", v, got)
		}
	}
}

func TestToNumberThousandsSeparator(t *testing.T) {
	got, ok := ToNumber("1,234.5")
	if !ok || got != 1234.5 {
		t.Fatalf("ToNumber(1,234.5) = %v %v, want 1234.5 true", got, ok)
	}
}

func TestToNumberNativeTypes(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{71.8, 71.8},
		{float32(2.5), 2.5},
		{int(175), 175},
		{int64(1500), 1500},
		{"  28.5 ", 28.5},
	}
	for _, c := range cases {
		got, ok := ToNumber(c.in)
		if !ok || got != c.want {
			t.Fatalf("ToNumber(%v) = %v %v, want %v", c.in, got, ok, c.want)
		}
	}
}

func TestToNumberIdempotent(t *testing.T) {
	first, ok := ToNumber("1,234.5")
	if !ok {
		t.Fatal("first coercion missed")
	}
	second, ok := ToNumber(first)
	if !ok || second != first {
		t.Fatalf("ToNumber(ToNumber(x)) = %v %v, want %v", second, ok, first)
	}
}

func TestToNumberUnparseableTextMisses(t *testing.T) {
	for _, v := range []any{"abc", "12.3.4", "7kg", true} {
		if got, ok := ToNumber(v); ok {
			t.Fatalf("ToNumber(%v) = %v, want miss", v, got)
		}
	}
}
