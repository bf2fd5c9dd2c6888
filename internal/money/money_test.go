package money

import "testing"

func TestFormatCents(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "0,00"},
		{5, "0,05"},
		{90, "0,90"},
		{698990, "6.989,90"},
		{100000000, "1.000.000,00"},
		{-349990, "-3.499,90"},
	}
	for _, c := range cases {
		if got := FormatCents(c.cents); got != c.want {
			t.Fatalf("FormatCents(%d) = %q, want %q", c.cents, got, c.want)
		}
	}
}

func TestParseCents_StripsNonDigits(t *testing.T) {
	if got := ParseCents("6.989,90"); got != 698990 {
		t.Fatalf("expected 698990, got %d", got)
	}
	if got := ParseCents("R$ 1.899,00"); got != 189900 {
		t.Fatalf("expected 189900, got %d", got)
	}
	if got := ParseCents("abc"); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestFormatParse_RoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 123456789} {
		if got := ParseCents(FormatCents(cents)); got != cents {
			t.Fatalf("round trip of %d gave %d", cents, got)
		}
	}
}

func TestFormat_RoundsToCents(t *testing.T) {
	if got := Format(7849.89); got != "7.849,89" {
		t.Fatalf("expected 7.849,89, got %q", got)
	}
	if got := Parse("7.849,89"); got != 7849.89 {
		t.Fatalf("expected 7849.89, got %v", got)
	}
}
