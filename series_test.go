package aforro

import "testing"

func TestParseSeries(t *testing.T) {
	for _, s := range []string{"A", "B", "C", "D", "E", "F"} {
		got, err := ParseSeries(s)
		if err != nil {
			t.Errorf("ParseSeries(%q) unexpected error = %v", s, err)
		}
		if got.String() != s {
			t.Errorf("ParseSeries(%q) = %v, want %v", s, got, s)
		}
	}
	for _, s := range []string{"", "G", "a", "AA"} {
		if _, err := ParseSeries(s); err == nil {
			t.Errorf("ParseSeries(%q) expected an error", s)
		}
	}
}
