package aforro

import (
	"testing"

	"github.com/etnz/aforro/date"
	"github.com/shopspring/decimal"
)

func sub(series Series, number string, units int) *Subscription {
	return &Subscription{
		Series:          series,
		Number:          number,
		AcquisitionDate: date.New(2020, 1, 15),
		Units:           units,
	}
}

func TestSummarize(t *testing.T) {
	a := sub(SeriesE, "123", 100)
	a.Resolve(decimal.NewFromInt(1000), decimal.NewFromInt(900))
	b := sub(SeriesF, "456", 50)
	b.Resolve(decimal.NewFromInt(550), decimal.NewFromInt(500))
	failed := sub(SeriesA, "789", 10) // fetch failed, no valuation

	s := Summarize([]*Subscription{a, b, failed})

	if want := decimal.NewFromInt(1550); !s.TotalCurrent.Equal(want) {
		t.Errorf("TotalCurrent = %s, want %s", s.TotalCurrent, want)
	}
	if want := decimal.NewFromInt(1400); !s.TotalInvested.Equal(want) {
		t.Errorf("TotalInvested = %s, want %s", s.TotalInvested, want)
	}
	if want := decimal.NewFromInt(1550).Div(decimal.NewFromInt(1400)); !s.Ratio.Equal(want) {
		t.Errorf("Ratio = %s, want %s", s.Ratio, want)
	}
	if s.Resolved != 2 || s.Total != 3 {
		t.Errorf("Resolved/Total = %d/%d, want 2/3", s.Resolved, s.Total)
	}
}

// A run where every fetch failed reports a 0 ratio instead of erroring out.
func TestSummarizeAllFailed(t *testing.T) {
	s := Summarize([]*Subscription{sub(SeriesA, "1", 10), sub(SeriesB, "2", 20)})
	if !s.TotalCurrent.IsZero() || !s.TotalInvested.IsZero() {
		t.Errorf("totals = %s/%s, want 0/0", s.TotalCurrent, s.TotalInvested)
	}
	if !s.Ratio.IsZero() {
		t.Errorf("Ratio = %s, want 0", s.Ratio)
	}
	if s.Resolved != 0 {
		t.Errorf("Resolved = %d, want 0", s.Resolved)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if !s.Ratio.IsZero() || s.Total != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero summary", s)
	}
}

func TestResolveUnitValue(t *testing.T) {
	a := sub(SeriesE, "123", 100)
	a.Resolve(decimal.NewFromInt(1000), decimal.NewFromInt(900))
	if want := decimal.NewFromInt(10); !a.Value.Unit.Equal(want) {
		t.Errorf("Unit = %s, want %s", a.Value.Unit, want)
	}

	// zero units must not divide by zero
	z := sub(SeriesE, "123", 0)
	z.Resolve(decimal.NewFromInt(1000), decimal.NewFromInt(900))
	if !z.Value.Unit.IsZero() {
		t.Errorf("Unit with zero units = %s, want 0", z.Value.Unit)
	}
}
