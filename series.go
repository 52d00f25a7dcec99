package aforro

import "fmt"

// Series identifies a savings-certificate series. It determines which
// valuation curve the IGCP simulator applies, and is sent to the API verbatim.
type Series string

const (
	SeriesA Series = "A"
	SeriesB Series = "B"
	SeriesC Series = "C"
	SeriesD Series = "D"
	SeriesE Series = "E"
	SeriesF Series = "F"
)

func (s Series) String() string { return string(s) }

// ParseSeries parses a string into a Series.
func ParseSeries(s string) (Series, error) {
	switch v := Series(s); v {
	case SeriesA, SeriesB, SeriesC, SeriesD, SeriesE, SeriesF:
		return v, nil
	default:
		return "", fmt.Errorf("unknown series %q: want one of A to F", s)
	}
}
