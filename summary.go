package aforro

import "github.com/shopspring/decimal"

// Summary aggregates the fetched valuations of a subscription list.
type Summary struct {
	TotalCurrent  decimal.Decimal // sum of the current values of resolved subscriptions
	TotalInvested decimal.Decimal // sum of the acquisition values of resolved subscriptions
	Ratio         decimal.Decimal // TotalCurrent / TotalInvested, or 0 when nothing is invested
	Resolved      int             // number of subscriptions with a valuation
	Total         int             // number of subscriptions in the configuration
}

// Summarize sums the valuations of all resolved subscriptions. A
// subscription whose fetch failed has no valuation and is skipped.
//
// When the total invested is zero the ratio is reported as 0 rather than
// failing. A run where every fetch failed therefore renders a 0 ratio: known
// to be misleading, and kept that way on purpose.
func Summarize(subs []*Subscription) Summary {
	s := Summary{Total: len(subs)}
	for _, sub := range subs {
		if sub.Value == nil {
			continue
		}
		s.TotalCurrent = s.TotalCurrent.Add(sub.Value.Total)
		s.TotalInvested = s.TotalInvested.Add(sub.Value.Acquisition)
		s.Resolved++
	}
	if s.TotalInvested.IsPositive() {
		s.Ratio = s.TotalCurrent.Div(s.TotalInvested)
	}
	return s
}
