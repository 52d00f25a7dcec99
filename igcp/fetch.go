package igcp

import (
	"fmt"
	"io"

	"github.com/etnz/aforro"
	"github.com/etnz/aforro/date"
)

// Fetch retrieves the valuation of every subscription, sequentially and in
// configuration order, writing one progress line per subscription to w.
//
// A failed subscription is reported and left unresolved; the remaining ones
// are still fetched. Fetch returns the number of failures, the caller
// decides whether that is fatal (the report command does not).
func Fetch(w io.Writer, c *Client, today date.Date, subs []*aforro.Subscription) (failures int) {
	for i, sub := range subs {
		fmt.Fprintf(w, "  [%d/%d] Fetching %s - %s... ", i+1, len(subs), sub.Series, sub.Number)
		total, acquisition, err := c.Value(sub.Series, today, sub.AcquisitionDate, sub.Units)
		if err != nil {
			failures++
			fmt.Fprintf(w, "✗ %v\n", err)
			continue
		}
		sub.Resolve(total, acquisition)
		fmt.Fprintf(w, "✓ %s EUR\n", aforro.FormatNumber(total, 2))
	}
	return failures
}
