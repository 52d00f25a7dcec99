package aforro

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/etnz/aforro/date"
	"github.com/shopspring/decimal"
)

// Subscription is a single savings-certificate holding: a series, a number
// of units, and the date they were acquired.
//
// Value is nil until the valuation service has answered for this
// subscription. A failed fetch leaves it nil, which excludes the
// subscription from the aggregated totals.
type Subscription struct {
	Series          Series
	Number          string
	AcquisitionDate date.Date
	Units           int

	Value *Valuation
}

// Valuation holds the values computed by the valuation service for a
// subscription. The three fields are always set together.
type Valuation struct {
	Total       decimal.Decimal // current value of the whole subscription
	Acquisition decimal.Decimal // value originally invested
	Unit        decimal.Decimal // current value of a single unit
}

// Resolve attaches a fetched valuation to the subscription, deriving the
// per-unit value. A zero unit count yields a 0 unit value.
func (s *Subscription) Resolve(total, acquisition decimal.Decimal) {
	unit := decimal.Zero
	if s.Units > 0 {
		unit = total.Div(decimal.NewFromInt(int64(s.Units)))
	}
	s.Value = &Valuation{Total: total, Acquisition: acquisition, Unit: unit}
}

// jsonSubscription is the on-disk shape of a subscription record.
type jsonSubscription struct {
	Series          string    `json:"series"`
	Number          string    `json:"subscription_number"`
	AcquisitionDate date.Date `json:"acquisition_date"`
	Units           int       `json:"units"`
}

// LoadSubscriptions reads and validates the subscriptions file.
//
// Any problem with the file (missing, malformed, invalid record) is fatal
// for the caller: there is no point in querying the valuation service with
// a broken subscription list.
func LoadSubscriptions(path string) ([]*Subscription, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read subscriptions file %q: %w", path, err)
	}

	var records []jsonSubscription
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("invalid subscriptions file %q: %w", path, err)
	}

	today := date.Today()
	subs := make([]*Subscription, 0, len(records))
	for i, r := range records {
		series, err := ParseSeries(r.Series)
		if err != nil {
			return nil, fmt.Errorf("subscription #%d: %w", i+1, err)
		}
		if r.Units < 0 {
			return nil, fmt.Errorf("subscription #%d: invalid units %d: want a non-negative count", i+1, r.Units)
		}
		if r.AcquisitionDate.IsZero() {
			return nil, fmt.Errorf("subscription #%d: missing acquisition date", i+1)
		}
		if !r.AcquisitionDate.Before(today) {
			return nil, fmt.Errorf("subscription #%d: acquisition date %s is not before today", i+1, r.AcquisitionDate)
		}
		subs = append(subs, &Subscription{
			Series:          series,
			Number:          r.Number,
			AcquisitionDate: r.AcquisitionDate,
			Units:           r.Units,
		})
	}
	return subs, nil
}
