// Package igcp queries the IGCP simulator API for the current value of
// savings-certificate subscriptions.
package igcp

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/aforro"
	"github.com/etnz/aforro/date"
	"github.com/shopspring/decimal"
)

// BaseURL is the production IGCP endpoint.
const BaseURL = "https://www.igcp.pt"

// requestDateFormat is the day/month/year format the simulator expects.
const requestDateFormat = "02/01/2006"

// The simulator rejects requests carrying Go's default client identifier.
const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

// Client queries the IGCP simulator. Use NewClient, the zero value has no
// endpoint configured.
type Client struct {
	base   string
	http   *http.Client
	header http.Header
}

// NewClient returns a client against the production IGCP endpoint.
func NewClient() *Client { return newClient(BaseURL) }

func newClient(base string) *Client {
	header := make(http.Header)
	header.Set("User-Agent", userAgent)
	return &Client{
		base:   base,
		http:   &http.Client{Timeout: 30 * time.Second},
		header: header,
	}
}

// requestDates computes the two dates sent to the simulator, both normalized
// to the first day of a month: the simulator only has month granularity.
//
// The acquisition request date is always the first day of the acquisition
// month. The value request date is the first day of the current month,
// except when today's day of month has not reached the acquisition's day of
// month: then the previous month is used, so the simulator never accrues a
// month that is not complete yet. date.New normalizes month 0 to December of
// the previous year, which covers the January rollover.
func requestDates(today, acquired date.Date) (valueDate, acqDate date.Date) {
	acqDate = acquired.StartOfMonth()
	if today.Day() < acquired.Day() {
		valueDate = date.New(today.Year(), today.Month()-1, 1)
	} else {
		valueDate = today.StartOfMonth()
	}
	return valueDate, acqDate
}

// Value asks the simulator for the current and the acquisition value of
// units of a series acquired on a given date.
//
// Transport failures, timeouts, non-200 statuses, unexpected payload shapes
// and missing fields are all reported as a single error and never retried.
func (c *Client) Value(series aforro.Series, today, acquired date.Date, units int) (total, acquisition decimal.Decimal, err error) {
	valueDate, acqDate := requestDates(today, acquired)

	params := url.Values{}
	params.Set("field_serie", series.String())
	params.Set("field_field_date", valueDate.Format(requestDateFormat))
	params.Set("field_field_acquisition_date", acqDate.Format(requestDateFormat))
	params.Set("quantity", strconv.Itoa(units))
	addr := c.base + "/pt/api/simulator-value/query?" + params.Encode()

	var payload any
	if err := aforro.Jwget(c.http, addr, c.header, &payload); err != nil {
		return total, acquisition, fmt.Errorf("cannot query simulator for series %s: %w", series, err)
	}

	// The simulator answers a JSON array whose first element holds the values.
	if list, ok := payload.([]any); !ok || len(list) == 0 {
		return total, acquisition, fmt.Errorf("unexpected simulator response for series %s: want a non-empty array", series)
	}

	if total, err = extract(payload, "$[0].field_value"); err != nil {
		return total, acquisition, fmt.Errorf("series %s: %w", series, err)
	}
	if acquisition, err = extract(payload, "$[0].field_acquisition_value"); err != nil {
		return total, acquisition, fmt.Errorf("series %s: %w", series, err)
	}
	return total, acquisition, nil
}

// extract reads one numeric field out of the decoded response. The simulator
// is not consistent about types and sometimes serializes numbers as strings.
func extract(payload any, path string) (decimal.Decimal, error) {
	jval, err := jsonpath.Get(path, payload)
	if err != nil {
		return decimal.Zero, fmt.Errorf("missing %q in simulator response: %w", path, err)
	}
	switch v := jval.(type) {
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid number %q at %q: %w", v, path, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("value at %q is neither a number nor a string", path)
	}
}
