package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/aforro"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the console summary: one row per subscription and
// the aggregated totals. Subscriptions whose fetch failed show a failure
// marker instead of a value.
func SummaryMarkdown(subs []*aforro.Subscription, s aforro.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Certificados de Aforro")

	rows := make([][]string, 0, len(subs))
	for _, sub := range subs {
		unit, value := "-", "✗ failed"
		if sub.Value != nil {
			unit = aforro.FormatNumber(sub.Value.Unit, 2)
			value = aforro.FormatNumber(sub.Value.Total, 2) + " EUR"
		}
		rows = append(rows, []string{
			sub.Series.String(),
			sub.Number,
			sub.AcquisitionDate.String(),
			strconv.Itoa(sub.Units),
			unit,
			value,
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Series", "Subscription", "Acquired", "Units", "Unit Value", "Value"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.PlainText(fmt.Sprintf("Total current value: %s EUR", aforro.FormatNumber(s.TotalCurrent, 2)))
	doc.PlainText(fmt.Sprintf("Total invested value: %s EUR", aforro.FormatNumber(s.TotalInvested, 2)))
	doc.PlainText(fmt.Sprintf("Ratio (current/invested): %s", aforro.FormatNumber(s.Ratio, 10)))

	return doc.String()
}
