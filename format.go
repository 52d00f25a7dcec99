package aforro

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatNumber renders d with comma thousands grouping and a dot decimal
// point at the given precision, whatever the host locale: 1234567.891 at 2
// decimals is "1,234,567.89", at 10 decimals "1,234,567.8910000000".
//
// The value is shifted into minor units and handed to a go-money formatter,
// the same way Money values are rendered elsewhere.
func FormatNumber(d decimal.Decimal, decimals int32) string {
	f := money.NewFormatter(int(decimals), ".", ",", "", "1")
	return f.Format(d.Shift(decimals).Round(0).IntPart())
}
