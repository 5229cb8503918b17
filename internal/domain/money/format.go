package money

import (
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Convert multiplies a USD amount by the rate of code and rounds to whole units.
// It panics on an unsupported code.
func Convert(amountUSD decimal.Decimal, code CurrencyCode) decimal.Decimal {
	c := mustLookup(code)

	return amountUSD.Mul(c.Rate).Round(0)
}

// Format renders a USD amount in the given currency, e.g. "AED 3,670,000".
// It panics on an unsupported code.
func Format(amountUSD decimal.Decimal, code CurrencyCode) string {
	c := mustLookup(code)
	value := amountUSD.Mul(c.Rate).Round(0)

	return c.Symbol + humanize.BigComma(value.BigInt())
}
