// Package money converts reference-currency (USD) amounts into display currencies.
//
// Rates are a static table. All arithmetic is done on decimals; results are rounded to
// whole units because prices are only ever displayed, never settled.
package money

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CurrencyCode identifies a display currency.
type CurrencyCode string

const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	GBP CurrencyCode = "GBP"
	AED CurrencyCode = "AED"
)

// ReferenceCurrency is the unit every stored amount is kept in.
const ReferenceCurrency = USD

// ErrUnknownCurrency is returned by ParseCurrency for codes outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency")

// Currency describes how a code is converted and displayed.
type Currency struct {
	Code   CurrencyCode    `json:"code"`
	Symbol string          `json:"symbol"`
	Rate   decimal.Decimal `json:"rate"` // units of this currency per 1 USD
}

// supported keeps display order.
//
//nolint:gochecknoglobals
var supported = []Currency{
	{Code: USD, Symbol: "$", Rate: decimal.NewFromInt(1)},
	{Code: EUR, Symbol: "€", Rate: decimal.RequireFromString("0.92")},
	{Code: GBP, Symbol: "£", Rate: decimal.RequireFromString("0.79")},
	{Code: AED, Symbol: "AED ", Rate: decimal.RequireFromString("3.67")},
}

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	out := make([]Currency, len(supported))
	copy(out, supported)

	return out
}

// Lookup returns the currency for code.
func Lookup(code CurrencyCode) (Currency, bool) {
	for _, c := range supported {
		if c.Code == code {
			return c, true
		}
	}

	return Currency{}, false
}

// IsValid reports whether the code is supported.
func (c CurrencyCode) IsValid() bool {
	_, ok := Lookup(c)

	return ok
}

// ParseCurrency parses a user supplied code. Empty input selects the reference currency.
func ParseCurrency(raw string) (CurrencyCode, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ReferenceCurrency, nil
	}

	code := CurrencyCode(strings.ToUpper(raw))
	if !code.IsValid() {
		return "", errors.Wrapf(ErrUnknownCurrency, "currency %q", raw)
	}

	return code, nil
}

func mustLookup(code CurrencyCode) Currency {
	c, ok := Lookup(code)
	if !ok {
		panic("money: unsupported currency code " + string(code))
	}

	return c
}
