package money

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount decimal.Decimal
		code   CurrencyCode
		want   string
	}{
		{"AED prefix form", decimal.NewFromInt(1000000), AED, "AED 3,670,000"},
		{"USD symbol", decimal.NewFromInt(12500000), USD, "$12,500,000"},
		{"EUR symbol", decimal.NewFromInt(145000), EUR, "€133,400"},
		{"GBP symbol", decimal.NewFromInt(1562500), GBP, "£1,234,375"},
		{"zero", decimal.Zero, USD, "$0"},
		{"below thousand", decimal.NewFromInt(999), USD, "$999"},
		{"rounds half up", decimal.RequireFromString("1000.5"), USD, "$1,001"},
		{"rounds down", decimal.RequireFromString("1000.49"), USD, "$1,000"},
		{"fractional rate result", decimal.NewFromInt(3), GBP, "£2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Format(tt.amount, tt.code))
		})
	}
}

func TestFormat_MagnitudeMatchesRoundedConversion(t *testing.T) {
	t.Parallel()

	amounts := []string{"0", "1", "7.5", "40000", "18125", "1562500", "7000000", "123456789.99"}
	for _, c := range Currencies() {
		for _, raw := range amounts {
			amount := decimal.RequireFromString(raw)
			out := Format(amount, c.Code)

			require.True(t, strings.HasPrefix(out, c.Symbol), out)
			digits := strings.ReplaceAll(strings.TrimPrefix(out, c.Symbol), ",", "")
			assert.NotContains(t, digits, ".")

			parsed, err := decimal.NewFromString(digits)
			require.NoError(t, err)
			assert.True(t, parsed.Equal(amount.Mul(c.Rate).Round(0)), "%s %s -> %s", raw, c.Code, out)
		}
	}
}

func TestFormat_UnknownCurrencyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		Format(decimal.NewFromInt(1), CurrencyCode("JPY"))
	})
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    CurrencyCode
		wantErr bool
	}{
		{"", USD, false},
		{"usd", USD, false},
		{" aed ", AED, false},
		{"EUR", EUR, false},
		{"GBP", GBP, false},
		{"JPY", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()

			got, err := ParseCurrency(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownCurrency)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrencies_ReturnsCopy(t *testing.T) {
	t.Parallel()

	list := Currencies()
	require.Len(t, list, 4)
	list[0].Symbol = "X"

	c, ok := Lookup(USD)
	require.True(t, ok)
	assert.Equal(t, "$", c.Symbol)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	got := Convert(decimal.NewFromInt(100), EUR)
	assert.True(t, got.Equal(decimal.NewFromInt(92)))
}
