package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	f, err := NewFormatter("en-US", "USD")
	require.NoError(t, err)

	cases := map[string]string{
		"0":       "$0.00",
		"15.98":   "$15.98",
		"1234.5":  "$1,234.50",
		"-12.345": "-$12.35",
	}
	for in, want := range cases {
		assert.Equal(t, want, f.Format(decimal.RequireFromString(in)), in)
	}
	assert.Equal(t, "USD", f.Currency())
}

func TestFormatZeroFractionCurrency(t *testing.T) {
	f, err := NewFormatter("en-US", "JPY")
	require.NoError(t, err)

	assert.Equal(t, "¥1,235", f.Format(decimal.RequireFromString("1234.5")))
}

func TestFormatUnknownSymbolUsesCode(t *testing.T) {
	f, err := NewFormatter("en-US", "CHF")
	require.NoError(t, err)

	assert.Equal(t, "CHF 10.00", f.Format(decimal.NewFromInt(10)))
}

func TestNewFormatterRejectsBadInput(t *testing.T) {
	_, err := NewFormatter("en-US", "XXXX")
	assert.Error(t, err)

	_, err = NewFormatter("not a locale!", "USD")
	assert.Error(t, err)
}
