// Package money formats monetary amounts for display. Formatting is a pure
// function of the amount and the Formatter value; nothing is process-wide.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"TRY": "₺",
	"INR": "₹",
	"NGN": "₦",
	"KRW": "₩",
}

type Formatter struct {
	tag    language.Tag
	unit   currency.Unit
	symbol string
	scale  int
}

// NewFormatter builds a formatter for a BCP-47 locale and an ISO-4217 code.
func NewFormatter(locale, code string) (Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(code)
	if err != nil {
		return Formatter{}, fmt.Errorf("invalid currency %q: %w", code, err)
	}

	symbol, ok := symbols[unit.String()]
	if !ok {
		symbol = unit.String() + " "
	}
	scale, _ := currency.Standard.Rounding(unit)

	return Formatter{tag: tag, unit: unit, symbol: symbol, scale: scale}, nil
}

// Currency returns the ISO code.
func (f Formatter) Currency() string {
	return f.unit.String()
}

// Format renders amount with the currency symbol, locale grouping and the
// currency's standard number of fraction digits.
func (f Formatter) Format(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	rounded := amount.Round(int32(f.scale))

	p := message.NewPrinter(f.tag)
	digits := p.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(f.scale)))
	return sign + f.symbol + digits
}
