package portfoy

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency used when none is configured.
const DefaultCurrency = money.TRY

// maxFractionDigits is the largest number of fraction digits printed for money.
const maxFractionDigits = 3

// tr-TR separators, whatever the currency.
const (
	decimalSeparator  = ","
	thousandSeparator = "."
)

// Money represents a monetary value.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M creates a Money of value in the currency with the given ISO code.
func M[T float64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the locale representation of the money value followed by the
// currency symbol, like "125.000 ₺" or "1.234,5 ₺".
//
// The value is rounded half away from zero to at most three fraction digits,
// trailing zeros are dropped. Only the symbol comes from the currency.
func (m Money) String() string {
	rounded := m.value.Round(maxFractionDigits)
	integer, fraction, _ := strings.Cut(rounded.Abs().String(), ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteString("-")
	}
	b.WriteString(group(integer))
	if fraction != "" {
		b.WriteString(decimalSeparator)
		b.WriteString(fraction)
	}
	b.WriteString(" ")
	b.WriteString(m.currency().Grapheme)
	return b.String()
}

// group inserts the thousand separator in a string of digits.
func group(digits string) string {
	head := len(digits) % 3
	if head == 0 {
		head = 3
	}
	var b strings.Builder
	b.WriteString(digits[:head])
	for i := head; i < len(digits); i += 3 {
		b.WriteString(thousandSeparator)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
