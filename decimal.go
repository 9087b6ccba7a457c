package portfoy

import "github.com/shopspring/decimal"

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	default:
		panic("unsupported type")
	}
}

// shortest returns the shortest decimal representation of v: 6 prints as "6"
// and 6.30 as "6.3".
func shortest(v float64) string { return decimal.NewFromFloat(v).String() }
