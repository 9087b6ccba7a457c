package portfoy

import "github.com/shopspring/decimal"

// Percent is a percentage, 45.3 means 45.3%.
type Percent float64

// String returns the percentage with exactly one fraction digit and a leading
// percent sign, as written in Turkish: "%45.3".
//
// Rounding is half away from zero, applied to the shortest decimal
// representation of the float: 45.25 prints "%45.3" and -45.25 prints "%-45.3".
func (p Percent) String() string {
	return "%" + decimal.NewFromFloat(float64(p)).StringFixed(1)
}

// Short returns the percentage in its shortest form: "%40" or "%12.5".
func (p Percent) Short() string { return "%" + shortest(float64(p)) }

// Score is a grade on a fixed scale, printed in its shortest form.
type Score float64

func (s Score) String() string { return shortest(float64(s)) }
