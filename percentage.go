package units

import "strconv"

// Percentage is a value on a 0-100 scale, e.g. export progress.
type Percentage float64

// PercentageFromFraction converts a 0-1 fraction to a Percentage.
func PercentageFromFraction(f float64) Percentage {
	return Percentage(f * percentScale)
}

// Value returns the raw percentage.
func (p Percentage) Value() float64 {
	return float64(p)
}

// Fraction returns the percentage on a 0-1 scale.
func (p Percentage) Fraction() float64 {
	return float64(p) / percentScale
}

func (p Percentage) String() string {
	return strconv.FormatFloat(float64(p), 'g', -1, 64) + "%"
}
