package utils

import "math"

// Round2 rounds a value to 2 decimal places, half away from zero.
// Points and money are rounded once at the final aggregation step,
// never per intermediate term, to avoid compounding rounding error.
func Round2(value float64) float64 {
	return math.Round(value*100) / 100
}
