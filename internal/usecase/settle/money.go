package settle

import "math"

// Coerce normalizes malformed numeric input to 0 so a single bad row never
// aborts a rollup. Every exported function in this package passes its inputs
// through Coerce before doing arithmetic.
func Coerce(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round2 rounds to 2 decimal places, half away from zero. Applied after each
// multiplication, not after summation (sum-of-rounded, not round-of-sum).
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*100) / 100
}
