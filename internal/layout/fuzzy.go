package layout

import "math"

// Tolerance is the distance within which two percentages are considered equal.
const Tolerance = 0.001

const roundingFactor = 1e10

// Equal reports whether a and b are within Tolerance of each other.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Tolerance
}

// Compare returns 0 when a and b are within Tolerance, -1 when a < b and 1 when a > b.
func Compare(a, b float64) int {
	switch {
	case Equal(a, b):
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

func round(v float64) float64 {
	return math.Round(v*roundingFactor) / roundingFactor
}
