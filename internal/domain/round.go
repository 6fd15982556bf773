package domain

import "math"

// Round2 rounds to 2 decimal places, the precision used for fantasy values.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round4 rounds to 4 decimal places, the precision used for probabilities.
func Round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
