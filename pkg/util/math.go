package util

import "math"

// Round2 rounds a price-like value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Clamp bounds v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundInt rounds to the nearest integer.
func RoundInt(v float64) int {
	return int(math.Round(v))
}
