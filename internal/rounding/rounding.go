// Package rounding implements the decimal rounding policy shared by the
// spectral and statistical stages: scale by 10^decimals, round half to even,
// scale back.
package rounding

import "math"

// HalfEven rounds x to the given number of decimals, resolving ties to the
// even neighbour. NaN and Inf pass through unchanged.
func HalfEven(x float64, decimals int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}

	if decimals == 0 {
		return math.RoundToEven(x)
	}

	scale := math.Pow(10, float64(decimals))
	return math.RoundToEven(x*scale) / scale
}

// SliceHalfEven rounds every element of x in place.
func SliceHalfEven(x []float64, decimals int) {
	for i, v := range x {
		x[i] = HalfEven(v, decimals)
	}
}
