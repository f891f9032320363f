package poly

import "math"

// fma computes a*b+c with a single rounding, via math.FMA, which is the
// error-free-transformation primitive CompensatedHorner relies on.
func fma(a, b, c float64) float64 {
	return math.FMA(a, b, c)
}
