package poly

import (
	"fmt"
	"math"
)

// ErrNaNCoefficient is panicked by SignVariations when a coefficient is NaN.
var ErrNaNCoefficient = fmt.Errorf("poly: NaN coefficient")

// SignVariations counts the number of sign changes between consecutive
// nonzero coefficients of p, walking ascending. By Descartes' rule of
// signs, this is an upper bound on the number of positive real roots of p,
// tight modulo an even difference (pairs of positive roots).
func SignVariations(p Polynomial) int {
	if len(p) == 0 {
		panic(fmt.Errorf("%w: empty coefficient slice", ErrInvalidPolynomial))
	}
	variations := 0
	lastSign := 0
	for _, c := range p {
		if math.IsNaN(c) {
			panic(fmt.Errorf("%w", ErrNaNCoefficient))
		}
		if c == 0 {
			continue
		}
		sign := 1
		if c < 0 {
			sign = -1
		}
		if lastSign != 0 && sign != lastSign {
			variations++
		}
		lastSign = sign
	}
	return variations
}
