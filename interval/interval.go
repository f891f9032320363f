// Package interval defines the Interval value type shared by the Möbius
// tracker, the root isolator, and the bracket refiners.
package interval

import "math"

// Interval is an ordered pair (L, R) with L <= R. R may be +Inf. The
// isolator treats the pair as open on each finite side; the refiners treat
// the same pair as a closed bracket.
type Interval struct {
	L, R float64
}

// Width returns R - L.
func (i Interval) Width() float64 {
	return i.R - i.L
}

// Contains reports whether x lies within [L, R].
func (i Interval) Contains(x float64) bool {
	return x >= i.L && x <= i.R
}

// Equal reports whether i and o have the same endpoints within tol.
func (i Interval) Equal(o Interval, tol float64) bool {
	return approxEqual(i.L, o.L, tol) && approxEqual(i.R, o.R, tol)
}

// SubsetOf reports whether i is contained within o (i is the tighter of
// the two), used by the isolator's output-hygiene duplicate/subrange check.
func (i Interval) SubsetOf(o Interval) bool {
	return i.L >= o.L && i.R <= o.R
}

func approxEqual(a, b, tol float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	return math.Abs(a-b) <= tol
}
