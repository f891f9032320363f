// Package mobius implements the rational linear (Möbius) transformation
// M(x) = (A*x+B)/(C*x+D) the root isolator uses to track, in lockstep with
// each polynomial transformation, the mapping back from a transformed
// polynomial's variable to the original variable.
package mobius

import (
	"fmt"
	"math"

	"github.com/cxd309eng/polyroot/interval"
)

// Mobius is a plain value type; every method returns a new value. There is
// no identity object beyond the Identity value below, and equality is by
// field comparison (spec.md §9's Design Note: "a plain-old value type with
// arithmetic-style composition, not a class with identity").
type Mobius struct {
	A, B, C, D float64
}

// ErrDegenerate is panicked by operations that would produce or receive a
// Mobius value violating A*D != B*C.
var ErrDegenerate = fmt.Errorf("mobius: degenerate transformation (A*D == B*C)")

// Identity is the Möbius transformation M(x) = x.
var Identity = Mobius{A: 1, B: 0, C: 0, D: 1}

func (m Mobius) validate() {
	if m.A*m.D == m.B*m.C {
		panic(ErrDegenerate)
	}
}

// Shift returns the Möbius transformation for x <- x+s composed after m:
// the new map evaluates m(x+s).
func (m Mobius) Shift(s float64) Mobius {
	m.validate()
	out := Mobius{A: m.A, B: m.B + s*m.A, C: m.C, D: m.D + s*m.C}
	out.validate()
	return out
}

// ScaleInput returns the Möbius transformation for x <- s*x composed after
// m: the new map evaluates m(s*x).
func (m Mobius) ScaleInput(s float64) Mobius {
	m.validate()
	out := Mobius{A: s * m.A, B: m.B, C: s * m.C, D: m.D}
	out.validate()
	return out
}

// LowerInterval returns the Möbius transformation for x <- s/(x+1) composed
// after m: the new map evaluates m(s/(x+1)).
func (m Mobius) LowerInterval(s float64) Mobius {
	m.validate()
	out := Mobius{A: m.B, B: s*m.A + m.B, C: m.D, D: s*m.C + m.D}
	out.validate()
	return out
}

// Invert returns the Möbius transformation for x <- 1/x composed after m:
// the new map evaluates m(1/x).
func (m Mobius) Invert() Mobius {
	m.validate()
	out := Mobius{A: m.B, B: m.A, C: m.D, D: m.C}
	out.validate()
	return out
}

// Evaluate returns (A*x+B)/(C*x+D). ok is false when the denominator
// vanishes; callers should inspect the sign of the numerator to pick which
// signed infinity applies.
func (m Mobius) Evaluate(x float64) (y float64, ok bool) {
	m.validate()
	den := m.C*x + m.D
	if den == 0 {
		return 0, false
	}
	return (m.A*x + m.B) / den, true
}

// PositiveDomainImage returns the image of the open interval (0, +inf)
// under m: the open interval with endpoints M(0) = B/D and
// M(+inf) = A/C, sorted, with the appropriate endpoint replaced by a
// signed infinity when D == 0 or C == 0 respectively (the A*D != B*C
// invariant guarantees the numerator doesn't also vanish in that case).
func (m Mobius) PositiveDomainImage() interval.Interval {
	m.validate()

	var left float64
	if m.D == 0 {
		left = math.Inf(1) * sign(m.B) * sign(m.C)
	} else {
		left = m.B / m.D
	}

	var right float64
	if m.C == 0 {
		right = math.Inf(1) * sign(m.A) * sign(m.D)
	} else {
		right = m.A / m.C
	}

	if left > right {
		left, right = right, left
	}
	return interval.Interval{L: left, R: right}
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
