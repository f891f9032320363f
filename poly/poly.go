// Package poly implements the value type and core algebra for univariate
// real polynomials with ascending-degree float64 coefficients: evaluation,
// differentiation, division, GCD, squarefree reduction, and the
// transformations the root isolator drives.
package poly

import (
	"fmt"
	"math"
)

// Polynomial is an ascending-degree coefficient slice: index i holds the
// coefficient of x^i. The zero polynomial is represented by Zero().
// Implementations may carry trailing zero coefficients; Degree and the
// normalizing operations (GCD, Squarefree, Equal) account for that.
type Polynomial []float64

// ErrInvalidPolynomial is panicked when a polynomial operation is given an
// empty coefficient slice or a coefficient that is NaN.
var ErrInvalidPolynomial = fmt.Errorf("poly: invalid polynomial")

// ErrDivideByZero is panicked by Divide when asked to divide by the zero
// polynomial. GCD never raises it: a zero argument returns the other one.
var ErrDivideByZero = fmt.Errorf("poly: division by zero polynomial")

// Zero returns the zero polynomial, [0].
func Zero() Polynomial { return Polynomial{0} }

// New copies coeffs (ascending degree) into a fresh Polynomial, validating
// that it is non-empty and free of NaN.
func New(coeffs ...float64) Polynomial {
	p := make(Polynomial, len(coeffs))
	copy(p, coeffs)
	p.validate()
	return p
}

func (p Polynomial) validate() {
	if len(p) == 0 {
		panic(fmt.Errorf("%w: empty coefficient slice", ErrInvalidPolynomial))
	}
	for _, c := range p {
		if math.IsNaN(c) {
			panic(fmt.Errorf("%w: NaN coefficient", ErrInvalidPolynomial))
		}
	}
}

// Degree returns the index of the highest-index nonzero coefficient, or 0
// for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i > 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return 0
}

// IsZero reports whether every coefficient is exactly zero.
func (p Polynomial) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// Trim returns a copy of p with trailing zero coefficients above Degree()
// removed, leaving at least one coefficient.
func (p Polynomial) Trim() Polynomial {
	d := p.Degree()
	out := make(Polynomial, d+1)
	copy(out, p[:d+1])
	return out
}

// Clone returns an independent copy of p.
func (p Polynomial) Clone() Polynomial {
	out := make(Polynomial, len(p))
	copy(out, p)
	return out
}

// Normalize returns p trimmed and scaled so its leading coefficient is 1.
// The zero polynomial normalizes to itself.
func (p Polynomial) Normalize() Polynomial {
	t := p.Trim()
	lead := t[len(t)-1]
	if lead == 0 || lead == 1 {
		return t
	}
	out := make(Polynomial, len(t))
	for i, c := range t {
		out[i] = c / lead
	}
	return out
}

// Equal reports whether a and b represent the same polynomial within tol,
// after trimming trailing zeros (spec.md §8's "Transformation identity"
// invariants are checked up to this notion of equality).
func Equal(a, b Polynomial, tol float64) bool {
	ta, tb := a.Trim(), b.Trim()
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if math.Abs(ta[i]-tb[i]) > tol {
			return false
		}
	}
	return true
}

// String renders p as a human-readable "c0 + c1 x + c2 x^2 + ..." sum,
// skipping zero coefficients, for debugging and test failure messages.
func (p Polynomial) String() string {
	s := ""
	wrote := false
	for i, c := range p {
		if c == 0 && len(p) > 1 {
			continue
		}
		if wrote {
			s += " + "
		}
		switch i {
		case 0:
			s += fmt.Sprintf("%g", c)
		case 1:
			s += fmt.Sprintf("%g x", c)
		default:
			s += fmt.Sprintf("%g x^%d", c, i)
		}
		wrote = true
	}
	if !wrote {
		return "0"
	}
	return s
}

// pow raises x to the non-negative integer power n. Small exponents are
// expanded by repeated squaring inline; large ones fall back to math.Pow.
func pow(x float64, n int) float64 {
	if n < 0 {
		return 1 / pow(x, -n)
	}
	switch n {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	case 4:
		y := x * x
		return y * y
	}
	if n > 32 {
		return math.Pow(x, float64(n))
	}
	y := 1.0
	base := x
	for n > 0 {
		if n&1 == 1 {
			y *= base
		}
		base *= base
		n >>= 1
	}
	return y
}
