package poly

// Derivative returns p', the formal derivative of p: (p')_i = (i+1)*c_{i+1}.
// A degree-0 input maps to the zero polynomial.
func Derivative(p Polynomial) Polynomial {
	p.validate()
	d := p.Degree()
	if d == 0 {
		return Zero()
	}
	out := make(Polynomial, d)
	for i := 0; i < d; i++ {
		out[i] = float64(i+1) * p[i+1]
	}
	return out
}

// Divide performs classical ascending-order polynomial long division,
// returning (q, r) such that num == q*den + r with deg(r) < deg(den).
// Dividing by the zero polynomial panics.
func Divide(num, den Polynomial) (q, r Polynomial) {
	num.validate()
	den.validate()
	denT := den.Trim()
	if denT.IsZero() {
		panic(ErrDivideByZero)
	}

	rem := num.Trim().Clone()
	degDen := denT.Degree()
	lead := denT[degDen]

	degNum := rem.Degree()
	if degNum < degDen || rem.IsZero() {
		return Zero(), rem
	}

	qDeg := degNum - degDen
	quot := make(Polynomial, qDeg+1)

	for rem.Degree() >= degDen && !rem.IsZero() {
		rd := rem.Degree()
		if rd < degDen {
			break
		}
		coeff := rem[rd] / lead
		shift := rd - degDen
		quot[shift] = coeff
		for i := 0; i <= degDen; i++ {
			rem[shift+i] -= coeff * denT[i]
		}
		rem = rem.Trim()
		if rd == 0 {
			break
		}
	}
	return quot.Trim(), rem.Trim()
}

// GCD computes the polynomial greatest common divisor of p and q via the
// Euclidean algorithm over float64 long division, terminating when the
// remainder is the zero polynomial. The result is normalized to a leading
// coefficient of 1. Either argument being zero returns the other,
// normalized.
//
// Numerical caveat: float64 division accumulates rounding error, so this
// GCD (and therefore Squarefree, which is built on it) can be unstable for
// near-multiple roots. Callers that can supply already-squarefree inputs
// are encouraged to do so.
func GCD(p, q Polynomial) Polynomial {
	a, b := p.Trim(), q.Trim()
	if a.IsZero() {
		return b.Normalize()
	}
	if b.IsZero() {
		return a.Normalize()
	}
	for !b.IsZero() {
		_, r := Divide(a, b)
		a, b = b, r
	}
	return a.Normalize()
}

// Squarefree returns p / gcd(p, p'), which has the same roots as p but with
// every root's multiplicity reduced to 1. If gcd(p, p') is a nonzero
// constant, p is already squarefree and is returned unchanged. The zero
// polynomial is a degenerate case (every real is a root, with no well
// defined multiplicity to reduce) and is returned unchanged rather than
// run through GCD/Divide, which would otherwise divide by the zero
// polynomial.
func Squarefree(p Polynomial) Polynomial {
	if p.IsZero() {
		return p
	}
	g := GCD(p, Derivative(p))
	if g.Degree() == 0 && !g.IsZero() {
		return p
	}
	s, _ := Divide(p, g)
	return s
}
