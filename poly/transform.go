package poly

// Shift returns the coefficients of p(x+s), computed via the binomial
// expansion c'_k = sum_{i>=k} c_i * C(i,k) * s^(i-k).
func Shift(p Polynomial, s float64) Polynomial {
	p.validate()
	n := len(p)
	out := make(Polynomial, n)
	for k := 0; k < n; k++ {
		var ck float64
		for i := k; i < n; i++ {
			if p[i] == 0 {
				continue
			}
			ck += p[i] * binomial(i, k) * pow(s, i-k)
		}
		out[k] = ck
	}
	return out
}

// Scale returns the coefficients of p(s*x): c'_i = s^i * c_i.
func Scale(p Polynomial, s float64) Polynomial {
	p.validate()
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = c * pow(s, i)
	}
	return out
}

// Reverse returns x^d * p(1/x): c'_i = c_{d-i}, using d = len(p)-1 so the
// result has the same length as the input (trailing/leading zeros may
// appear and are meaningful to callers composing further transforms).
func Reverse(p Polynomial) Polynomial {
	p.validate()
	n := len(p)
	out := make(Polynomial, n)
	for i := 0; i < n; i++ {
		out[i] = p[n-1-i]
	}
	return out
}

// LowerIntervalMap returns (x+1)^d * p(s/(x+1)), the composite map used by
// the isolator to fold the open interval (0,s) onto the positive half-line.
// Implemented as Scale-by-s, then Reverse, then Shift-by-1 -- one of the two
// algebraically equivalent realizations spec.md §9 notes as an
// implementation choice (the alternative being Shift-by-1-then-Reverse).
// The constant term of the result is p(s), so it is zero exactly when s is
// a root of p. Tests cover both branches.
func LowerIntervalMap(p Polynomial, s float64) Polynomial {
	scaled := Scale(p, s)
	reversed := Reverse(scaled)
	return Shift(reversed, 1)
}

// StripLeadingZeroRoot divides p by x, dropping the (zero) constant term.
// It requires p's constant coefficient to be exactly zero.
func StripLeadingZeroRoot(p Polynomial) Polynomial {
	p.validate()
	if p[0] != 0 {
		panic("poly: StripLeadingZeroRoot requires a zero constant term")
	}
	if len(p) == 1 {
		return Zero()
	}
	return p[1:].Clone()
}
