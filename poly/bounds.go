package poly

import "math"

// LMQUpper computes the Local-Max-Quadratic upper bound on the positive
// real roots of p: every positive real root of p is <= the returned value
// (spec.md §8's "Bound soundness" invariant). If p has no negative
// coefficient, Descartes' rule already rules out positive roots and
// LMQUpper returns 0.
//
// p's coefficients are in the Polynomial type's own ascending order
// (index 0 is the constant term, the highest index is the leading
// coefficient); the leading coefficient is sign-normalized first, then
// each negative coefficient is compared against the positive coefficients
// of strictly higher degree, which is what makes the result a valid upper
// bound for large x.
func LMQUpper(p Polynomial) float64 {
	p.validate()
	c := p.Trim()
	d := c.Degree()
	if c[d] < 0 {
		c = negate(c)
	}

	bound := 0.0
	found := false
	for i := 0; i < d; i++ {
		if c[i] >= 0 {
			continue
		}
		t := 1
		m := math.Inf(1)
		for j := d; j > i; j-- {
			if c[j] <= 0 {
				continue
			}
			r := math.Pow(math.Pow(2, float64(t))*(-c[i])/c[j], 1.0/float64(j-i))
			if r < m {
				m = r
			}
			t++
		}
		if m < math.Inf(1) {
			found = true
			if m > bound {
				bound = m
			}
		}
	}
	if !found {
		return 0
	}
	return bound
}

// LMQLower computes the Local-Max-Quadratic lower bound on the positive
// real roots of p, by reversing p's coefficients (the transform
// x^d * p(1/x), whose roots are the reciprocals 1/r of p's roots) and
// running LMQUpper on the result.
func LMQLower(p Polynomial) float64 {
	p.validate()
	up := LMQUpper(Reverse(p.Trim()))
	if up == 0 {
		return 0
	}
	return 1 / up
}

func negate(p Polynomial) Polynomial {
	out := make(Polynomial, len(p))
	for i, c := range p {
		out[i] = -c
	}
	return out
}
