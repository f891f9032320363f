package refine

import (
	"math"

	"github.com/cxd309eng/polyroot/poly"
)

// ITP refines [l, r] to a root of p within opts.Tolerance using the
// Interpolate-Truncate-Project method: superlinear on average, never worse
// than bisection per step. Returns MaxIter if the iteration cap is
// exhausted, or Invalid if the initial bracket does not bracket a sign
// change (after checking for an exact zero at either endpoint).
func ITP(p poly.Polynomial, l, r float64, opts Options) Result {
	opts = opts.withDefaults(DefaultITPMaxIterations)
	k1, k2, n0 := opts.K1, opts.K2, opts.N0
	if k1 <= 0 {
		k1 = 0.2 / (r - l)
	}
	if k2 <= 0 {
		k2 = 2
	}
	if n0 <= 0 {
		n0 = 1
	}

	fl, fr, early := checkBracket(p, l, r, opts.Evaluator)
	if early != nil {
		return *early
	}

	l0, r0 := l, r
	nMax := int(math.Ceil(math.Log2((r0-l0)/(2*opts.Tolerance)))) + n0

	for k := 0; k < opts.MaxIterations; k++ {
		if (r-l)/2 <= opts.Tolerance {
			return Result{Kind: Converged, X: (l + r) / 2}
		}

		xHalf := (l + r) / 2
		radius := opts.Tolerance*math.Pow(2, float64(nMax-k)) - (r-l)/2
		delta := k1 * math.Pow(r-l, k2)

		xF := (r*fl - l*fr) / (fl - fr)

		sigma := 1.0
		if xHalf < xF {
			sigma = -1.0
		} else if xHalf == xF {
			sigma = 0
		}

		var xT float64
		if math.Abs(xHalf-xF) >= delta {
			xT = xF + sigma*delta
		} else {
			xT = xHalf
		}

		var xITP float64
		if math.Abs(xT-xHalf) <= radius {
			xITP = xT
		} else {
			xITP = xHalf - sigma*radius
		}

		fITP := opts.Evaluator(p, xITP)
		if fITP == 0 {
			return Result{Kind: Converged, X: xITP}
		}

		if sameSign(fITP, fl) {
			l, fl = xITP, fITP
		} else {
			r, fr = xITP, fITP
		}
	}
	return Result{Kind: MaxIter, X: (l + r) / 2}
}
