package refine

import "github.com/cxd309eng/polyroot/poly"

// Bisection refines [l, r] to a root of p within opts.Tolerance via
// classical bisection: the bracket half containing the sign change is kept
// at each step, and the midpoint is returned on convergence. It returns
// MaxIter if the iteration cap is exhausted first, or Invalid if the
// initial bracket does not bracket a sign change (after checking for an
// exact zero at either endpoint).
func Bisection(p poly.Polynomial, l, r float64, opts Options) Result {
	opts = opts.withDefaults(DefaultBisectionMaxIterations)

	fl, _, early := checkBracket(p, l, r, opts.Evaluator)
	if early != nil {
		return *early
	}

	for i := 0; i < opts.MaxIterations; i++ {
		mid := l + (r-l)/2
		fm := opts.Evaluator(p, mid)

		if fm == 0 || (r-l)/2 <= opts.Tolerance {
			return Result{Kind: Converged, X: mid}
		}

		if sameSign(fl, fm) {
			l, fl = mid, fm
		} else {
			r = mid
		}
	}
	return Result{Kind: MaxIter, X: l + (r-l)/2}
}
