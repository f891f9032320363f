// Package refine implements bracket refinement of a single isolated root:
// bisection and ITP (Interpolate-Truncate-Project), both converging a
// closed bracket [L, R] with opposite-signed endpoints down to a target
// tolerance.
package refine

import "github.com/cxd309eng/polyroot/poly"

// Kind enumerates a refinement outcome.
type Kind int

const (
	// Converged means X holds a root estimate within tolerance.
	Converged Kind = iota
	// MaxIter means the iteration cap was exhausted before convergence;
	// X holds the best estimate found, which may still be useful.
	MaxIter
	// Invalid means the initial bracket did not satisfy the refiner's
	// preconditions (no sign change, and neither endpoint is an exact
	// root); Reason explains why.
	Invalid
)

// Result is the refiner's return value: a closed sum type in place of a
// mutated output parameter (spec.md §9's Design Note).
type Result struct {
	Kind   Kind
	X      float64
	Reason string
}

// DefaultTolerance is the default bracket-refinement precision (spec.md §6).
const DefaultTolerance = 1e-5

// DefaultITPMaxIterations is ITP's default iteration cap.
const DefaultITPMaxIterations = 50

// DefaultBisectionMaxIterations is Bisection's default iteration cap.
const DefaultBisectionMaxIterations = 100

// Options configures a refiner call. A zero Tolerance or MaxIterations is
// replaced by the refiner's own default; K1 <= 0 means "compute the
// default K1 = 0.2/(R-L) from the initial bracket."
type Options struct {
	Tolerance     float64
	MaxIterations int
	Evaluator     poly.Evaluator

	// ITP tuning constants (spec.md §4.8); ignored by Bisection.
	K1, K2 float64
	N0     int
}

func (o Options) withDefaults(maxIter int) Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = maxIter
	}
	if o.Evaluator == nil {
		o.Evaluator = poly.CompensatedHorner
	}
	return o
}

// checkBracket validates [l, r] against exact-zero endpoints and a genuine
// sign change, returning a non-ok Result immediately if neither holds.
func checkBracket(p poly.Polynomial, l, r float64, eval poly.Evaluator) (fl, fr float64, early *Result) {
	fl = eval(p, l)
	fr = eval(p, r)
	if fl == 0 {
		return fl, fr, &Result{Kind: Converged, X: l}
	}
	if fr == 0 {
		return fl, fr, &Result{Kind: Converged, X: r}
	}
	if sameSign(fl, fr) {
		return fl, fr, &Result{Kind: Invalid, Reason: "bracket endpoints do not bracket a sign change"}
	}
	return fl, fr, nil
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
