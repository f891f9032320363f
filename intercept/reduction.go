// Package intercept is the physics reduction adapter: it turns a vector
// intercept problem (matching Taylor-expansion motion of a target and a
// shooter) into a scalar root-finding problem solved by poly/mobius/
// isolate/refine, then picks the candidate time that minimizes the
// intercept objective.
package intercept

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cxd309eng/polyroot/isolate"
	"github.com/cxd309eng/polyroot/poly"
	"github.com/cxd309eng/polyroot/refine"
)

// Options configures Solve, threading tolerance and iteration caps through
// to the isolator and refiner (spec.md §6).
type Options struct {
	Tolerance     float64
	MaxIterations int
	MaxTasks      int
	Refiner       func(p poly.Polynomial, l, r float64, opts refine.Options) refine.Result
}

func (o Options) withDefaults() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = refine.DefaultTolerance
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = refine.DefaultITPMaxIterations
	}
	if o.Refiner == nil {
		o.Refiner = refine.ITP
	}
	return o
}

// Solution is the result of a successful Solve call.
type Solution struct {
	T             float64
	Objective     float64
	delta         [][]float64 // relative Taylor coefficients, kept for Velocity()
}

// Velocity recovers v(T*) = Δ(T*) / T*, the velocity the shooter's
// projectile must be launched with in addition to the shooter's own
// motion, as described in spec.md §6 item 3.
func (s Solution) Velocity() []float64 {
	x := evalVector(s.delta, s.T)
	v := make([]float64, len(x))
	for i, xi := range x {
		v[i] = xi / s.T
	}
	return v
}

// Solve builds Δ[k] = target[k] - shooter[k] (the shorter list is treated
// as zero-padded), constructs the scalar critical polynomial whose
// positive roots are candidate intercept times, isolates and refines each
// root, evaluates the intercept objective at each, and returns the argmin.
// ok is false when no positive-T intercept exists.
func Solve(target, shooter [][]float64, opts Options) (Solution, bool) {
	opts = opts.withDefaults()

	delta := relativeCoefficients(target, shooter)
	crit := criticalPolynomial(delta)

	intervals := isolate.Isolate(crit, isolate.Options{MaxTasks: opts.MaxTasks})
	if len(intervals) == 0 {
		return Solution{}, false
	}

	refineOpts := refine.Options{Tolerance: opts.Tolerance, MaxIterations: opts.MaxIterations}

	best := Solution{}
	haveBest := false
	for _, iv := range intervals {
		t, ok := refineInterval(crit, iv, opts, refineOpts)
		if !ok || t <= 0 {
			continue
		}
		obj := objective(delta, t)
		if !haveBest || obj < best.Objective {
			best = Solution{T: t, Objective: obj, delta: delta}
			haveBest = true
		}
	}
	if !haveBest {
		return Solution{}, false
	}
	return best, true
}

// refineInterval turns an isolated interval into a concrete bracket the
// refiner can consume: a point interval (an exact root already known from
// isolate's zero-root handling) is returned directly, the identically-zero
// critical polynomial's (0, +Inf) interval is special-cased to an arbitrary
// interior T, and any other unbounded right endpoint is replaced by the LMQ
// upper bound of the critical polynomial before refinement.
func refineInterval(crit poly.Polynomial, iv isolate.Interval, opts Options, refineOpts refine.Options) (float64, bool) {
	if iv.L == iv.R {
		return iv.L, true
	}
	if crit.IsZero() && iv.L == 0 && math.IsInf(iv.R, 1) {
		// The critical polynomial is identically zero: target and shooter
		// are permanently coincident, so every T>0 is an exact intercept
		// with zero required added velocity. Any interior point works;
		// running this through the refiner would just rediscover the
		// T=0 endpoint the isolator already reported.
		return 1, true
	}
	r := iv.R
	if math.IsInf(r, 1) {
		r = poly.LMQUpper(crit)
		if r <= iv.L {
			r = iv.L + 1
		}
	}
	res := opts.Refiner(crit, iv.L, r, refineOpts)
	if res.Kind == refine.Invalid {
		return 0, false
	}
	return res.X, true
}

// relativeCoefficients computes Δ[k] = target[k] - shooter[k] for k up to
// the longer of the two lists, zero-padding the shorter.
func relativeCoefficients(target, shooter [][]float64) [][]float64 {
	n := len(target)
	if len(shooter) > n {
		n = len(shooter)
	}
	dim := vectorDim(target, shooter)

	delta := make([][]float64, n)
	for k := 0; k < n; k++ {
		t := zeroVector(dim)
		if k < len(target) {
			t = target[k]
		}
		s := zeroVector(dim)
		if k < len(shooter) {
			s = shooter[k]
		}
		d := make([]float64, dim)
		for i := range d {
			d[i] = t[i] - s[i]
		}
		delta[k] = d
	}
	return delta
}

func vectorDim(target, shooter [][]float64) int {
	for _, v := range target {
		if len(v) > 0 {
			return len(v)
		}
	}
	for _, v := range shooter {
		if len(v) > 0 {
			return len(v)
		}
	}
	return 0
}

func zeroVector(n int) []float64 { return make([]float64, n) }

// evalVector evaluates the vector Taylor polynomial x(t) = sum delta[k] *
// t^k/k! at t, component by component, via a Horner-like accumulation.
func evalVector(delta [][]float64, t float64) []float64 {
	if len(delta) == 0 {
		return nil
	}
	dim := len(delta[0])
	x := make([]float64, dim)
	for k := len(delta) - 1; k >= 0; k-- {
		scale := t / float64(k+1)
		for i := 0; i < dim; i++ {
			x[i] = x[i]*scale + delta[k][i]
		}
	}
	return x
}

// criticalPolynomial builds the scalar polynomial x(T).(x(T) - T.x'(T))
// whose positive roots are candidate intercept times (spec.md §4.9). Its
// coefficient at T^k is sum_{j=0..k} dot(delta[j], delta[k-j]) *
// (1-k+j)/(j! * (k-j)!).
func criticalPolynomial(delta [][]float64) poly.Polynomial {
	n := len(delta) - 1
	if n < 0 {
		return poly.Zero()
	}
	deg := 2 * n
	coeffs := make(poly.Polynomial, deg+1)

	fact := make([]float64, n+1)
	fact[0] = 1
	for i := 1; i <= n; i++ {
		fact[i] = fact[i-1] * float64(i)
	}

	for k := 0; k <= deg; k++ {
		var ck float64
		for j := 0; j <= k; j++ {
			if j > n || k-j > n {
				continue
			}
			d := floats.Dot(delta[j], delta[k-j])
			ck += d * float64(1-k+j) / (fact[j] * fact[k-j])
		}
		coeffs[k] = ck
	}
	return coeffs.Trim()
}

// objective returns f(T) = ||x(T)||^2 / T^2, the squared magnitude of the
// added initial velocity the shooter's projectile needs at intercept time T.
func objective(delta [][]float64, t float64) float64 {
	x := evalVector(delta, t)
	return floats.Dot(x, x) / (t * t)
}
