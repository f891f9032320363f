// Package isolate implements the Vincent/continued-fraction root interval
// isolator: given a squarefree polynomial, it produces a set of disjoint
// open intervals, each containing exactly one positive real root.
package isolate

import (
	"math"

	"github.com/cxd309eng/polyroot/interval"
	"github.com/cxd309eng/polyroot/mobius"
	"github.com/cxd309eng/polyroot/poly"
)

// Interval is the isolator's result type; re-exported from the interval
// package so callers need only import isolate for the common case.
type Interval = interval.Interval

// task is the isolator's private work-queue record: P is the transformed
// polynomial and M is the Möbius transformation accumulated so far. The
// invariant (c*x+d)^deg(P) * P_input(M(x)) == P(x) holds for every task
// throughout the recursion.
type task struct {
	P poly.Polynomial
	M mobius.Mobius
}

// Options configures Isolate. MaxTasks caps the number of tasks the work
// queue will process, guarding against numerically-induced non-termination
// (e.g. a float-GCD squarefree reduction that didn't fully remove a
// near-multiple root). Zero means unbounded.
type Options struct {
	MaxTasks int
}

// Isolate returns a list of disjoint open intervals, each containing
// exactly one positive real root of p. p is squarefree-reduced internally
// (matching spec.md §4.7's seeding step); a caller that can already
// guarantee squarefree input avoids the float-GCD instability documented
// on poly.Squarefree.
//
// Zero-valued Options{} runs with no task cap. Output order matches
// emission order, not sorted order -- sort explicitly if needed.
func Isolate(p poly.Polynomial, opts Options) []Interval {
	var results []Interval
	queue := []task{{P: poly.Squarefree(p), M: mobius.Identity}}

	processed := 0
	for len(queue) > 0 {
		if opts.MaxTasks > 0 && processed >= opts.MaxTasks {
			break
		}
		processed++

		t := queue[0]
		queue = queue[1:]

		emitted, children := step(t, p)
		for _, e := range emitted {
			results = insertHygienic(results, e)
		}
		queue = append(queue, children...)
	}
	return results
}

// step processes a single task, returning any intervals it resolves
// directly and any child tasks it spawns. pInput is the original
// (pre-squarefree) polynomial, used only to tighten an unbounded v==1
// interval's right endpoint via LMQUpper.
func step(t task, pInput poly.Polynomial) (emitted []Interval, children []task) {
	if t.P.IsZero() {
		// Every non-negative real is a root of the zero polynomial.
		return []Interval{{L: 0, R: math.Inf(1)}}, nil
	}

	P, M := t.P, t.M

	// Step 2: a root exactly at the current lower bound of the half-line.
	if P[0] == 0 {
		point, _ := M.Evaluate(0)
		emitted = append(emitted, Interval{L: point, R: point})
		P = poly.StripLeadingZeroRoot(P)
		if P.IsZero() {
			return emitted, nil
		}
	}

	// Step 3: fast-forward past the empty prefix of the half-line using the
	// LMQ lower bound.
	if b := poly.LMQLower(P); b >= 1 {
		P = poly.Shift(poly.Scale(P, b), 1)
		M = M.ScaleInput(b).Shift(1)
	}

	v := poly.SignVariations(P)

	switch {
	case v == 0:
		return emitted, nil

	case v == 1:
		emitted = append(emitted, resolveSingleRoot(M, pInput))
		return emitted, nil

	default:
		return splitAtOne(P, M, v, emitted)
	}
}

// resolveSingleRoot returns the Möbius image of (0, +inf) for a task known
// (by Descartes) to carry exactly one positive root, tightening an
// unbounded right endpoint with the LMQ upper bound of the original input
// polynomial.
func resolveSingleRoot(M mobius.Mobius, pInput poly.Polynomial) Interval {
	img := M.PositiveDomainImage()
	if math.IsInf(img.R, 1) {
		img.R = poly.LMQUpper(pInput)
		if img.R <= img.L {
			img.R = img.L + 1
		}
	}
	return img
}

// splitAtOne implements spec.md §4.7's v>=2 branch: split the half-line at
// x=1 into a right half (x>1, via Shift) and a left half (0<x<1, via
// LowerIntervalMap), handling an exact root at the split point the same
// way step 2 does, and pruning the left branch without a SignVariations
// call whenever the parent's count already proves it has no positive root.
func splitAtOne(P poly.Polynomial, M mobius.Mobius, v int, emitted []Interval) ([]Interval, []task) {
	var children []task

	PR := poly.Shift(P, 1)
	MR := M.Shift(1)

	rootAt1 := false
	if PR[0] == 0 {
		point, _ := MR.Evaluate(0)
		emitted = append(emitted, Interval{L: point, R: point})
		PR = poly.StripLeadingZeroRoot(PR)
		rootAt1 = true
	}

	vR := 0
	if !PR.IsZero() {
		vR = poly.SignVariations(PR)
		if vR > 0 {
			children = append(children, task{P: PR, M: MR})
		}
	}

	PL := poly.LowerIntervalMap(P, 1)
	ML := M.LowerInterval(1)
	if PL[0] == 0 {
		point, _ := ML.Evaluate(0)
		emitted = append(emitted, Interval{L: point, R: point})
		PL = poly.StripLeadingZeroRoot(PL)
	}
	if !PL.IsZero() {
		adj := 0
		if rootAt1 {
			adj = 1
		}
		if vL := v - vR - adj; vL != 0 {
			children = append(children, task{P: PL, M: ML})
		}
		// vL == 0: the parent's own variation count already proves the
		// left branch has no positive root; prune without recomputing.
	}
	return emitted, children
}

// insertHygienic inserts next into results, rejecting an exact duplicate or
// a strict sub/super-range of an existing interval (keeping the tighter of
// the two), per spec.md §4.7's output-hygiene requirement.
func insertHygienic(results []Interval, next Interval) []Interval {
	const tol = 1e-9
	for i, existing := range results {
		if existing.Equal(next, tol) {
			return results
		}
		if next.SubsetOf(existing) {
			results[i] = next
			return results
		}
		if existing.SubsetOf(next) {
			return results
		}
	}
	return append(results, next)
}
