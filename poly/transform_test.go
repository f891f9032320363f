package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShiftMovesRoots(t *testing.T) {
	// p has roots {1,3}; p(x+1) should have roots {0,2}
	p := New(3, -4, 1)
	shifted := Shift(p, 1)
	assert.InDelta(t, 0, Horner(shifted, 0), 1e-9)
	assert.InDelta(t, 0, Horner(shifted, 2), 1e-9)
}

func TestScaleMovesRoots(t *testing.T) {
	// p has roots {1,3}; p(2x) should have roots {0.5,1.5}
	p := New(3, -4, 1)
	scaled := Scale(p, 2)
	assert.InDelta(t, 0, Horner(scaled, 0.5), 1e-9)
	assert.InDelta(t, 0, Horner(scaled, 1.5), 1e-9)
}

func TestReverseInvertsRoots(t *testing.T) {
	// p has roots {1,3}; reverse should have roots {1, 1/3}
	p := New(3, -4, 1)
	rev := Reverse(p)
	assert.InDelta(t, 0, Horner(rev, 1), 1e-9)
	assert.InDelta(t, 0, Horner(rev, 1.0/3.0), 1e-9)
}

func TestShiftScaleComposeLikeEvaluation(t *testing.T) {
	p := New(1, -2, -1, 2, 3)
	for _, x := range []float64{-2, 0, 1, 3} {
		for _, s := range []float64{1, 2, 5} {
			lhs := Horner(Shift(p, s), x)
			rhs := Horner(p, x+s)
			assert.InDelta(t, rhs, lhs, 1e-6)
		}
	}
}

func TestLowerIntervalMapMatchesDirectEvaluation(t *testing.T) {
	// LowerIntervalMap(p, s) realizes (x+1)^d * p(s/(x+1)); check that
	// identity directly rather than trusting the composed Scale/Reverse/
	// Shift implementation.
	p := New(3, -4, 1) // (x-1)(x-3), roots 1 and 3
	d := len(p) - 1
	for _, s := range []float64{1, 2, 5} {
		mapped := LowerIntervalMap(p, s)
		for _, x := range []float64{0, 0.5, 2, 4} {
			want := pow(x+1, d) * Horner(p, s/(x+1))
			got := Horner(mapped, x)
			assert.InDelta(t, want, got, 1e-6)
		}
	}
}

func TestLowerIntervalMapConstantTermBecomesZero(t *testing.T) {
	// p(1) == 0 (1 is a root of p), so the mapped polynomial's constant
	// term -- its value at x=0, i.e. p(s) -- must be exactly zero.
	p := New(3, -4, 1)
	mapped := LowerIntervalMap(p, 1)
	assert.Equal(t, 0.0, mapped[0])
}

func TestLowerIntervalMapConstantTermStaysNonzero(t *testing.T) {
	// p(2) == -1 != 0, so the mapped polynomial's constant term is nonzero.
	p := New(3, -4, 1)
	mapped := LowerIntervalMap(p, 2)
	assert.InDelta(t, -1, mapped[0], 1e-9)
}

func TestStripLeadingZeroRoot(t *testing.T) {
	// p = x^3 - x = x(x-1)(x+1)
	p := New(0, -1, 0, 1)
	stripped := StripLeadingZeroRoot(p)
	assert.True(t, Equal(stripped, New(-1, 0, 1), 1e-12))
}

func TestStripLeadingZeroRootRequiresZeroConstant(t *testing.T) {
	assert.Panics(t, func() { StripLeadingZeroRoot(New(1, 2)) })
}
