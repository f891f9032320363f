package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLMQUpperWorkedExample(t *testing.T) {
	// spec.md's worked LMQ example; the expected bound is cube-root(4/3).
	p := New(1, -2, -1, 2, 3)
	want := math.Pow(4.0/3.0, 1.0/3.0)
	assert.InDelta(t, want, LMQUpper(p), 1e-6)
}

func TestLMQUpperIsSoundUpperBound(t *testing.T) {
	// (x-1)(x-3) = 3 - 4x + x^2, real roots 1 and 3.
	p := New(3, -4, 1)
	bound := LMQUpper(p)
	assert.GreaterOrEqual(t, bound, 3.0)
}

func TestLMQUpperNoNegativeCoefficientMeansZero(t *testing.T) {
	p := New(1, 2, 3)
	assert.Equal(t, 0.0, LMQUpper(p))
}

func TestLMQLowerIsReciprocalBoundOnReciprocalRoots(t *testing.T) {
	// roots 1 and 3; reciprocal roots are 1 and 1/3, so the lower bound on
	// the original roots must be <= 1 (the smallest positive root).
	p := New(3, -4, 1)
	lower := LMQLower(p)
	assert.LessOrEqual(t, lower, 1.0+1e-9)
	assert.Greater(t, lower, 0.0)
}
