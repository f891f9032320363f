package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivative(t *testing.T) {
	// p = 3 - 4x + x^2, p' = -4 + 2x
	p := New(3, -4, 1)
	assert.Equal(t, New(-4, 2), Derivative(p).Trim())
	assert.True(t, Derivative(New(5)).IsZero())
}

func TestDivideExact(t *testing.T) {
	// (x-1)(x-3) = 3 - 4x + x^2, divided by (x-1) = -1 + x
	num := New(3, -4, 1)
	den := New(-1, 1)
	q, r := Divide(num, den)
	assert.True(t, Equal(q, New(-3, 1), 1e-9))
	assert.True(t, r.IsZero())
}

func TestDivideByZeroPanics(t *testing.T) {
	assert.Panics(t, func() { Divide(New(1, 2), Zero()) })
}

func TestGCDOfSharedFactor(t *testing.T) {
	// (x-1)(x-3) and (x-1)(x+1) share the factor (x-1)
	a := New(3, -4, 1)  // roots 1, 3
	b := New(-1, 0, 1)  // roots -1, 1
	g := GCD(a, b)
	require.Equal(t, 1, g.Degree())
	// root of g should be 1
	assert.InDelta(t, 0, Horner(g, 1), 1e-6)
}

func TestSquarefreeRemovesRepeatedRoot(t *testing.T) {
	// (x^2-2)^2 has a double root at both +-sqrt(2)
	base := New(-2, 0, 1)
	squared := polyMul(base, base)
	sf := Squarefree(squared)
	assert.Equal(t, 2, sf.Degree())
	assert.True(t, Equal(sf.Normalize(), base.Normalize(), 1e-6))
}

// polyMul is a small local helper (not part of the poly API) used only to
// build a non-squarefree test fixture.
func polyMul(a, b Polynomial) Polynomial {
	out := make(Polynomial, len(a)+len(b)-1)
	for i, ca := range a {
		for j, cb := range b {
			out[i+j] += ca * cb
		}
	}
	return out
}
