package isolate

import (
	"testing"

	"github.com/cxd309eng/polyroot/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolateTwoPositiveRoots(t *testing.T) {
	// (x-1)(x-3) = 3 - 4x + x^2
	p := poly.New(3, -4, 1)
	intervals := Isolate(p, Options{})
	require.Len(t, intervals, 2)

	foundOne, foundThree := false, false
	for _, iv := range intervals {
		if iv.Contains(1) {
			foundOne = true
		}
		if iv.Contains(3) {
			foundThree = true
		}
	}
	assert.True(t, foundOne)
	assert.True(t, foundThree)
}

func TestIsolateNoPositiveRoots(t *testing.T) {
	// x^3 + x + 1: all coefficients positive, no sign variation
	p := poly.New(1, 1, 0, 1)
	intervals := Isolate(p, Options{})
	assert.Empty(t, intervals)
}

func TestIsolateNonSquarefreeInput(t *testing.T) {
	// (x^2-2)^2 = x^4 - 4x^2 + 4, double root at +-sqrt(2)
	p := poly.New(4, 0, -4, 0, 1)
	intervals := Isolate(p, Options{})
	require.Len(t, intervals, 1)
	root := 1.4142135623730951
	assert.True(t, intervals[0].Contains(root))
}

func TestIsolateRootExactlyAtZero(t *testing.T) {
	// x(x-2) = -2x + x^2, roots 0 and 2
	p := poly.New(0, -2, 1)
	intervals := Isolate(p, Options{})
	require.Len(t, intervals, 2)

	foundZero := false
	for _, iv := range intervals {
		if iv.L == 0 && iv.R == 0 {
			foundZero = true
		}
	}
	assert.True(t, foundZero)
}

func TestIsolateZeroPolynomialIsEveryNonNegative(t *testing.T) {
	intervals := Isolate(poly.Zero(), Options{})
	require.Len(t, intervals, 1)
	assert.Equal(t, 0.0, intervals[0].L)
}
