package poly

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHornerMatchesDirectEvaluation(t *testing.T) {
	// p(x) = 2 + 3x + 4x^2, p(2) = 2+6+16 = 24
	p := New(2, 3, 4)
	assert.InDelta(t, 24.0, Horner(p, 2), 1e-12)
}

func TestCompensatedHornerAgreesWithHornerAwayFromRoots(t *testing.T) {
	p := New(1, -2, -1, 2, 3)
	for _, x := range []float64{-5, -1, 0, 0.5, 2, 10} {
		assert.InDelta(t, Horner(p, x), CompensatedHorner(p, x), 1e-9)
	}
}

func TestCompensatedHornerAtExactRoot(t *testing.T) {
	// (x-1)(x-3) = 3 - 4x + x^2
	p := New(3, -4, 1)
	assert.InDelta(t, 0, CompensatedHorner(p, 1), 1e-12)
	assert.InDelta(t, 0, CompensatedHorner(p, 3), 1e-12)
}
