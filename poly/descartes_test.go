package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignVariationsCountsChanges(t *testing.T) {
	// 3 - 4x + x^2: signs +,-,+ -> 2 variations (matches 2 positive roots)
	assert.Equal(t, 2, SignVariations(New(3, -4, 1)))
	// x^3 + x + 1: signs +,+,+ -> 0 variations, no positive roots
	assert.Equal(t, 0, SignVariations(New(1, 1, 0, 1)))
}

func TestSignVariationsSkipsZeros(t *testing.T) {
	assert.Equal(t, 1, SignVariations(New(1, 0, 0, -1)))
}

func TestSignVariationsPanicsOnNaN(t *testing.T) {
	p := Polynomial{1, math.NaN()}
	assert.Panics(t, func() { SignVariations(p) })
}
