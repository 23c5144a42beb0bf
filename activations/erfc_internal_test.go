package activations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErfcSeriesMatchesGonum pins the textbook Abramowitz-Stegun
// approximation (erfcSeries) against gonum's erfc to within 1.5e-6, a
// tolerance ten times looser than the 1.5e-7 bound the approximation
// guarantees.
func TestErfcSeriesMatchesGonum(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.1 {
		assert.InDelta(t, erfc(x), erfcSeries(x), 1.5e-6)
	}
}

func TestErfcSeriesAgainstStdlib(t *testing.T) {
	for x := -5.0; x <= 5.0; x += 0.37 {
		assert.InDelta(t, math.Erfc(x), erfcSeries(x), 1.5e-6)
	}
}
