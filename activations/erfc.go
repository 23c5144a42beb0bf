// File: erfc.go
// Role: complementary error function backing GELU.
//
// erfc delegates to gonum's mathext.Erfc, which is accurate to machine
// precision and comfortably clears the 1.5e-7 bound of the classic
// Abramowitz-Stegun rational approximation. erfcSeries below is that
// textbook approximation, kept only so erfc_internal_test.go can assert
// the two agree to within bound; see DESIGN.md for why this one function
// is intentionally standard-library-only.
package activations

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

func erfc(x float64) float64 {
	return mathext.Erfc(x)
}

// erfcSeries is the Abramowitz & Stegun (1964) §7.1.26 rational
// approximation to erfc, with maximum absolute error below 1.5e-7 on the
// whole real line. It is a direct transcription of the textbook formula,
// not a redesign, so it is not expressed in terms of any third-party
// numerics library.
func erfcSeries(x float64) float64 {
	sign := 1.0
	if x < 0 {
		sign = -1.0
		x = -x
	}

	const (
		a1 = 0.254829592
		a2 = -0.284496736
		a3 = 1.421413741
		a4 = -1.453152027
		a5 = 1.061405429
		p  = 0.3275911
	)

	t := 1 / (1 + p*x)
	poly := ((((a5*t+a4)*t+a3)*t+a2)*t + a1) * t
	erf := 1 - poly*math.Exp(-x*x)

	return 1 - sign*erf
}
