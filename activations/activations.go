// File: activations.go
// Role: scalar activation functions, their derivatives, and sufficient
// statistics used by coupling functions and the ef-state kernel.
package activations

import "math"

// Triple bundles an activation with its first and second derivative.
// Coupling functions stored on a node are always a Triple; a missing
// coupling function resolves to Identity.
type Triple struct {
	F   func(x float64) float64
	Df  func(x float64) float64
	D2f func(x float64) float64
}

// Apply evaluates f, f' and f'' at x in one call, the shape kernels want
// when they need a coupling function's value and both derivatives at a
// parent's current mean.
func (t Triple) Apply(x float64) (f, df, d2f float64) {
	return t.F(x), t.Df(x), t.D2f(x)
}

// Identity is the default coupling function: f(x)=x, f'=1, f''=0.
var Identity = Triple{
	F:   func(x float64) float64 { return x },
	Df:  func(float64) float64 { return 1 },
	D2f: func(float64) float64 { return 0 },
}

// Linear is an alias of Identity kept distinct so the registry can name it
// explicitly ("linear") without implying it is the zero-value fallback.
var Linear = Identity

// ReLU is max(0, x).
var ReLU = Triple{
	F: func(x float64) float64 {
		if x > 0 {
			return x
		}
		return 0
	},
	Df: func(x float64) float64 {
		if x > 0 {
			return 1
		}
		return 0
	},
	D2f: func(float64) float64 { return 0 },
}

// leakyReLUSlope is the negative-side slope shared by LeakyReLU and PReLU
// (PReLU with alpha=0.01 reduces to LeakyReLU).
const leakyReLUSlope = 0.01

// LeakyReLU has slope 1 for x>=0 and 0.01 otherwise.
var LeakyReLU = Triple{
	F: func(x float64) float64 {
		if x >= 0 {
			return x
		}
		return leakyReLUSlope * x
	},
	Df: func(x float64) float64 {
		if x >= 0 {
			return 1
		}
		return leakyReLUSlope
	},
	D2f: func(float64) float64 { return 0 },
}

// PReLU returns a Triple parametrised by the negative-side slope alpha.
// PReLU(x, 0.01) is numerically identical to LeakyReLU.
func PReLU(alpha float64) Triple {
	return Triple{
		F: func(x float64) float64 {
			if x >= 0 {
				return x
			}
			return alpha * x
		},
		Df: func(x float64) float64 {
			if x >= 0 {
				return 1
			}
			return alpha
		},
		D2f: func(float64) float64 { return 0 },
	}
}

func sigmoidF(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// Sigmoid is the logistic function; f' and f'' are expressed in terms of
// f itself.
var Sigmoid = Triple{
	F: sigmoidF,
	Df: func(x float64) float64 {
		f := sigmoidF(x)
		return f * (1 - f)
	},
	D2f: func(x float64) float64 {
		f := sigmoidF(x)
		fp := f * (1 - f)
		return fp * (1 - 2*f)
	},
}

// Tanh is the hyperbolic tangent; f'=1-f², f''=-2f(1-f²).
var Tanh = Triple{
	F: math.Tanh,
	Df: func(x float64) float64 {
		f := math.Tanh(x)
		return 1 - f*f
	},
	D2f: func(x float64) float64 {
		f := math.Tanh(x)
		return -2 * f * (1 - f*f)
	},
}

// GELU is x*Phi(x) with Phi the standard normal CDF, computed from Erfc
// (see erfc.go). f' and f'' follow the product rule on the Gaussian pdf.
var GELU = Triple{
	F: func(x float64) float64 {
		return x * gaussianCDF(x)
	},
	Df: func(x float64) float64 {
		return gaussianCDF(x) + x*gaussianPDF(x)
	},
	D2f: func(x float64) float64 {
		return 2*gaussianPDF(x) - x*x*gaussianPDF(x)
	},
}

func gaussianPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}

func gaussianCDF(x float64) float64 {
	return 0.5 * erfc(-x/math.Sqrt2)
}

// SufficientStatistics returns the pair (x, x^2) used by the ef-state
// kernel's conjugate update.
func SufficientStatistics(x float64) (first, second float64) {
	return x, x * x
}

// Resolve maps a coupling-function name to its Triple. Unknown names
// (including the empty string) resolve to Identity, the documented
// missing-coupling-function fallback.
func Resolve(name string) Triple {
	switch name {
	case "relu":
		return ReLU
	case "sigmoid":
		return Sigmoid
	case "tanh":
		return Tanh
	case "leaky_relu":
		return LeakyReLU
	case "prelu":
		return PReLU(leakyReLUSlope)
	case "gelu":
		return GELU
	case "linear":
		return Linear
	default:
		return Identity
	}
}
