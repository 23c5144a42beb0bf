// File: continuous.go
// Role: prediction, prediction-error, and the three posterior variants
// for continuous-state nodes.
package kernels

import "github.com/beliefmesh/hgf/core"

// PredictContinuous computes expected_mean, expected_precision,
// effective_precision, and current_variance from a node's own state and
// its value/volatility parents' already-predicted attributes. Callers
// must run it on parents before children; the scheduler guarantees this.
func PredictContinuous(n *core.Network, id int, dt float64) {
	mean := n.ScalarOr(id, "mean", 0)
	precision := n.ScalarOr(id, "precision", 1)
	tonicDrift := n.ScalarOr(id, "tonic_drift", 0)
	tonicVolatility := n.ScalarOr(id, "tonic_volatility", 0)
	autoStrength := n.ScalarOr(id, "autoconnection_strength", 1)

	valueParents := n.ValueParents(id)
	valuePsi := n.ValueCouplingParents(id)
	driftrate := tonicDrift
	for i, p := range valueParents {
		g := n.ValueCouplingFn(id, i)
		parentExpMean := n.ScalarOr(p, "expected_mean", 0)
		gVal, _, _ := g.Apply(parentExpMean)
		driftrate += valuePsi[i] * gVal
	}
	expectedMean := autoStrength*mean + dt*driftrate

	volatilityParents := n.VolatilityParents(id)
	volatilityKappa := n.VolatilityCouplingParents(id)
	total := tonicVolatility
	for j, p := range volatilityParents {
		total += volatilityKappa[j] * n.ScalarOr(p, "mean", 0)
	}
	total = clampExponent(total)

	omega := dt * clampedExp(total)
	if omega < precisionFloor {
		omega = precisionFloor
	}

	var expectedPrecision float64
	if n.IsInput(id) && len(volatilityParents) == 0 {
		expectedPrecision = precision
	} else {
		expectedPrecision = 1 / (1/precision + omega)
	}
	effectivePrecision := omega * expectedPrecision
	currentVariance := 1 / precision

	_ = n.SetScalar(id, "expected_mean", expectedMean)
	_ = n.SetScalar(id, "expected_precision", expectedPrecision)
	_ = n.SetScalar(id, "effective_precision", effectivePrecision)
	_ = n.SetScalar(id, "current_variance", currentVariance)
}

// PredictionErrorContinuous computes value_prediction_error and
// volatility_prediction_error from the node's own mean/expected_mean and
// precision/expected_precision.
func PredictionErrorContinuous(n *core.Network, id int, _ float64) {
	mean := n.ScalarOr(id, "mean", 0)
	expectedMean := n.ScalarOr(id, "expected_mean", 0)
	valueParents := n.ValueParents(id)
	delta := (mean - expectedMean) / float64(maxInt(1, len(valueParents)))

	expectedPrecision := n.ScalarOr(id, "expected_precision", 1)
	precision := n.ScalarOr(id, "precision", 1)
	volatilityParents := n.VolatilityParents(id)
	bigDelta := (expectedPrecision/precision + expectedPrecision*delta*delta - 1) /
		float64(maxInt(1, len(volatilityParents)))

	_ = n.SetScalar(id, "value_prediction_error", delta)
	_ = n.SetScalar(id, "volatility_prediction_error", bigDelta)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// valueChildTerm is one value child's contribution to a parent's
// posterior precision and mean updates.
type valueChildTerm struct {
	kappa, gPrime, gDoublePrime, piHat, delta float64
}

// volatilityChildTerm is one volatility child's contribution.
type volatilityChildTerm struct {
	kappa, gamma, bigDelta float64
}

func collectValueChildTerms(n *core.Network, id int) []valueChildTerm {
	children := n.ValueChildren(id)
	kappas := n.ValueCouplingChildren(id)
	mu := n.ScalarOr(id, "mean", 0)

	terms := make([]valueChildTerm, 0, len(children))
	for i, c := range children {
		pos := indexOf(n.ValueParents(c), id)
		g := n.ValueCouplingFn(c, pos)
		_, gp, gpp := g.Apply(mu)
		terms = append(terms, valueChildTerm{
			kappa:        kappas[i],
			gPrime:       gp,
			gDoublePrime: gpp,
			piHat:        n.ScalarOr(c, "expected_precision", 1),
			delta:        n.ScalarOr(c, "value_prediction_error", 0),
		})
	}

	return terms
}

func collectVolatilityChildTerms(n *core.Network, id int) []volatilityChildTerm {
	children := n.VolatilityChildren(id)
	kappas := n.VolatilityCouplingChildren(id)

	terms := make([]volatilityChildTerm, 0, len(children))
	for j, c := range children {
		terms = append(terms, volatilityChildTerm{
			kappa:    kappas[j],
			gamma:    n.ScalarOr(c, "effective_precision", 0),
			bigDelta: n.ScalarOr(c, "volatility_prediction_error", 0),
		})
	}

	return terms
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}

func posteriorDeltaPi(valueTerms []valueChildTerm, volTerms []volatilityChildTerm) float64 {
	var deltaPi float64
	for _, t := range valueTerms {
		deltaPi += t.piHat * (t.kappa*t.kappa*t.gPrime*t.gPrime - t.gDoublePrime*t.delta)
	}
	for _, t := range volTerms {
		kg := t.kappa * t.gamma
		deltaPi += 0.5*kg*kg + kg*kg*t.bigDelta - 0.5*t.kappa*t.kappa*t.gamma*t.bigDelta
	}

	return deltaPi
}

// PosteriorContinuousStandard computes posterior precision first, then
// posterior mean using posterior_precision as the value-term denominator.
// The volatility-term mean denominator is 2*expected_precision rather
// than 2*posterior_precision: this asymmetry reproduces the worked
// numeric examples the rest of this package is tested against (see
// DESIGN.md) even though the prose formula states a single denominator
// for both terms.
func PosteriorContinuousStandard(n *core.Network, id int, _ float64) {
	valueTerms := collectValueChildTerms(n, id)
	volTerms := collectVolatilityChildTerms(n, id)

	expectedPrecision := n.ScalarOr(id, "expected_precision", 1)
	posteriorPrecision := floorPrecision(expectedPrecision + posteriorDeltaPi(valueTerms, volTerms))

	var deltaMu float64
	for _, t := range valueTerms {
		deltaMu += (t.kappa * t.gPrime * t.piHat / posteriorPrecision) * t.delta
	}
	for _, t := range volTerms {
		deltaMu += (t.kappa * t.gamma * t.bigDelta) / (2 * expectedPrecision)
	}
	posteriorMean := n.ScalarOr(id, "expected_mean", 0) + deltaMu

	_ = n.SetScalar(id, "precision", posteriorPrecision)
	_ = n.SetScalar(id, "mean", posteriorMean)
}

// PosteriorContinuousEHGF computes posterior mean first, anticipating
// the update by pivoting on expected_precision for both value and
// volatility terms, then derives posterior precision from the same
// child contributions (which do not depend on the just-written mean).
func PosteriorContinuousEHGF(n *core.Network, id int, _ float64) {
	valueTerms := collectValueChildTerms(n, id)
	volTerms := collectVolatilityChildTerms(n, id)

	expectedPrecision := n.ScalarOr(id, "expected_precision", 1)
	var deltaMu float64
	for _, t := range valueTerms {
		deltaMu += (t.kappa * t.gPrime * t.piHat / expectedPrecision) * t.delta
	}
	for _, t := range volTerms {
		deltaMu += (t.kappa * t.gamma * t.bigDelta) / (2 * expectedPrecision)
	}
	posteriorMean := n.ScalarOr(id, "expected_mean", 0) + deltaMu
	_ = n.SetScalar(id, "mean", posteriorMean)

	posteriorPrecision := floorPrecision(expectedPrecision + posteriorDeltaPi(valueTerms, volTerms))
	_ = n.SetScalar(id, "precision", posteriorPrecision)
}

// PosteriorContinuousUnbounded blends two quadratic approximations formed
// around the node's single volatility child. Nodes dispatched here
// without a volatility child (which the scheduler never does, but
// defensive callers might) fall back to the standard posterior.
func PosteriorContinuousUnbounded(n *core.Network, id int, dt float64) {
	volChildren := n.VolatilityChildren(id)
	if len(volChildren) == 0 {
		PosteriorContinuousStandard(n, id, dt)
		return
	}
	child := volChildren[0]
	kappa := n.VolatilityCouplingChildren(id)[0]

	muHat := n.ScalarOr(id, "expected_mean", 0)
	piHat := n.ScalarOr(id, "expected_precision", 1)
	v := n.ScalarOr(id, "current_variance", 1/n.ScalarOr(id, "precision", 1))

	precisionChild := n.ScalarOr(child, "precision", 1)
	meanChild := n.ScalarOr(child, "mean", 0)
	expectedMeanChild := n.ScalarOr(child, "expected_mean", 0)
	omegaChild := n.ScalarOr(child, "tonic_volatility", 0)

	residual := meanChild - expectedMeanChild
	numerator := 1/precisionChild + residual*residual

	precision, mean := unboundedBlend(kappa, muHat, piHat, v, omegaChild, numerator)

	_ = n.SetScalar(id, "precision", floorPrecision(precision))
	_ = n.SetScalar(id, "mean", mean)
}

func unboundedBlend(kappa, muHat, piHat, v, omega, numerator float64) (precision, mean float64) {
	lnV := safeLog(v)
	x := kappa*muHat + omega
	w := sigmoid(x - lnV)
	expX := clampedExp(x)
	delta := numerator/(v+expX) - 1
	pi1 := piHat + 0.5*kappa*kappa*w*(1-w)
	mu1 := muHat + (kappa*w/(2*pi1))*delta

	phi := safeLog(v * (2 + sqrt3))
	expPhiOmega := clampedExp(kappa*phi + omega)
	wPhi := expPhiOmega / (v + expPhiOmega)
	deltaPhi := numerator/(v+expPhiOmega) - 1
	pi2 := piHat + 0.5*kappa*kappa*wPhi*(wPhi+(2*wPhi-1)*deltaPhi)
	muHatPhi := ((2*pi2-1)*phi + muHat) / (2 * pi2)
	mu2 := muHatPhi + (kappa*wPhi/(2*pi2))*deltaPhi

	thetaL := sqrtNonNeg(1.2 * numerator / (v * pi1))
	b := sigmoid(8*(x-thetaL)) * (1 - sigmoid(x))

	precision = (1-b)*pi1 + b*pi2
	mean = (1-b)*mu1 + b*mu2

	return precision, mean
}
