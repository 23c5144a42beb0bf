// File: volatile.go
// Role: prediction, prediction-error, and the three posterior variants
// for volatile-state nodes, which bundle a value level and a volatility
// level into one node with an implicit internal coupling between them.
package kernels

import "github.com/beliefmesh/hgf/core"

// PredictVolatile predicts the volatility level first (it has no
// parents of its own, only tonic terms), then the value level, whose
// total log-volatility folds in the just-predicted volatility level's
// expected_mean_vol through volatility_coupling_internal.
func PredictVolatile(n *core.Network, id int, dt float64) {
	predictVolatilityLevel(n, id, dt)
	predictValueLevel(n, id, dt)
}

func predictVolatilityLevel(n *core.Network, id int, dt float64) {
	meanVol := n.ScalarOr(id, "mean_vol", 0)
	precisionVol := n.ScalarOr(id, "precision_vol", 1)
	tonicDriftVol := n.ScalarOr(id, "tonic_drift_vol", 0)
	tonicVolatilityVol := n.ScalarOr(id, "tonic_volatility_vol", 0)
	autoStrengthVol := n.ScalarOr(id, "autoconnection_strength_vol", 1)

	expectedMeanVol := autoStrengthVol*meanVol + dt*tonicDriftVol
	total := clampExponent(tonicVolatilityVol)
	omega := dt * clampedExp(total)
	if omega < precisionFloor {
		omega = precisionFloor
	}
	expectedPrecisionVol := 1 / (1/precisionVol + omega)
	effectivePrecisionVol := omega * expectedPrecisionVol

	_ = n.SetScalar(id, "expected_mean_vol", expectedMeanVol)
	_ = n.SetScalar(id, "expected_precision_vol", expectedPrecisionVol)
	_ = n.SetScalar(id, "effective_precision_vol", effectivePrecisionVol)
	_ = n.SetScalar(id, "current_variance_vol", 1/precisionVol)
}

func predictValueLevel(n *core.Network, id int, dt float64) {
	mean := n.ScalarOr(id, "mean", 0)
	precision := n.ScalarOr(id, "precision", 1)
	tonicDrift := n.ScalarOr(id, "tonic_drift", 0)
	tonicVolatility := n.ScalarOr(id, "tonic_volatility", 0)
	autoStrength := n.ScalarOr(id, "autoconnection_strength", 1)
	volatilityCouplingInternal := n.ScalarOr(id, "volatility_coupling_internal", 1)
	expectedMeanVol := n.ScalarOr(id, "expected_mean_vol", 0)

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

	total := clampExponent(tonicVolatility + volatilityCouplingInternal*expectedMeanVol)
	omega := dt * clampedExp(total)
	if omega < precisionFloor {
		omega = precisionFloor
	}

	var expectedPrecision float64
	if n.IsInput(id) {
		expectedPrecision = precision
	} else {
		expectedPrecision = 1 / (1/precision + omega)
	}
	effectivePrecision := omega * expectedPrecision

	_ = n.SetScalar(id, "expected_mean", expectedMean)
	_ = n.SetScalar(id, "expected_precision", expectedPrecision)
	_ = n.SetScalar(id, "effective_precision", effectivePrecision)
	_ = n.SetScalar(id, "current_variance", 1/precision)
}

// PredictionErrorVolatile computes the value level's PE exactly as
// continuous-state does, and the volatility level's PE via the implicit
// internal link, undivided (it has exactly one "volatility parent", the
// node's own value level, and is not normalised by a parent count).
func PredictionErrorVolatile(n *core.Network, id int, dt float64) {
	PredictionErrorContinuous(n, id, dt)

	expectedPrecisionVol := n.ScalarOr(id, "expected_precision_vol", 1)
	precisionVol := n.ScalarOr(id, "precision_vol", 1)
	meanVol := n.ScalarOr(id, "mean_vol", 0)
	expectedMeanVol := n.ScalarOr(id, "expected_mean_vol", 0)
	deltaVol := meanVol - expectedMeanVol
	bigDeltaVol := expectedPrecisionVol/precisionVol + expectedPrecisionVol*deltaVol*deltaVol - 1

	_ = n.SetScalar(id, "value_prediction_error_vol", deltaVol)
	_ = n.SetScalar(id, "volatility_prediction_error_vol", bigDeltaVol)
}

// recomputeValuePE re-derives the value-level prediction error after the
// value level's posterior has been written, so the volatility level's
// update sees the corrected value-level state rather than the
// pre-update prediction error.
func recomputeValuePE(n *core.Network, id int) (delta, bigDelta float64) {
	mean := n.ScalarOr(id, "mean", 0)
	expectedMean := n.ScalarOr(id, "expected_mean", 0)
	valueParents := n.ValueParents(id)
	delta = (mean - expectedMean) / float64(maxInt(1, len(valueParents)))

	expectedPrecision := n.ScalarOr(id, "expected_precision", 1)
	precision := n.ScalarOr(id, "precision", 1)
	volatilityParents := n.VolatilityParents(id)
	bigDelta = (expectedPrecision/precision + expectedPrecision*delta*delta - 1) /
		float64(maxInt(1, len(volatilityParents)))

	_ = n.SetScalar(id, "value_prediction_error", delta)
	_ = n.SetScalar(id, "volatility_prediction_error", bigDelta)

	return delta, bigDelta
}

// PosteriorVolatileStandard updates the value level (precision then
// mean, the same formula regardless of variant — see PosteriorVolatileEHGF),
// recomputes the value level's prediction error against the new
// posterior, then updates the volatility level (precision then mean)
// treating the value level as its sole "volatility child" with
// kappa=volatility_coupling_internal and gamma=effective_precision.
func PosteriorVolatileStandard(n *core.Network, id int, dt float64) {
	PosteriorContinuousStandard(n, id, dt)
	posteriorVolatilityLevel(n, id, false)
}

// PosteriorVolatileEHGF updates the value level with the same
// precision-then-mean formula as every other variant — §4.4 fixes the
// value level's ordering regardless of update_type — and differs from
// PosteriorVolatileStandard only in the volatility level: mean first
// (pivoting on expected_precision_vol), then precision.
func PosteriorVolatileEHGF(n *core.Network, id int, dt float64) {
	PosteriorContinuousStandard(n, id, dt)
	posteriorVolatilityLevel(n, id, true)
}

// PosteriorVolatileUnbounded updates the value level with the same
// fixed formula, then applies the two-quadratic blend to the volatility
// level using the just-updated value level in the parent role.
func PosteriorVolatileUnbounded(n *core.Network, id int, dt float64) {
	PosteriorContinuousStandard(n, id, dt)
	recomputeValuePE(n, id)
	posteriorVolatilityLevelUnbounded(n, id)
}

func posteriorVolatilityLevelUnbounded(n *core.Network, id int) {
	kappa := n.ScalarOr(id, "volatility_coupling_internal", 1)
	muHat := n.ScalarOr(id, "expected_mean_vol", 0)
	piHat := n.ScalarOr(id, "expected_precision_vol", 1)
	v := n.ScalarOr(id, "current_variance_vol", 1/n.ScalarOr(id, "precision_vol", 1))

	precision := n.ScalarOr(id, "precision", 1)
	mean := n.ScalarOr(id, "mean", 0)
	expectedMean := n.ScalarOr(id, "expected_mean", 0)
	omega := n.ScalarOr(id, "tonic_volatility", 0)

	residual := mean - expectedMean
	numerator := 1/precision + residual*residual

	posteriorPrecision, posteriorMean := unboundedBlend(kappa, muHat, piHat, v, omega, numerator)
	_ = n.SetScalar(id, "precision_vol", floorPrecision(posteriorPrecision))
	_ = n.SetScalar(id, "mean_vol", posteriorMean)
}

// posteriorVolatilityLevel updates the volatility level treating the
// value level as its one volatility child. meanFirst selects the eHGF
// ordering (mean computed before precision, pivoting on
// expected_precision_vol) versus the standard ordering (precision
// before mean). Both orderings divide the mean update by
// 2*expected_precision_vol, matching PosteriorContinuousStandard's
// volatility term.
func posteriorVolatilityLevel(n *core.Network, id int, meanFirst bool) {
	recomputeValuePE(n, id)

	kappa := n.ScalarOr(id, "volatility_coupling_internal", 1)
	gamma := n.ScalarOr(id, "effective_precision", 0)
	bigDelta := n.ScalarOr(id, "volatility_prediction_error", 0)
	expectedPrecisionVol := n.ScalarOr(id, "expected_precision_vol", 1)

	kg := kappa * gamma
	deltaPi := 0.5*kg*kg + kg*kg*bigDelta - 0.5*kappa*kappa*gamma*bigDelta

	if meanFirst {
		deltaMu := (kg * bigDelta) / (2 * expectedPrecisionVol)
		posteriorMean := n.ScalarOr(id, "expected_mean_vol", 0) + deltaMu
		_ = n.SetScalar(id, "mean_vol", posteriorMean)

		posteriorPrecision := floorPrecision(expectedPrecisionVol + deltaPi)
		_ = n.SetScalar(id, "precision_vol", posteriorPrecision)

		return
	}

	posteriorPrecision := floorPrecision(expectedPrecisionVol + deltaPi)
	deltaMu := (kg * bigDelta) / (2 * expectedPrecisionVol)
	posteriorMean := n.ScalarOr(id, "expected_mean_vol", 0) + deltaMu

	_ = n.SetScalar(id, "precision_vol", posteriorPrecision)
	_ = n.SetScalar(id, "mean_vol", posteriorMean)
}
