// File: ef.go
// Role: the exponential-family node's single prediction-error phase
// step: accumulate sufficient statistics and fold them into the
// conjugate posterior mean.
package kernels

import (
	"github.com/beliefmesh/hgf/activations"
	"github.com/beliefmesh/hgf/core"
)

// PredictionErrorEF appends the observation's sufficient statistics
// (x, x^2) onto xis as a running componentwise sum and updates mean as
// the canonical conjugate posterior implied by nus. ef-state nodes have
// no parents or children and no predict/posterior phase.
func PredictionErrorEF(n *core.Network, id int, _ float64) {
	x := n.ScalarOr(id, "mean", 0)
	first, second := activations.SufficientStatistics(x)
	_ = n.AddToVector(id, "xis", []float64{first, second})

	nus := n.ScalarOr(id, "nus", 0)
	xis, err := n.Vector(id, "xis")
	if err != nil || len(xis) < 2 {
		return
	}
	count := nus + 1
	posteriorMean := xis[0] / count
	_ = n.SetScalar(id, "mean", posteriorMean)
	_ = n.SetScalar(id, "nus", count)
}
