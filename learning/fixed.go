// File: fixed.go
// Role: learning_weights_fixed — nudge every value parent's coupling by
// a constant learning rate toward the strength that would have produced
// the child's observed mean exactly.
package learning

import (
	"math"

	"github.com/beliefmesh/hgf/core"
)

const defaultLearningRate = 0.01

// ApplyFixedRate adjusts the coupling strength of every value parent of
// child, using lr (or defaultLearningRate if lr == 0). A parent whose
// coupling function is near zero at its prospective mean, or whose
// resulting coupling would be NaN/Inf, keeps its current strength.
func ApplyFixedRate(n *core.Network, child int, lr float64) {
	if lr == 0 {
		lr = defaultLearningRate
	}

	parents := n.ValueParents(child)
	if len(parents) == 0 {
		return
	}
	childMean := n.ScalarOr(child, "mean", 0)

	for i, p := range parents {
		kappa := n.ValueCouplingParents(child)[i]
		_, prospectiveMean := ProspectivePosterior(n, p)
		g := n.ValueCouplingFn(child, i)
		gVal, _, _ := g.Apply(prospectiveMean)

		if math.Abs(gVal) < precisionFloor {
			continue
		}
		expectedKappa := childMean / gVal
		newKappa := kappa + (expectedKappa-kappa)*lr/float64(len(parents))
		if math.IsNaN(newKappa) || math.IsInf(newKappa, 0) {
			continue
		}
		n.SetCoupling(p, child, newKappa)
	}
}
