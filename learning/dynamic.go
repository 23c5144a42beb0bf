// File: dynamic.go
// Role: learning_weights_dynamic — same correction as the fixed rule,
// but scaled by the parent/child precision ratio instead of a constant
// rate, so noisier children move their parents' couplings less.
package learning

import (
	"math"

	"github.com/beliefmesh/hgf/core"
)

// ApplyDynamicRate mirrors ApplyFixedRate, replacing the constant
// learning rate with dynamicRate(p, child): the expected precision ratio
// π̂_child / (π̂_p + π̂_child), computed per edge from child's own
// expected precision.
func ApplyDynamicRate(n *core.Network, child int) {
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
		lr := dynamicRate(n, p, child)
		newKappa := kappa + (expectedKappa-kappa)*lr/float64(len(parents))
		if math.IsNaN(newKappa) || math.IsInf(newKappa, 0) {
			continue
		}
		n.SetCoupling(p, child, newKappa)
	}
}

func dynamicRate(n *core.Network, parent, child int) float64 {
	piParent := n.ScalarOr(parent, "expected_precision", 1)
	piChild := n.ScalarOr(child, "expected_precision", 1)

	denom := piParent + piChild
	if denom < precisionFloor {
		return 0
	}

	return piChild / denom
}
