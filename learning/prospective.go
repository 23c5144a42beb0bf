// File: prospective.go
// Role: the precision/mean a parent's posterior would take using only
// its value children, without writing anything back to the network.
package learning

import "github.com/beliefmesh/hgf/core"

const precisionFloor = 1e-128

type prospectiveTerm struct {
	kappa, gPrime, piHat, delta float64
}

// ProspectivePosterior computes what parent's posterior precision and
// mean would be if only its value children's prediction errors were
// folded in. Both learning rules use this to evaluate a candidate
// coupling strength before Apply* commits anything via SetCoupling.
func ProspectivePosterior(n *core.Network, parent int) (precision, mean float64) {
	children := n.ValueChildren(parent)
	kappas := n.ValueCouplingChildren(parent)
	mu := n.ScalarOr(parent, "mean", 0)

	terms := make([]prospectiveTerm, 0, len(children))
	var deltaPi float64
	for i, c := range children {
		pos := indexOf(n.ValueParents(c), parent)
		g := n.ValueCouplingFn(c, pos)
		_, gPrime, gDoublePrime := g.Apply(mu)
		piHat := n.ScalarOr(c, "expected_precision", 1)
		delta := n.ScalarOr(c, "value_prediction_error", 0)
		kappa := kappas[i]

		deltaPi += piHat * (kappa*kappa*gPrime*gPrime - gDoublePrime*delta)
		terms = append(terms, prospectiveTerm{kappa: kappa, gPrime: gPrime, piHat: piHat, delta: delta})
	}

	precision = n.ScalarOr(parent, "expected_precision", 1) + deltaPi
	if precision < precisionFloor {
		precision = precisionFloor
	}

	mean = n.ScalarOr(parent, "expected_mean", 0)
	for _, t := range terms {
		mean += (t.kappa * t.gPrime * t.piHat / precision) * t.delta
	}

	return precision, mean
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}

	return -1
}
