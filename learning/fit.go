// File: fit.go
// Role: the Fit driver — run the learning-interleaved schedule over
// paired predictor/target observations, adjusting couplings as it goes.
package learning

import (
	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/propagate"
)

// Fit drives n through len(x) time steps: each step sets every predictor
// node's expected_mean from x[t], runs the filtered prediction sequence,
// sets every target node's mean from y[t], then runs the learning-
// interleaved update sequence (posterior/PE kernels and learning steps
// in schedule order), recording every node's trajectory throughout.
//
// lr == nil selects the dynamic precision-ratio rule; otherwise every
// learning step uses the fixed rate *lr. Before the run, every
// non-predictor node gets an "lr" scalar attribute stamped with the
// effective rate (0 for the dynamic rule, a diagnostic marker only —
// never read by the rule itself).
func Fit(n *core.Network, x, y [][]float64, predictorIDs, targetIDs []int, lr *float64) *propagate.Trajectories {
	rule := Rule{Dynamic: lr == nil}
	if lr != nil {
		rule.LR = *lr
	}
	stampLRAttribute(n, predictorIDs, rule)

	predictions, updates := Interleave(n, predictorIDs, rule)
	trajectories := propagate.NewTrajectories(n.NumNodes(), len(x))

	for t := range x {
		for i, id := range predictorIDs {
			if i < len(x[t]) {
				_ = n.SetPredictors(id, x[t][i])
			}
		}

		for _, s := range predictions {
			s.Kernel(n, s.NodeID, 1.0)
		}

		for i, id := range targetIDs {
			if i < len(y[t]) {
				_ = n.SetObservation(id, y[t][i])
			}
		}

		for _, item := range updates {
			item.Run(n, 1.0)
		}

		recordCouplingTrajectories(n, trajectories)
		trajectories.Record(n)
	}

	return trajectories
}

// recordCouplingTrajectories snapshots value_coupling_children onto the
// vector trajectory of every node that has value children, alongside the
// ordinary attribute vectors Record captures. Coupling strengths live in
// the network's edge tables, not its attribute maps, so Record alone
// never sees them.
func recordCouplingTrajectories(n *core.Network, trajectories *propagate.Trajectories) {
	step := trajectories.Len()
	for id := 0; id < n.NumNodes(); id++ {
		if len(n.ValueChildren(id)) == 0 {
			continue
		}
		nt := trajectories.Node(id)
		series, ok := nt.Vectors["value_coupling_children"]
		if !ok {
			series = make([][]float64, step, step+1)
		}
		nt.Vectors["value_coupling_children"] = append(series, n.ValueCouplingChildren(id))
	}
}

func stampLRAttribute(n *core.Network, predictorIDs []int, rule Rule) {
	exclude := toSet(predictorIDs)
	for id := 0; id < n.NumNodes(); id++ {
		if exclude[id] {
			continue
		}
		_ = n.SetScalar(id, "lr", rule.LR)
	}
}
