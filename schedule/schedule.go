// File: schedule.go
// Role: the two ordered kernel sequences a belief-propagation pass runs
// every time step.
package schedule

import (
	"log"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
)

// Step is one (node, kernel) pairing the propagator runs with a time
// delta. Kind is carried for diagnostics only; the kernel itself already
// knows how to act on its target. Phase lets a propagator recognise a
// run of consecutive Posterior steps, whose targets are pairwise
// distinct by construction and so may be run concurrently.
type Step struct {
	NodeID int
	Kind   core.NodeKind
	Phase  kernels.Phase
	Kernel kernels.Func
}

// Predictions computes the top-down prediction order: a node is emitted
// once every value and volatility parent of it has already been
// emitted, ties broken by ascending id. A node with no parents is always
// eligible; nodes that never become eligible (caught in a cycle, or
// downstream of one) are dropped and logged.
func Predictions(n *core.Network) []Step {
	total := n.NumNodes()
	emitted := make([]bool, total)
	order := make([]Step, 0, total)

	for {
		progress := false
		for id := 0; id < total; id++ {
			if emitted[id] || !parentsReady(n, id, emitted) {
				continue
			}
			order = append(order, Step{NodeID: id, Kind: n.Kind(id), Phase: kernels.Predict, Kernel: kernels.ForKind(n.Kind(id), kernels.Predict)})
			emitted[id] = true
			progress = true
		}
		if !progress {
			break
		}
	}

	var dropped []int
	for id := 0; id < total; id++ {
		if !emitted[id] {
			dropped = append(dropped, id)
		}
	}
	if len(dropped) > 0 {
		log.Printf("schedule: Predictions dropped %d unorderable node(s): %v", len(dropped), dropped)
	}

	return order
}

func parentsReady(n *core.Network, id int, emitted []bool) bool {
	for _, p := range n.ValueParents(id) {
		if !emitted[p] {
			return false
		}
	}
	for _, p := range n.VolatilityParents(id) {
		if !emitted[p] {
			return false
		}
	}

	return true
}

// Updates computes the bottom-up two-phase order: within each pass, the
// posterior batch drains every node whose value+volatility children have
// all left the prediction-error queue, then the PE batch drains every
// node whose own posterior has landed (or that needs none). Passes
// repeat until both queues are empty or a pass makes no progress.
func Updates(n *core.Network) []Step {
	total := n.NumNodes()

	peNeeded := make([]bool, total)
	posteriorNeeded := make([]bool, total)
	for id := 0; id < total; id++ {
		kind := n.Kind(id)
		parentCount := len(n.ValueParents(id)) + len(n.VolatilityParents(id))
		peNeeded[id] = kind == core.EFState || parentCount > 0
		posteriorNeeded[id] = kind != core.EFState && !n.IsInput(id)
	}

	posteriorDone := make([]bool, total)
	peDone := make([]bool, total)
	order := make([]Step, 0, 2*total)

	for {
		progress := false

		for id := 0; id < total; id++ {
			if !posteriorNeeded[id] || posteriorDone[id] || !childrenCleared(n, id, peNeeded, peDone) {
				continue
			}
			order = append(order, Step{NodeID: id, Kind: n.Kind(id), Phase: kernels.Posterior, Kernel: posteriorKernel(n, id)})
			posteriorDone[id] = true
			progress = true
		}

		for id := 0; id < total; id++ {
			if !peNeeded[id] || peDone[id] {
				continue
			}
			if posteriorNeeded[id] && !posteriorDone[id] {
				continue
			}
			order = append(order, Step{NodeID: id, Kind: n.Kind(id), Phase: kernels.PredictionError, Kernel: kernels.ForKind(n.Kind(id), kernels.PredictionError)})
			peDone[id] = true
			progress = true
		}

		if !progress {
			break
		}
	}

	var dropped []int
	for id := 0; id < total; id++ {
		if (posteriorNeeded[id] && !posteriorDone[id]) || (peNeeded[id] && !peDone[id]) {
			dropped = append(dropped, id)
		}
	}
	if len(dropped) > 0 {
		log.Printf("schedule: Updates dropped %d unorderable node(s): %v", len(dropped), dropped)
	}

	return order
}

func childrenCleared(n *core.Network, id int, peNeeded, peDone []bool) bool {
	for _, c := range n.ValueChildren(id) {
		if peNeeded[c] && !peDone[c] {
			return false
		}
	}
	for _, c := range n.VolatilityChildren(id) {
		if peNeeded[c] && !peDone[c] {
			return false
		}
	}

	return true
}

// posteriorKernel resolves the (kind, update_type, has_volatility_children)
// dispatch table from §4.6: continuous-state without volatility children
// always gets the standard formula regardless of update_type.
func posteriorKernel(n *core.Network, id int) kernels.Func {
	switch n.Kind(id) {
	case core.VolatileState:
		return kernels.PosteriorVolatile(n.UpdateType())
	default:
		return kernels.PosteriorContinuous(n.UpdateType(), len(n.VolatilityChildren(id)) > 0)
	}
}
