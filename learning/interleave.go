// File: interleave.go
// Role: folds learning steps into the standard update schedule, excluding
// predictor nodes whose values are driven directly by the caller.
package learning

import (
	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
	"github.com/beliefmesh/hgf/schedule"
)

// Rule selects which learning rule Interleave's queued steps apply.
// Dynamic true selects ApplyDynamicRate; otherwise every learning step
// uses ApplyFixedRate with LR (0 meaning defaultLearningRate).
type Rule struct {
	Dynamic bool
	LR      float64
}

func (r Rule) apply(n *core.Network, id int) {
	if r.Dynamic {
		ApplyDynamicRate(n, id)
		return
	}
	ApplyFixedRate(n, id, r.LR)
}

// Item is one entry of an interleaved update sequence: either an
// ordinary schedule.Step or a queued learning step for NodeID.
type Item struct {
	NodeID     int
	Kind       core.NodeKind
	Phase      kernels.Phase
	Kernel     kernels.Func
	IsLearning bool
	rule       Rule
}

// Run executes this item against n with time delta dt.
func (it Item) Run(n *core.Network, dt float64) {
	if it.IsLearning {
		it.rule.apply(n, it.NodeID)
		return
	}
	it.Kernel(n, it.NodeID, dt)
}

// Interleave filters the network's standard Predictions and Updates
// sequences to exclude predictorIDs, then folds a learning step after
// every remaining PE step: queued learning steps flush immediately
// before the next posterior step, and any still queued at the end flush
// there.
func Interleave(n *core.Network, predictorIDs []int, rule Rule) (predictions []schedule.Step, updates []Item) {
	exclude := toSet(predictorIDs)
	predictions = filterSteps(schedule.Predictions(n), exclude)
	rawUpdates := filterSteps(schedule.Updates(n), exclude)

	updates = make([]Item, 0, 2*len(rawUpdates))
	var queued []int
	flush := func() {
		for _, id := range queued {
			updates = append(updates, Item{NodeID: id, IsLearning: true, rule: rule})
		}
		queued = queued[:0]
	}

	for _, s := range rawUpdates {
		if s.Phase == kernels.Posterior {
			flush()
		}
		updates = append(updates, Item{NodeID: s.NodeID, Kind: s.Kind, Phase: s.Phase, Kernel: s.Kernel})
		if s.Phase == kernels.PredictionError {
			queued = append(queued, s.NodeID)
		}
	}
	flush()

	return predictions, updates
}

func filterSteps(steps []schedule.Step, exclude map[int]bool) []schedule.Step {
	out := make([]schedule.Step, 0, len(steps))
	for _, s := range steps {
		if exclude[s.NodeID] {
			continue
		}
		out = append(out, s)
	}

	return out
}

func toSet(ids []int) map[int]bool {
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}

	return set
}
