package learning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
	"github.com/beliefmesh/hgf/learning"
)

func TestInterleaveExcludesPredictors(t *testing.T) {
	n := core.NewNetwork()
	predictor := n.AddNode(core.ContinuousState)
	child := n.AddNode(core.ContinuousState, core.WithValueParents(predictor))
	n.SetCoupling(predictor, child, 1.0)

	predictions, updates := learning.Interleave(n, []int{predictor}, learning.Rule{LR: 0.1})

	for _, s := range predictions {
		assert.NotEqual(t, predictor, s.NodeID)
	}
	for _, it := range updates {
		assert.NotEqual(t, predictor, it.NodeID)
	}
}

func TestInterleaveQueuesLearningAfterPredictionErrorAndFlushesBeforePosterior(t *testing.T) {
	n := core.NewNetwork()
	leaf := n.AddNode(core.ContinuousState)
	parent := n.AddNode(core.ContinuousState, core.WithValueChildren(leaf))

	_, updates := learning.Interleave(n, nil, learning.Rule{LR: 0.1})

	// parent is leaf's value parent, so a learning step for leaf is
	// queued after leaf's PE and flushed immediately before parent's
	// posterior: PE(leaf), learning(leaf), posterior(parent).
	require.NotEmpty(t, updates)

	var peIdx, learnIdx, posteriorIdx = -1, -1, -1
	for i, it := range updates {
		if !it.IsLearning && it.Phase == kernels.PredictionError && it.NodeID == leaf {
			peIdx = i
		}
		if it.IsLearning && it.NodeID == leaf {
			learnIdx = i
		}
		if !it.IsLearning && it.Phase == kernels.Posterior && it.NodeID == parent {
			posteriorIdx = i
		}
	}
	require.GreaterOrEqual(t, peIdx, 0)
	require.GreaterOrEqual(t, learnIdx, 0)
	require.GreaterOrEqual(t, posteriorIdx, 0)
	assert.Less(t, peIdx, learnIdx)
	assert.Less(t, learnIdx, posteriorIdx)
}

func TestInterleaveQueuesLearningStepForNodeWithValueParents(t *testing.T) {
	n := core.NewNetwork()
	leaf := n.AddNode(core.ContinuousState)
	mid := n.AddNode(core.ContinuousState, core.WithValueChildren(leaf))
	top := n.AddNode(core.ContinuousState, core.WithValueChildren(mid))
	n.SetCoupling(top, mid, 1.0)

	_, updates := learning.Interleave(n, nil, learning.Rule{LR: 0.1})

	found := false
	for _, it := range updates {
		if it.IsLearning && it.NodeID == mid {
			found = true
		}
	}
	assert.True(t, found, "mid has a value parent, so a learning step for it must be queued")
}
