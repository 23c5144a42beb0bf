package propagate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/propagate"
)

func TestRunOneParentMatchesWorkedExample(t *testing.T) {
	n := core.NewNetwork()
	node0 := n.AddNode(core.ContinuousState)
	node1 := n.AddNode(core.ContinuousState, core.WithValueChildren(node0))

	trajectories, err := propagate.Run(n, [][]float64{{0.2}}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, trajectories.Len())

	t0 := trajectories.Node(node0)
	assert.InDelta(t, 1.0, t0.Scalars["precision"][0], 1e-6)
	assert.InDelta(t, 0.2, t0.Scalars["mean"][0], 1e-6)

	t1 := trajectories.Node(node1)
	assert.InDelta(t, 1.9820137, t1.Scalars["precision"][0], 1e-6)
	assert.InDelta(t, 0.10090748, t1.Scalars["mean"][0], 1e-6)
}

func TestRunRejectsMismatchedObservationWidth(t *testing.T) {
	n := core.NewNetwork()
	n.AddNode(core.ContinuousState)

	_, err := propagate.Run(n, [][]float64{{0.1, 0.2}}, nil)
	assert.ErrorIs(t, err, propagate.ErrObservationShape)
}

func TestRunRecordsFullLengthTrajectoryPerStep(t *testing.T) {
	n := core.NewNetwork()
	leaf := n.AddNode(core.ContinuousState)
	n.AddNode(core.ContinuousState, core.WithValueChildren(leaf))

	observations := [][]float64{{0.1}, {0.2}, {0.3}}
	trajectories, err := propagate.Run(n, observations, nil)
	require.NoError(t, err)

	// current_variance is written by PredictContinuous on every step this
	// node runs, so its series is populated from step 0 with no NaN
	// backfill needed; see TestRecordBackfillsMidStreamScalarWithNaN for
	// the genuine lazy-allocation case.
	series, ok := trajectories.Node(leaf).Scalars["current_variance"]
	require.True(t, ok)
	assert.Len(t, series, 3)
	for _, v := range series {
		assert.False(t, math.IsNaN(v))
	}
}

func TestRunConcurrentPosteriorBatchesMatchesSequential(t *testing.T) {
	buildNetwork := func() (*core.Network, int, int, int) {
		n := core.NewNetwork()
		node0 := n.AddNode(core.ContinuousState)
		node1 := n.AddNode(core.ContinuousState, core.WithValueChildren(node0))
		node2 := n.AddNode(core.ContinuousState, core.WithVolatilityChildren(node0))
		return n, node0, node1, node2
	}

	observations := [][]float64{{0.1}, {0.2}, {0.3}, {-0.1}}

	seqNet, _, node1Seq, node2Seq := buildNetwork()
	seqTrajectories, err := propagate.Run(seqNet, observations, nil)
	require.NoError(t, err)

	concNet, _, node1Conc, node2Conc := buildNetwork()
	concTrajectories, err := propagate.Run(concNet, observations, nil, propagate.WithConcurrentPosteriorBatches())
	require.NoError(t, err)

	assert.Equal(t,
		seqTrajectories.Node(node1Seq).Scalars["mean"],
		concTrajectories.Node(node1Conc).Scalars["mean"])
	assert.Equal(t,
		seqTrajectories.Node(node2Seq).Scalars["precision"],
		concTrajectories.Node(node2Conc).Scalars["precision"])
}
