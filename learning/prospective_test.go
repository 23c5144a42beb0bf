package learning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
	"github.com/beliefmesh/hgf/learning"
)

func stepOnce(t *testing.T, n *core.Network, child, parent int, observation float64) {
	t.Helper()
	kernels.PredictContinuous(n, parent, 1.0)
	kernels.PredictContinuous(n, child, 1.0)
	require.NoError(t, n.SetObservation(child, observation))
	kernels.PredictionErrorContinuous(n, child, 1.0)
}

func TestFixedRateIdempotentUnderZeroResidual(t *testing.T) {
	n := core.NewNetwork()
	child := n.AddNode(core.ContinuousState)
	parent := n.AddNode(core.ContinuousState, core.WithValueChildren(child))

	// Drive one step so value_prediction_error and expected_precision
	// exist, then force child's mean to exactly match what the current
	// coupling predicts, so the rule should see zero residual.
	stepOnce(t, n, child, parent, 0.2)
	_, prospectiveMean := learning.ProspectivePosterior(n, parent)
	kappaBefore := n.ValueCouplingParents(child)[0]
	require.NoError(t, n.SetScalar(child, "mean", kappaBefore*prospectiveMean))

	learning.ApplyFixedRate(n, child, 0.5)

	assert.InDelta(t, kappaBefore, n.ValueCouplingParents(child)[0], 1e-9)
}

func TestDynamicRateIdempotentUnderZeroResidual(t *testing.T) {
	n := core.NewNetwork()
	child := n.AddNode(core.ContinuousState)
	parent := n.AddNode(core.ContinuousState, core.WithValueChildren(child))

	stepOnce(t, n, child, parent, -0.3)
	_, prospectiveMean := learning.ProspectivePosterior(n, parent)
	kappaBefore := n.ValueCouplingParents(child)[0]
	require.NoError(t, n.SetScalar(child, "mean", kappaBefore*prospectiveMean))

	learning.ApplyDynamicRate(n, child)

	assert.InDelta(t, kappaBefore, n.ValueCouplingParents(child)[0], 1e-9)
}

func TestFixedRateMovesTowardExpectedKappa(t *testing.T) {
	n := core.NewNetwork()
	child := n.AddNode(core.ContinuousState)
	parent := n.AddNode(core.ContinuousState, core.WithValueChildren(child))

	stepOnce(t, n, child, parent, 5.0)
	kappaBefore := n.ValueCouplingParents(child)[0]

	learning.ApplyFixedRate(n, child, 0.1)

	assert.NotEqual(t, kappaBefore, n.ValueCouplingParents(child)[0])
}
