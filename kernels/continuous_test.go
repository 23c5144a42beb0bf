package kernels_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
)

func scalar(t *testing.T, n *core.Network, id int, key string) float64 {
	t.Helper()
	v, err := n.Scalar(id, key)
	require.NoError(t, err)

	return v
}

// TestOneParentContinuousHGF reproduces the single-value-parent scenario:
// node 0 is an input, node 1 is its value parent. Feeding 0.2 at the
// default time step pins down the prediction, PE, and standard posterior
// formulas' exact numeric behavior together.
func TestOneParentContinuousHGF(t *testing.T) {
	n := core.NewNetwork()
	node0 := n.AddNode(core.ContinuousState)
	node1 := n.AddNode(core.ContinuousState, core.WithValueChildren(node0))

	kernels.PredictContinuous(n, node1, 1.0)
	kernels.PredictContinuous(n, node0, 1.0)

	require.NoError(t, n.SetObservation(node0, 0.2))

	kernels.PredictionErrorContinuous(n, node0, 1.0)
	kernels.PosteriorContinuousStandard(n, node1, 1.0)

	assert.InDelta(t, 1.0, scalar(t, n, node0, "precision"), 1e-6)
	assert.InDelta(t, 1.0, scalar(t, n, node0, "expected_precision"), 1e-6)
	assert.InDelta(t, 0.2, scalar(t, n, node0, "mean"), 1e-6)
	assert.InDelta(t, 0.0, scalar(t, n, node0, "expected_mean"), 1e-6)

	assert.InDelta(t, 1.9820137, scalar(t, n, node1, "precision"), 1e-6)
	assert.InDelta(t, 0.98201376, scalar(t, n, node1, "expected_precision"), 1e-6)
	assert.InDelta(t, 0.10090748, scalar(t, n, node1, "mean"), 1e-6)
	assert.InDelta(t, 0.0, scalar(t, n, node1, "expected_mean"), 1e-6)
}

// TestTwoParentHGF adds node 2 as a volatility parent of node 0 and
// reproduces the worked numbers for all three nodes, pinning the
// value/volatility mean-denominator asymmetry documented in DESIGN.md.
func TestTwoParentHGF(t *testing.T) {
	n := core.NewNetwork()
	node0 := n.AddNode(core.ContinuousState)
	node1 := n.AddNode(core.ContinuousState, core.WithValueChildren(node0))
	node2 := n.AddNode(core.ContinuousState, core.WithVolatilityChildren(node0))

	kernels.PredictContinuous(n, node1, 1.0)
	kernels.PredictContinuous(n, node2, 1.0)
	kernels.PredictContinuous(n, node0, 1.0)

	require.NoError(t, n.SetObservation(node0, 0.2))

	kernels.PredictionErrorContinuous(n, node0, 1.0)
	kernels.PosteriorContinuousStandard(n, node1, 1.0)
	kernels.PosteriorContinuousStandard(n, node2, 1.0)

	assert.InDelta(t, 0.5, scalar(t, n, node0, "expected_precision"), 1e-6)
	assert.InDelta(t, 0.2, scalar(t, n, node0, "mean"), 1e-6)

	assert.InDelta(t, 0.06747576, scalar(t, n, node1, "mean"), 1e-6)
	assert.InDelta(t, 1.4820137, scalar(t, n, node1, "precision"), 1e-6)

	assert.InDelta(t, -0.12219789, scalar(t, n, node2, "mean"), 1e-6)
	assert.InDelta(t, 1.1070137, scalar(t, n, node2, "precision"), 1e-6)
}

func TestPrecisionFloorApplies(t *testing.T) {
	n := core.NewNetwork()
	leaf := n.AddNode(core.ContinuousState, core.WithTonicVolatility(-400))
	parent := n.AddNode(core.ContinuousState, core.WithValueChildren(leaf))

	kernels.PredictContinuous(n, parent, 1.0)
	kernels.PredictContinuous(n, leaf, 1.0)

	assert.GreaterOrEqual(t, scalar(t, n, leaf, "expected_precision"), 0.0)
}

func TestInputWithoutVolatilityParentKeepsPrecision(t *testing.T) {
	n := core.NewNetwork(core.WithUpdateType(core.Standard))
	leaf := n.AddNode(core.ContinuousState, core.WithPrecision(5.0))

	kernels.PredictContinuous(n, leaf, 1.0)

	assert.Equal(t, 5.0, scalar(t, n, leaf, "expected_precision"))
}
