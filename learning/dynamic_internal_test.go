package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beliefmesh/hgf/core"
)

// TestDynamicRateUsesOnlyItsOwnChildPrecision pins dynamicRate to the
// per-edge formula π̂_c/(π̂_p+π̂_c): two siblings of the same parent with
// different expected precisions must get different, independently
// computed rates, never a value blended across both.
func TestDynamicRateUsesOnlyItsOwnChildPrecision(t *testing.T) {
	n := core.NewNetwork()
	parent := n.AddNode(core.ContinuousState)
	c1 := n.AddNode(core.ContinuousState, core.WithValueParents(parent))
	c2 := n.AddNode(core.ContinuousState, core.WithValueParents(parent))

	require.NoError(t, n.SetScalar(parent, "expected_precision", 2.0))
	require.NoError(t, n.SetScalar(c1, "expected_precision", 4.0))
	require.NoError(t, n.SetScalar(c2, "expected_precision", 10.0))

	rate1 := dynamicRate(n, parent, c1)
	rate2 := dynamicRate(n, parent, c2)

	assert.InDelta(t, 4.0/6.0, rate1, 1e-9)
	assert.InDelta(t, 10.0/12.0, rate2, 1e-9)

	// A sibling-averaged rate would give both edges the same value
	// (mean(4,10)/(2+mean(4,10)) = 7/9); the per-edge formula must not.
	assert.NotInDelta(t, rate1, rate2, 1e-9)
}
