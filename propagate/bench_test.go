package propagate_test

import (
	"testing"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/propagate"
)

// BenchmarkRun builds a 10,000-node value chain once, then repeatedly
// drives a single observation step through it.
func BenchmarkRun(b *testing.B) {
	n := core.NewNetwork()
	prev := n.AddNode(core.ContinuousState)
	for i := 1; i < 10000; i++ {
		prev = n.AddNode(core.ContinuousState, core.WithValueChildren(prev))
	}
	observations := [][]float64{{0.2}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := propagate.Run(n, observations, nil); err != nil {
			b.Fatal(err)
		}
	}
}
