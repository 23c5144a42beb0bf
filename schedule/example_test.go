package schedule_test

import (
	"fmt"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/schedule"
)

// ExamplePredictions orders a value parent and a volatility parent ahead
// of their shared child.
func ExamplePredictions() {
	n := core.NewNetwork()
	node0 := n.AddNode(core.ContinuousState)
	n.AddNode(core.ContinuousState, core.WithValueChildren(node0))
	n.AddNode(core.ContinuousState, core.WithVolatilityChildren(node0))

	for _, step := range schedule.Predictions(n) {
		fmt.Println(step.NodeID)
	}

	// Output:
	// 1
	// 2
	// 0
}
