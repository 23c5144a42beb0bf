package core_test

import (
	"fmt"

	"github.com/beliefmesh/hgf/core"
)

// ExampleNetwork_AddNode builds a single value-parent/value-child pair
// and reports which node the graph now classifies as an input.
func ExampleNetwork_AddNode() {
	n := core.NewNetwork()
	leaf := n.AddNode(core.ContinuousState)
	n.AddNode(core.ContinuousState, core.WithValueChildren(leaf))

	fmt.Println(n.NumNodes())
	fmt.Println(n.Inputs())

	// Output:
	// 2
	// [0]
}
