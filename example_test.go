package hgf_test

import (
	"fmt"

	"github.com/beliefmesh/hgf"
	"github.com/beliefmesh/hgf/core"
)

// ExampleNetwork_InputData builds a value-parent/value-child pair and
// feeds a single observation through the default update type.
func ExampleNetwork_InputData() {
	net, err := hgf.New("")
	if err != nil {
		fmt.Println(err)
		return
	}

	node0 := net.AddNodes(core.ContinuousState, 1)[0]
	node1 := net.AddNodes(core.ContinuousState, 1, core.WithValueChildren(node0))[0]
	_ = node1

	if err := net.InputData([][]float64{{0.2}}, nil); err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(net.NodeTrajectories().Len())

	// Output:
	// 1
}
