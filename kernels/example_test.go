package kernels_test

import (
	"fmt"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
)

// ExamplePredictionErrorContinuous drives the single-value-parent scenario
// from TestOneParentContinuousHGF through predict, inject, PE, and
// standard posterior, then prints the parent's updated belief.
func ExamplePredictionErrorContinuous() {
	n := core.NewNetwork()
	node0 := n.AddNode(core.ContinuousState)
	node1 := n.AddNode(core.ContinuousState, core.WithValueChildren(node0))

	kernels.PredictContinuous(n, node1, 1.0)
	kernels.PredictContinuous(n, node0, 1.0)

	_ = n.SetObservation(node0, 0.2)

	kernels.PredictionErrorContinuous(n, node0, 1.0)
	kernels.PosteriorContinuousStandard(n, node1, 1.0)

	mean, _ := n.Scalar(node1, "mean")
	precision, _ := n.Scalar(node1, "precision")
	fmt.Printf("mean=%.4f precision=%.4f\n", mean, precision)

	// Output:
	// mean=0.1009 precision=1.9820
}
