package activations_test

import (
	"fmt"

	"github.com/beliefmesh/hgf/activations"
)

// ExampleResolve looks up a coupling function by name and evaluates it,
// falling back to identity for names the registry does not recognize.
func ExampleResolve() {
	sigmoid := activations.Resolve("sigmoid")
	f, _, _ := sigmoid.Apply(0)
	fmt.Printf("%.4f\n", f)

	unknown := activations.Resolve("not-a-real-activation")
	g, _, _ := unknown.Apply(2.5)
	fmt.Printf("%.4f\n", g)

	// Output:
	// 0.5000
	// 2.5000
}
