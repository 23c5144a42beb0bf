// File: methods_io.go
// Role: observation and predictor injection at network boundaries.
package core

import "fmt"

// SetObservation writes an observed value onto an input node: mean=x,
// observed=1. Used by the belief propagator once per time step per
// input node.
func (n *Network) SetObservation(id int, x float64) error {
	n.muAttr.Lock()
	defer n.muAttr.Unlock()

	if !n.validID(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n.scalars[id]["mean"] = x
	n.scalars[id]["observed"] = 1

	return nil
}

// SetPredictors writes expected_mean=x on a top-layer node, the entry
// point the learning loop's fit driver uses to seed predictor nodes
// before each step.
func (n *Network) SetPredictors(id int, x float64) error {
	n.muAttr.Lock()
	defer n.muAttr.Unlock()

	if !n.validID(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n.scalars[id]["expected_mean"] = x

	return nil
}
