// File: methods_attrs.go
// Role: scalar and vector attribute accessors shared by every kernel.
//
// Kernels read many nodes' scalars but write only their own; see doc.go
// for the locking contract. Scalar returns an error rather than panicking
// because a missing key at kernel time means the graph was built
// inconsistently, and callers (the scheduler, tests) want to report that
// rather than crash the process.
package core

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Scalar reads a scalar attribute. Returns ErrUnknownNode for a bad id
// and ErrMissingScalar if the key was never set on that node.
func (n *Network) Scalar(id int, key string) (float64, error) {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return 0, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	v, ok := n.scalars[id][key]
	if !ok {
		return 0, fmt.Errorf("%w: node %d key %q", ErrMissingScalar, id, key)
	}

	return v, nil
}

// ScalarOr reads a scalar attribute, returning def if the node or key is
// missing. Kernels use this for attributes with a well-known fallback
// (e.g. reading a volatility-child's current_variance before it exists on
// the first time step).
func (n *Network) ScalarOr(id int, key string, def float64) float64 {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return def
	}
	if v, ok := n.scalars[id][key]; ok {
		return v
	}

	return def
}

// HasScalar reports whether key is currently set on id.
func (n *Network) HasScalar(id int, key string) bool {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return false
	}
	_, ok := n.scalars[id][key]

	return ok
}

// SetScalar writes a scalar attribute, creating the key if it is new.
// New keys are exactly the "mid-stream attribute creation" case the
// trajectory store must tolerate.
func (n *Network) SetScalar(id int, key string, v float64) error {
	n.muAttr.Lock()
	defer n.muAttr.Unlock()

	if !n.validID(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n.scalars[id][key] = v

	return nil
}

// ScalarKeys returns a snapshot of the scalar attribute names currently
// set on id, for trajectory bootstrapping.
func (n *Network) ScalarKeys(id int) []string {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return nil
	}
	keys := make([]string, 0, len(n.scalars[id]))
	for k := range n.scalars[id] {
		keys = append(keys, k)
	}

	return keys
}

// Vector reads a vector attribute. Returns a copy so callers cannot
// mutate engine state through the returned slice.
func (n *Network) Vector(id int, key string) ([]float64, error) {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	v, ok := n.vectors[id][key]
	if !ok {
		return nil, fmt.Errorf("%w: node %d key %q", ErrMissingVector, id, key)
	}

	return copyFloats(v), nil
}

// HasVector reports whether key is currently set on id.
func (n *Network) HasVector(id int, key string) bool {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return false
	}
	_, ok := n.vectors[id][key]

	return ok
}

// SetVector overwrites a vector attribute wholesale.
func (n *Network) SetVector(id int, key string, v []float64) error {
	n.muAttr.Lock()
	defer n.muAttr.Unlock()

	if !n.validID(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	n.vectors[id][key] = copyFloats(v)

	return nil
}

// AddToVector adds delta componentwise to a vector attribute, creating it
// as a copy of delta if absent. Used by the ef-state kernel's running
// sufficient-statistics sums.
func (n *Network) AddToVector(id int, key string, delta []float64) error {
	n.muAttr.Lock()
	defer n.muAttr.Unlock()

	if !n.validID(id) {
		return fmt.Errorf("%w: %d", ErrUnknownNode, id)
	}
	cur, ok := n.vectors[id][key]
	if !ok || len(cur) == 0 {
		n.vectors[id][key] = copyFloats(delta)
		return nil
	}
	width := len(cur)
	if len(delta) < width {
		width = len(delta)
	}
	floats.Add(cur[:width], delta[:width])

	return nil
}

// VectorKeys returns a snapshot of the vector attribute names currently
// set on id, for trajectory bootstrapping.
func (n *Network) VectorKeys(id int) []string {
	n.muAttr.RLock()
	defer n.muAttr.RUnlock()

	if !n.validID(id) {
		return nil
	}
	keys := make([]string, 0, len(n.vectors[id]))
	for k := range n.vectors[id] {
		keys = append(keys, k)
	}

	return keys
}
