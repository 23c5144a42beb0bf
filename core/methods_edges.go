// File: methods_edges.go
// Role: symmetric edge construction and read-only topology accessors.
//
// Edge symmetry: for every (child c, parent p)
// listed in c.valueParents[i], p.valueChildren[j] == c exists at the
// same position j, and the two coupling vectors agree at those
// positions. Both link helpers below establish that invariant in one
// critical section; nothing else in this package grows an adjacency
// list.
package core

import "github.com/beliefmesh/hgf/activations"

// linkValueLocked records a value edge parent->child: child appears in
// parent's value-children list, parent appears in child's value-parents
// list, both coupling vectors grow by one entry of 1.0, and the child's
// coupling-function slot grows by one nil (Identity) entry. Caller must
// hold muTopo for writing. Missing ids are a silent no-op rather than a
// panic on a malformed call.
func (n *Network) linkValueLocked(parent, child int) {
	if !n.validID(parent) || !n.validID(child) {
		return
	}

	n.valueChildren[parent] = append(n.valueChildren[parent], child)
	n.valueCouplingChildren[parent] = append(n.valueCouplingChildren[parent], 1.0)
	n.valueParents[child] = append(n.valueParents[child], parent)
	n.valueCouplingParents[child] = append(n.valueCouplingParents[child], 1.0)
	n.valueCouplingFnParents[child] = append(n.valueCouplingFnParents[child], nil)

	n.recomputeInputStatusLocked(parent)
}

// linkVolatilityLocked is linkValueLocked's volatility-edge counterpart.
// Volatility edges carry no coupling function.
func (n *Network) linkVolatilityLocked(parent, child int) {
	if !n.validID(parent) || !n.validID(child) {
		return
	}

	n.volatilityChildren[parent] = append(n.volatilityChildren[parent], child)
	n.volatilityCouplingChildren[parent] = append(n.volatilityCouplingChildren[parent], 1.0)
	n.volatilityParents[child] = append(n.volatilityParents[child], parent)
	n.volatilityCouplingParents[child] = append(n.volatilityCouplingParents[child], 1.0)

	n.recomputeInputStatusLocked(parent)
}

func copyInts(s []int) []int {
	if len(s) == 0 {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)

	return out
}

func copyFloats(s []float64) []float64 {
	if len(s) == 0 {
		return nil
	}
	out := make([]float64, len(s))
	copy(out, s)

	return out
}

// ValueParents returns a copy of id's value-parent ids.
func (n *Network) ValueParents(id int) []int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyInts(n.valueParents[id])
}

// ValueChildren returns a copy of id's value-child ids.
func (n *Network) ValueChildren(id int) []int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyInts(n.valueChildren[id])
}

// VolatilityParents returns a copy of id's volatility-parent ids.
func (n *Network) VolatilityParents(id int) []int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyInts(n.volatilityParents[id])
}

// VolatilityChildren returns a copy of id's volatility-child ids.
func (n *Network) VolatilityChildren(id int) []int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyInts(n.volatilityChildren[id])
}

// ValueCouplingParents returns a copy of id's value-parent coupling
// strengths, positionally aligned with ValueParents(id).
func (n *Network) ValueCouplingParents(id int) []float64 {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyFloats(n.valueCouplingParents[id])
}

// ValueCouplingChildren returns a copy of id's value-child coupling
// strengths, positionally aligned with ValueChildren(id).
func (n *Network) ValueCouplingChildren(id int) []float64 {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyFloats(n.valueCouplingChildren[id])
}

// VolatilityCouplingParents returns a copy of id's volatility-parent
// coupling strengths, positionally aligned with VolatilityParents(id).
func (n *Network) VolatilityCouplingParents(id int) []float64 {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyFloats(n.volatilityCouplingParents[id])
}

// VolatilityCouplingChildren returns a copy of id's volatility-child
// coupling strengths, positionally aligned with VolatilityChildren(id).
func (n *Network) VolatilityCouplingChildren(id int) []float64 {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return nil
	}

	return copyFloats(n.volatilityCouplingChildren[id])
}

// ValueCouplingFn returns the coupling function applied to the value
// parent at position pos of id's value-parent list, or Identity if none
// was set ("missing -> identity").
func (n *Network) ValueCouplingFn(id, pos int) activations.Triple {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) || pos < 0 || pos >= len(n.valueCouplingFnParents[id]) {
		return activations.Identity
	}
	if fn := n.valueCouplingFnParents[id][pos]; fn != nil {
		return *fn
	}

	return activations.Identity
}

// Inputs returns a copy of the current input-node ids (nodes with no
// children of either kind).
func (n *Network) Inputs() []int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()

	return copyInts(n.inputs)
}

// IsInput reports whether id currently has no children of either kind.
func (n *Network) IsInput(id int) bool {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()
	if !n.validID(id) {
		return false
	}

	return len(n.valueChildren[id]) == 0 && len(n.volatilityChildren[id]) == 0
}

// NodeEdges is a read-only snapshot of one node's adjacency, returned by
// Edges for diagnostics and tests.
type NodeEdges struct {
	ID                 int
	Kind               NodeKind
	ValueParents       []int
	ValueChildren      []int
	VolatilityParents  []int
	VolatilityChildren []int
}

// Edges returns a snapshot of every node's adjacency, in id order.
func (n *Network) Edges() []NodeEdges {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()

	out := make([]NodeEdges, len(n.kinds))
	for id := range n.kinds {
		out[id] = NodeEdges{
			ID:                 id,
			Kind:               n.kinds[id],
			ValueParents:       copyInts(n.valueParents[id]),
			ValueChildren:      copyInts(n.valueChildren[id]),
			VolatilityParents:  copyInts(n.volatilityParents[id]),
			VolatilityChildren: copyInts(n.volatilityChildren[id]),
		}
	}

	return out
}
