// File: types.go
// Role: core types, sentinel errors, and the Network constructor.
//
// Errors:
//
//	ErrUnknownNode       - an edge or attribute access referenced a node id out of range.
//	ErrMissingScalar     - a kernel read a scalar attribute key that was never set.
//	ErrMissingVector     - a kernel read a vector attribute key that was never set.
//	ErrShapeMismatch     - a coupling vector's length disagrees with its edge list's length.
//	ErrUnknownUpdateType - ParseUpdateType received an unrecognised name.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/beliefmesh/hgf/activations"
)

// Sentinel errors for core graph operations. All indicate programmer
// error (graph built inconsistently) and are fatal at the call site.
var (
	ErrUnknownNode       = errors.New("core: unknown node id")
	ErrMissingScalar     = errors.New("core: missing scalar attribute")
	ErrMissingVector     = errors.New("core: missing vector attribute")
	ErrShapeMismatch     = errors.New("core: coupling vector length mismatch")
	ErrUnknownUpdateType = errors.New("core: unknown update type")
)

// NodeKind is the closed set of node kinds the engine understands.
// Kinds are closed by design (avoid vtable polymorphism);
// kernels are selected by a (kind, phase, variant) lookup, never by
// interface dispatch.
type NodeKind int

const (
	// ContinuousState is a single Gaussian belief level coupled to value
	// and/or volatility parents and children.
	ContinuousState NodeKind = iota
	// VolatileState bundles a value level and a volatility level into one
	// node; it accepts value parents/children but no external volatility
	// coupling.
	VolatileState
	// EFState is an exponential-family sufficient-statistics node with no
	// parents or children.
	EFState
)

// String renders a NodeKind for diagnostics and test failure messages.
func (k NodeKind) String() string {
	switch k {
	case ContinuousState:
		return "continuous-state"
	case VolatileState:
		return "volatile-state"
	case EFState:
		return "ef-state"
	default:
		return "unknown-kind"
	}
}

// UpdateType selects which posterior-update variant the scheduler plans
// for every continuous-state and volatile-state node in the network.
type UpdateType int

const (
	// Standard computes posterior precision before posterior mean, using
	// the freshly computed posterior precision as the mean update's
	// denominator for value-child contributions.
	Standard UpdateType = iota
	// EHGF computes posterior mean first (anticipatory, pivoting on
	// expected precision) and derives posterior precision afterward.
	EHGF
	// Unbounded replaces the single-step Gaussian update with a two-point
	// quadratic blend, trading a closed-form update for robustness to
	// large prediction errors.
	Unbounded
)

// String renders an UpdateType the way the public API names it
// ("standard", "eHGF", "unbounded").
func (u UpdateType) String() string {
	switch u {
	case Standard:
		return "standard"
	case EHGF:
		return "eHGF"
	case Unbounded:
		return "unbounded"
	default:
		return "unknown"
	}
}

// ParseUpdateType resolves the public-API spelling of an update type. An
// empty string selects EHGF, the documented default.
func ParseUpdateType(name string) (UpdateType, error) {
	switch name {
	case "", "eHGF", "ehgf":
		return EHGF, nil
	case "standard":
		return Standard, nil
	case "unbounded":
		return Unbounded, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownUpdateType, name)
	}
}

// Network is the belief graph: dense node ids, symmetric value/volatility
// adjacency with parallel coupling vectors, and the three attribute
// tables kernels read and write. See doc.go for the concurrency model.
type Network struct {
	muTopo sync.RWMutex // guards kinds, edges, coupling vectors, coupling-function tables, inputs
	muAttr sync.RWMutex // guards scalars, vectors

	// RunID identifies this network so a caller fitting many networks in
	// one process can tell them apart. Trajectories do not carry it; a
	// caller correlating dumps must keep it alongside them. Never read by
	// engine logic.
	RunID string

	updateType UpdateType

	kinds []NodeKind

	valueParents       [][]int
	valueChildren      [][]int
	volatilityParents  [][]int
	volatilityChildren [][]int

	valueCouplingParents       [][]float64
	valueCouplingChildren      [][]float64
	volatilityCouplingParents  [][]float64
	volatilityCouplingChildren [][]float64

	// valueCouplingFnParents[child][i] is the coupling function applied to
	// valueParents[child][i]'s mean; nil means Identity.
	valueCouplingFnParents [][]*activations.Triple

	scalars []map[string]float64
	vectors []map[string][]float64

	inputs []int
}

// NetworkOption configures a Network before first use, the same
// functional-option idiom lvlath's core.GraphOption uses, applied here to
// update-type selection and capacity hints.
type NetworkOption func(*Network)

// WithUpdateType overrides the default (EHGF) update type.
func WithUpdateType(t UpdateType) NetworkOption {
	return func(n *Network) { n.updateType = t }
}

// WithNodeCapacityHint preallocates the node-indexed slices, avoiding
// reallocation churn when the caller knows the final node count ahead of
// time (mirrors lvlath's constructors taking size hints for their
// adjacency maps).
func WithNodeCapacityHint(n int) NetworkOption {
	return func(net *Network) {
		if n <= 0 {
			return
		}
		net.kinds = make([]NodeKind, 0, n)
		net.scalars = make([]map[string]float64, 0, n)
		net.vectors = make([]map[string][]float64, 0, n)
	}
}

// NewNetwork constructs an empty Network. update_type defaults to EHGF
// when no WithUpdateType option is supplied.
func NewNetwork(opts ...NetworkOption) *Network {
	n := &Network{
		updateType: EHGF,
		RunID:      uuid.NewString(),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}

// UpdateType reports the network-wide posterior-update variant.
func (n *Network) UpdateType() UpdateType {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()

	return n.updateType
}

// NumNodes reports the number of nodes currently in the network.
func (n *Network) NumNodes() int {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()

	return len(n.kinds)
}

// Kind reports the kind of node id. Panics are never used for invalid
// ids; callers that need a validated kind should check id against
// NumNodes first, or use accessor methods which return ErrUnknownNode.
func (n *Network) Kind(id int) NodeKind {
	n.muTopo.RLock()
	defer n.muTopo.RUnlock()

	if id < 0 || id >= len(n.kinds) {
		return -1
	}

	return n.kinds[id]
}

// validID reports whether id addresses an existing node. Callers must
// hold at least a read lock on muTopo.
func (n *Network) validID(id int) bool {
	return id >= 0 && id < len(n.kinds)
}
