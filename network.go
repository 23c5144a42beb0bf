// File: network.go
// Role: the public facade — New/AddNodes/AddLayer/SetUpdateSequence/
// InputData/Fit and their read-only counterparts, assembled from core,
// schedule, propagate, and learning.
package hgf

import (
	"fmt"

	"github.com/beliefmesh/hgf/activations"
	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
	"github.com/beliefmesh/hgf/learning"
	"github.com/beliefmesh/hgf/propagate"
	"github.com/beliefmesh/hgf/schedule"
)

// Network wraps a core.Network with the cached update sequence and the
// trajectories of its most recent run, the shape callers interact with
// day to day instead of reaching into core/schedule/propagate directly.
type Network struct {
	g *core.Network

	predictions []schedule.Step
	updates     []schedule.Step

	trajectories *propagate.Trajectories
}

// New constructs an empty Network with the given update type
// ("standard", "eHGF", or "unbounded"; "" defaults to "eHGF").
func New(updateType string) (*Network, error) {
	ut, err := core.ParseUpdateType(updateType)
	if err != nil {
		return nil, err
	}

	return &Network{g: core.NewNetwork(core.WithUpdateType(ut))}, nil
}

// AddNodes appends n new nodes of the given kind, applying the same
// options (value/volatility parents or children, coupling function,
// scalar overrides) to every one of them, and returns their ids in
// creation order. Wiring a shared set of parents across every new node
// is the common "layer" case; AddLayer is sugar over exactly this for
// the fan-out shape.
func (net *Network) AddNodes(kind core.NodeKind, n int, opts ...core.NodeOption) []int {
	ids := make([]int, 0, n)
	for i := 0; i < n; i++ {
		ids = append(ids, net.g.AddNode(kind, opts...))
	}

	return ids
}

// AddLayer creates n new nodes of kind, each value-coupled to every node
// in children via the named coupling function (resolved through
// activations.Resolve; unknown names fall back to identity), and returns
// their ids. This is the fan-out sugar named in the public surface: the
// scheduler and kernels never distinguish a "layer" from nodes added one
// at a time via AddNodes.
func (net *Network) AddLayer(n int, kind core.NodeKind, children []int, couplingFn string) []int {
	fn := activations.Resolve(couplingFn)
	opts := make([]core.NodeOption, 0, len(children)+1)
	if len(children) > 0 {
		opts = append(opts, core.WithValueChildren(children...))
		for pos := range children {
			opts = append(opts, core.WithValueCouplingFn(pos, fn))
		}
	}

	return net.AddNodes(kind, n, opts...)
}

// SetUpdateSequence recomputes the scheduler's Predictions and Updates
// sequences from the network's current topology and caches them for
// UpdateSequence. InputData and Fit always compute their own sequences
// fresh from the graph (the schedule is cheap and depends only on
// topology, never on attribute values), so this call is for
// introspection; it is also run once automatically, the first time
// UpdateSequence is read, if the caller never calls it explicitly.
func (net *Network) SetUpdateSequence() {
	net.predictions = schedule.Predictions(net.g)
	net.updates = schedule.Updates(net.g)
}

func (net *Network) ensureSequence() {
	if net.predictions == nil && net.updates == nil {
		net.SetUpdateSequence()
	}
}

// InputData drives the network through observations (one row per time
// step, index-aligned to Inputs()), predicting, injecting, and updating
// with timeSteps[t] as Δt (default 1.0 for any step beyond timeSteps'
// length, or every step when timeSteps is nil). The resulting
// trajectories are retained and available from NodeTrajectories. opts
// forwards propagate.Options such as WithConcurrentPosteriorBatches.
func (net *Network) InputData(observations [][]float64, timeSteps []float64, opts ...propagate.Option) error {
	trajectories, err := propagate.Run(net.g, observations, timeSteps, opts...)
	if err != nil {
		return fmt.Errorf("hgf: InputData: %w", err)
	}
	net.trajectories = trajectories

	return nil
}

// Fit drives the network through len(x) time steps, adjusting the value
// couplings of every non-predictor node via the learning-interleaved
// schedule: lr == nil selects the dynamic precision-ratio rule,
// otherwise every learning step uses the fixed rate *lr. The resulting
// trajectories are retained and available from NodeTrajectories.
func (net *Network) Fit(x, y [][]float64, predictorIDs, targetIDs []int, lr *float64) {
	net.trajectories = learning.Fit(net.g, x, y, predictorIDs, targetIDs, lr)
}

// NodeTrajectories returns the trajectory store from the most recent
// InputData or Fit call, or nil if neither has run yet.
func (net *Network) NodeTrajectories() *propagate.Trajectories {
	return net.trajectories
}

// Inputs returns the current input-node ids (nodes with no children of
// either kind).
func (net *Network) Inputs() []int {
	return net.g.Inputs()
}

// Edges returns a read-only snapshot of every node's adjacency.
func (net *Network) Edges() []core.NodeEdges {
	return net.g.Edges()
}

// UpdateSequenceStep is a single entry of the cached Updates sequence,
// exposed read-only for callers that want to inspect scheduling
// decisions (tests, diagnostics) without depending on the schedule
// package directly.
type UpdateSequenceStep struct {
	NodeID int
	Kind   core.NodeKind
	Phase  kernels.Phase
}

// UpdateSequence returns the cached Updates sequence, computed by the
// most recent explicit SetUpdateSequence call or, lazily, by this call
// itself the first time it runs.
func (net *Network) UpdateSequence() []UpdateSequenceStep {
	net.ensureSequence()

	out := make([]UpdateSequenceStep, len(net.updates))
	for i, s := range net.updates {
		out[i] = UpdateSequenceStep{NodeID: s.NodeID, Kind: s.Kind, Phase: s.Phase}
	}

	return out
}

// Core exposes the underlying core.Network for callers that need direct
// attribute access (kernels, learning.ProspectivePosterior, and tests
// all operate on *core.Network).
func (net *Network) Core() *core.Network { return net.g }
