// File: trajectory.go
// Role: per-node scalar and vector attribute history, tolerant of
// attributes a kernel introduces after the first time step.
package propagate

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/beliefmesh/hgf/core"
)

// NodeTrajectory is one node's recorded history: every scalar key maps
// to a dense series indexed by time step, every vector key to a dense
// series of row copies.
type NodeTrajectory struct {
	Scalars map[string][]float64
	Vectors map[string][][]float64
}

// Trajectories is a Run's complete recorded history, indexed by node id.
type Trajectories struct {
	nodes  []NodeTrajectory
	length int
}

// NewTrajectories creates an empty store for the given node count. The
// horizon argument is not used: no series is preallocated, and each one
// grows by append as Record is called.
func NewTrajectories(nodeCount, horizon int) *Trajectories {
	t := &Trajectories{nodes: make([]NodeTrajectory, nodeCount)}
	for i := range t.nodes {
		t.nodes[i] = NodeTrajectory{
			Scalars: make(map[string][]float64, 8),
			Vectors: make(map[string][][]float64, 2),
		}
	}
	_ = horizon

	return t
}

// Len reports how many time steps have been recorded.
func (t *Trajectories) Len() int { return t.length }

// Node returns the recorded history for node id.
func (t *Trajectories) Node(id int) NodeTrajectory { return t.nodes[id] }

// Record appends every node's current scalar and vector attributes as
// the next time step. A key seen for the first time at step k > 0 is
// backfilled with NaN (scalars) or nil (vectors) for steps [0, k).
func (t *Trajectories) Record(n *core.Network) {
	step := t.length
	for id := range t.nodes {
		nt := &t.nodes[id]

		for _, key := range n.ScalarKeys(id) {
			v, err := n.Scalar(id, key)
			if err != nil {
				continue
			}
			series, ok := nt.Scalars[key]
			if !ok {
				series = make([]float64, step, step+1)
				for i := range series {
					series[i] = math.NaN()
				}
			}
			nt.Scalars[key] = append(series, v)
		}

		for _, key := range n.VectorKeys(id) {
			v, err := n.Vector(id, key)
			if err != nil {
				continue
			}
			series, ok := nt.Vectors[key]
			if !ok {
				series = make([][]float64, step, step+1)
			}
			row := make([]float64, len(v))
			zero := make([]float64, len(v))
			floats.AddTo(row, v, zero)
			nt.Vectors[key] = append(series, row)
		}
	}
	t.length++
}
