// Package kernels implements the per-node-kind, per-phase update rules
// that mutate a *core.Network during belief propagation: prediction,
// prediction-error, and the three posterior-update variants (standard,
// eHGF, unbounded) for continuous-state and volatile-state nodes, plus
// the exponential-family node's single conjugate-update step.
//
// Every kernel has the shape func(*core.Network, id int, dt float64). A
// kernel reads any node's attributes but writes only its own target
// node's, the borrow discipline that lets the scheduler batch
// pairwise-distinct targets safely. Kernels are plain function values,
// not an interface hierarchy: node kinds are a closed set, and the
// scheduler selects a kernel by a (kind, phase, variant,
// has-volatility-children) lookup rather than by dynamic dispatch.
//
//	go get github.com/beliefmesh/hgf/kernels
package kernels
