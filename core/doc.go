// Package core defines the belief-propagation engine's graph store: the
// Network type, its node/edge bookkeeping, and the three side-by-side
// attribute tables (scalars, vectors, coupling functions) that kernels
// read and write.
//
// Network is the single source of mutable state in the engine. It owns:
//
//   - dense integer node ids (0..N-1, assigned by insertion order)
//   - symmetric value/volatility adjacency (parents and children)
//   - parallel coupling-strength vectors for every adjacency list
//   - per-node scalar, vector, and coupling-function attribute maps
//
// Two RWMutexes guard it: muTopo for node kinds/edges/coupling vectors,
// muAttr for the scalar/vector attribute tables. Kernels, the scheduler,
// and the belief propagator all operate on *Network through the
// exported accessor and mutator methods in this package; nothing outside
// core reaches into its fields directly.
//
//	go get github.com/beliefmesh/hgf/core
package core
