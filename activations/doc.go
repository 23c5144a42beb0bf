// Package activations is the leaf layer of the belief-propagation engine:
// a small set of scalar functions, their first and second derivatives, and
// a name-based registry that resolves a coupling-function name to the
// triple kernels need.
//
// Every function here is pure: no allocation beyond the returned Triple,
// no shared state, safe to call from any number of goroutines.
//
//	go get github.com/beliefmesh/hgf/activations
package activations
