// Package propagate drives a core.Network through an observation stream:
// predict, inject the time step's observations, update, and append every
// node's attributes onto a Trajectories store.
//
// Dive in: Run is the entry point. Trajectories holds the recorded
// history; a kernel that introduces a new attribute mid-stream gets its
// column lazily allocated and backfilled with NaN for earlier steps.
package propagate
