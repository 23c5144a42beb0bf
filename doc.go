// Package hgf is a hierarchical Gaussian filter belief-propagation
// engine: a graph of coupled Gaussian (and exponential-family) state
// nodes, a structure-only scheduler, a belief propagator, and a learning
// loop that adjusts coupling strengths from paired observations.
//
// Dive in: New builds an empty Network, AddNodes/AddLayer wire it up,
// InputData drives it through an observation stream, and Fit does the
// same while learning coupling strengths. core, kernels, schedule,
// propagate, and learning hold the pieces this package assembles; this
// file's Network is the single entry point most callers need.
package hgf
