// Package learning adjusts value-coupling strengths toward the strength
// that would have produced each child's observed mean exactly, either at
// a fixed rate or at a dynamic rate driven by the parent/child precision
// ratio, interleaved with the ordinary update schedule during Fit.
//
// Dive in: ProspectivePosterior first (what both rules probe before
// committing a new coupling), then Interleave and Fit.
package learning
