// Package schedule turns a core.Network's kind/edge topology into two
// ordered, time-invariant kernel sequences: Predictions (top-down) and
// Updates (bottom-up, posterior-before-PE per pass).
//
// Dive in: Predictions first, then Updates — both are pure functions of
// the network's structure, independent of attribute values, so a caller
// computes them once per topology change and replays them every time
// step.
package schedule
