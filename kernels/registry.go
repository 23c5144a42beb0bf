// File: registry.go
// Role: the (kind, phase, variant) lookup the scheduler uses to select a
// kernel function value, replacing vtable dispatch over a closed set of
// node kinds.
package kernels

import "github.com/beliefmesh/hgf/core"

// Func is the shape every kernel has: read the network, mutate only the
// target node's own attributes.
type Func func(n *core.Network, id int, dt float64)

// Phase identifies which of the three per-node steps a kernel performs.
type Phase int

const (
	Predict Phase = iota
	PredictionError
	Posterior
)

// PosteriorContinuous resolves the continuous-state posterior kernel for
// update type u, honoring the "without volatility children always uses
// standard" rule from the scheduler's dispatch table.
func PosteriorContinuous(u core.UpdateType, hasVolatilityChildren bool) Func {
	if !hasVolatilityChildren {
		return PosteriorContinuousStandard
	}
	switch u {
	case core.EHGF:
		return PosteriorContinuousEHGF
	case core.Unbounded:
		return PosteriorContinuousUnbounded
	default:
		return PosteriorContinuousStandard
	}
}

// PosteriorVolatile resolves the volatile-state posterior kernel for
// update type u. Volatile-state nodes always have an internal
// volatility level, so unlike continuous-state there is no
// no-volatility-children fallback.
func PosteriorVolatile(u core.UpdateType) Func {
	switch u {
	case core.EHGF:
		return PosteriorVolatileEHGF
	case core.Unbounded:
		return PosteriorVolatileUnbounded
	default:
		return PosteriorVolatileStandard
	}
}

// ForKind resolves a node's predict/PE kernel by kind alone; these two
// phases do not vary by update_type.
func ForKind(kind core.NodeKind, phase Phase) Func {
	switch kind {
	case core.ContinuousState:
		if phase == Predict {
			return PredictContinuous
		}
		return PredictionErrorContinuous
	case core.VolatileState:
		if phase == Predict {
			return PredictVolatile
		}
		return PredictionErrorVolatile
	case core.EFState:
		if phase == Predict {
			return func(*core.Network, int, float64) {}
		}
		return PredictionErrorEF
	default:
		return func(*core.Network, int, float64) {}
	}
}
