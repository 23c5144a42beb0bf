// File: run.go
// Role: the belief-propagation driver — predict, inject observations,
// update, record — for one full observation stream.
package propagate

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/beliefmesh/hgf/core"
	"github.com/beliefmesh/hgf/kernels"
	"github.com/beliefmesh/hgf/schedule"
)

// ErrObservationShape indicates an observation row's width does not
// match the network's current input count.
var ErrObservationShape = errors.New("propagate: observation row width does not match input count")

// Option configures a Run call.
type Option func(*options)

type options struct {
	concurrentPosterior bool
}

// WithConcurrentPosteriorBatches runs each pass's posterior batch
// concurrently via errgroup instead of sequentially. Safe because every
// kernel writes only to its own target node (§5); off by default.
func WithConcurrentPosteriorBatches() Option {
	return func(o *options) { o.concurrentPosterior = true }
}

// Run drives n through observations, one row per time step, each row
// index-aligned to n.Inputs(). timeSteps supplies a per-step Δt; a nil
// or short slice defaults the remaining steps to 1.0. The prediction and
// update sequences are computed once, up front, and replayed every step
// (§4.7: both depend only on kind and edges, not on attribute values).
func Run(n *core.Network, observations [][]float64, timeSteps []float64, opts ...Option) (*Trajectories, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}

	predictions := schedule.Predictions(n)
	updates := schedule.Updates(n)
	inputs := n.Inputs()

	trajectories := NewTrajectories(n.NumNodes(), len(observations))

	for t, row := range observations {
		if len(row) != len(inputs) {
			return nil, fmt.Errorf("%w: step %d has %d values, network has %d inputs", ErrObservationShape, t, len(row), len(inputs))
		}
		dt := 1.0
		if t < len(timeSteps) {
			dt = timeSteps[t]
		}

		runSequential(n, predictions, dt)

		for i, id := range inputs {
			if err := n.SetObservation(id, row[i]); err != nil {
				return nil, err
			}
		}

		if cfg.concurrentPosterior {
			if err := runConcurrent(n, updates, dt); err != nil {
				return nil, err
			}
		} else {
			runSequential(n, updates, dt)
		}

		trajectories.Record(n)
	}

	return trajectories, nil
}

func runSequential(n *core.Network, steps []schedule.Step, dt float64) {
	for _, s := range steps {
		s.Kernel(n, s.NodeID, dt)
	}
}

// runConcurrent walks steps in order, executing non-posterior phases
// inline and handing each maximal consecutive run of Posterior-phase
// steps to an errgroup: those targets are pairwise distinct by
// construction, so running them concurrently cannot race.
func runConcurrent(n *core.Network, steps []schedule.Step, dt float64) error {
	i := 0
	for i < len(steps) {
		if steps[i].Phase != kernels.Posterior {
			steps[i].Kernel(n, steps[i].NodeID, dt)
			i++
			continue
		}

		j := i
		for j < len(steps) && steps[j].Phase == kernels.Posterior {
			j++
		}

		g, _ := errgroup.WithContext(context.Background())
		for _, s := range steps[i:j] {
			s := s
			g.Go(func() error {
				s.Kernel(n, s.NodeID, dt)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		i = j
	}

	return nil
}
