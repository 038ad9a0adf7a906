// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/graphstat/indep/internal/rng"
	"github.com/graphstat/indep/sims"
	"github.com/graphstat/indep/stats"
)

// A Run describes one power estimate: which test to apply to samples
// of which simulation, at what size and level.
type Run struct {
	Test    Test
	SimType SimType
	Sim     sims.Simulation

	// N is the number of paired observations per trial and P the
	// dimension of x.
	N, P int

	// Alpha is the rejection level.
	Alpha float64

	// Auto enables the test's fast approximate mode.
	Auto bool
}

// NewRun resolves test, simulation family and simulation names into a
// Run.
func NewRun(test, simType, sim string, n, p int, alpha float64, auto bool) (Run, error) {
	t, err := ParseTest(test)
	if err != nil {
		return Run{}, err
	}
	st, err := ParseSimType(simType)
	if err != nil {
		return Run{}, err
	}
	s, err := sims.Parse(sim)
	if err != nil {
		return Run{}, err
	}
	return Run{Test: t, SimType: st, Sim: s, N: n, P: p, Alpha: alpha, Auto: auto}, nil
}

func (r Run) validate() error {
	switch {
	case !(r.Alpha >= 0 && r.Alpha <= 1):
		return fmt.Errorf("%w: alpha %v not in [0, 1]", stats.ErrInvalidConfig, r.Alpha)
	case r.N < 2:
		return fmt.Errorf("%w: need at least 2 observations, got %d", stats.ErrInvalidConfig, r.N)
	case r.P < 1:
		return fmt.Errorf("%w: dimension must be at least 1, got %d", stats.ErrInvalidConfig, r.P)
	case !r.SimType.has(r.Sim):
		return fmt.Errorf("%w: %v is not in family %v", sims.ErrUnknownSimulation, r.Sim, r.SimType)
	}
	return nil
}

// A Result is a power estimate.
type Result struct {
	// Rate is Rejections/Trials.
	Rate float64

	Trials, Rejections int

	// Redraws counts degenerate datasets that were replaced.
	Redraws int

	// Lo and Hi bound Rate with the configured confidence.
	Lo, Hi float64

	// Null reports that the simulation has independent x and y,
	// so Rate estimates the Type-I error rate.
	Null bool

	// Seed is the root seed of the run.
	Seed uint64
}

// Power estimates the probability that the named test rejects
// independence at level alpha on n-sample, p-dimensional draws of the
// named simulation.
//
// It is shorthand for NewRun followed by Estimate.
func Power(ctx context.Context, test, simType, sim string, n, p int, alpha float64, auto bool, cfg Config) (float64, error) {
	run, err := NewRun(test, simType, sim, n, p, alpha, auto)
	if err != nil {
		return 0, err
	}
	res, err := Estimate(ctx, run, cfg)
	if err != nil {
		return 0, err
	}
	return res.Rate, nil
}

// Estimate runs cfg.Trials independent trials of run.
//
// Trial t draws all of its randomness from a stream derived from the
// root seed and t, so the result does not depend on cfg.Workers. A
// trial whose dataset is degenerate (for example, every y row has the
// same mean) redraws up to cfg.MaxRedraws times; the trial count is
// never reduced.
//
// Estimate stops scheduling trials when ctx is done and returns
// ctx.Err().
func Estimate(ctx context.Context, run Run, cfg Config) (*Result, error) {
	h, err := newHarness(run, cfg)
	if err != nil {
		return nil, err
	}
	return h.estimate(ctx)
}

type harness struct {
	run     Run
	cfg     Config
	stat    stats.Statistic
	log     *zap.Logger
	testTag string
	simTag  string

	// sample draws one dataset.
	sample func(r *rand.Rand, n, p int) (x, y *mat.Dense, err error)
}

func newHarness(run Run, cfg Config) (*harness, error) {
	if err := run.validate(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	stat, err := run.Test.Statistic()
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &harness{
		run:     run,
		cfg:     cfg,
		stat:    stat,
		log:     log,
		testTag: run.Test.String(),
		simTag:  run.Sim.String(),
		sample:  run.Sim.Sample,
	}, nil
}

func (h *harness) estimate(ctx context.Context) (*Result, error) {
	root := h.cfg.Seed
	if root == 0 {
		root = rng.NewSeed()
	}
	log := h.log.With(
		zap.String("test", h.testTag),
		zap.String("sim", h.simTag),
		zap.Int("n", h.run.N),
		zap.Int("p", h.run.P),
		zap.Float64("alpha", h.run.Alpha),
		zap.Bool("auto", h.run.Auto),
	)
	log.Info("power run started",
		zap.Int("trials", h.cfg.Trials),
		zap.Int("reps", h.cfg.Reps),
		zap.Uint64("seed", root))

	rejected := make([]bool, h.cfg.Trials)
	redraws := make([]int, h.cfg.Trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.cfg.Workers)
	for t := 0; t < h.cfg.Trials && gctx.Err() == nil; t++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var err error
			rejected[t], redraws[t], err = h.trial(log, root, t)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		log.Warn("power run failed", zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Trials: h.cfg.Trials,
		Null:   h.run.Sim.Independent(),
		Seed:   root,
	}
	for t := range rejected {
		if rejected[t] {
			res.Rejections++
		}
		res.Redraws += redraws[t]
	}
	res.Rate = float64(res.Rejections) / float64(res.Trials)
	lo, hi, err := stats.BinomialCI(res.Rejections, res.Trials, h.cfg.Confidence)
	if err != nil {
		return nil, err
	}
	res.Lo, res.Hi = lo, hi

	log.Info("power run finished",
		zap.Float64("rate", res.Rate),
		zap.Float64("lo", res.Lo),
		zap.Float64("hi", res.Hi),
		zap.Int("rejections", res.Rejections),
		zap.Int("redraws", res.Redraws))
	return res, nil
}

// trial runs trial t and reports whether it rejected and how many
// datasets it redrew.
func (h *harness) trial(log *zap.Logger, root uint64, t int) (bool, int, error) {
	stream := rng.Derive(root, uint64(t))
	for attempt := 0; ; attempt++ {
		res, err := h.attempt(rng.Stream(stream, uint64(attempt)))
		if err == nil {
			rejected := res.PValue < h.run.Alpha
			h.cfg.Metrics.observeTrial(h.testTag, h.simTag, res.PValue, rejected)
			return rejected, attempt, nil
		}
		if !errors.Is(err, stats.ErrDegenerateInput) || attempt >= h.cfg.MaxRedraws {
			return false, attempt, fmt.Errorf("trial %d after %d redraws: %w", t, attempt, err)
		}
		log.Debug("redrawing degenerate dataset",
			zap.Int("trial", t),
			zap.Int("attempt", attempt),
			zap.Error(err))
		h.cfg.Metrics.observeRedraw(h.testTag, h.simTag)
	}
}

func (h *harness) attempt(r *rand.Rand) (*stats.Result, error) {
	x, y, err := h.sample(r, h.run.N, h.run.P)
	if err != nil {
		return nil, err
	}
	labels, err := stats.MedianSplit(y)
	if err != nil {
		return nil, err
	}
	return stats.Test(h.stat, x, labels,
		stats.WithReps(h.cfg.Reps),
		stats.WithSeed(r.Uint64()),
		stats.WithAuto(h.run.Auto))
}
