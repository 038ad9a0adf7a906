// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"context"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"

	"github.com/graphstat/indep/sims"
	"github.com/graphstat/indep/stats"
)

func smallConfig(t *testing.T) Config {
	cfg := DefaultConfig()
	cfg.Trials = 40
	cfg.Reps = 99
	cfg.Seed = 12345
	cfg.Workers = 1
	cfg.Logger = zaptest.NewLogger(t)
	return cfg
}

func TestParseTest(t *testing.T) {
	for _, name := range []string{"friedmanRafsky", "friedman_rafsky", "FriedmanRafsky", "fr"} {
		got, err := ParseTest(name)
		require.NoError(t, err, name)
		assert.Equal(t, FriedmanRafskyTest, got)
	}
	_, err := ParseTest("dcorr")
	assert.ErrorIs(t, err, ErrUnknownTest)

	s, err := FriedmanRafskyTest.Statistic()
	require.NoError(t, err)
	assert.IsType(t, stats.FriedmanRafsky{}, s)
	_, err = Test(7).Statistic()
	assert.ErrorIs(t, err, ErrUnknownTest)
}

func TestParseSimType(t *testing.T) {
	got, err := ParseSimType("indep")
	require.NoError(t, err)
	assert.Equal(t, Indep, got)
	assert.Equal(t, "indep", got.String())

	_, err = ParseSimType("ksamp")
	assert.ErrorIs(t, err, ErrUnknownSimType)
	assert.ErrorIs(t, err, sims.ErrUnknownSimulation)
}

func TestNewRunErrors(t *testing.T) {
	_, err := NewRun("nope", "indep", "linear", 10, 1, 0.05, false)
	assert.ErrorIs(t, err, ErrUnknownTest)
	_, err = NewRun("friedmanRafsky", "indep", "sinusoid", 10, 1, 0.05, false)
	assert.ErrorIs(t, err, sims.ErrUnknownSimulation)

	cfg := smallConfig(t)
	for _, run := range []Run{
		{Sim: sims.Linear, N: 1, P: 1, Alpha: 0.05},
		{Sim: sims.Linear, N: 10, P: 0, Alpha: 0.05},
		{Sim: sims.Linear, N: 10, P: 1, Alpha: 1.5},
		{Sim: sims.Linear, N: 10, P: 1, Alpha: -0.1},
	} {
		_, err := Estimate(context.Background(), run, cfg)
		assert.ErrorIs(t, err, stats.ErrInvalidConfig, "%+v", run)
	}

	run := Run{Sim: sims.Linear, N: 10, P: 1, Alpha: 0.05}
	for _, mod := range []func(*Config){
		func(c *Config) { c.Trials = 0 },
		func(c *Config) { c.Reps = 0 },
		func(c *Config) { c.Workers = 0 },
		func(c *Config) { c.MaxRedraws = -1 },
		func(c *Config) { c.Confidence = 1 },
	} {
		cfg := smallConfig(t)
		mod(&cfg)
		_, err := Estimate(context.Background(), run, cfg)
		assert.ErrorIs(t, err, stats.ErrInvalidConfig)
	}
}

func TestEstimateSeparated(t *testing.T) {
	// With p=1 and no noise, y is a monotone function of x, so the
	// median split of y separates x perfectly and every trial
	// rejects.
	cfg := smallConfig(t)
	rate, err := Power(context.Background(), "friedmanRafsky", "indep", "linear", 50, 1, 0.05, false, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	rate, err = Power(context.Background(), "friedmanRafsky", "indep", "linear", 50, 1, 0.05, true, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	// Alpha 0 never rejects.
	rate, err = Power(context.Background(), "friedmanRafsky", "indep", "linear", 50, 1, 0, false, cfg)
	require.NoError(t, err)
	assert.Equal(t, 0.0, rate)
}

func TestEstimateWorkersInvariant(t *testing.T) {
	run, err := NewRun("friedman_rafsky", "indep", "multimodal_independence", 30, 2, 0.2, false)
	require.NoError(t, err)

	cfg := smallConfig(t)
	want, err := Estimate(context.Background(), run, cfg)
	require.NoError(t, err)
	assert.True(t, want.Null)
	assert.Equal(t, cfg.Trials, want.Trials)
	assert.LessOrEqual(t, want.Lo, want.Rate)
	assert.GreaterOrEqual(t, want.Hi, want.Rate)

	for _, workers := range []int{2, 7} {
		cfg.Workers = workers
		got, err := Estimate(context.Background(), run, cfg)
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

func TestEstimateSeedsDrawDifferentData(t *testing.T) {
	// firstValues runs a study and records x[0,0] of every dataset
	// drawn.
	firstValues := func(seed uint64) []float64 {
		cfg := smallConfig(t)
		cfg.Seed = seed
		h, err := newHarness(Run{Sim: sims.MultimodalIndependence, N: 20, P: 1, Alpha: 0.05}, cfg)
		require.NoError(t, err)
		var (
			mu     sync.Mutex
			values []float64
		)
		h.sample = func(r *rand.Rand, n, p int) (x, y *mat.Dense, err error) {
			x, y, err = sims.MultimodalIndependence.Sample(r, n, p)
			if err == nil {
				mu.Lock()
				values = append(values, x.At(0, 0))
				mu.Unlock()
			}
			return x, y, err
		}
		_, err = h.estimate(context.Background())
		require.NoError(t, err)
		return values
	}

	seen := make(map[float64]bool)
	for _, v := range firstValues(1) {
		seen[v] = true
	}
	for _, seed := range []uint64{2, 3} {
		for _, v := range firstValues(seed) {
			assert.False(t, seen[v], "seed %d reuses a dataset of seed 1", seed)
		}
	}
}

// flaky wraps the linear simulation and replaces y by a constant,
// which cannot be split at its median, with probability bad.
func flaky(bad float64) func(r *rand.Rand, n, p int) (x, y *mat.Dense, err error) {
	return func(r *rand.Rand, n, p int) (x, y *mat.Dense, err error) {
		x, y, err = sims.Linear.Sample(r, n, p)
		if err != nil {
			return nil, nil, err
		}
		if r.Float64() < bad {
			y = mat.NewDense(n, 1, nil)
		}
		return x, y, nil
	}
}

func TestEstimateRedraws(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	cfg := smallConfig(t)
	cfg.Logger = zap.New(core)
	cfg.MaxRedraws = 1000

	run := Run{Sim: sims.Linear, N: 20, P: 1, Alpha: 0.05}
	h, err := newHarness(run, cfg)
	require.NoError(t, err)
	h.sample = flaky(0.5)

	res, err := h.estimate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, cfg.Trials, res.Trials)
	assert.Equal(t, 1.0, res.Rate)
	assert.Positive(t, res.Redraws)
	assert.Equal(t, res.Redraws, logs.FilterMessage("redrawing degenerate dataset").Len())
	assert.Equal(t, 1, logs.FilterMessage("power run finished").Len())
}

func TestEstimateRedrawsExhausted(t *testing.T) {
	cfg := smallConfig(t)
	cfg.MaxRedraws = 2
	h, err := newHarness(Run{Sim: sims.Linear, N: 20, P: 1, Alpha: 0.05}, cfg)
	require.NoError(t, err)
	h.sample = func(r *rand.Rand, n, p int) (x, y *mat.Dense, err error) {
		x, _, err = sims.Linear.Sample(r, n, p)
		return x, mat.NewDense(n, 1, nil), err
	}
	_, err = h.estimate(context.Background())
	assert.ErrorIs(t, err, stats.ErrDegenerateInput)
}

func TestEstimateCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	run := Run{Sim: sims.Linear, N: 20, P: 1, Alpha: 0.05}
	_, err := Estimate(ctx, run, smallConfig(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEstimateMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	cfg := smallConfig(t)
	cfg.Metrics = m
	cfg.MaxRedraws = 1000
	h, err := newHarness(Run{Sim: sims.Linear, N: 20, P: 1, Alpha: 0.05}, cfg)
	require.NoError(t, err)
	h.sample = flaky(0.5)
	res, err := h.estimate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, float64(cfg.Trials), testutil.ToFloat64(m.trials.WithLabelValues("friedman_rafsky", "linear")))
	assert.Equal(t, float64(res.Rejections), testutil.ToFloat64(m.rejections.WithLabelValues("friedman_rafsky", "linear")))
	assert.Equal(t, float64(res.Redraws), testutil.ToFloat64(m.redraws.WithLabelValues("friedman_rafsky", "linear")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.pvalues))

	// Registering twice fails.
	_, err = NewMetrics(reg)
	assert.Error(t, err)

	var nilMetrics *Metrics
	nilMetrics.observeTrial("a", "b", 0.5, true)
	nilMetrics.observeRedraw("a", "b")
}

func TestNewMetricsPartialFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	clash := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "indep_power_redraws_total",
		Help: "Something else.",
	})
	require.NoError(t, reg.Register(clash))

	_, err := NewMetrics(reg)
	require.Error(t, err)

	// Nothing from the failed attempt may linger.
	reg.Unregister(clash)
	m, err := NewMetrics(reg)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestTypeIErrorCalibration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping calibration in short mode")
	}
	for _, test := range []struct {
		p    int
		auto bool
	}{
		{1, false},
		{3, false},
		{3, true},
		{1, true},
	} {
		cfg := DefaultConfig()
		cfg.Seed = 2026
		cfg.Logger = zaptest.NewLogger(t, zaptest.Level(zapcore.WarnLevel))
		run, err := NewRun("friedmanRafsky", "indep", "multimodal_independence", 100, test.p, 0.05, test.auto)
		require.NoError(t, err)
		res, err := Estimate(context.Background(), run, cfg)
		require.NoError(t, err)
		assert.True(t, res.Null)
		assert.InDelta(t, 0.05, res.Rate, 0.03, "p=%d auto=%v", test.p, test.auto)
	}
}
