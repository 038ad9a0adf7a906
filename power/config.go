// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package power

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"

	"github.com/graphstat/indep/stats"
)

// Config controls how a power estimate is computed. The zero value is
// not valid; start from DefaultConfig.
type Config struct {
	// Trials is the number of simulated datasets.
	Trials int

	// Reps is the number of relabellings per test.
	Reps int

	// Seed is the root seed of the whole run. Zero draws a fresh
	// seed, which is logged.
	Seed uint64

	// Workers is the number of trials run concurrently.
	Workers int

	// MaxRedraws bounds how many times a trial may redraw a
	// degenerate dataset before failing the run.
	MaxRedraws int

	// Confidence is the coverage of Result.Lo and Result.Hi.
	Confidence float64

	// Logger receives progress logs. Nil discards them.
	Logger *zap.Logger

	// Metrics, if non-nil, receives per-trial observations.
	Metrics *Metrics
}

// DefaultConfig returns a Config with 1000 trials of 1000
// relabellings each, running GOMAXPROCS trials at a time.
func DefaultConfig() Config {
	return Config{
		Trials:     1000,
		Reps:       stats.DefaultReps,
		Workers:    runtime.GOMAXPROCS(0),
		MaxRedraws: 10,
		Confidence: 0.95,
	}
}

func (c Config) validate() error {
	switch {
	case c.Trials < 1:
		return fmt.Errorf("%w: trials must be at least 1, got %d", stats.ErrInvalidConfig, c.Trials)
	case c.Reps < 1:
		return fmt.Errorf("%w: reps must be at least 1, got %d", stats.ErrInvalidConfig, c.Reps)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", stats.ErrInvalidConfig, c.Workers)
	case c.MaxRedraws < 0:
		return fmt.Errorf("%w: max redraws must not be negative, got %d", stats.ErrInvalidConfig, c.MaxRedraws)
	case !(c.Confidence > 0 && c.Confidence < 1):
		return fmt.Errorf("%w: confidence %v not in (0, 1)", stats.ErrInvalidConfig, c.Confidence)
	}
	return nil
}
