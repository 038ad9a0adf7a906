// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"runtime"
)

// DefaultReps is the number of relabellings drawn by Test when
// WithReps is not given.
var DefaultReps = 1000

// AutoReps caps the number of relabellings drawn in auto mode when
// the statistic has no asymptotic approximation for the input.
var AutoReps = 100

// Options configures Test.
type Options struct {
	// Reps is the number of random relabellings. Reps >= 1.
	Reps int

	// Seed is the root seed. Repetition i draws from a stream
	// derived from (Seed, i) alone. Ignored unless Seeded.
	Seed   uint64
	Seeded bool

	// Auto allows the statistic's asymptotic approximation, or
	// otherwise caps Reps at AutoReps.
	Auto bool

	// Workers is the number of goroutines evaluating
	// relabellings. It does not affect the result. Default 1.
	Workers int
}

// An Option modifies Options.
type Option func(*Options)

// DefaultOptions returns the options used by Test before any Option
// is applied.
func DefaultOptions() Options {
	return Options{
		Reps:    DefaultReps,
		Workers: 1,
	}
}

// WithReps sets the number of relabellings.
func WithReps(n int) Option {
	return func(o *Options) { o.Reps = n }
}

// WithSeed fixes the root seed, making the test reproducible.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		o.Seed = seed
		o.Seeded = true
	}
}

// WithAuto enables or disables auto mode.
func WithAuto(auto bool) Option {
	return func(o *Options) { o.Auto = auto }
}

// WithWorkers sets the number of goroutines. n <= 0 selects
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		o.Workers = n
	}
}

func (o Options) validate() error {
	if o.Reps < 1 {
		return fmt.Errorf("%w: reps must be at least 1, got %d", ErrInvalidConfig, o.Reps)
	}
	if o.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, o.Workers)
	}
	return nil
}
