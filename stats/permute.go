// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/graphstat/indep/internal/rng"
)

// A Statistic measures the association between the rows of a sample
// and their labels.
//
// Statistic may be called concurrently by Test when more than one
// worker is configured.
type Statistic interface {
	Statistic(x mat.Matrix, y []int) (float64, error)
}

// A Preparer is a Statistic whose expensive work depends only on the
// sample. Test prepares once and then evaluates every relabelling on
// the result.
type Preparer interface {
	Statistic
	Prepare(x mat.Matrix) (LabelStatistic, error)
}

// A LabelStatistic is a Statistic bound to a fixed sample. Eval must
// be safe for concurrent use and must not retain y.
type LabelStatistic interface {
	Eval(y []int) float64
}

// An Approximator is a LabelStatistic that knows the exact mean and
// variance of its distribution under random relabelling of y. The
// statistic must be integer-valued; Test applies a continuity
// correction of 0.5.
//
// ok is false if the moments are unavailable for y, for example
// because y has more than two groups.
type Approximator interface {
	Moments(y []int) (mean, variance float64, ok bool)
}

// Tail selects which values of a statistic count as extreme.
type Tail int

const (
	// Lower rejects for small values of the statistic.
	Lower Tail = iota
	// Upper rejects for large values of the statistic.
	Upper
)

func (t Tail) String() string {
	switch t {
	case Lower:
		return "lower"
	case Upper:
		return "upper"
	}
	return fmt.Sprintf("Tail(%d)", int(t))
}

// A Tailed statistic declares its rejection region. Statistics that
// do not implement Tailed are tested in the Lower tail.
type Tailed interface {
	Tail() Tail
}

// Test performs a permutation test of the association between the
// rows of x and the labels y using statistic s.
//
// Repetition i shuffles a copy of y with a random stream derived only
// from the root seed and i, so a seeded Test returns the same Result
// for any number of workers.
//
// With WithAuto(true), Test uses a normal approximation if s prepares
// an Approximator and y has exactly two groups. Otherwise auto mode
// draws at most AutoReps relabellings.
//
// Test fails with ErrInvalidConfig for bad options, ErrInputShape if
// x and y disagree and ErrDegenerateInput if y has fewer than two
// distinct labels or s is undefined on x.
func Test(s Statistic, x mat.Matrix, y []int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := checkLabels(x, y); err != nil {
		return nil, err
	}

	eval, approx, err := prepare(s, x)
	if err != nil {
		return nil, err
	}
	observed, err := eval(y)
	if err != nil {
		return nil, err
	}

	tail := Lower
	if t, ok := s.(Tailed); ok {
		tail = t.Tail()
	}
	seed := o.Seed
	if !o.Seeded {
		seed = rng.NewSeed()
	}
	res := &Result{Statistic: observed, Reps: o.Reps, Seed: seed}

	reps := o.Reps
	if o.Auto {
		if approx != nil && Groups(y) == 2 {
			if mean, variance, ok := approx.Moments(y); ok && variance > 0 {
				res.PValue = normalPValue(observed, mean, variance, tail, o.Reps)
				res.Auto = true
				return res, nil
			}
		}
		reps = min(reps, AutoReps)
	}

	null, err := permute(eval, y, reps, o.Workers, seed)
	if err != nil {
		return nil, err
	}
	res.Null = null
	res.Reps = reps
	res.PValue = permutationPValue(observed, null, tail)
	return res, nil
}

func prepare(s Statistic, x mat.Matrix) (func([]int) (float64, error), Approximator, error) {
	p, ok := s.(Preparer)
	if !ok {
		return func(y []int) (float64, error) {
			return s.Statistic(x, y)
		}, nil, nil
	}
	ls, err := p.Prepare(x)
	if err != nil {
		return nil, nil, err
	}
	approx, _ := ls.(Approximator)
	return func(y []int) (float64, error) {
		return ls.Eval(y), nil
	}, approx, nil
}

// permute evaluates reps random relabellings of y. Repetitions are
// split into contiguous blocks, one per worker; each repetition
// writes only its own slot.
func permute(eval func([]int) (float64, error), y []int, reps, workers int, seed uint64) ([]float64, error) {
	null := make([]float64, reps)
	block := (reps + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < reps; lo += block {
		hi := min(lo+block, reps)
		g.Go(func() error {
			perm := make([]int, len(y))
			for i := lo; i < hi; i++ {
				copy(perm, y)
				r := rng.Stream(seed, uint64(i))
				r.Shuffle(len(perm), func(a, b int) {
					perm[a], perm[b] = perm[b], perm[a]
				})
				v, err := eval(perm)
				if err != nil {
					return fmt.Errorf("repetition %d: %w", i, err)
				}
				null[i] = v
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return null, nil
}

// permutationPValue counts the observed labelling as one of the
// relabellings, so the result is never 0.
func permutationPValue(observed float64, null []float64, tail Tail) float64 {
	count := 1
	for _, v := range null {
		if (tail == Lower && v <= observed) || (tail == Upper && v >= observed) {
			count++
		}
	}
	return float64(count) / float64(len(null)+1)
}

// normalPValue is the continuity-corrected normal tail probability,
// clamped to the resolution of a reps-repetition permutation test.
func normalPValue(observed, mean, variance float64, tail Tail, reps int) float64 {
	sd := math.Sqrt(variance)
	var p float64
	switch tail {
	case Upper:
		p = distuv.UnitNormal.Survival((observed - 0.5 - mean) / sd)
	default:
		p = distuv.UnitNormal.CDF((observed + 0.5 - mean) / sd)
	}
	return math.Min(1, math.Max(1/float64(reps+1), p))
}

// checkLabels validates the sample shape and the label vector.
func checkLabels(x mat.Matrix, y []int) error {
	if x == nil {
		return fmt.Errorf("%w: nil sample", ErrInputShape)
	}
	r, _ := x.Dims()
	if r == 0 {
		return fmt.Errorf("%w: empty sample", ErrInputShape)
	}
	if len(y) != r {
		return fmt.Errorf("%w: %d rows but %d labels", ErrInputShape, r, len(y))
	}
	if Groups(y) < 2 {
		return fmt.Errorf("%w: need at least two distinct labels", ErrDegenerateInput)
	}
	return nil
}
