// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sims generates paired samples (x, y) with known dependence
// for power and Type-I error studies.
//
// Each Simulation draws x with p columns. Relationships built on a
// linear projection of x (Linear, Exponential, Cubic, Quadratic) use
// the weights w[i] = 1/(i+1) and return a one-column y.
// MultimodalIndependence returns x and y with p columns each, drawn
// independently.
package sims

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrUnknownSimulation is returned by Parse for names that do
	// not denote a Simulation.
	ErrUnknownSimulation = errors.New("unknown simulation")

	// ErrSampleSize is returned when asked for fewer than one row
	// or column.
	ErrSampleSize = errors.New("sample size must be positive")
)

// A Simulation is a named joint distribution of (x, y).
type Simulation int

const (
	Linear Simulation = iota
	Exponential
	Cubic
	Quadratic
	MultimodalIndependence

	numSimulations
)

var names = [numSimulations]string{
	Linear:                 "linear",
	Exponential:            "exponential",
	Cubic:                  "cubic",
	Quadratic:              "quadratic",
	MultimodalIndependence: "multimodal_independence",
}

func (s Simulation) String() string {
	if s < 0 || s >= numSimulations {
		return fmt.Sprintf("Simulation(%d)", int(s))
	}
	return names[s]
}

// Parse returns the Simulation with the given name. Names are
// case-insensitive and may use '-' in place of '_'.
func Parse(name string) (Simulation, error) {
	key := strings.ReplaceAll(strings.ToLower(name), "-", "_")
	for s, n := range names {
		if n == key {
			return Simulation(s), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSimulation, name)
}

// All returns every Simulation.
func All() []Simulation {
	all := make([]Simulation, numSimulations)
	for i := range all {
		all[i] = Simulation(i)
	}
	return all
}

// Independent reports whether x and y are independent under s.
func (s Simulation) Independent() bool {
	return s == MultimodalIndependence
}

// Params controls the shape of a simulation.
type Params struct {
	// Noise adds Gaussian noise to y, scaled per simulation.
	Noise bool

	// Low and High bound the uniform distribution of x. If both
	// are zero, each simulation uses its own default range.
	Low, High float64
}

// Sample draws n paired observations of dimension p from s without
// noise, using randomness only from r.
func (s Simulation) Sample(r *rand.Rand, n, p int) (x, y *mat.Dense, err error) {
	return s.SampleWith(r, n, p, Params{})
}

// SampleWith is like Sample with explicit parameters.
func (s Simulation) SampleWith(r *rand.Rand, n, p int, params Params) (x, y *mat.Dense, err error) {
	if n < 1 || p < 1 {
		return nil, nil, fmt.Errorf("%w: n=%d p=%d", ErrSampleSize, n, p)
	}
	if s < 0 || s >= numSimulations {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnknownSimulation, s)
	}
	if s == MultimodalIndependence {
		x, y = multimodalIndependence(r, n, p)
		return x, y, nil
	}

	low, high := params.Low, params.High
	if low == 0 && high == 0 {
		low, high = -1, 1
		if s == Exponential {
			low, high = 0, 3
		}
	}
	x = uniform(r, n, p, low, high)
	w := weights(p)

	// Noise scale relative to the signal.
	var kappa float64
	switch s {
	case Linear:
		kappa = 1
	case Exponential:
		kappa = 10
	case Cubic:
		kappa = 80
	case Quadratic:
		kappa = 0.5
	}
	if !params.Noise {
		kappa = 0
	}

	y = mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		t := floats.Dot(x.RawRowView(i), w)
		var v float64
		switch s {
		case Linear:
			v = t
		case Exponential:
			v = math.Exp(t)
		case Cubic:
			u := t - 1.0/3
			v = 128*u*u*u + 48*u*u - 12*u
		case Quadratic:
			v = t * t
		}
		y.Set(i, 0, v+kappa*r.NormFloat64())
	}
	return x, y, nil
}

func weights(p int) []float64 {
	w := make([]float64, p)
	for i := range w {
		w[i] = 1 / float64(i+1)
	}
	return w
}

func uniform(r *rand.Rand, n, p int, low, high float64) *mat.Dense {
	data := make([]float64, n*p)
	for i := range data {
		data[i] = low + (high-low)*r.Float64()
	}
	return mat.NewDense(n, p, data)
}

// multimodalIndependence draws x and y independently, each a mixture
// of two well-separated Gaussian clusters per coordinate.
func multimodalIndependence(r *rand.Rand, n, p int) (x, y *mat.Dense) {
	draw := func() *mat.Dense {
		data := make([]float64, n*p)
		for i := range data {
			mode := 0.0
			if r.IntN(2) == 1 {
				mode = 1
			}
			data[i] = r.NormFloat64()/3 + 2*mode - 1
		}
		return mat.NewDense(n, p, data)
	}
	x = draw()
	y = draw()
	return x, y
}
