// SPDX-License-Identifier: MIT
// Package: errandgraph/builder
//
// types.go - sentinel errors, weight functions and functional options.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/errandgraph/graph"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewVertices indicates a size below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrInvalidProbability indicates an edge probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrInvalidWeightRange indicates a weight range with min < 0 or max < min.
	ErrInvalidWeightRange = errors.New("builder: invalid weight range")
)

// DefaultSeed seeds the random source when WithSeed is not given.
const DefaultSeed int64 = 42

// WeightFn yields the weight of the next emitted edge.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeight returns a WeightFn that always yields w.
func ConstantWeight(w int64) WeightFn {
	return func(*rand.Rand) int64 { return w }
}

// UniformWeight returns a WeightFn drawing uniformly from [min, max]. The
// range is checked when the fixture is built.
func UniformWeight(min, max int64) WeightFn {
	return func(rng *rand.Rand) int64 {
		if max <= min {
			return min
		}
		return min + rng.Int63n(max-min+1)
	}
}

type config struct {
	rng       *rand.Rand
	weightFn  WeightFn
	graphOpts []graph.Option
	err       error
}

// Option configures a fixture build.
type Option func(*config)

// WithSeed sets the random seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight policy. The default is ConstantWeight(1).
func WithWeightFn(fn WeightFn) Option {
	return func(c *config) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithUniformWeights is WithWeightFn(UniformWeight(min, max)) with the range
// validated.
func WithUniformWeights(min, max int64) Option {
	return func(c *config) {
		if min < 0 || max < min {
			c.err = fmt.Errorf("%w: [%d,%d]", ErrInvalidWeightRange, min, max)
			return
		}
		c.weightFn = UniformWeight(min, max)
	}
}

// WithGraphOptions forwards options to graph.New.
func WithGraphOptions(opts ...graph.Option) Option {
	return func(c *config) {
		c.graphOpts = append(c.graphOpts, opts...)
	}
}

func newConfig(opts ...Option) config {
	c := config{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: ConstantWeight(1),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}
