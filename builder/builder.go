// SPDX-License-Identifier: MIT
// Package: errandgraph/builder
//
// builder.go - Build/EdgeList entry points and the topology constructors.
//
// Contract:
//   - Constructors validate their sizes and return sentinel errors, never panic.
//   - Vertices are 0..n-1; edge order is fixed by the constructor loops.
//   - Same constructor, options and seed give identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/errandgraph/graph"
)

// Constructor emits the vertex count and edges of one topology.
type Constructor func(cfg *config) (int, []graph.Edge, error)

// EdgeList runs con and returns the vertex count and edges.
func EdgeList(con Constructor, opts ...Option) (int, []graph.Edge, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return 0, nil, cfg.err
	}
	n, edges, err := con(&cfg)
	if err != nil {
		return 0, nil, fmt.Errorf("builder: %w", err)
	}

	return n, edges, nil
}

// Build runs con and constructs the graph.
func Build(con Constructor, opts ...Option) (*graph.Graph, error) {
	cfg := newConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	n, edges, err := con(&cfg)
	if err != nil {
		return nil, fmt.Errorf("builder: %w", err)
	}

	return graph.New(n, edges, cfg.graphOpts...)
}

func (c *config) edge(u, v int) graph.Edge {
	return graph.Edge{From: u, To: v, Weight: c.weightFn(c.rng)}
}

func atLeast(name string, n, min int) error {
	if n < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", name, n, min, ErrTooFewVertices)
	}

	return nil
}

// Path builds 0-1-...-(n-1). n ≥ 1.
func Path(n int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("Path", n, 1); err != nil {
			return 0, nil, err
		}
		edges := make([]graph.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(i-1, i))
		}

		return n, edges, nil
	}
}

// Cycle builds a path closed by the edge (n-1)-0. n ≥ 3.
func Cycle(n int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("Cycle", n, 3); err != nil {
			return 0, nil, err
		}
		edges := make([]graph.Edge, 0, n)
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(i-1, i))
		}
		edges = append(edges, cfg.edge(n-1, 0))

		return n, edges, nil
	}
}

// Star joins the centre 0 to every other vertex. n ≥ 2.
func Star(n int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("Star", n, 2); err != nil {
			return 0, nil, err
		}
		edges := make([]graph.Edge, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(0, i))
		}

		return n, edges, nil
	}
}

// Complete joins every pair u < v. n ≥ 1.
func Complete(n int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("Complete", n, 1); err != nil {
			return 0, nil, err
		}
		edges := make([]graph.Edge, 0, n*(n-1)/2)
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				edges = append(edges, cfg.edge(u, v))
			}
		}

		return n, edges, nil
	}
}

// Grid builds a rows×cols lattice; vertex r*cols+c sits at row r, column c.
func Grid(rows, cols int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("Grid rows", rows, 1); err != nil {
			return 0, nil, err
		}
		if err := atLeast("Grid cols", cols, 1); err != nil {
			return 0, nil, err
		}
		var edges []graph.Edge
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, cfg.edge(v, v+1))
				}
				if r+1 < rows {
					edges = append(edges, cfg.edge(v, v+cols))
				}
			}
		}

		return rows * cols, edges, nil
	}
}

// RandomSparse keeps each pair u < v with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("RandomSparse", n, 1); err != nil {
			return 0, nil, err
		}
		if p < 0 || p > 1 {
			return 0, nil, fmt.Errorf("RandomSparse: p=%g: %w", p, ErrInvalidProbability)
		}
		var edges []graph.Edge
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if cfg.rng.Float64() < p {
					edges = append(edges, cfg.edge(u, v))
				}
			}
		}

		return n, edges, nil
	}
}

// RandomConnected builds a chain 0-1-...-(n-1) and then adds extra random
// edges between distinct vertices, so the result is always connected.
func RandomConnected(n, extra int) Constructor {
	return func(cfg *config) (int, []graph.Edge, error) {
		if err := atLeast("RandomConnected", n, 2); err != nil {
			return 0, nil, err
		}
		edges := make([]graph.Edge, 0, n-1+max(extra, 0))
		for i := 1; i < n; i++ {
			edges = append(edges, cfg.edge(i-1, i))
		}
		for added := 0; added < extra; {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if u == v {
				continue
			}
			edges = append(edges, cfg.edge(u, v))
			added++
		}

		return n, edges, nil
	}
}
