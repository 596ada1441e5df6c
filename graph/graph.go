package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/errandgraph/pqueue"
)

// Graph is an undirected weighted graph over the vertices 0..N-1.
//
// A Graph is immutable after New except for the spanning-forest adjacency
// list, which is filled exactly once on first use. All methods are safe for
// concurrent use.
type Graph struct {
	n      int
	matrix [][]int64 // matrix[u][v] = weight, 0 when not adjacent
	sorted []Edge    // all edges, ascending weight, stable
	opts   Options
	log    logrus.FieldLogger

	forestOnce  sync.Once
	forest      [][]int // forest[v] = tree neighbours of v, in selection order
	forestEdges []Edge  // tree edges in selection order
}

// New builds a Graph with n vertices from edges.
//
// Errors:
//   - ErrNegativeOrder    if n < 0.
//   - ErrVertexOutOfRange if an endpoint is outside [0, n).
//   - ErrOrderTooLarge    if n > MaxOrder.
//   - ErrNegativeWeight   if an edge weight is negative.
//   - ErrWeightOverflow   if the sum of all edge weights reaches Infinity.
//
// Every simple path is then strictly shorter than Infinity.
//
// Duplicate pairs are kept in the sorted edge list while the matrix keeps the
// last weight given. Complexity: O(N² + E log E).
func New(n int, edges []Edge, opts ...Option) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, n)
	}
	if n > MaxOrder {
		return nil, fmt.Errorf("%w: %d > %d", ErrOrderTooLarge, n, MaxOrder)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	var total int64
	for i, e := range edges {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) with %d vertices", ErrVertexOutOfRange, i, e.From, e.To, n)
		}
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) weight=%d", ErrNegativeWeight, i, e.From, e.To, e.Weight)
		}
		if e.Weight >= Infinity-total {
			return nil, fmt.Errorf("%w: at edge #%d (%d,%d) weight=%d", ErrWeightOverflow, i, e.From, e.To, e.Weight)
		}
		total += e.Weight
	}

	matrix := make([][]int64, n)
	cells := make([]int64, n*n) // one backing array for all rows
	for u := range matrix {
		matrix[u] = cells[u*n : (u+1)*n : (u+1)*n]
	}
	for _, e := range edges {
		matrix[e.From][e.To] = e.Weight
		matrix[e.To][e.From] = e.Weight
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	g := &Graph{
		n:      n,
		matrix: matrix,
		sorted: sorted,
		opts:   cfg,
		log:    cfg.Logger,
	}
	g.log.WithFields(logrus.Fields{"vertices": n, "edges": len(edges)}).Debug("graph built")

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// Size returns the number of input edges, duplicates included.
func (g *Graph) Size() int { return len(g.sorted) }

// Weight returns the matrix weight between u and v (0 when not adjacent).
func (g *Graph) Weight(u, v int) (int64, error) {
	if err := g.checkVertex(u); err != nil {
		return 0, err
	}
	if err := g.checkVertex(v); err != nil {
		return 0, err
	}

	return g.matrix[u][v], nil
}

// HasEdge reports whether u and v are adjacent in the matrix. Out-of-range
// vertices are never adjacent.
func (g *Graph) HasEdge(u, v int) bool {
	w, err := g.Weight(u, v)

	return err == nil && w != 0
}

// Neighbors returns the vertices adjacent to v in the matrix, ascending.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex(v); err != nil {
		return nil, err
	}

	return g.matrixNeighbors(v), nil
}

// Edges returns a copy of the edge list sorted by ascending weight.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.sorted))
	copy(out, g.sorted)

	return out
}

func (g *Graph) matrixNeighbors(v int) []int {
	var out []int
	for u, w := range g.matrix[v] {
		if w != 0 {
			out = append(out, u)
		}
	}

	return out
}

// addDist returns a+b for non-negative operands, saturated at Infinity.
func addDist(a, b int64) int64 {
	if b >= Infinity-a {
		return Infinity
	}

	return a + b
}

func (g *Graph) checkVertex(v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, g.n)
	}

	return nil
}

// newQueue returns the queue flavour selected by the graph options.
func newQueue[V any](o Options, capacity int) pqueue.Interface[int, int64, V] {
	if o.UseHeap {
		return pqueue.NewHeap[int, int64, V]()
	}

	return pqueue.NewWithCapacity[int, int64, V](capacity)
}
