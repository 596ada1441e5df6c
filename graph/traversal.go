package graph

import (
	"github.com/rhartert/sparsesets"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/errandgraph/pqueue"
)

// Depths returns, for every vertex, the minimum number of hops from root over
// the adjacency matrix. Edge weights are ignored: each step costs one.
// Unreachable vertices get Infinity.
//
// Every vertex is queued up front (root at 0, the rest at Infinity). The
// cheapest vertex is popped and fixed, and each unfixed neighbour whose depth
// improves through it gets its queue entry updated in place.
//
// Complexity: O(N²) with either queue. The matrix row scans dominate, and
// each vertex is updated at most once. Memory: O(N).
func (g *Graph) Depths(root int) ([]int64, error) {
	if err := g.checkVertex(root); err != nil {
		return nil, err
	}

	dist := make([]int64, g.n)
	for v := range dist {
		dist[v] = Infinity
	}
	dist[root] = 0

	q := newQueue[struct{}](g.opts, g.n)
	for v := 0; v < g.n; v++ {
		q.Insert(pqueue.Entry[int, int64, struct{}]{Key: v, Priority: dist[v]})
	}

	fixed := sparsesets.New(g.n)
	for !q.IsEmpty() {
		top, err := q.Pop()
		if err != nil {
			return nil, err
		}
		u := top.Key
		fixed.Insert(u)
		if dist[u] == Infinity {
			// Everything still queued is unreachable as well.
			continue
		}
		for v, w := range g.matrix[u] {
			if w == 0 || fixed.Contains(v) {
				continue
			}
			if d := dist[u] + 1; d < dist[v] {
				dist[v] = d
				q.Update(v, d)
			}
		}
	}

	return dist, nil
}

// BuildTree grows a breadth-first tree from root and returns its depth, that
// is the eccentricity of root. The result is Infinity when the graph is
// disconnected.
func (g *Graph) BuildTree(root int) (int64, error) {
	dist, err := g.Depths(root)
	if err != nil {
		return 0, err
	}

	var depth int64
	for _, d := range dist {
		if d > depth {
			depth = d
		}
	}

	return depth, nil
}

// MinimumEccentricityRoot runs BuildTree from every vertex and returns the
// vertex with the smallest eccentricity together with that eccentricity. Ties
// go to the lowest vertex index. On a disconnected graph every eccentricity
// is Infinity, so vertex 0 is returned with Infinity.
//
// Returns ErrEmptyGraph when the graph has no vertices.
//
// Complexity: N runs of Depths, O(N³).
func (g *Graph) MinimumEccentricityRoot() (int, int64, error) {
	if g.n == 0 {
		return 0, 0, ErrEmptyGraph
	}

	best, bestEcc := 0, Infinity
	for v := 0; v < g.n; v++ {
		ecc, err := g.BuildTree(v)
		if err != nil {
			return 0, 0, err
		}
		if v == 0 || ecc < bestEcc {
			best, bestEcc = v, ecc
		}
	}
	g.log.WithFields(logrus.Fields{"root": best, "eccentricity": bestEcc}).Debug("minimum eccentricity root")

	return best, bestEcc, nil
}
