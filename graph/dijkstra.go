package graph

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/errandgraph/pqueue"
)

// Paths is the result of ShortestPaths.
type Paths struct {
	// Start is the source vertex.
	Start int

	// Dist[v] is the shortest distance from Start to v, or Infinity.
	Dist []int64

	// Route[v] lists the vertices from Start to v inclusive; nil when v is
	// unreachable. Route[Start] == []int{Start}.
	Route [][]int
}

// Reachable reports whether v has a finite distance. Out-of-range vertices
// are not reachable.
func (p *Paths) Reachable(v int) bool {
	return v >= 0 && v < len(p.Dist) && p.Dist[v] != Infinity
}

// To returns the route to v, or an error when v is out of range
// (ErrVertexOutOfRange) or unreachable (ErrUnreachable).
func (p *Paths) To(v int) ([]int, error) {
	if v < 0 || v >= len(p.Dist) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(p.Dist))
	}
	if p.Dist[v] == Infinity {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, p.Start)
	}

	return append([]int(nil), p.Route[v]...), nil
}

// ShortestPaths computes single-source shortest distances and routes from
// start.
//
// By default only spanning-forest edges are relaxed (the forest is built
// first if no query has needed it yet), so each route is the unique tree
// path. OverFullGraph relaxes every matrix edge instead. Edge costs always
// come from the adjacency matrix.
//
// The queue uses lazy duplicates: each strict improvement inserts a new entry
// carrying its distance and the route so far, and stale entries are relaxed
// from their own, larger distance, so they cannot improve anything. Sums that
// would pass Infinity saturate at it.
//
// Complexity: O(E·N) worst case with the linear-scan queue, O(E log E) with
// WithHeapQueue, plus O(N) per route copy. Memory: O(N²) for the routes.
func (g *Graph) ShortestPaths(start int, opts ...PathOption) (*Paths, error) {
	if err := g.checkVertex(start); err != nil {
		return nil, err
	}
	var cfg PathOptions
	for _, opt := range opts {
		opt(&cfg)
	}

	neighbors := g.matrixNeighbors
	if !cfg.FullGraph {
		forest := g.forestList()
		neighbors = func(v int) []int { return forest[v] }
	}

	dist := make([]int64, g.n)
	for v := range dist {
		dist[v] = Infinity
	}
	route := make([][]int, g.n)
	dist[start] = 0
	route[start] = []int{start}

	q := newQueue[[]int](g.opts, g.n)
	q.Insert(pqueue.Entry[int, int64, []int]{Key: start, Priority: 0, Payload: route[start]})

	pops := 0
	for !q.IsEmpty() {
		cur, err := q.Pop()
		if err != nil {
			return nil, err
		}
		pops++
		u := cur.Key
		for _, v := range neighbors(u) {
			d := addDist(cur.Priority, g.matrix[u][v])
			if d >= dist[v] {
				continue
			}
			path := make([]int, len(cur.Payload)+1)
			copy(path, cur.Payload)
			path[len(cur.Payload)] = v

			dist[v] = d
			route[v] = path
			q.Insert(pqueue.Entry[int, int64, []int]{Key: v, Priority: d, Payload: path})
		}
	}
	g.log.WithFields(logrus.Fields{"start": start, "full": cfg.FullGraph, "pops": pops}).Debug("shortest paths computed")

	return &Paths{Start: start, Dist: dist, Route: route}, nil
}
