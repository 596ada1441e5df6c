package graph

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/errandgraph/unionfind"
)

// MinimumSpanningForest returns the adjacency list of the minimum spanning
// forest: for every vertex, the neighbours it is joined to by tree edges, in
// the order Kruskal selected them.
//
// The forest is computed on the first call (from any method that needs it)
// and cached. Later and concurrent calls reuse it, so tree edges are never
// added twice. The returned slices are a copy.
//
// Edges are scanned in ascending weight with equal weights in input order; an
// edge is kept when its endpoints have different union-find roots. A
// disconnected graph yields one tree per component, N − components edges in
// total.
//
// Complexity: O(E·N) for the first call, since the union-find walks
// uncompressed parent chains (O(E·α(N)) with WithPathCompression); O(N + E)
// for the copy on later calls. The edge sort is paid once in New.
func (g *Graph) MinimumSpanningForest() [][]int {
	forest := g.forestList()
	out := make([][]int, len(forest))
	for v, nbs := range forest {
		out[v] = append([]int(nil), nbs...)
	}

	return out
}

// ForestEdges returns the spanning-forest edges in selection order.
func (g *Graph) ForestEdges() []Edge {
	g.forestList()
	out := make([]Edge, len(g.forestEdges))
	copy(out, g.forestEdges)

	return out
}

// forestList returns the cached forest adjacency list, building it first if
// needed. Callers must not modify the result.
func (g *Graph) forestList() [][]int {
	g.forestOnce.Do(g.kruskal)

	return g.forest
}

func (g *Graph) kruskal() {
	var ufOpts []unionfind.Option
	if g.opts.PathCompression {
		ufOpts = append(ufOpts, unionfind.WithPathCompression())
	}
	uf := unionfind.New(g.n, ufOpts...)

	adj := make([][]int, g.n)
	var chosen []Edge
	var total int64
	for _, e := range g.sorted {
		if uf.Find(e.From) == uf.Find(e.To) {
			continue
		}
		uf.Union(e.From, e.To)
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
		chosen = append(chosen, e)
		total += e.Weight
	}

	g.forest = adj
	g.forestEdges = chosen
	g.log.WithFields(logrus.Fields{
		"edges":      len(chosen),
		"components": uf.Components(),
		"weight":     total,
	}).Debug("spanning forest built")
}
