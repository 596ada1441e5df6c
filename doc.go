// Package errandgraph is a small toolkit for undirected, non-negatively
// weighted graphs over the vertices 0..N-1.
//
// It builds minimum spanning forests, computes single-source shortest paths
// with explicit routes, measures how shallow a breadth-first tree rooted at a
// vertex can be (eccentricity), and plans the greedy "errand" route
// home → ice → ice-cream → destination.
//
// Packages:
//
//	graph/      the Graph type and its algorithms (Kruskal, Dijkstra,
//	            traversal depth, minimum-eccentricity root, errand route)
//	pqueue/     linear-scan and binary-heap priority queues with lazy
//	            duplicates
//	unionfind/  disjoint-set forest used by Kruskal
//	graphio/    plain-text, YAML and TOML graph documents
//	builder/    deterministic fixture generators (path, grid, random graphs)
//	logging/    logrus logger construction with file rotation
//
// Quick example:
//
//	    1 ─1─ 0 ─2─ 2 ─1─ 3 ─1─ 4
//
//	g, _ := graph.New(5, []graph.Edge{{0, 1, 1}, {0, 2, 2}, {2, 3, 1}, {3, 4, 1}})
//	res, _ := g.ShortestErrand(0, 4, []int{1, 2}, []int{3})
//	// res.Distance == 6, res.Path == [0 1 0 2 3 4]
//
//	go get github.com/katalvlaran/errandgraph
package errandgraph
