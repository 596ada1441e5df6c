// Package graph holds the errandgraph Graph: an undirected, non-negatively
// weighted graph over the vertices 0..N-1, together with the algorithms that
// run on it.
//
// Representation
//
//   - Adjacency matrix: an N×N matrix where cell (u,v) holds the edge weight,
//     or 0 when u and v are not adjacent. The matrix is symmetric. When the
//     same pair is given twice, the last weight wins.
//   - Sorted edge list: every input edge (duplicates included), sorted by
//     ascending weight with a stable sort, so equal weights keep their input
//     order.
//   - Forest adjacency list: for each vertex, the neighbours it is joined to by
//     minimum-spanning-forest edges. It is derived once, on first demand, and
//     never changes afterwards.
//
// Algorithms
//
//   - BuildTree(root) / Depths(root): hop counts from root over the matrix,
//     ignoring weights. BuildTree returns the largest one, the eccentricity of
//     root, or Infinity when some vertex cannot be reached.
//   - MinimumEccentricityRoot(): the vertex with the smallest eccentricity;
//     ties go to the lowest index. O(N³) with the default queue.
//   - MinimumSpanningForest(): Kruskal over the sorted edge list with
//     unionfind. Computed once and cached; safe to call from several
//     goroutines.
//   - ShortestPaths(start): Dijkstra over the forest adjacency list (or over
//     the full matrix with OverFullGraph), weights taken from the matrix.
//     Returns distances and explicit vertex paths.
//   - ShortestErrand(home, dest, ice, iceCream): greedy three-leg route
//     home → nearest ice → nearest ice-cream → dest, each leg a ShortestPaths
//     run from the previous stop.
//
// Unreachable vertices are reported with the Infinity distance and a nil path.
// That is a normal outcome, not an error. Out-of-range vertices and empty
// waypoint lists are caller errors and are reported with the sentinel errors
// declared in types.go.
//
// ShortestErrand is a heuristic. Choosing the nearest ice waypoint first can
// lead to a longer total route than the best combination of waypoints; the
// exact answer needs a search over (vertex, visited-ice, visited-ice-cream)
// states, which this package does not implement.
package graph
