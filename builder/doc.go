// Package builder generates deterministic errandgraph fixtures: paths,
// cycles, stars, complete graphs, grids and seeded random graphs.
//
// A Constructor describes a topology; Build turns it into a *graph.Graph and
// EdgeList into the raw (N, edges) pair. Weights come from a WeightFn driven
// by a seeded *rand.Rand, so the same constructor, options and seed always
// give the same graph.
//
//	g, err := builder.Build(builder.Grid(3, 4),
//	    builder.WithSeed(7),
//	    builder.WithWeightFn(builder.UniformWeight(1, 9)),
//	)
package builder
