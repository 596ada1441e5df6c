// Package graphio reads and writes errandgraph graphs.
//
// Three encodings carry the same Document:
//
// Plain text, the historical format. The first non-blank line holds the
// vertex count N; every following non-blank line holds one undirected edge as
// three whitespace-separated integers "u v w":
//
//	4
//	0 1 1
//	1 2 1
//	2 3 1
//	0 3 5
//
// YAML and TOML, which may also list errand queries:
//
//	order: 5
//	edges:
//	  - {from: 0, to: 1, weight: 1}
//	  - {from: 1, to: 2, weight: 2}
//	errands:
//	  - {home: 0, destination: 2, ice: [1], ice_cream: [2]}
//
// Every decoded Document is validated (non-negative order and weights, edge
// endpoints and errand vertices inside [0, order), non-empty waypoint lists)
// before it is returned. Load picks the decoder from the file extension.
package graphio
