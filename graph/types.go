package graph

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// MaxOrder is the largest vertex count New accepts. The adjacency matrix
// holds MaxOrder² int64 cells, 128 MiB at the limit.
const MaxOrder = 1 << 12

// Sentinel errors returned by Graph construction and queries.
var (
	// ErrNegativeOrder indicates a negative vertex count was passed to New.
	ErrNegativeOrder = errors.New("graph: vertex count is negative")

	// ErrVertexOutOfRange indicates a vertex index outside [0, N).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")

	// ErrNegativeWeight indicates an edge with a negative weight.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrOrderTooLarge indicates a vertex count above MaxOrder.
	ErrOrderTooLarge = errors.New("graph: vertex count exceeds MaxOrder")

	// ErrWeightOverflow indicates a total edge weight that reaches Infinity,
	// or an errand whose legs add up past it.
	ErrWeightOverflow = errors.New("graph: total weight overflows int64")

	// ErrEmptyGraph indicates a query that needs at least one vertex.
	ErrEmptyGraph = errors.New("graph: graph has no vertices")

	// ErrNoWaypoints indicates an empty waypoint list in ShortestErrand.
	ErrNoWaypoints = errors.New("graph: waypoint list is empty")

	// ErrUnreachable indicates a path was requested for a vertex at Infinity.
	ErrUnreachable = errors.New("graph: vertex is unreachable")
)

// Edge is an undirected weighted edge between From and To.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Options configures a Graph. Use the Option helpers rather than filling it
// directly.
type Options struct {
	// Logger receives Debug entries from the algorithms.
	Logger logrus.FieldLogger

	// UseHeap switches every internal priority queue from the linear-scan
	// pqueue.Queue to pqueue.Heap. Results are identical.
	UseHeap bool

	// PathCompression enables path compression in the union-find used by
	// MinimumSpanningForest.
	PathCompression bool
}

// Option configures a Graph.
type Option func(*Options)

// DefaultOptions returns the settings New starts from: the logrus standard
// logger, the linear-scan queue and a plain union-find.
func DefaultOptions() Options {
	return Options{
		Logger:          logrus.StandardLogger(),
		UseHeap:         false,
		PathCompression: false,
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithHeapQueue makes the algorithms use pqueue.Heap.
func WithHeapQueue() Option {
	return func(o *Options) {
		o.UseHeap = true
	}
}

// WithPathCompression enables union-find path compression for Kruskal.
func WithPathCompression() Option {
	return func(o *Options) {
		o.PathCompression = true
	}
}

// PathOptions configures a single ShortestPaths call.
type PathOptions struct {
	// FullGraph runs over every matrix edge instead of the spanning forest.
	FullGraph bool
}

// PathOption configures ShortestPaths.
type PathOption func(*PathOptions)

// OverFullGraph makes ShortestPaths relax every edge of the adjacency matrix
// rather than only the spanning-forest edges.
func OverFullGraph() PathOption {
	return func(o *PathOptions) {
		o.FullGraph = true
	}
}
