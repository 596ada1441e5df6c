// Package unionfind implements a disjoint-set forest over the integers 0..n-1.
//
// By default neither path compression nor union by rank is applied: Find walks
// parent pointers to the root in O(depth) and Union hangs the root of v's tree
// under the root of u's tree. Trees may therefore grow to depth n-1. For large
// inputs, WithPathCompression flattens paths during Find; the roots reported
// are the same either way, only the cost changes.
//
// Indices outside [0, n) are a caller bug and cause a panic.
package unionfind

import "fmt"

// Option configures a UnionFind.
type Option func(*UnionFind)

// WithPathCompression makes Find repoint every visited element straight at
// its root.
func WithPathCompression() Option {
	return func(uf *UnionFind) {
		uf.compress = true
	}
}

// UnionFind is a disjoint-set forest. It is not safe for concurrent use.
type UnionFind struct {
	parent   []int
	compress bool
}

// New returns a UnionFind of n singleton sets.
func New(n int, opts ...Option) *UnionFind {
	if n < 0 {
		panic(fmt.Sprintf("unionfind: negative size %d", n))
	}
	uf := &UnionFind{parent: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = i
	}
	for _, opt := range opts {
		opt(uf)
	}

	return uf
}

// Len returns the number of elements.
func (uf *UnionFind) Len() int { return len(uf.parent) }

// Find returns the representative root of v's set.
func (uf *UnionFind) Find(v int) int {
	uf.check(v)
	root := v
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	if uf.compress {
		for uf.parent[v] != root {
			v, uf.parent[v] = uf.parent[v], root
		}
	}

	return root
}

// Union makes the root of u's set the parent of the root of v's set.
// There is no guard against u and v already sharing a root; callers compare
// Find results first.
func (uf *UnionFind) Union(u, v int) {
	ru := uf.Find(u)
	rv := uf.Find(v)
	uf.parent[rv] = ru
}

// Connected reports whether u and v are in the same set.
func (uf *UnionFind) Connected(u, v int) bool {
	return uf.Find(u) == uf.Find(v)
}

// Components returns the number of disjoint sets.
func (uf *UnionFind) Components() int {
	n := 0
	for i, p := range uf.parent {
		if i == p {
			n++
		}
	}

	return n
}

func (uf *UnionFind) check(v int) {
	if v < 0 || v >= len(uf.parent) {
		panic(fmt.Sprintf("unionfind: index %d out of range [0,%d)", v, len(uf.parent)))
	}
}
