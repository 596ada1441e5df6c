package graph_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errandgraph/graph"
)

func TestShortestPaths_ScenarioA(t *testing.T) {
	g := scenarioA(t)

	p, err := g.ShortestPaths(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, 3}, p.Dist)
	assert.Equal(t, []int{0, 1, 2, 3}, p.Route[3])
	assert.Equal(t, []int{0}, p.Route[0])

	route, err := p.To(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, route)
}

func TestShortestPaths_BuildsForestOnDemand(t *testing.T) {
	// No explicit MinimumSpanningForest call: the forest is derived first,
	// so the heavy 0-3 edge is not used even from vertex 3.
	g := scenarioA(t)

	p, err := g.ShortestPaths(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 0}, p.Dist)
	assert.Equal(t, []int{3, 2, 1, 0}, p.Route[0])
}

func TestShortestPaths_FullGraph(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 5},
		{From: 0, To: 3, Weight: 3},
	})

	tree, err := g.ShortestPaths(0)
	require.NoError(t, err)
	// The forest drops 2-3 (weight 5), so the tree route to 3 is direct.
	assert.Equal(t, int64(3), tree.Dist[3])
	assert.Equal(t, int64(2), tree.Dist[2])

	full, err := g.ShortestPaths(2, graph.OverFullGraph())
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, 0, 5}, full.Dist)
	if diff := cmp.Diff([][]int{{2, 1, 0}, {2, 1}, {2}, {2, 3}}, full.Route); diff != "" {
		t.Errorf("routes mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestPaths_ScenarioC_IsolatedVertex(t *testing.T) {
	const isolated = 3
	g := mustGraph(t, 5, []graph.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 1, To: 2, Weight: 2},
		{From: 2, To: 4, Weight: 2},
	})

	for _, start := range []int{0, 1, 2, 4} {
		p, err := g.ShortestPaths(start)
		require.NoError(t, err)
		assert.Equal(t, graph.Infinity, p.Dist[isolated])
		assert.Nil(t, p.Route[isolated])
		assert.False(t, p.Reachable(isolated))

		_, err = p.To(isolated)
		assert.ErrorIs(t, err, graph.ErrUnreachable)
	}

	p, err := g.ShortestPaths(isolated)
	require.NoError(t, err)
	assert.Equal(t, []int64{graph.Infinity, graph.Infinity, graph.Infinity, 0, graph.Infinity}, p.Dist)
}

func TestShortestPaths_Errors(t *testing.T) {
	g := scenarioA(t)
	_, err := g.ShortestPaths(4)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	p, err := g.ShortestPaths(0)
	require.NoError(t, err)
	_, err = p.To(-2)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	assert.False(t, p.Reachable(17))
}

func TestShortestPaths_ToReturnsCopy(t *testing.T) {
	g := scenarioA(t)
	p, err := g.ShortestPaths(0)
	require.NoError(t, err)

	route, err := p.To(2)
	require.NoError(t, err)
	route[0] = 42
	assert.Equal(t, []int{0, 1, 2}, p.Route[2])
}

func TestShortestPaths_HeavyWeightsStayFinite(t *testing.T) {
	heavy := int64(math.MaxInt64/2 + 1)
	g := mustGraph(t, 2, []graph.Edge{{From: 0, To: 1, Weight: heavy}})

	for _, opts := range [][]graph.PathOption{nil, {graph.OverFullGraph()}} {
		p, err := g.ShortestPaths(0, opts...)
		require.NoError(t, err)
		assert.Equal(t, []int64{0, heavy}, p.Dist)
		assert.True(t, p.Reachable(1))
		assert.Equal(t, []int{0, 1}, p.Route[1])
	}

	edge := mustGraph(t, 2, []graph.Edge{{From: 0, To: 1, Weight: graph.Infinity - 1}})
	p, err := edge.ShortestPaths(1, graph.OverFullGraph())
	require.NoError(t, err)
	assert.Equal(t, []int64{graph.Infinity - 1, 0}, p.Dist)
	assert.True(t, p.Reachable(0))
}
