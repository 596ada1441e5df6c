package graph_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errandgraph/graph"
)

// errandGraph is a tree plus one heavy extra edge (1-4) that Kruskal drops:
//
//	1 ─1─ 0 ─2─ 2 ─1─ 3 ─1─ 4
//
// Ice is at {1, 2}, ice-cream at {3}. The nearest ice from 0 is 1, which is
// the wrong choice overall: 0→1→3→4 costs 6 while 0→2→3→4 costs 4.
func errandGraph(t testing.TB, opts ...graph.Option) *graph.Graph {
	return mustGraph(t, 5, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 2},
		{From: 2, To: 3, Weight: 1},
		{From: 3, To: 4, Weight: 1},
		{From: 1, To: 4, Weight: 20},
	}, opts...)
}

func TestShortestErrand_ScenarioD_Greedy(t *testing.T) {
	g := errandGraph(t)

	res, err := g.ShortestErrand(0, 4, []int{1, 2}, []int{3})
	require.NoError(t, err)
	require.True(t, res.Reachable())

	// The greedy value is d(0→1) + d(1→3) + d(3→4) = 1 + 4 + 1, not the
	// optimum 4.
	from0, err := g.ShortestPaths(0)
	require.NoError(t, err)
	from1, err := g.ShortestPaths(1)
	require.NoError(t, err)
	from3, err := g.ShortestPaths(3)
	require.NoError(t, err)
	assert.Equal(t, from0.Dist[1]+from1.Dist[3]+from3.Dist[4], res.Distance)
	assert.Equal(t, int64(6), res.Distance)

	assert.Equal(t, []int{0, 1, 0, 2, 3, 4}, res.Path)
	want := []graph.Leg{
		{From: 0, To: 1, Distance: 1, Path: []int{0, 1}},
		{From: 1, To: 3, Distance: 4, Path: []int{1, 0, 2, 3}},
		{From: 3, To: 4, Distance: 1, Path: []int{3, 4}},
	}
	if diff := cmp.Diff(want, res.Legs); diff != "" {
		t.Errorf("legs mismatch (-want +got):\n%s", diff)
	}
}

func TestShortestErrand_WaypointTiesUseListOrder(t *testing.T) {
	// 1 and 2 are both one step from 0.
	g := mustGraph(t, 4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})

	res, err := g.ShortestErrand(0, 3, []int{2, 1}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Legs[0].To)
	assert.Equal(t, []int{0, 2, 3}, res.Path)
	assert.Equal(t, int64(2), res.Distance)
}

func TestShortestErrand_WaypointsAtEndpoints(t *testing.T) {
	g := errandGraph(t)

	// Home is itself an ice location and the destination sells ice-cream.
	res, err := g.ShortestErrand(2, 3, []int{2}, []int{3})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Distance)
	assert.Equal(t, []int{2, 3}, res.Path)
}

func TestShortestErrand_Unreachable(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})

	res, err := g.ShortestErrand(0, 1, []int{1}, []int{3})
	require.NoError(t, err)
	assert.False(t, res.Reachable())
	assert.Equal(t, graph.Infinity, res.Distance)
	assert.Nil(t, res.Path)
	require.Len(t, res.Legs, 2)
	assert.Equal(t, graph.Infinity, res.Legs[1].Distance)
}

func TestShortestErrand_Errors(t *testing.T) {
	g := errandGraph(t)

	_, err := g.ShortestErrand(0, 4, nil, []int{3})
	assert.ErrorIs(t, err, graph.ErrNoWaypoints)

	_, err = g.ShortestErrand(0, 4, []int{1}, []int{})
	assert.ErrorIs(t, err, graph.ErrNoWaypoints)

	_, err = g.ShortestErrand(5, 4, []int{1}, []int{3})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	_, err = g.ShortestErrand(0, -1, []int{1}, []int{3})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	_, err = g.ShortestErrand(0, 4, []int{1, 9}, []int{3})
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	assert.Contains(t, err.Error(), "ice waypoint")
}

func TestShortestErrand_LegSumOverflow(t *testing.T) {
	// Each leg crosses the same heavy edge; three crossings pass Infinity.
	w := int64(math.MaxInt64 / 2)
	g := mustGraph(t, 2, []graph.Edge{{From: 0, To: 1, Weight: w}})

	_, err := g.ShortestErrand(0, 1, []int{1}, []int{0})
	assert.ErrorIs(t, err, graph.ErrWeightOverflow)

	res, err := g.ShortestErrand(0, 0, []int{1}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, 2*w, res.Distance)
	assert.Equal(t, []int{0, 1, 0}, res.Path)
}
