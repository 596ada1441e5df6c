package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/errandgraph/builder"
	"github.com/katalvlaran/errandgraph/graph"
)

func TestMinimumEccentricityRoot_ScenarioB(t *testing.T) {
	g := pathGraph(t, 5)

	root, ecc, err := g.MinimumEccentricityRoot()
	require.NoError(t, err)
	assert.Equal(t, 2, root)
	assert.Equal(t, int64(2), ecc)
}

func TestMinimumEccentricityRoot_TieGoesToLowestIndex(t *testing.T) {
	// Path of 4: vertices 1 and 2 both have eccentricity 2.
	g := pathGraph(t, 4)

	root, ecc, err := g.MinimumEccentricityRoot()
	require.NoError(t, err)
	assert.Equal(t, 1, root)
	assert.Equal(t, int64(2), ecc)
}

func TestMinimumEccentricityRoot_Errors(t *testing.T) {
	g := mustGraph(t, 0, nil)
	_, _, err := g.MinimumEccentricityRoot()
	assert.ErrorIs(t, err, graph.ErrEmptyGraph)

	single := mustGraph(t, 1, nil)
	root, ecc, err := single.MinimumEccentricityRoot()
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Zero(t, ecc)
}

func TestBuildTree_IgnoresWeights(t *testing.T) {
	// Heavy triangle plus a light tail: hop counts only.
	g := mustGraph(t, 4, []graph.Edge{
		{From: 0, To: 1, Weight: 100},
		{From: 1, To: 2, Weight: 100},
		{From: 0, To: 2, Weight: 100},
		{From: 2, To: 3, Weight: 1},
	})

	depths, err := g.Depths(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 1, 2}, depths)

	ecc, err := g.BuildTree(0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), ecc)

	ecc, err = g.BuildTree(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), ecc)
}

func TestBuildTree_DisconnectedIsInfinite(t *testing.T) {
	g := mustGraph(t, 4, []graph.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
	})

	depths, err := g.Depths(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 2, graph.Infinity}, depths)

	ecc, err := g.BuildTree(3)
	require.NoError(t, err)
	assert.Equal(t, graph.Infinity, ecc)

	root, ecc, err := g.MinimumEccentricityRoot()
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, graph.Infinity, ecc)
}

func TestBuildTree_OutOfRange(t *testing.T) {
	g := pathGraph(t, 3)
	_, err := g.BuildTree(3)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	_, err = g.Depths(-1)
	assert.ErrorIs(t, err, graph.ErrVertexOutOfRange)
}

func TestDepths_HeapQueueAgrees(t *testing.T) {
	edges := []graph.Edge{
		{From: 0, To: 1, Weight: 3}, {From: 0, To: 2, Weight: 1}, {From: 1, To: 3, Weight: 1},
		{From: 2, To: 3, Weight: 9}, {From: 3, To: 4, Weight: 2}, {From: 4, To: 5, Weight: 1},
		{From: 2, To: 5, Weight: 4},
	}
	a := mustGraph(t, 6, edges)
	h := mustGraph(t, 6, edges, graph.WithHeapQueue())
	for v := 0; v < 6; v++ {
		da, err := a.Depths(v)
		require.NoError(t, err)
		dh, err := h.Depths(v)
		require.NoError(t, err)
		assert.Equal(t, da, dh, "root %d", v)
	}
}

func TestMinimumEccentricityRoot_Fixtures(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		root int
		ecc  int64
	}{
		{"star centre", builder.Star(7), 0, 1},
		{"cycle of 6", builder.Cycle(6), 0, 3},
		{"3x3 grid centre", builder.Grid(3, 3), 4, 2},
		{"complete", builder.Complete(5), 0, 1},
		{"path of 9", builder.Path(9), 4, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Weights must not matter for hop-count eccentricity.
			g, err := builder.Build(tc.con, builder.WithUniformWeights(1, 1000))
			require.NoError(t, err)

			root, ecc, err := g.MinimumEccentricityRoot()
			require.NoError(t, err)
			assert.Equal(t, tc.root, root)
			assert.Equal(t, tc.ecc, ecc)
		})
	}
}
