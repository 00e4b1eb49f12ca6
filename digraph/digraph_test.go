// Package digraph_test contains unit tests for the directed weighted graph:
// construction, Dijkstra, path enumeration, path counting and Reorder.
package digraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/digraph"
)

// ------------------------------------------------------------------------
// 1. Construction
// ------------------------------------------------------------------------

func TestInsertEdge_RegistersBothEndpoints(t *testing.T) {
	g := digraph.New[string]()
	require.NoError(t, g.InsertEdge("A", "B", 3))

	assert.True(t, g.HasNode("A"))
	assert.True(t, g.HasNode("B"), "destination without successors is still a node")
	assert.True(t, g.HasEdge("A", "B"))
	assert.False(t, g.HasEdge("B", "A"), "edges are one-directional")
	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumEdges())
	assert.Empty(t, g.Neighbors("B"))
}

func TestInsertEdge_LastWriteWins(t *testing.T) {
	g := digraph.New[string]()
	require.NoError(t, g.InsertEdge("A", "B", 5))
	require.NoError(t, g.InsertEdge("A", "B", 2))

	w, ok := g.Weight("A", "B")
	require.True(t, ok)
	assert.Equal(t, int64(2), w)
	assert.Equal(t, 1, g.NumEdges())
}

func TestInsertEdge_NegativeWeight(t *testing.T) {
	g := digraph.New[string]()
	err := g.InsertEdge("A", "B", -1)

	require.ErrorIs(t, err, digraph.ErrNegativeWeight)
	assert.Zero(t, g.NumNodes(), "graph must be unchanged")
	assert.False(t, g.HasEdge("A", "B"))
}

func TestNodesAndNeighbors_Sorted(t *testing.T) {
	g := digraph.New[int]()
	g.AddEdge(5, 3)
	g.AddEdge(5, 9)
	g.AddEdge(5, 1)

	assert.Equal(t, []int{1, 3, 5, 9}, g.Nodes())
	assert.Equal(t, []int{1, 3, 9}, g.Neighbors(5))
	w, _ := g.Weight(5, 9)
	assert.Equal(t, int64(1), w, "AddEdge uses weight 1")
}

func TestPathExists(t *testing.T) {
	g := digraph.New[int]()
	g.AddEdge(75, 47)
	g.AddEdge(47, 61)
	g.AddEdge(61, 53)

	assert.True(t, g.PathExists(75, 47, 61, 53))
	assert.False(t, g.PathExists(75, 61))
	assert.False(t, g.PathExists(53, 61), "reverse direction")
	assert.True(t, g.PathExists(75))
	assert.True(t, g.PathExists())
}

// ------------------------------------------------------------------------
// 2. Dijkstra
// ------------------------------------------------------------------------

// weighted builds
//
//	A→B(1) A→C(4) B→C(2) B→D(5) C→D(1) E→A(1)
func weighted(t *testing.T) *digraph.Graph[string] {
	t.Helper()
	g := digraph.New[string]()
	for _, e := range []struct {
		u, v string
		w    int64
	}{
		{"A", "B", 1}, {"A", "C", 4}, {"B", "C", 2},
		{"B", "D", 5}, {"C", "D", 1}, {"E", "A", 1},
	} {
		require.NoError(t, g.InsertEdge(e.u, e.v, e.w))
	}
	return g
}

func TestDijkstra_Weighted(t *testing.T) {
	g := weighted(t)

	dist, err := g.Dijkstra("A")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3, "D": 4}, dist)

	_, reached := dist["E"]
	assert.False(t, reached, "unreachable nodes are absent")
}

func TestDijkstra_Errors(t *testing.T) {
	g := weighted(t)

	_, err := g.Dijkstra("Z")
	assert.ErrorIs(t, err, digraph.ErrNodeNotFound)

	_, err = g.Dijkstra("A", digraph.WithMaxDistance[string](-1))
	assert.ErrorIs(t, err, digraph.ErrOptionViolation)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := weighted(t)

	dist, err := g.Dijkstra("A", digraph.WithMaxDistance[string](3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"A": 0, "B": 1, "C": 3}, dist)
}

func TestDijkstra_OnVisitOrder(t *testing.T) {
	g := weighted(t)

	var order []string
	_, err := g.Dijkstra("A", digraph.WithOnVisit(func(n string, _ int64) {
		order = append(order, n)
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestShortestPath(t *testing.T) {
	g := weighted(t)

	p, err := g.ShortestPath("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(4), p.Weight)
	assert.Equal(t, []string{"A", "B", "C", "D"}, p.Nodes)

	p, err = g.ShortestPath("A", "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, p.Nodes)

	_, err = g.ShortestPath("A", "E")
	assert.ErrorIs(t, err, digraph.ErrNodeNotFound, "unreachable")
	_, err = g.ShortestPath("A", "Q")
	assert.ErrorIs(t, err, digraph.ErrNodeNotFound, "unknown")
}

// ------------------------------------------------------------------------
// 3. AllUniquePaths
// ------------------------------------------------------------------------

func TestAllUniquePaths_CycleTerminates(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")

	paths, err := g.AllUniquePaths("A", "C")
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, int64(2), paths[0].Weight)
	assert.Equal(t, []string{"A", "B", "C"}, paths[0].Nodes)
}

func TestAllUniquePaths_Diamond(t *testing.T) {
	g := weighted(t)

	paths, err := g.AllUniquePaths("A", "D")
	require.NoError(t, err)
	require.Len(t, paths, 3)

	got := make(map[string]int64, len(paths))
	for _, p := range paths {
		key := ""
		for _, n := range p.Nodes {
			key += n
		}
		got[key] = p.Weight
	}
	assert.Equal(t, map[string]int64{"ABCD": 4, "ACD": 5, "ABD": 6}, got)
}

func TestAllUniquePaths_SameEndpoint(t *testing.T) {
	g := weighted(t)

	paths, err := g.AllUniquePaths("B", "B")
	require.NoError(t, err)
	assert.Equal(t, []digraph.Path[string]{{Weight: 0, Nodes: []string{"B"}}}, paths)
}

func TestAllUniquePaths_Errors(t *testing.T) {
	g := weighted(t)

	_, err := g.AllUniquePaths("A", "nowhere")
	assert.ErrorIs(t, err, digraph.ErrNodeNotFound)

	_, err = g.AllUniquePaths("A", "D", digraph.WithPathLimit(-2))
	assert.ErrorIs(t, err, digraph.ErrOptionViolation)

	paths, err := g.AllUniquePaths("D", "A")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestAllUniquePaths_Limit(t *testing.T) {
	// complete digraph on 8 nodes: far more partial paths than the limit
	g := digraph.New[int]()
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i != j {
				g.AddEdge(i, j)
			}
		}
	}

	paths, err := g.AllUniquePaths(0, 7, digraph.WithPathLimit(50))
	require.ErrorIs(t, err, digraph.ErrPathLimit)
	require.NotEmpty(t, paths, "partial result is returned")
	assert.Equal(t, []int{0, 7}, paths[0].Nodes, "cheapest path found first")
}

// ------------------------------------------------------------------------
// 4. Path counting
// ------------------------------------------------------------------------

// devices is a small server-rack wiring graph.
func devices() *digraph.Graph[string] {
	g := digraph.New[string]()
	for u, vs := range map[string][]string{
		"svr": {"aaa", "bbb"},
		"aaa": {"fft"},
		"fft": {"ccc"},
		"bbb": {"tty"},
		"tty": {"ccc"},
		"ccc": {"ddd", "eee"},
		"ddd": {"hub"},
		"hub": {"fff"},
		"eee": {"dac"},
		"dac": {"fff"},
		"fff": {"ggg", "hhh"},
		"ggg": {"out"},
		"hhh": {"out"},
	} {
		for _, v := range vs {
			g.AddEdge(u, v)
		}
	}
	return g
}

func TestCountPaths(t *testing.T) {
	g := devices()

	n, err := g.CountPaths("svr", "out")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	paths, err := g.AllUniquePaths("svr", "out")
	require.NoError(t, err)
	assert.Len(t, paths, n, "counting agrees with enumeration")

	n, err = g.CountPaths("out", "svr")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCountPathsVia(t *testing.T) {
	g := devices()

	n, err := g.CountPathsVia("svr", "out", "dac", "fft")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = g.CountPathsVia("svr", "out", "fft", "fft")
	require.NoError(t, err)
	assert.Equal(t, 4, n, "duplicate waypoints collapse")

	_, err = g.CountPathsVia("svr", "out", "nope")
	assert.ErrorIs(t, err, digraph.ErrNodeNotFound)
}

func TestCountPaths_Cycles(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("s", "a")
	g.AddEdge("a", "t")
	g.AddEdge("a", "x")
	g.AddEdge("x", "y")
	g.AddEdge("y", "x") // dead-end cycle, cannot reach t

	n, err := g.CountPaths("s", "t")
	require.NoError(t, err)
	assert.Equal(t, 1, n, "cycle off the way to t is harmless")

	g.AddEdge("t", "a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")
	_, err = g.CountPaths("s", "t")
	assert.True(t, errors.Is(err, digraph.ErrCycleDetected))
}

// ------------------------------------------------------------------------
// 5. Reorder
// ------------------------------------------------------------------------

// rules builds the page-ordering rules X|Y as edges X→Y.
func rules() *digraph.Graph[int] {
	g := digraph.New[int]()
	for _, r := range [][2]int{
		{47, 53}, {97, 13}, {97, 61}, {97, 47}, {75, 29}, {61, 13}, {75, 53},
		{29, 13}, {97, 29}, {53, 29}, {61, 53}, {97, 53}, {61, 29}, {47, 13},
		{75, 47}, {97, 75}, {47, 61}, {75, 61}, {47, 29}, {75, 13}, {53, 13},
	} {
		g.AddEdge(r[0], r[1])
	}
	return g
}

func TestReorder(t *testing.T) {
	g := rules()
	cases := []struct {
		in, want []int
	}{
		{[]int{75, 97, 47, 61, 53}, []int{97, 75, 47, 61, 53}},
		{[]int{61, 13, 29}, []int{61, 29, 13}},
		{[]int{97, 13, 75, 29, 47}, []int{97, 75, 47, 29, 13}},
	}
	for _, c := range cases {
		got, err := g.Reorder(c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got)
		assert.True(t, g.PathExists(got...))
	}
}

func TestReorder_Deterministic(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("c", "a")

	got, err := g.Reorder([]string{"b", "a", "c", "b", "z"})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a", "z"}, got)
}

func TestReorder_Cycle(t *testing.T) {
	g := digraph.New[string]()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "a")

	_, err := g.Reorder([]string{"a", "b", "c"})
	assert.ErrorIs(t, err, digraph.ErrCycleDetected)

	got, err := g.Reorder([]string{"a", "b"})
	require.NoError(t, err, "cycle leaves the subset")
	assert.Equal(t, []string{"a", "b"}, got)
}
