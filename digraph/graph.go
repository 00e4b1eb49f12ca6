package digraph

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Graph is a directed graph with non-negative int64 edge weights.
//
// Nodes are registered implicitly by InsertEdge; a node that only appears
// as a destination is still a valid query target. Edges are one-directional:
// a two-way link needs both directions inserted.
//
// Graph is not safe for concurrent mutation.
type Graph[N Node] struct {
	nodes   mapset.Set[N]       // every node seen as source or destination
	succ    map[N]mapset.Set[N] // adjacency: node → successors
	weights map[Edge[N]]int64   // edge weight keyed by (from, to)
}

// New creates an empty graph.
// Complexity: O(1)
func New[N Node]() *Graph[N] {
	return &Graph[N]{
		nodes:   mapset.New[N](),
		succ:    make(map[N]mapset.Set[N]),
		weights: make(map[Edge[N]]int64),
	}
}

// InsertEdge adds the directed edge from→to with weight w.
// Re-inserting the same pair overwrites its weight.
// A negative weight returns ErrNegativeWeight and leaves the graph unchanged.
// Complexity: O(1)
func (g *Graph[N]) InsertEdge(from, to N, w int64) error {
	if w < 0 {
		return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, from, to, w)
	}
	s, ok := g.succ[from]
	if !ok {
		s = mapset.New[N]()
		g.succ[from] = s
	}
	s.Put(to)
	g.weights[Edge[N]{From: from, To: to}] = w
	g.nodes.Put(from)
	g.nodes.Put(to)

	return nil
}

// AddEdge inserts from→to with the default weight 1.
func (g *Graph[N]) AddEdge(from, to N) {
	_ = g.InsertEdge(from, to, 1)
}

// HasNode reports whether n was ever an edge endpoint.
func (g *Graph[N]) HasNode(n N) bool { return g.nodes.Has(n) }

// HasEdge reports whether from→to exists.
func (g *Graph[N]) HasEdge(from, to N) bool {
	_, ok := g.weights[Edge[N]{From: from, To: to}]
	return ok
}

// Weight returns the weight of from→to and whether the edge exists.
func (g *Graph[N]) Weight(from, to N) (int64, bool) {
	w, ok := g.weights[Edge[N]{From: from, To: to}]
	return w, ok
}

// NumNodes returns the number of registered nodes.
func (g *Graph[N]) NumNodes() int { return g.nodes.Size() }

// NumEdges returns the number of distinct directed edges.
func (g *Graph[N]) NumEdges() int { return len(g.weights) }

// Nodes returns every registered node in ascending order.
// Complexity: O(V log V)
func (g *Graph[N]) Nodes() []N {
	return sorted(g.nodes)
}

// Neighbors returns the successors of n in ascending order.
// Unknown nodes have no successors.
// Complexity: O(d log d)
func (g *Graph[N]) Neighbors(n N) []N {
	s, ok := g.succ[n]
	if !ok {
		return nil
	}
	return sorted(s)
}

// PathExists reports whether every consecutive pair in seq is an edge.
// Sequences shorter than two nodes trivially exist.
func (g *Graph[N]) PathExists(seq ...N) bool {
	for i := 1; i < len(seq); i++ {
		if !g.HasEdge(seq[i-1], seq[i]) {
			return false
		}
	}

	return true
}

// sorted collects a set into an ascending slice.
func sorted[N Node](s mapset.Set[N]) []N {
	out := make([]N, 0, s.Size())
	s.Each(func(n N) { out = append(out, n) })
	slices.SortFunc(out, compare[N])

	return out
}

func compare[N Node](a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareSeq orders node sequences lexicographically, shorter prefix first.
func compareSeq[N Node](a, b []N) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return len(a) - len(b)
}
