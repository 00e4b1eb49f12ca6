package digraph

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Dijkstra computes shortest distances from start to every node reachable
// from it. Unreachable nodes are absent from the result, so a lookup miss
// means "no path" rather than an infinite sentinel.
//
// Preconditions and validation (in order):
//  1. Every option value must be valid (ErrOptionViolation).
//  2. start must be a known node (ErrNodeNotFound).
//
// Negative weights never reach the search: InsertEdge rejects them.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func (g *Graph[N]) Dijkstra(start N, opts ...Option[N]) (map[N]int64, error) {
	r, err := g.search(start, opts)
	if err != nil {
		return nil, err
	}

	return r.dist, nil
}

// ShortestPath returns the minimum-weight path from start to end.
// ErrNodeNotFound is returned when either node is unknown or end cannot
// be reached from start.
// Ties between equal-weight routes go to the one whose last step leaves
// the smallest predecessor.
func (g *Graph[N]) ShortestPath(start, end N) (Path[N], error) {
	if !g.nodes.Has(end) {
		return Path[N]{}, fmt.Errorf("%w: %v", ErrNodeNotFound, end)
	}
	r, err := g.search(start, nil)
	if err != nil {
		return Path[N]{}, err
	}
	d, ok := r.dist[end]
	if !ok {
		return Path[N]{}, fmt.Errorf("%w: %v unreachable from %v", ErrNodeNotFound, end, start)
	}

	nodes := []N{end}
	for cur := end; cur != start; {
		cur = r.prev[cur]
		nodes = append(nodes, cur)
	}
	slices.Reverse(nodes)

	return Path[N]{Weight: d, Nodes: nodes}, nil
}

func (g *Graph[N]) search(start N, opts []Option[N]) (*runner[N], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate start exists in the graph
	if !g.nodes.Has(start) {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, start)
	}

	// 3) Run
	r := &runner[N]{
		g:       g,
		options: cfg,
		dist:    make(map[N]int64),
		prev:    make(map[N]N),
		visited: mapset.New[N](),
		pq:      heap.New[item[N]](lessItem[N]),
	}
	r.init(start)
	r.process()

	return r, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[N Node] struct {
	g       *Graph[N]           // read-only during the search
	options Options[N]          // validated configuration
	dist    map[N]int64         // best known distance from start
	prev    map[N]N             // predecessor on the best known path
	visited mapset.Set[N]       // nodes whose distance is final
	pq      *heap.Heap[item[N]] // min-heap keyed by lessItem
}

// init records start at distance zero and seeds the heap.
func (r *runner[N]) init(start N) {
	r.dist[start] = 0
	r.pq.Push(item[N]{node: start, dist: 0})
}

// process pops the closest unfinished node until the heap drains.
// Stale heap entries are skipped (lazy decrease-key).
func (r *runner[N]) process() {
	for r.pq.Size() > 0 {
		it, _ := r.pq.Pop()
		if r.visited.Has(it.node) {
			continue
		}
		r.visited.Put(it.node)
		r.options.OnVisit(it.node, it.dist)
		r.relax(it.node, it.dist)
	}
}

// relax improves distances of u's successors through u.
// Successors are walked in ascending order so that equal-distance
// predecessors resolve to the smallest node.
func (r *runner[N]) relax(u N, du int64) {
	for _, v := range r.g.Neighbors(u) {
		nd := du + r.g.weights[Edge[N]{From: u, To: v}]
		if nd > r.options.MaxDistance {
			continue
		}
		if d, ok := r.dist[v]; ok && d <= nd {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		r.pq.Push(item[N]{node: v, dist: nd})
	}
}

// item is a heap entry: a node and a tentative distance.
type item[N Node] struct {
	node N
	dist int64
}

// lessItem orders heap entries by distance, then by node.
func lessItem[N Node](a, b item[N]) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.node < b.node
}
