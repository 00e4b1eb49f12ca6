package digraph

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// AllUniquePaths enumerates every simple path from start to end.
//
// Partial paths are expanded from a min-heap ordered by accumulated weight,
// then by node sequence; results are appended in expansion order, which is
// not a sorting guarantee. A path stops at its first arrival at end and
// never revisits a node, so no duplicate or cyclic path is produced.
// start == end yields the single zero-weight path [start].
//
// The number of simple paths can be exponential. WithPathLimit caps the
// number of heap pops; when the cap is hit the paths found so far are
// returned together with ErrPathLimit.
//
// Errors: ErrNodeNotFound for unknown endpoints, ErrOptionViolation for a
// bad option, ErrPathLimit as above.
func (g *Graph[N]) AllUniquePaths(start, end N, opts ...PathOption) ([]Path[N], error) {
	// 1) Options
	var cfg PathOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Endpoints
	for _, n := range [2]N{start, end} {
		if !g.nodes.Has(n) {
			return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
		}
	}

	// 3) Best-first expansion of partial paths
	pq := heap.New[Path[N]](lessPath[N])
	pq.Push(Path[N]{Weight: 0, Nodes: []N{start}})

	var (
		out      []Path[N]
		expanded int
	)
	for pq.Size() > 0 {
		if cfg.Limit > 0 && expanded >= cfg.Limit {
			return out, fmt.Errorf("%w: %d expansions, %d paths", ErrPathLimit, expanded, len(out))
		}
		p, _ := pq.Pop()
		expanded++

		tail := p.Nodes[len(p.Nodes)-1]
		if tail == end {
			out = append(out, p)
			continue
		}
		for _, n := range g.Neighbors(tail) {
			if slices.Contains(p.Nodes, n) {
				continue
			}
			nodes := make([]N, len(p.Nodes), len(p.Nodes)+1)
			copy(nodes, p.Nodes)
			pq.Push(Path[N]{
				Weight: p.Weight + g.weights[Edge[N]{From: tail, To: n}],
				Nodes:  append(nodes, n),
			})
		}
	}

	return out, nil
}

func lessPath[N Node](a, b Path[N]) bool {
	if a.Weight != b.Weight {
		return a.Weight < b.Weight
	}
	return compareSeq(a.Nodes, b.Nodes) < 0
}

// CountPaths returns how many distinct paths lead from start to end.
// It is CountPathsVia with no required waypoints.
func (g *Graph[N]) CountPaths(start, end N) (int, error) {
	return g.CountPathsVia(start, end)
}

// maxVia bounds the waypoint bitmask.
const maxVia = 64

// CountPathsVia returns how many distinct paths from start to end pass
// through every node in via, in any order.
//
// Only nodes that can still reach end are explored. A cycle among them
// means infinitely many paths and returns ErrCycleDetected; cycles that
// cannot reach end are harmless. Results are memoized per (node, waypoints
// seen) for the duration of this call only, so repeated calls never share
// stale state.
//
// Complexity: O((V + E) · 2^k) where k = len(via).
func (g *Graph[N]) CountPathsVia(start, end N, via ...N) (int, error) {
	if len(via) > maxVia {
		return 0, fmt.Errorf("%w: at most %d waypoints (%d)", ErrOptionViolation, maxVia, len(via))
	}
	for _, n := range append([]N{start, end}, via...) {
		if !g.nodes.Has(n) {
			return 0, fmt.Errorf("%w: %v", ErrNodeNotFound, n)
		}
	}

	c := &counter[N]{
		g:     g,
		end:   end,
		live:  g.reaching(end),
		bit:   make(map[N]uint64, len(via)),
		memo:  make(map[countKey[N]]int),
		state: make(map[countKey[N]]int),
	}
	for _, n := range via {
		if _, dup := c.bit[n]; dup {
			continue
		}
		b := uint64(1) << len(c.bit)
		c.bit[n] = b
		c.want |= b
	}
	if !c.live.Has(start) {
		return 0, nil
	}

	return c.count(start, 0)
}

// countKey is a memo key: a node and the waypoints seen before entering it.
type countKey[N Node] struct {
	node N
	seen uint64
}

// counter holds the per-call state of CountPathsVia.
type counter[N Node] struct {
	g     *Graph[N]
	end   N
	live  mapset.Set[N]       // nodes with a path to end
	bit   map[N]uint64        // waypoint → mask bit
	want  uint64              // all waypoint bits
	memo  map[countKey[N]]int // paths from a finished key
	state map[countKey[N]]int // white, gray or black
}

func (c *counter[N]) count(n N, seen uint64) (int, error) {
	k := countKey[N]{node: n, seen: seen}
	switch c.state[k] {
	case gray:
		return 0, fmt.Errorf("%w: through %v", ErrCycleDetected, n)
	case black:
		return c.memo[k], nil
	}

	seen |= c.bit[n]
	if n == c.end {
		total := 0
		if seen == c.want {
			total = 1
		}
		c.state[k] = black
		c.memo[k] = total
		return total, nil
	}

	c.state[k] = gray
	total := 0
	for _, next := range c.g.Neighbors(n) {
		if !c.live.Has(next) {
			continue
		}
		sub, err := c.count(next, seen)
		if err != nil {
			return 0, err
		}
		total += sub
	}
	c.state[k] = black
	c.memo[k] = total

	return total, nil
}

// reaching returns every node with a path to target, target included.
func (g *Graph[N]) reaching(target N) mapset.Set[N] {
	pred := make(map[N][]N)
	for e := range g.weights {
		pred[e.To] = append(pred[e.To], e.From)
	}

	seen := mapset.New[N]()
	seen.Put(target)
	queue := []N{target}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range pred[n] {
			if !seen.Has(p) {
				seen.Put(p)
				queue = append(queue, p)
			}
		}
	}

	return seen
}
