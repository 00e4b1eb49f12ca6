package gridgraph

import (
	"fmt"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
)

// Dijkstra computes the minimum number of steps from start to every cell
// reachable through Neighbors. Every step costs 1.
//
// Returns:
//
//   - dist: map from reached coordinate to its distance. Unreached cells are absent.
//   - err:  ErrOptionViolation for invalid options, ErrStartOutOfBounds when
//     start (wrapped, under WithWrapAround) was never set.
//
// Options:
//
//   - WithWrapAround(): search the infinite tiling; coordinates stay unwrapped.
//   - WithMaxDistance(d): do not record or expand cells farther than d.
//   - WithOnVisit(fn): called once per cell when its distance becomes final.
//
// Complexity:
//
//   - Time:  O(N log N) for N reached cells (each has at most 4 edges).
//   - Space: O(N).
func (g *Grid) Dijkstra(start Point, opts ...Option) (map[Point]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	probe := start
	if cfg.WrapAround && g.height > 0 && g.width > 0 {
		probe = g.wrap(start)
	}
	if !g.InBounds(probe.Row, probe.Col) {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfBounds, start)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[Point]int),
		visited: mapset.New[Point](),
		pq:      heap.New[item](lessItem),
	}
	r.init(start)
	r.process()

	return r.dist, nil
}

// Reachable returns the set of coordinates Dijkstra reaches from start
// under the same options.
func (g *Grid) Reachable(start Point, opts ...Option) (mapset.Set[Point], error) {
	dist, err := g.Dijkstra(start, opts...)
	if err != nil {
		return mapset.New[Point](), err
	}
	out := mapset.New[Point]()
	for p := range dist {
		out.Put(p)
	}

	return out, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Grid             // read-only during the search
	options Options           // search configuration
	dist    map[Point]int     // best known distance per coordinate
	visited mapset.Set[Point] // coordinates whose distance is final
	pq      *heap.Heap[item]  // lazy-deletion frontier
}

// item is one frontier entry ordered by distance, then row-major position.
type item struct {
	p    Point
	dist int
}

func lessItem(a, b item) bool {
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.p.Less(b.p)
}

func (r *runner) init(start Point) {
	r.dist[start] = 0
	r.pq.Push(item{p: start, dist: 0})
}

// process pops the closest unfinished coordinate until the frontier is empty.
// Stale entries (already visited) are skipped.
func (r *runner) process() {
	for r.pq.Size() > 0 {
		cur, _ := r.pq.Pop()
		if r.visited.Has(cur.p) {
			continue
		}
		r.visited.Put(cur.p)
		r.options.OnVisit(cur.p, cur.dist)
		r.relax(cur)
	}
}

// relax pushes every neighbor of cur whose distance improves.
func (r *runner) relax(cur item) {
	nd := cur.dist + 1
	if nd > r.options.MaxDistance {
		return
	}
	for n := range r.g.Neighbors(cur.p, r.neighborOpts()...) {
		if d, ok := r.dist[n]; ok && d <= nd {
			continue
		}
		r.dist[n] = nd
		r.pq.Push(item{p: n, dist: nd})
	}
}

func (r *runner) neighborOpts() []Option {
	if r.options.WrapAround {
		return []Option{WithWrapAround()}
	}
	return nil
}
