// Package gridgraph treats a sparse 2D grid of rune cells as a graph,
// enabling neighbor walks, shortest-path search and region analysis.
//
// What:
//
//   - Grid stores cells in a map keyed by Point{Row, Col}; only set cells exist.
//   - Width and Height grow monotonically as cells are set; there is no removal.
//   - Neighbors yields orthogonal neighbors that are set and are not Wall ('#').
//   - Dijkstra returns the step distance from a start cell to every reachable cell.
//   - Regions groups connected cells of equal value.
//
// Wraparound:
//
//	With WithWrapAround the grid tiles the plane. Neighbors checks the wrapped
//	coordinate ((r mod Height), (c mod Width)) but yields the unwrapped one, so
//	(0,0) in a 3×3 open grid has neighbors (-1,0) and (0,-1), not (2,0) and (0,2).
//	The sparse map backing is what allows such coordinates to be reported.
//
// Complexity:
//
//   - Set, At, InBounds: O(1).
//   - Where, Points:     O(N log N).
//   - Dijkstra:          O(N log N), Memory: O(N) for N reached cells.
//   - Regions:           O(N log N), Memory: O(N).
//
// Errors:
//
//   - ErrOutOfBounds: At on a coordinate that was never set.
//   - ErrStartOutOfBounds: search started from a coordinate that was never set.
//   - ErrEmptyGrid: Repeat on a grid with no cells.
//   - ErrBadRepeat: non-positive Repeat factors.
//   - ErrOptionViolation: invalid option, e.g. negative MaxDistance.
package gridgraph
