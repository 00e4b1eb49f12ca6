// Package digraph provides a directed graph with non-negative integer edge
// weights and the searches puzzle code runs over named nodes: shortest
// paths, enumeration of every simple path, path counting and ordering.
//
// Overview:
//
//   - Nodes are any ordered type (strings, ints, …). They are registered by
//     InsertEdge; there is no separate AddNode.
//   - Edges are one-directional. Re-inserting an edge overwrites its weight.
//   - Every query is read-only and deterministic: successors are visited in
//     ascending node order and heap ties break on node order.
//
// Operations:
//
//   - Dijkstra / ShortestPath: single-source distances with a lazy
//     decrease-key min-heap. Unreachable nodes are absent from the result.
//   - AllUniquePaths: every simple path between two nodes, expanded
//     cheapest-first. Exponential in the worst case; bound it with
//     WithPathLimit on dense graphs.
//   - CountPaths / CountPathsVia: number of paths between two nodes,
//     optionally through required waypoints, memoized per call.
//   - PathExists: whether a node sequence follows existing edges.
//   - Reorder: topological order of a node subset.
//
// Performance and complexity:
//
//   - Dijkstra: O((V + E) log V) time, O(V + E) space.
//   - Reorder:  O(S log S + E_s) for a subset of S nodes.
//   - CountPathsVia: O((V + E) · 2^k) for k waypoints.
//
// Error handling (sentinel errors):
//
//   - ErrNegativeWeight: InsertEdge was given w < 0; the graph is unchanged.
//   - ErrNodeNotFound: a query names an unknown node, or ShortestPath cannot
//     reach its target.
//   - ErrCycleDetected: Reorder or CountPaths met a cycle that makes the
//     answer undefined.
//   - ErrPathLimit: AllUniquePaths hit its expansion budget.
//   - ErrOptionViolation: an option carried an invalid value.
//
// Example:
//
//	g := digraph.New[string]()
//	_ = g.InsertEdge("A", "B", 1)
//	_ = g.InsertEdge("B", "C", 1)
//	dist, _ := g.Dijkstra("A") // dist["C"] == 2
package digraph
