package digraph

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// visitation states for depth-first traversals
const (
	white = iota // unseen
	gray         // on the current DFS stack
	black        // fully explored
)

// sorter encapsulates state for ordering a node subset.
type sorter[N Node] struct {
	g      *Graph[N]
	subset mapset.Set[N] // nodes the ordering is restricted to
	state  map[N]int     // white, gray or black
	order  []N           // post-order sequence
}

// Reorder returns the nodes of subset arranged so that for every edge u→v
// between two subset members, u precedes v. Edges leaving the subset are
// ignored. Duplicates in subset are collapsed.
//
// The result is deterministic: roots and successors are explored in
// ascending order. A cycle among the subset returns ErrCycleDetected.
//
// Complexity: O(S log S + E_s) where E_s is the number of induced edges.
func (g *Graph[N]) Reorder(subset []N) ([]N, error) {
	// 1. Collect the subset and seed the sorter
	members := mapset.New[N]()
	for _, n := range subset {
		members.Put(n)
	}
	s := &sorter[N]{
		g:      g,
		subset: members,
		state:  make(map[N]int, members.Size()),
		order:  make([]N, 0, members.Size()),
	}

	// 2. Drive DFS from every unvisited member, largest first, so that
	//    reversing the post-order yields smaller roots earlier
	roots := sorted(members)
	for i := len(roots) - 1; i >= 0; i-- {
		if s.state[roots[i]] == white {
			if err := s.visit(roots[i]); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit performs a DFS from n restricted to the subset.
func (s *sorter[N]) visit(n N) error {
	switch s.state[n] {
	case gray:
		return fmt.Errorf("%w: through %v", ErrCycleDetected, n)
	case black:
		return nil
	}
	s.state[n] = gray

	next := s.g.Neighbors(n)
	for i := len(next) - 1; i >= 0; i-- {
		if !s.subset.Has(next[i]) {
			continue
		}
		if err := s.visit(next[i]); err != nil {
			return err
		}
	}

	s.state[n] = black
	s.order = append(s.order, n)

	return nil
}
