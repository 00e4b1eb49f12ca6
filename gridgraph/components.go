package gridgraph

import "github.com/zyedidia/generic/mapset"

// Regions groups set cells into maximal orthogonally connected regions of
// equal value. Walls form regions like any other value.
// Each region is sorted row-major and regions are ordered by their first cell.
//
// Time:   O(N log N) for N cells.
// Memory: O(N) for the seen set and output.
func (g *Grid) Regions() [][]Point {
	seen := mapset.New[Point]()
	var regions [][]Point

	for p0 := range g.Points() {
		if seen.Has(p0) {
			continue
		}
		v0 := g.cells[p0]
		// BFS to collect the region
		queue := []Point{p0}
		seen.Put(p0)
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, d := range directions {
				n := u.Add(d)
				if v, ok := g.cells[n]; !ok || v != v0 || seen.Has(n) {
					continue
				}
				seen.Put(n)
				queue = append(queue, n)
			}
		}
		sortPoints(queue)
		regions = append(regions, queue)
	}

	return regions
}

// Perimeter returns the number of region cell edges that do not touch another
// cell of the same region.
func (g *Grid) Perimeter(region []Point) int {
	members := mapset.New[Point]()
	for _, p := range region {
		members.Put(p)
	}
	total := 0
	for _, p := range region {
		for _, d := range directions {
			if !members.Has(p.Add(d)) {
				total++
			}
		}
	}

	return total
}
