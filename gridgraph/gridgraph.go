package gridgraph

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Grid maps coordinates to single rune values. Width and Height are the
// largest column and row index ever set plus one; they never shrink.
// The zero value is not usable; construct with New or FromRows.
type Grid struct {
	cells  map[Point]rune
	width  int
	height int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[Point]rune)}
}

// FromRows builds a grid where rune j of row i becomes cell (i, j).
// Rows of differing lengths are accepted.
// Complexity: O(total runes).
func FromRows(rows []string) *Grid {
	g := New()
	for i, row := range rows {
		j := 0
		for _, r := range row {
			g.Set(i, j, r)
			j++
		}
	}

	return g
}

// Set inserts or overwrites cell (i, j) and extends the bounds if needed.
func (g *Grid) Set(i, j int, v rune) {
	g.cells[Point{i, j}] = v
	g.height = max(g.height, i+1)
	g.width = max(g.width, j+1)
}

// At returns the value stored at (i, j), or ErrOutOfBounds if it was never set.
func (g *Grid) At(i, j int) (rune, error) {
	v, ok := g.cells[Point{i, j}]
	if !ok {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, i, j)
	}

	return v, nil
}

// InBounds reports whether (i, j) was explicitly set.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	_, ok := g.cells[Point{i, j}]
	return ok
}

// Width returns the largest column index ever set plus one.
func (g *Grid) Width() int { return g.width }

// Height returns the largest row index ever set plus one.
func (g *Grid) Height() int { return g.height }

// Len returns the number of set cells.
func (g *Grid) Len() int { return len(g.cells) }

// Where returns every coordinate holding v, sorted row-major.
// Complexity: O(N log N) for N cells.
func (g *Grid) Where(v rune) []Point {
	var out []Point
	for p, c := range g.cells {
		if c == v {
			out = append(out, p)
		}
	}
	sortPoints(out)

	return out
}

// Points yields every set coordinate in row-major order.
func (g *Grid) Points() iter.Seq[Point] {
	pts := make([]Point, 0, len(g.cells))
	for p := range g.cells {
		pts = append(pts, p)
	}
	sortPoints(pts)

	return slices.Values(pts)
}

// Neighbors yields the up to four orthogonal neighbors of p that are set and
// are not Wall, in the order down, up, right, left.
//
// With WithWrapAround the checks are made against the coordinate reduced
// modulo (Height, Width), but the yielded coordinate is the unwrapped one,
// so a caller can walk an unbounded tiling while reading walls from one tile.
// Options other than WithWrapAround are ignored.
func (g *Grid) Neighbors(p Point, opts ...Option) iter.Seq[Point] {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(yield func(Point) bool) {
		for _, d := range directions {
			n := p.Add(d)
			if !g.open(n, cfg.WrapAround) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// open reports whether p is set (after wrapping, if requested) and not a Wall.
func (g *Grid) open(p Point, wrap bool) bool {
	if wrap {
		if g.height == 0 || g.width == 0 {
			return false
		}
		p = g.wrap(p)
	}
	v, ok := g.cells[p]

	return ok && v != Wall
}

// wrap reduces p into [0,Height)×[0,Width) using Euclidean modulo.
func (g *Grid) wrap(p Point) Point {
	return Point{Row: mod(p.Row, g.height), Col: mod(p.Col, g.width)}
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Repeat returns a new grid made of g tiled nI times vertically and nJ times
// horizontally. Cells missing from g stay missing in every tile.
func (g *Grid) Repeat(nI, nJ int) (*Grid, error) {
	if nI <= 0 || nJ <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadRepeat, nI, nJ)
	}
	if len(g.cells) == 0 {
		return nil, ErrEmptyGrid
	}
	out := New()
	for ti := 0; ti < nI; ti++ {
		for tj := 0; tj < nJ; tj++ {
			for p, v := range g.cells {
				out.Set(p.Row+ti*g.height, p.Col+tj*g.width, v)
			}
		}
	}

	return out, nil
}

// String renders rows 0..Height-1 and columns 0..Width-1 joined by newlines.
// Unset cells inside the bounds render as a space.
func (g *Grid) String() string {
	var sb strings.Builder
	for i := 0; i < g.height; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < g.width; j++ {
			v, ok := g.cells[Point{i, j}]
			if !ok {
				v = ' '
			}
			sb.WriteRune(v)
		}
	}

	return sb.String()
}

// Equal reports whether g and other have the same bounds and the same cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	if g.width != other.width || g.height != other.height || len(g.cells) != len(other.cells) {
		return false
	}
	for p, v := range g.cells {
		if w, ok := other.cells[p]; !ok || w != v {
			return false
		}
	}

	return true
}

func sortPoints(pts []Point) {
	slices.SortFunc(pts, func(a, b Point) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})
}
