package shape

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/puzzlekit/gridgraph"
)

// Shape is a set of perimeter points and, once computed, the points they
// enclose. Shape is not safe for concurrent use.
type Shape struct {
	perimeter mapset.Set[Point]
	min, max  Point // bounding box of the perimeter

	interior mapset.Set[Point] // valid while filled is set
	filled   bool
}

// New builds a Shape from an explicit perimeter.
func New(perimeter []Point) *Shape {
	s := &Shape{perimeter: mapset.New[Point]()}
	for _, p := range perimeter {
		s.add(p)
	}

	return s
}

// FromDigPlan traces plan from start, recording every point the digger
// passes through, start included.
func FromDigPlan(plan []Step, start Point) (*Shape, error) {
	s := &Shape{perimeter: mapset.New[Point]()}
	s.add(start)

	cur := start
	for i, step := range plan {
		d, err := delta(step.Dir)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.N < 0 {
			return nil, fmt.Errorf("step %d: %w: %d", i, ErrBadStep, step.N)
		}
		for k := 0; k < step.N; k++ {
			cur = Point{cur.X + d.X, cur.Y + d.Y}
			s.add(cur)
		}
	}

	return s, nil
}

func (s *Shape) add(p Point) {
	if s.perimeter.Size() == 0 {
		s.min, s.max = p, p
	} else {
		s.min = Point{min(s.min.X, p.X), min(s.min.Y, p.Y)}
		s.max = Point{max(s.max.X, p.X), max(s.max.Y, p.Y)}
	}
	s.perimeter.Put(p)
	s.filled = false
}

// Perimeter returns the perimeter points.
func (s *Shape) Perimeter() mapset.Set[Point] { return s.perimeter }

// Interior returns the perimeter plus every point it encloses.
//
// The perimeter is laid onto a grid one cell larger than its bounding box
// on every side, and the outside is flood-filled from the grid's corner;
// whatever the fill cannot reach is enclosed. This needs no seed point
// inside the loop. An open perimeter encloses nothing beyond itself.
//
// Complexity: O(W·H log(W·H)) for the bounding box W×H.
func (s *Shape) Interior() mapset.Set[Point] {
	if s.filled {
		return s.interior
	}
	s.interior = mapset.New[Point]()
	s.filled = true
	if s.perimeter.Size() == 0 {
		return s.interior
	}

	// grid cell (row, col) ↔ point (min.X-1+col, min.Y-1+row)
	g := gridgraph.New()
	h, w := s.max.Y-s.min.Y+3, s.max.X-s.min.X+3
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			v := '.'
			if s.perimeter.Has(s.toPoint(row, col)) {
				v = gridgraph.Wall
			}
			g.Set(row, col, v)
		}
	}

	outside, _ := g.Reachable(gridgraph.Point{})
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			if !outside.Has(gridgraph.Point{Row: row, Col: col}) {
				s.interior.Put(s.toPoint(row, col))
			}
		}
	}

	return s.interior
}

func (s *Shape) toPoint(row, col int) Point {
	return Point{s.min.X - 1 + col, s.min.Y - 1 + row}
}

// NumInterior returns the size of Interior, optionally without the
// perimeter itself.
func (s *Shape) NumInterior(excludePerimeter bool) int {
	n := s.Interior().Size()
	if excludePerimeter {
		n -= s.perimeter.Size()
	}

	return n
}

// Area returns the number of lattice points on or inside the loop traced by
// plan, without materializing them.
//
// The shoelace formula gives the polygon's area A through the cell centers;
// Pick's theorem turns A and the boundary length b into the enclosed count
// I = A - b/2 + 1, and the result is I + b. Use Area for plans whose
// bounding box is too large to flood-fill.
func Area(plan []Step) (int64, error) {
	var (
		x, y     int64
		twiceA   int64 // signed
		boundary int64
	)
	for i, step := range plan {
		d, err := delta(step.Dir)
		if err != nil {
			return 0, fmt.Errorf("step %d: %w", i, err)
		}
		if step.N < 0 {
			return 0, fmt.Errorf("step %d: %w: %d", i, ErrBadStep, step.N)
		}
		n := int64(step.N)
		nx, ny := x+int64(d.X)*n, y+int64(d.Y)*n
		twiceA += x*ny - nx*y
		boundary += n
		x, y = nx, ny
	}
	if x != 0 || y != 0 {
		return 0, fmt.Errorf("%w: ends at (%d,%d)", ErrOpenPlan, x, y)
	}
	if twiceA < 0 {
		twiceA = -twiceA
	}

	return twiceA/2 + boundary/2 + 1, nil
}
