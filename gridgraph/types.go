// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/puzzlekit.
package gridgraph

import (
	"errors"
	"fmt"
	"math"
)

// Wall is the reserved cell value that Neighbors treats as impassable.
const Wall = '#'

// Sentinel errors for gridgraph operations.
var (
	// ErrOutOfBounds indicates a lookup of a coordinate that was never set.
	ErrOutOfBounds = errors.New("gridgraph: coordinate not set")
	// ErrStartOutOfBounds indicates a search started from a coordinate that was never set.
	ErrStartOutOfBounds = errors.New("gridgraph: start coordinate not set")
	// ErrEmptyGrid indicates an operation that needs at least one cell.
	ErrEmptyGrid = errors.New("gridgraph: grid has no cells")
	// ErrBadRepeat indicates a non-positive tiling factor.
	ErrBadRepeat = errors.New("gridgraph: repeat factors must be positive")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)

// Point is a (row, column) coordinate. Coordinates may be negative.
type Point struct {
	Row, Col int
}

// Add returns the component-wise sum p+q.
func (p Point) Add(q Point) Point {
	return Point{Row: p.Row + q.Row, Col: p.Col + q.Col}
}

// Less orders points row-major.
func (p Point) Less(q Point) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

// String formats the point as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// directions lists the 4-connected offsets in the order Neighbors yields them:
// down, up, right, left.
var directions = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Option configures Neighbors, Dijkstra and Reachable.
type Option func(*Options)

// Options holds the search parameters. Use DefaultOptions as the base.
type Options struct {
	// WrapAround treats the grid as an infinite tiling. Wall and bounds checks
	// use the coordinate reduced modulo (Height, Width); reported coordinates
	// stay unwrapped.
	WrapAround bool

	// MaxDistance caps recorded distances. Cells farther than this are not reported.
	MaxDistance int

	// OnVisit is called once per cell when its distance becomes final.
	OnVisit func(p Point, dist int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no wraparound, no distance cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		WrapAround:  false,
		MaxDistance: math.MaxInt,
		OnVisit:     func(Point, int) {},
	}
}

// WithWrapAround enables the infinite tiling of the grid.
// Searches should combine it with WithMaxDistance, otherwise an open tiling never exhausts.
func WithWrapAround() Option {
	return func(o *Options) { o.WrapAround = true }
}

// WithMaxDistance stops the search at distance d (inclusive).
// A negative d is recorded and surfaced as ErrOptionViolation.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDistance cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDistance = d
	}
}

// WithOnVisit registers a callback run when a cell is finalized.
func WithOnVisit(fn func(p Point, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
