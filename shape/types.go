// Package shape computes the lattice points enclosed by a closed rectilinear
// loop, such as the trench traced by a dig plan.
package shape

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrBadDirection indicates a step direction other than U, D, L or R.
	ErrBadDirection = errors.New("shape: unknown step direction")

	// ErrBadStep indicates a negative step count.
	ErrBadStep = errors.New("shape: negative step count")

	// ErrOpenPlan indicates a plan that does not return to its start.
	ErrOpenPlan = errors.New("shape: dig plan does not close")
)

// Point is a lattice point; Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Step moves N units in direction Dir ('U', 'D', 'L' or 'R').
type Step struct {
	Dir byte
	N   int
}

func (s Step) String() string { return fmt.Sprintf("%c %d", s.Dir, s.N) }

// delta returns the unit vector for dir.
func delta(dir byte) (Point, error) {
	switch dir {
	case 'U':
		return Point{0, -1}, nil
	case 'D':
		return Point{0, 1}, nil
	case 'R':
		return Point{1, 0}, nil
	case 'L':
		return Point{-1, 0}, nil
	}
	return Point{}, fmt.Errorf("%w: %q", ErrBadDirection, dir)
}
