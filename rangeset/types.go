package rangeset

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Set operations.
var (
	// ErrNegativeLength indicates AddRange was given a length below zero.
	ErrNegativeLength = errors.New("rangeset: negative range length")

	// ErrInvertedRange indicates AddInterval was given lo > hi.
	ErrInvertedRange = errors.New("rangeset: interval lower bound exceeds upper bound")

	// ErrEmptySet indicates a min/max query on a set with no values.
	ErrEmptySet = errors.New("rangeset: set is empty")
)

// Range is the closed integer interval [Lo, Hi].
type Range struct {
	Lo, Hi int64
}

// Len returns the number of integers in r.
func (r Range) Len() int64 { return r.Hi - r.Lo + 1 }

// Contains reports whether Lo ≤ x ≤ Hi.
func (r Range) Contains(x int64) bool { return r.Lo <= x && x <= r.Hi }

// String renders r as "[lo,hi]".
func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi) }
