package rangeset

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
)

// Set is a set of int64 values stored as sorted, disjoint, non-adjacent
// closed intervals. The zero value is an empty set ready to use.
type Set struct {
	ranges    []Range // ascending; ranges[i].Hi+1 < ranges[i+1].Lo
	numValues int64   // sum of Len over ranges
}

// New returns an empty Set.
func New() *Set { return &Set{} }

// AddRange inserts the length+1 integers start, start+1, …, start+length.
// A zero length inserts the single value start.
func (s *Set) AddRange(start, length int64) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeLength, length)
	}
	return s.AddInterval(start, start+length)
}

// Add inserts the single value x.
func (s *Set) Add(x int64) { s.insert(Range{Lo: x, Hi: x}) }

// AddInterval inserts every integer in [lo, hi].
//
// Stored intervals that overlap or touch [lo, hi] are merged with it into
// one interval, so the set never holds two ranges that could be joined.
// Complexity: O(log n) search plus O(n) for the splice.
func (s *Set) AddInterval(lo, hi int64) error {
	if lo > hi {
		return fmt.Errorf("%w: [%d,%d]", ErrInvertedRange, lo, hi)
	}
	s.insert(Range{Lo: lo, Hi: hi})

	return nil
}

func (s *Set) insert(r Range) {
	// [i, j) is the run of stored ranges that overlap or touch r.
	i := sort.Search(len(s.ranges), func(k int) bool { return !gapBetween(s.ranges[k].Hi, r.Lo) })
	j := sort.Search(len(s.ranges), func(k int) bool { return gapBetween(r.Hi, s.ranges[k].Lo) })

	if i < j {
		if s.ranges[i].Lo <= r.Lo && r.Hi <= s.ranges[i].Hi {
			return // already covered
		}
		r.Lo = min(r.Lo, s.ranges[i].Lo)
		r.Hi = max(r.Hi, s.ranges[j-1].Hi)
		for _, old := range s.ranges[i:j] {
			s.numValues -= old.Len()
		}
	}
	s.ranges = slices.Replace(s.ranges, i, j, r)
	s.numValues += r.Len()
}

// gapBetween reports whether at least one integer lies strictly between
// a value ending at hi and one starting at lo.
func gapBetween(hi, lo int64) bool {
	return lo != math.MinInt64 && hi < lo-1
}

// InRange reports whether x is in the set.
// Complexity: O(log n)
func (s *Set) InRange(x int64) bool {
	k := sort.Search(len(s.ranges), func(k int) bool { return s.ranges[k].Hi >= x })
	return k < len(s.ranges) && s.ranges[k].Lo <= x
}

// NumValues returns how many integers the set holds.
func (s *Set) NumValues() int64 { return s.numValues }

// NumRanges returns how many disjoint intervals the set holds.
func (s *Set) NumRanges() int { return len(s.ranges) }

// MinValue returns the smallest value, or ErrEmptySet.
func (s *Set) MinValue() (int64, error) {
	if len(s.ranges) == 0 {
		return 0, ErrEmptySet
	}
	return s.ranges[0].Lo, nil
}

// MaxValue returns the largest value, or ErrEmptySet.
func (s *Set) MaxValue() (int64, error) {
	if len(s.ranges) == 0 {
		return 0, ErrEmptySet
	}
	return s.ranges[len(s.ranges)-1].Hi, nil
}

// Ranges returns a copy of the stored intervals in ascending order.
func (s *Set) Ranges() []Range { return slices.Clone(s.ranges) }

// String renders the set as "{[1,5] [10,15]}".
func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, r := range s.ranges {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(r.String())
	}
	b.WriteByte('}')

	return b.String()
}
