// Package rangeset stores large sets of integers as sorted, disjoint closed
// intervals, so that inserting or testing membership of ranges spanning
// billions of values costs only as much as the number of intervals.
//
// Invariants:
//
//   - Intervals are sorted by lower bound.
//   - Intervals neither overlap nor touch: hi_i + 1 < lo_{i+1}. Inserting
//     [6,9] into {[1,5] [10,15]} leaves the single interval [1,15].
//   - NumValues always equals the sum of interval lengths.
//   - Re-inserting values already present changes nothing.
//
// Complexity:
//
//   - InRange:                 O(log n)
//   - AddRange / AddInterval:  O(log n) search, O(n) splice worst case.
//
// Errors:
//
//   - ErrNegativeLength: AddRange with length < 0.
//   - ErrInvertedRange:  AddInterval with lo > hi.
//   - ErrEmptySet:       MinValue / MaxValue on an empty set.
package rangeset
