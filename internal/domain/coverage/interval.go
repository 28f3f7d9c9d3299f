// Package coverage tracks which selector values earlier Case blocks already
// match and judges later blocks against that.
package coverage

import (
	"slices"
)

// Interval is a run of ordered values. Either end may be open or unbounded.
type Interval[T any] struct {
	Lo, Hi                   T
	LoOpen, HiOpen           bool
	LoUnbounded, HiUnbounded bool
}

// IntervalSet is a union of disjoint intervals kept sorted and maximally merged.
type IntervalSet[T any] struct {
	cmp func(a, b T) int
	// adjacent reports whether hi and lo touch with nothing between them,
	// as 4 and 5 do for whole numbers.
	adjacent func(hi, lo T) bool
	items    []Interval[T]
}

// NewIntervalSet returns an empty set ordered by cmp. adjacent may be nil.
func NewIntervalSet[T any](cmp func(a, b T) int, adjacent func(hi, lo T) bool) *IntervalSet[T] {
	return &IntervalSet[T]{cmp: cmp, adjacent: adjacent}
}

// Empty reports whether iv holds no value.
func (s *IntervalSet[T]) Empty(iv Interval[T]) bool {
	if iv.LoUnbounded || iv.HiUnbounded {
		return false
	}

	c := s.cmp(iv.Lo, iv.Hi)
	return c > 0 || (c == 0 && (iv.LoOpen || iv.HiOpen))
}

// Add merges iv into the set.
func (s *IntervalSet[T]) Add(iv Interval[T]) {
	if s.Empty(iv) {
		return
	}

	items := append(slices.Clone(s.items), iv)
	slices.SortFunc(items, s.compareLo)
	merged := items[:1]
	for _, next := range items[1:] {
		last := &merged[len(merged)-1]
		if !s.touches(*last, next) {
			merged = append(merged, next)
			continue
		}

		if s.compareHi(next, *last) > 0 {
			last.Hi, last.HiOpen, last.HiUnbounded = next.Hi, next.HiOpen, next.HiUnbounded
		}
	}

	s.items = merged
}

// Covers reports whether every value of iv is already in the set. An empty
// interval is covered.
func (s *IntervalSet[T]) Covers(iv Interval[T]) bool {
	if s.Empty(iv) {
		return true
	}

	for _, have := range s.items {
		if s.compareLo(have, iv) <= 0 && s.compareHi(have, iv) >= 0 {
			return true
		}
	}

	return false
}

// compareLo orders intervals by where they start; a closed start is lower
// than an open start at the same value.
func (s *IntervalSet[T]) compareLo(a, b Interval[T]) int {
	switch {
	case a.LoUnbounded && b.LoUnbounded:
		return 0
	case a.LoUnbounded:
		return -1
	case b.LoUnbounded:
		return 1
	}

	if c := s.cmp(a.Lo, b.Lo); c != 0 {
		return c
	}

	switch {
	case a.LoOpen == b.LoOpen:
		return 0
	case a.LoOpen:
		return 1
	default:
		return -1
	}
}

// compareHi orders intervals by where they end; a closed end is higher than
// an open end at the same value.
func (s *IntervalSet[T]) compareHi(a, b Interval[T]) int {
	switch {
	case a.HiUnbounded && b.HiUnbounded:
		return 0
	case a.HiUnbounded:
		return 1
	case b.HiUnbounded:
		return -1
	}

	if c := s.cmp(a.Hi, b.Hi); c != 0 {
		return c
	}

	switch {
	case a.HiOpen == b.HiOpen:
		return 0
	case a.HiOpen:
		return -1
	default:
		return 1
	}
}

// touches reports whether b, starting no earlier than a, overlaps or abuts a.
func (s *IntervalSet[T]) touches(a, b Interval[T]) bool {
	if a.HiUnbounded || b.LoUnbounded {
		return true
	}

	c := s.cmp(a.Hi, b.Lo)
	switch {
	case c > 0:
		return true
	case c == 0:
		return !a.HiOpen || !b.LoOpen
	default:
		return s.adjacent != nil && !a.HiOpen && !b.LoOpen && s.adjacent(a.Hi, b.Lo)
	}
}
