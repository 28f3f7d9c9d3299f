package coverage

import (
	"math/big"
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/clauses"
	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

var ratOne = big.NewRat(1, 1)

// State is the set of selector values matched by the blocks seen so far in
// one statement. It is owned by a single statement and never shared.
type State struct {
	target values.Domain
	lo, hi *big.Rat

	numbers *IntervalSet[*big.Rat]
	texts   *IntervalSet[string]

	members []*big.Rat
	matched []bool

	trueCovered, falseCovered bool
}

// NewState returns empty coverage for target. members lists the values of
// an enum-typed selector and is nil otherwise.
func NewState(target values.Domain, members []values.Value) *State {
	s := &State{target: target}
	s.lo, s.hi, _ = target.Bounds()
	var adjacent func(hi, lo *big.Rat) bool
	if target.IsIntegral() {
		adjacent = func(hi, lo *big.Rat) bool {
			return new(big.Rat).Add(hi, ratOne).Cmp(lo) == 0
		}
	}

	s.numbers = NewIntervalSet(func(a, b *big.Rat) int { return a.Cmp(b) }, adjacent)
	s.texts = NewIntervalSet(strings.Compare, nil)
	for _, v := range members {
		if r := v.Rat(); r != nil {
			s.members = append(s.members, r)
		}
	}

	s.matched = make([]bool, len(s.members))
	return s
}

// Target returns the domain the state tracks.
func (s *State) Target() values.Domain { return s.target }

func (s *State) isEnum() bool { return s.members != nil }

// Covers reports whether every selector value sh can match is already
// matched. comparable is false for shapes coverage cannot reason about;
// such shapes are never covered.
func (s *State) Covers(sh clauses.Shape) (covered, comparable bool) {
	switch sh.(type) {
	case nil, clauses.Predicate, clauses.Unresolved:
		return false, false
	}

	switch {
	case s.target == values.Indeterminate:
		return false, false
	case s.target == values.Boolean:
		t, f := booleanImage(sh)
		return (!t || s.trueCovered) && (!f || s.falseCovered), true
	case s.isEnum():
		for i, hit := range s.memberHits(sh) {
			if hit && !s.matched[i] {
				return false, true
			}
		}

		return true, true
	case s.target == values.String:
		for _, iv := range textIntervals(sh) {
			if !s.texts.Covers(iv) {
				return false, true
			}
		}

		return true, true
	default:
		for _, iv := range s.numericIntervals(sh) {
			if !s.numbers.Covers(iv) {
				return false, true
			}
		}

		return true, true
	}
}

// Merge adds the values sh matches to the state.
func (s *State) Merge(sh clauses.Shape) {
	switch sh.(type) {
	case nil, clauses.Predicate, clauses.Unresolved:
		return
	}

	switch {
	case s.target == values.Indeterminate:
	case s.target == values.Boolean:
		t, f := booleanImage(sh)
		s.trueCovered = s.trueCovered || t
		s.falseCovered = s.falseCovered || f
	case s.isEnum():
		for i, hit := range s.memberHits(sh) {
			s.matched[i] = s.matched[i] || hit
		}
	case s.target == values.String:
		for _, iv := range textIntervals(sh) {
			s.texts.Add(iv)
		}
	default:
		for _, iv := range s.numericIntervals(sh) {
			s.numbers.Add(iv)
		}
	}
}

// Exhausted reports whether every value of the target is matched, which
// leaves nothing for a Case Else.
func (s *State) Exhausted() bool {
	switch {
	case s.target == values.Boolean:
		return s.trueCovered && s.falseCovered
	case s.isEnum():
		for _, hit := range s.matched {
			if !hit {
				return false
			}
		}

		return len(s.matched) > 0
	case s.target == values.String:
		return s.texts.Covers(Interval[string]{LoUnbounded: true, HiUnbounded: true})
	case s.lo != nil:
		return s.numbers.Covers(Interval[*big.Rat]{Lo: s.lo, Hi: s.hi})
	default:
		return false
	}
}

// numericIntervals returns the intervals of sh clipped to the target's limits.
func (s *State) numericIntervals(sh clauses.Shape) []Interval[*big.Rat] {
	var raw []Interval[*big.Rat]
	switch sh := sh.(type) {
	case clauses.Value:
		if sh.V.OutOfDomain() || sh.V.Rat() == nil {
			return nil
		}

		raw = []Interval[*big.Rat]{{Lo: sh.V.Rat(), Hi: sh.V.Rat()}}
	case clauses.Range:
		lo, hi := sh.Low.Rat(), sh.High.Rat()
		if lo == nil || hi == nil {
			return nil
		}

		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}

		raw = []Interval[*big.Rat]{{Lo: lo, Hi: hi}}
	case clauses.Relational:
		v := sh.Operand.Rat()
		if v == nil {
			return nil
		}

		raw = relationalIntervals(sh.Op, v, s.lo, s.hi)
	}

	out := make([]Interval[*big.Rat], 0, len(raw))
	for _, iv := range raw {
		iv = s.clip(iv)
		if !s.numbers.Empty(iv) {
			out = append(out, iv)
		}
	}

	return out
}

func relationalIntervals(op m.Operator, v, lo, hi *big.Rat) []Interval[*big.Rat] {
	switch op {
	case m.OpEq:
		return []Interval[*big.Rat]{{Lo: v, Hi: v}}
	case m.OpNe:
		return []Interval[*big.Rat]{{Lo: lo, Hi: v, HiOpen: true}, {Lo: v, Hi: hi, LoOpen: true}}
	case m.OpLt:
		return []Interval[*big.Rat]{{Lo: lo, Hi: v, HiOpen: true}}
	case m.OpLe:
		return []Interval[*big.Rat]{{Lo: lo, Hi: v}}
	case m.OpGt:
		return []Interval[*big.Rat]{{Lo: v, Hi: hi, LoOpen: true}}
	case m.OpGe:
		return []Interval[*big.Rat]{{Lo: v, Hi: hi}}
	default:
		return nil
	}
}

// clip intersects iv with the target limits and, for whole-number targets,
// shrinks it to the closed run of whole numbers it contains.
func (s *State) clip(iv Interval[*big.Rat]) Interval[*big.Rat] {
	if s.lo != nil && iv.Lo.Cmp(s.lo) < 0 {
		iv.Lo, iv.LoOpen = s.lo, false
	}

	if s.hi != nil && iv.Hi.Cmp(s.hi) > 0 {
		iv.Hi, iv.HiOpen = s.hi, false
	}

	if !s.target.IsIntegral() {
		return iv
	}

	lo := ceil(iv.Lo)
	if iv.LoOpen && lo.Cmp(iv.Lo) == 0 {
		lo.Add(lo, ratOne)
	}

	hi := floor(iv.Hi)
	if iv.HiOpen && hi.Cmp(iv.Hi) == 0 {
		hi.Sub(hi, ratOne)
	}

	return Interval[*big.Rat]{Lo: lo, Hi: hi}
}

func floor(r *big.Rat) *big.Rat {
	q := new(big.Int).Div(r.Num(), r.Denom())
	return new(big.Rat).SetInt(q)
}

func ceil(r *big.Rat) *big.Rat {
	f := floor(r)
	if f.Cmp(r) != 0 {
		f.Add(f, ratOne)
	}

	return f
}

// memberHits marks the enum members sh matches.
func (s *State) memberHits(sh clauses.Shape) []bool {
	hits := make([]bool, len(s.members))
	ivs := s.numericIntervals(sh)
	for i, v := range s.members {
		for _, iv := range ivs {
			if contains(iv, v) {
				hits[i] = true
				break
			}
		}
	}

	return hits
}

func contains(iv Interval[*big.Rat], v *big.Rat) bool {
	lo, hi := v.Cmp(iv.Lo), v.Cmp(iv.Hi)
	return (lo > 0 || (lo == 0 && !iv.LoOpen)) && (hi < 0 || (hi == 0 && !iv.HiOpen))
}

// booleanImage reports which Boolean selector values sh matches. A value
// clause matches by coercion; ranges and relational clauses compare
// against True as -1 and False as 0, except that a range holding any
// non-zero number matches True.
func booleanImage(sh clauses.Shape) (matchesTrue, matchesFalse bool) {
	zero, minusOne := new(big.Rat), big.NewRat(-1, 1)
	switch sh := sh.(type) {
	case clauses.Value:
		if sh.V.Domain() == values.Boolean {
			return sh.V.Truth(), !sh.V.Truth()
		}

		v, _ := values.Convert(sh.V, values.Boolean)
		return v.Truth(), !v.Truth()
	case clauses.Range:
		lo, hi := sh.Low.Rat(), sh.High.Rat()
		if lo == nil || hi == nil {
			return false, false
		}

		if lo.Cmp(hi) > 0 {
			lo, hi = hi, lo
		}

		iv := Interval[*big.Rat]{Lo: lo, Hi: hi}
		return lo.Sign() != 0 || hi.Sign() != 0, contains(iv, zero)
	case clauses.Relational:
		v := sh.Operand.Rat()
		if v == nil {
			return false, false
		}

		return holds(sh.Op, minusOne.Cmp(v)), holds(sh.Op, zero.Cmp(v))
	default:
		return false, false
	}
}

func holds(op m.Operator, c int) bool {
	switch op {
	case m.OpEq:
		return c == 0
	case m.OpNe:
		return c != 0
	case m.OpLt:
		return c < 0
	case m.OpLe:
		return c <= 0
	case m.OpGt:
		return c > 0
	case m.OpGe:
		return c >= 0
	default:
		return false
	}
}

// textIntervals returns the string intervals of sh. Relational clauses are
// unbounded on one side.
func textIntervals(sh clauses.Shape) []Interval[string] {
	switch sh := sh.(type) {
	case clauses.Value:
		if sh.V.Domain() != values.String {
			return nil
		}

		return []Interval[string]{{Lo: sh.V.Text(), Hi: sh.V.Text()}}
	case clauses.Range:
		lo, hi := sh.Low.Text(), sh.High.Text()
		if lo > hi {
			lo, hi = hi, lo
		}

		return []Interval[string]{{Lo: lo, Hi: hi}}
	case clauses.Relational:
		v := sh.Operand.Text()
		switch sh.Op {
		case m.OpEq:
			return []Interval[string]{{Lo: v, Hi: v}}
		case m.OpNe:
			return []Interval[string]{{Hi: v, HiOpen: true, LoUnbounded: true}, {Lo: v, LoOpen: true, HiUnbounded: true}}
		case m.OpLt:
			return []Interval[string]{{Hi: v, HiOpen: true, LoUnbounded: true}}
		case m.OpLe:
			return []Interval[string]{{Hi: v, LoUnbounded: true}}
		case m.OpGt:
			return []Interval[string]{{Lo: v, LoOpen: true, HiUnbounded: true}}
		case m.OpGe:
			return []Interval[string]{{Lo: v, HiUnbounded: true}}
		}
	}

	return nil
}
