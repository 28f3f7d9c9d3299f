package coverage

import (
	"math/big"
	"strings"
	"testing"

	"github.com/mouse-blink/casereach/internal/domain/clauses"
	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intSet() *IntervalSet[*big.Rat] {
	return NewIntervalSet(func(a, b *big.Rat) int { return a.Cmp(b) }, func(hi, lo *big.Rat) bool {
		return new(big.Rat).Add(hi, big.NewRat(1, 1)).Cmp(lo) == 0
	})
}

func closed(lo, hi int64) Interval[*big.Rat] {
	return Interval[*big.Rat]{Lo: big.NewRat(lo, 1), Hi: big.NewRat(hi, 1)}
}

func TestIntervalSet_MergesAdjacentWholeNumbers(t *testing.T) {
	s := intSet()
	s.Add(closed(1, 4))
	s.Add(closed(5, 9))
	s.Add(closed(20, 30))

	require.Len(t, s.items, 2)
	assert.True(t, s.Covers(closed(3, 8)))
	assert.False(t, s.Covers(closed(8, 21)))
	assert.True(t, s.Covers(closed(25, 25)))
}

func TestIntervalSet_OverlapAndInversion(t *testing.T) {
	s := intSet()
	s.Add(closed(10, 20))
	s.Add(closed(15, 40))
	s.Add(closed(5, 3))

	require.Len(t, s.items, 1)
	assert.True(t, s.Covers(closed(10, 40)))
	assert.True(t, s.Covers(closed(7, 6)), "empty intervals are vacuously covered")
}

func TestIntervalSet_OpenEnds(t *testing.T) {
	s := NewIntervalSet(func(a, b *big.Rat) int { return a.Cmp(b) }, nil)
	s.Add(Interval[*big.Rat]{Lo: big.NewRat(1, 1), Hi: big.NewRat(2, 1), HiOpen: true})
	s.Add(Interval[*big.Rat]{Lo: big.NewRat(2, 1), Hi: big.NewRat(3, 1), LoOpen: true})

	assert.False(t, s.Covers(closed(2, 2)), "the shared open end stays uncovered")
	s.Add(closed(2, 2))
	assert.True(t, s.Covers(closed(1, 3)))
}

func TestIntervalSet_Strings(t *testing.T) {
	s := NewIntervalSet(strings.Compare, nil)
	s.Add(Interval[string]{Hi: "m", HiOpen: true, LoUnbounded: true})
	assert.False(t, s.Covers(Interval[string]{LoUnbounded: true, HiUnbounded: true}))
	s.Add(Interval[string]{Lo: "m", HiUnbounded: true})
	assert.True(t, s.Covers(Interval[string]{LoUnbounded: true, HiUnbounded: true}))
}

func long(n int64) values.Value { return values.NewInt(values.Long, n) }

func val(v values.Value) clauses.Classified {
	return clauses.Classified{Shape: clauses.Value{V: v}, Text: v.String()}
}

func rng(lo, hi values.Value) clauses.Classified {
	return clauses.Classified{Shape: clauses.Range{Low: lo, High: hi}, Text: lo.String() + " To " + hi.String()}
}

func rel(op m.Operator, v values.Value) clauses.Classified {
	return clauses.Classified{Shape: clauses.Relational{Op: op, Operand: v}, Text: "Is " + string(op) + " " + v.String()}
}

func unreachable(e *Engine, blocks ...[]clauses.Classified) int {
	n := 0
	for _, b := range blocks {
		if e.Judge(b).Unreachable {
			n++
		}
	}

	return n
}

func TestEngine_LongScenarios(t *testing.T) {
	t.Run("value inside earlier range", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		assert.Equal(t, 1, unreachable(e, []clauses.Classified{rng(long(1), long(100))}, []clauses.Classified{val(long(50))}))
	})

	t.Run("inverted range", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		assert.Equal(t, 1, unreachable(e, []clauses.Classified{rng(long(100), long(1))}, []clauses.Classified{val(long(50))}))
	})

	t.Run("relational", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		assert.Equal(t, 2, unreachable(e,
			[]clauses.Classified{rel(m.OpGt, long(5000))},
			[]clauses.Classified{val(long(5000))},
			[]clauses.Classified{val(long(5001))},
			[]clauses.Classified{val(long(10000))},
		))
	})

	t.Run("adjacent ranges cover a later range", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		assert.Equal(t, 1, unreachable(e,
			[]clauses.Classified{rng(long(1), long(4))},
			[]clauses.Classified{rng(long(5), long(9))},
			[]clauses.Classified{rng(long(2), long(8))},
		))
	})

	t.Run("fractional bound on whole numbers", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		bound, _ := values.ConvertBound(values.NewRat(values.Double, big.NewRat(11, 2)), values.Long)
		assert.Equal(t, 1, unreachable(e,
			[]clauses.Classified{rel(m.OpGt, bound)},
			[]clauses.Classified{val(long(6))},
			[]clauses.Classified{val(long(5))},
		))
	})

	t.Run("clauses of one block do not shadow each other", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		v := e.Judge([]clauses.Classified{rng(long(1), long(10)), val(long(5))})
		assert.False(t, v.Unreachable)
	})

	t.Run("exhaustive relational pair", func(t *testing.T) {
		e := NewEngine(values.Long, nil)
		e.Judge([]clauses.Classified{rel(m.OpLt, long(0))})
		assert.False(t, e.CaseElseUnreachable())
		e.Judge([]clauses.Classified{rel(m.OpGe, long(0))})
		assert.True(t, e.CaseElseUnreachable())
	})
}

func TestEngine_OutOfDomainIsUnreachable(t *testing.T) {
	e := NewEngine(values.Integer, nil)
	huge, _ := values.Convert(long(40000), values.Integer)
	require.True(t, huge.OutOfDomain())

	v := e.Judge([]clauses.Classified{val(huge)})
	assert.True(t, v.Unreachable)

	v = e.Judge([]clauses.Classified{rel(m.OpGt, long(40000))})
	assert.True(t, v.Unreachable)
}

func TestEngine_PredicateKeepsBlockReachable(t *testing.T) {
	e := NewEngine(values.Long, nil)
	e.Judge([]clauses.Classified{rng(long(1), long(10))})
	v := e.Judge([]clauses.Classified{val(long(5)), {Shape: clauses.Predicate{}, Text: "y > 2"}})
	assert.False(t, v.Unreachable)
	assert.True(t, v.Clauses[0].Covered)
}

func TestEngine_MismatchOnlyBlock(t *testing.T) {
	e := NewEngine(values.Long, nil)
	v := e.Judge([]clauses.Classified{{Mismatch: true, Text: `"Forever"`}})
	assert.False(t, v.Unreachable)
	assert.False(t, v.Clauses[0].Covered)
}

func TestEngine_Duplicates(t *testing.T) {
	e := NewEngine(values.Indeterminate, nil)
	a := clauses.Classified{Shape: clauses.Unresolved{}, Text: "x"}
	b := clauses.Classified{Shape: clauses.Unresolved{}, Text: "y"}

	assert.False(t, e.Judge([]clauses.Classified{a, b}).Unreachable)
	v := e.Judge([]clauses.Classified{b, a})
	assert.True(t, v.Unreachable)
	assert.False(t, e.Judge([]clauses.Classified{a}).Unreachable)
	assert.False(t, e.CaseElseUnreachable())
}

func TestEngine_Boolean(t *testing.T) {
	dbl := func(n int64) values.Value { return values.NewInt(values.Double, n) }

	t.Run("true and false without catch-all", func(t *testing.T) {
		e := NewEngine(values.Boolean, nil)
		assert.Equal(t, 0, unreachable(e,
			[]clauses.Classified{val(values.NewBool(true))},
			[]clauses.Classified{val(values.NewBool(false))},
		))
		assert.True(t, e.CaseElseUnreachable())
	})

	t.Run("relational over both", func(t *testing.T) {
		e := NewEngine(values.Boolean, nil)
		assert.Equal(t, 1, unreachable(e,
			[]clauses.Classified{rel(m.OpGt, dbl(-40))},
			[]clauses.Classified{val(values.NewBool(false))},
		))
		assert.True(t, e.CaseElseUnreachable())
	})

	t.Run("relational over false only", func(t *testing.T) {
		e := NewEngine(values.Boolean, nil)
		e.Judge([]clauses.Classified{rel(m.OpGt, dbl(-1))})
		assert.False(t, e.CaseElseUnreachable())
		e.Judge([]clauses.Classified{val(values.NewBool(true))})
		assert.True(t, e.CaseElseUnreachable())
	})

	t.Run("range through zero covers both", func(t *testing.T) {
		e := NewEngine(values.Boolean, nil)
		e.Judge([]clauses.Classified{rng(dbl(0), dbl(10))})
		assert.True(t, e.CaseElseUnreachable())
	})

	t.Run("exhaustiveness is order independent", func(t *testing.T) {
		e := NewEngine(values.Boolean, nil)
		e.Judge([]clauses.Classified{rel(m.OpLt, dbl(0))})
		e.Judge([]clauses.Classified{rng(dbl(0), dbl(0))})
		assert.True(t, e.CaseElseUnreachable())
	})
}

func TestEngine_Enum(t *testing.T) {
	members := []values.Value{long(10), long(20), long(30)}

	t.Run("uncovered members keep catch-all reachable", func(t *testing.T) {
		e := NewEngine(values.Long, members)
		assert.Equal(t, 2, unreachable(e,
			[]clauses.Classified{rng(long(-4), long(11))},
			[]clauses.Classified{rng(long(10), long(16))},
			[]clauses.Classified{rng(long(11), long(19))},
		))
		assert.False(t, e.CaseElseUnreachable())
	})

	t.Run("all members covered", func(t *testing.T) {
		e := NewEngine(values.Long, members)
		e.Judge([]clauses.Classified{val(long(10)), val(long(20))})
		e.Judge([]clauses.Classified{rel(m.OpGe, long(25))})
		assert.True(t, e.CaseElseUnreachable())
	})
}

func TestEngine_String(t *testing.T) {
	s := values.NewString

	e := NewEngine(values.String, nil)
	assert.Equal(t, 2, unreachable(e,
		[]clauses.Classified{rng(s("a"), s("m"))},
		[]clauses.Classified{val(s("cat"))},
		[]clauses.Classified{val(s("zebra"))},
		[]clauses.Classified{rng(s("c"), s("b"))},
	))
	assert.False(t, e.CaseElseUnreachable())

	e.Judge([]clauses.Classified{rel(m.OpGt, s("m"))})
	e.Judge([]clauses.Classified{rel(m.OpLt, s("a"))})
	assert.True(t, e.CaseElseUnreachable())
}

func TestEngine_Currency(t *testing.T) {
	e := NewEngine(values.Currency, nil)
	lo, hi, _ := values.Currency.Bounds()
	e.Judge([]clauses.Classified{rng(values.NewRat(values.Currency, lo), values.NewRat(values.Currency, hi))})
	assert.True(t, e.CaseElseUnreachable())
}
