// Package clauses reduces Case clauses to the shapes coverage is tracked in.
package clauses

import (
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/folding"
	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

// Shape is the normalized meaning of a clause.
type Shape interface {
	shape()
}

// Value matches a single constant.
type Value struct {
	V values.Value
}

// Range matches Low through High inclusive. The ends may be given in either order.
type Range struct {
	Low, High values.Value
}

// Relational matches every value v with "v Op Operand".
type Relational struct {
	Op      m.Operator
	Operand values.Value
}

// Predicate is a Boolean expression that does not test the selector. It
// keeps its block reachable.
type Predicate struct{}

// Unresolved is a clause whose values are not statically known.
type Unresolved struct{}

func (Value) shape()      {}
func (Range) shape()      {}
func (Relational) shape() {}
func (Predicate) shape()  {}
func (Unresolved) shape() {}

// Classified is one clause with its shape. Mismatch is set when a constant in
// the clause can never convert to the selector domain; Shape is then nil.
type Classified struct {
	Clause   m.Clause
	Shape    Shape
	Mismatch bool
	// Text is the canonical source text used to spot copy-pasted blocks.
	Text string
}

// Classifier turns clauses into shapes for one statement.
type Classifier struct {
	// Target is the selector domain.
	Target values.Domain
	// Variable is the selector variable when the selector is exactly one
	// variable; "x > 5" written as a plain value clause then reads as "Is > 5".
	Variable string
	Folder   *folding.Folder
}

// Classify folds and converts the constants of clause.
func (c Classifier) Classify(clause m.Clause) Classified {
	out := Classified{Clause: clause, Text: clause.String()}
	if c.Target == values.Indeterminate {
		out.Shape = Unresolved{}
		return out
	}

	switch cl := clause.(type) {
	case *m.RangeClause:
		lo, okLo := c.Folder.Fold(cl.Low)
		hi, okHi := c.Folder.Fold(cl.High)
		if !okLo || !okHi {
			out.Shape = Unresolved{}
			return out
		}

		loV, convLo := values.ConvertBound(lo, c.boundTarget())
		hiV, convHi := values.ConvertBound(hi, c.boundTarget())
		switch {
		case convLo == values.Mismatch || convHi == values.Mismatch:
			out.Mismatch = true
		case convLo == values.Incomparable || convHi == values.Incomparable:
			out.Shape = Unresolved{}
		default:
			out.Shape = Range{Low: loV, High: hiV}
		}
	case *m.IsClause:
		out.Shape, out.Mismatch = c.relational(cl.Op, cl.X)
	case *m.ValueClause:
		if op, operand, ok := c.selectorComparison(cl.X); ok {
			out.Shape, out.Mismatch = c.relational(op, operand)
			return out
		}

		v, ok := c.Folder.Fold(cl.X)
		if !ok {
			if isBoolean(cl.X) {
				out.Shape = Predicate{}
			} else {
				out.Shape = Unresolved{}
			}

			return out
		}

		conv, res := values.Convert(v, c.Target)
		switch res {
		case values.Mismatch:
			out.Mismatch = true
		case values.Incomparable:
			out.Shape = Unresolved{}
		default:
			out.Shape = Value{V: conv}
		}
	default:
		out.Shape = Unresolved{}
	}

	return out
}

func (c Classifier) relational(op m.Operator, x m.Expr) (Shape, bool) {
	v, ok := c.Folder.Fold(x)
	if !ok {
		return Unresolved{}, false
	}

	conv, res := values.ConvertBound(v, c.boundTarget())
	switch res {
	case values.Mismatch:
		return nil, true
	case values.Incomparable:
		return Unresolved{}, false
	default:
		return Relational{Op: op, Operand: conv}, false
	}
}

// boundTarget is the domain range ends and relational operands convert to.
// Against a Boolean selector they stay numeric so that True and False can be
// tested as -1 and 0.
func (c Classifier) boundTarget() values.Domain {
	if c.Target == values.Boolean {
		return values.Double
	}

	return c.Target
}

// selectorComparison recognizes "x > 5" and "5 < x" where x is the selector variable.
func (c Classifier) selectorComparison(e m.Expr) (m.Operator, m.Expr, bool) {
	if c.Variable == "" {
		return "", nil, false
	}

	b, ok := m.Unparen(e).(*m.BinaryExpr)
	if !ok || !b.Op.IsRelational() {
		return "", nil, false
	}

	if c.isSelector(b.X) {
		return b.Op, b.Y, true
	}

	if c.isSelector(b.Y) {
		return b.Op.Mirror(), b.X, true
	}

	return "", nil, false
}

func (c Classifier) isSelector(e m.Expr) bool {
	name, ok := folding.QualifiedName(m.Unparen(e))
	return ok && strings.EqualFold(name, c.Variable)
}

// isBoolean reports whether e is syntactically a Boolean expression.
func isBoolean(e m.Expr) bool {
	switch e := m.Unparen(e).(type) {
	case *m.BinaryExpr:
		return e.Op.IsRelational() || (e.Op.IsLogical() && isBoolean(e.X) && isBoolean(e.Y))
	case *m.UnaryExpr:
		return e.Op == m.OpNot && isBoolean(e.X)
	default:
		return false
	}
}
