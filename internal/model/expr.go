// Package model defines the syntax tree and result types shared by the analyzer.
package model

import (
	"fmt"
	"strings"
)

// Position locates a node in the original module source. Zero values mean unknown.
type Position struct {
	Line   int `yaml:"line,omitempty"`
	Column int `yaml:"col,omitempty"`
}

// Operator is a unary or binary operator of the language.
type Operator string

const (
	OpAdd    Operator = "+"
	OpSub    Operator = "-"
	OpMul    Operator = "*"
	OpDiv    Operator = "/"
	OpIntDiv Operator = "\\"
	OpPow    Operator = "^"
	OpMod    Operator = "Mod"
	OpConcat Operator = "&"

	OpAnd Operator = "And"
	OpOr  Operator = "Or"
	OpXor Operator = "Xor"
	OpEqv Operator = "Eqv"
	OpImp Operator = "Imp"
	OpNot Operator = "Not"

	OpEq Operator = "="
	OpNe Operator = "<>"
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

var operators = map[string]Operator{}

func init() {
	for _, op := range []Operator{
		OpAdd, OpSub, OpMul, OpDiv, OpIntDiv, OpPow, OpMod, OpConcat,
		OpAnd, OpOr, OpXor, OpEqv, OpImp, OpNot,
		OpEq, OpNe, OpLt, OpLe, OpGt, OpGe,
	} {
		operators[strings.ToLower(string(op))] = op
	}
}

// ParseOperator resolves operator text case-insensitively.
func ParseOperator(text string) (Operator, bool) {
	op, ok := operators[strings.ToLower(strings.TrimSpace(text))]
	return op, ok
}

// IsRelational reports whether op compares its operands.
func (op Operator) IsRelational() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	default:
		return false
	}
}

// IsLogical reports whether op is a logical or bitwise operator.
func (op Operator) IsLogical() bool {
	switch op {
	case OpAnd, OpOr, OpXor, OpEqv, OpImp, OpNot:
		return true
	default:
		return false
	}
}

// Mirror returns the relational operator with its operands swapped, so that
// "a < b" and "b > a" compare the same way.
func (op Operator) Mirror() Operator {
	switch op {
	case OpLt:
		return OpGt
	case OpLe:
		return OpGe
	case OpGt:
		return OpLt
	case OpGe:
		return OpLe
	default:
		return op
	}
}

// Expr is a node of an expression tree.
type Expr interface {
	// Pos returns where the expression starts.
	Pos() Position
	// String renders the expression in canonical source form.
	String() string
	expr()
}

// Literal is a numeric or Boolean literal kept as its source text, type suffix included.
type Literal struct {
	Text string
	At   Position
}

// StringLit is a quoted string literal with the quotes removed.
type StringLit struct {
	Value string
	At    Position
}

// Ident is a bare name: a variable, a constant or an enum member.
type Ident struct {
	Name string
	At   Position
}

// MemberExpr is a qualified name such as Weekday.Monday.
type MemberExpr struct {
	Of   Expr
	Name string
	At   Position
}

// ParenExpr is an expression wrapped in parentheses.
type ParenExpr struct {
	X  Expr
	At Position
}

// UnaryExpr applies -, + or Not to its operand.
type UnaryExpr struct {
	Op Operator
	X  Expr
	At Position
}

// BinaryExpr applies an arithmetic, concatenation, logical or relational operator.
type BinaryExpr struct {
	Op   Operator
	X, Y Expr
	At   Position
}

// CallExpr is a function call or an indexed access. Calls never fold.
type CallExpr struct {
	Name string
	Args []Expr
	At   Position
}

func (e *Literal) Pos() Position { return e.At }
func (e *StringLit) Pos() Position { return e.At }
func (e *Ident) Pos() Position { return e.At }
func (e *MemberExpr) Pos() Position { return e.At }
func (e *ParenExpr) Pos() Position { return e.At }
func (e *UnaryExpr) Pos() Position { return e.At }
func (e *BinaryExpr) Pos() Position { return e.At }
func (e *CallExpr) Pos() Position { return e.At }

func (*Literal) expr() {}
func (*StringLit) expr() {}
func (*Ident) expr() {}
func (*MemberExpr) expr() {}
func (*ParenExpr) expr() {}
func (*UnaryExpr) expr() {}
func (*BinaryExpr) expr() {}
func (*CallExpr) expr() {}

func (e *Literal) String() string { return e.Text }

func (e *StringLit) String() string {
	return `"` + strings.ReplaceAll(e.Value, `"`, `""`) + `"`
}

func (e *Ident) String() string { return e.Name }

func (e *MemberExpr) String() string {
	if e.Of == nil {
		return "." + e.Name
	}

	return e.Of.String() + "." + e.Name
}

func (e *ParenExpr) String() string { return "(" + e.X.String() + ")" }

func (e *UnaryExpr) String() string {
	if e.Op == OpNot {
		return "Not " + e.X.String()
	}

	return string(e.Op) + e.X.String()
}

func (e *BinaryExpr) String() string {
	return fmt.Sprintf("%s %s %s", e.X, e.Op, e.Y)
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}

	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

// Unparen strips any number of enclosing parentheses.
func Unparen(e Expr) Expr {
	for {
		p, ok := e.(*ParenExpr)
		if !ok {
			return e
		}

		e = p.X
	}
}
