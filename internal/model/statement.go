package model

import "fmt"

// Module is one decoded module document: its declarations and the Select Case
// statements to analyze.
type Module struct {
	Name       string
	Constants  []ConstDecl
	Enums      []EnumDecl
	Variables  []VarDecl
	Statements []*SelectCase
}

// ConstDecl declares a named constant. Type is empty when the declaration has no As clause.
type ConstDecl struct {
	Name  string
	Type  string
	Value Expr
}

// EnumDecl declares an enumeration. Members without a value take the previous
// member's value plus one, starting at zero.
type EnumDecl struct {
	Name    string
	Members []EnumMember
}

// EnumMember is one member of an EnumDecl. Value is nil for implicit members.
type EnumMember struct {
	Name  string
	Value Expr
}

// VarDecl declares a variable or parameter with its type name.
type VarDecl struct {
	Name string
	Type string
}

// SelectCase is one Select Case statement.
type SelectCase struct {
	ID       string
	Selector Expr
	// Type is the declared type of the selector when the front end resolved one.
	Type        string
	Blocks      []*CaseBlock
	Else        *CaseElse
	Annotations []string
	At          Position
}

// CaseBlock is a Case line with its clauses and any statements nested in its body.
type CaseBlock struct {
	Clauses     []Clause
	Nested      []*SelectCase
	Annotations []string
	At          Position
}

// CaseElse is the catch-all block of a statement.
type CaseElse struct {
	Nested      []*SelectCase
	Annotations []string
	At          Position
}

// Walk calls fn for s and every statement nested in its blocks, depth first.
// Walking stops when fn returns false.
func (s *SelectCase) Walk(fn func(*SelectCase) bool) bool {
	if !fn(s) {
		return false
	}

	for _, b := range s.Blocks {
		for _, n := range b.Nested {
			if !n.Walk(fn) {
				return false
			}
		}
	}

	if s.Else != nil {
		for _, n := range s.Else.Nested {
			if !n.Walk(fn) {
				return false
			}
		}
	}

	return true
}

// Clause is one comma-separated test of a Case line.
type Clause interface {
	Pos() Position
	String() string
	clause()
}

// ValueClause matches when the selector equals X. X may also be a Boolean
// expression that does not mention the selector at all.
type ValueClause struct {
	X  Expr
	At Position
}

// RangeClause matches Low To High inclusive.
type RangeClause struct {
	Low, High Expr
	At        Position
}

// IsClause matches when "selector Op X" holds.
type IsClause struct {
	Op Operator
	X  Expr
	At Position
}

func (c *ValueClause) Pos() Position { return c.At }
func (c *RangeClause) Pos() Position { return c.At }
func (c *IsClause) Pos() Position { return c.At }

func (*ValueClause) clause() {}
func (*RangeClause) clause() {}
func (*IsClause) clause() {}

func (c *ValueClause) String() string { return c.X.String() }

func (c *RangeClause) String() string {
	return fmt.Sprintf("%s To %s", c.Low, c.High)
}

func (c *IsClause) String() string {
	return fmt.Sprintf("Is %s %s", c.Op, c.X)
}
