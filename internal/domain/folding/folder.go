// Package folding evaluates constant expressions.
package folding

import (
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

// Resolver looks up declared constants and enum members by name. Names may
// be qualified, such as Weekday.Monday or Module1.MAX.
type Resolver interface {
	TryResolveConstant(name string) (values.Value, bool)
	TryResolveEnumMember(name string) (values.Value, bool)
}

// Folder computes the values of expressions built only from literals,
// constants and enum members.
type Folder struct {
	resolver Resolver
}

// New returns a Folder resolving names with resolver, which may be nil.
func New(resolver Resolver) *Folder {
	return &Folder{resolver: resolver}
}

// Fold returns the constant value of e. It reports false for anything that
// references a variable or a call, and for arithmetic with no result such as
// division by zero. Overflow still folds, with the value marked out of domain.
func (f *Folder) Fold(e m.Expr) (values.Value, bool) {
	switch e := e.(type) {
	case *m.Literal:
		return values.ParseLiteral(e.Text)
	case *m.StringLit:
		return values.NewString(e.Value), true
	case *m.ParenExpr:
		return f.Fold(e.X)
	case *m.Ident:
		return f.ResolveName(e.Name)
	case *m.MemberExpr:
		name, ok := QualifiedName(e)
		if !ok {
			return values.Value{}, false
		}

		return f.ResolveName(name)
	case *m.UnaryExpr:
		x, ok := f.Fold(e.X)
		if !ok {
			return values.Value{}, false
		}

		v, err := values.Unary(e.Op, x)
		return v, err == nil
	case *m.BinaryExpr:
		x, ok := f.Fold(e.X)
		if !ok {
			return values.Value{}, false
		}

		y, ok := f.Fold(e.Y)
		if !ok {
			return values.Value{}, false
		}

		v, err := values.Binary(e.Op, x, y)
		return v, err == nil
	default:
		return values.Value{}, false
	}
}

// ResolveName returns the value of a Boolean keyword, an enum member or a
// constant, in that order.
func (f *Folder) ResolveName(name string) (values.Value, bool) {
	switch strings.ToLower(name) {
	case "true":
		return values.NewBool(true), true
	case "false":
		return values.NewBool(false), true
	}

	if f.resolver == nil {
		return values.Value{}, false
	}

	if v, ok := f.resolver.TryResolveEnumMember(name); ok {
		return v, true
	}

	return f.resolver.TryResolveConstant(name)
}

// QualifiedName flattens a chain of member accesses over a name, such as
// Module1.Weekday.Monday, into dotted text.
func QualifiedName(e m.Expr) (string, bool) {
	switch e := e.(type) {
	case *m.Ident:
		return e.Name, true
	case *m.MemberExpr:
		if e.Of == nil {
			return "", false
		}

		of, ok := QualifiedName(e.Of)
		if !ok {
			return "", false
		}

		return of + "." + e.Name, true
	default:
		return "", false
	}
}
