// Package selector decides whether a Select Case selector can be analyzed
// and which domain its values range over.
package selector

import (
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/folding"
	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

// Resolver adds variable and enum type lookups to the constant resolver.
type Resolver interface {
	folding.Resolver
	// TryResolveVariable returns the declared type name of a variable.
	TryResolveVariable(name string) (string, bool)
	// EnumMembers returns the member values of an enum type.
	EnumMembers(typeName string) ([]values.Value, bool)
}

// Reason explains why a selector was rejected.
type Reason string

const (
	ReasonNone              Reason = ""
	ReasonCall              Reason = "selector is a function call"
	ReasonUnaryOnVariable   Reason = "selector applies a unary operator to a variable"
	ReasonMultipleVariables Reason = "selector references more than one variable"
)

// Qualification is the outcome of inspecting a selector.
type Qualification struct {
	Analyzable bool
	Reason     Reason
	// Target is the domain clause constants convert to. Indeterminate targets
	// still allow copy-paste detection.
	Target values.Domain
	// Variable is the variable name when the selector is exactly one variable.
	Variable string
	// Members is set when the selector is an enum-typed variable.
	Members []values.Value
}

// Qualify inspects a selector expression. declared is the type the front end
// resolved for the whole selector and may be empty.
func Qualify(expr m.Expr, declared string, res Resolver) Qualification {
	q := qualifier{folder: folding.New(res), res: res}
	top := m.Unparen(expr)

	if _, ok := top.(*m.CallExpr); ok {
		return Qualification{Reason: ReasonCall}
	}

	if u, ok := top.(*m.UnaryExpr); ok {
		if _, isVar := q.variable(m.Unparen(u.X)); isVar {
			return Qualification{Reason: ReasonUnaryOnVariable}
		}
	}

	vars := map[string]string{}
	q.freeVariables(top, vars)
	if len(vars) > 1 {
		return Qualification{Reason: ReasonMultipleVariables}
	}

	result := Qualification{Analyzable: true}
	typeName := strings.TrimSpace(declared)
	if name, isVar := q.variable(top); isVar {
		result.Variable = name
	}

	if typeName == "" && result.Variable == "" {
		result.Target = q.infer(top)
		if result.Target != values.Indeterminate || res == nil {
			return result
		}

		// An operand without a static type, such as a call, leaves the
		// sole free variable to decide the domain.
		for _, name := range vars {
			typeName, _ = res.TryResolveVariable(name)
		}

		if typeName == "" {
			return result
		}
	}

	if typeName == "" && res != nil {
		typeName, _ = res.TryResolveVariable(result.Variable)
	}

	if typeName == "" {
		result.Target = values.Indeterminate
		return result
	}

	result.Target = q.typeDomain(typeName)
	if result.Variable != "" || declared != "" {
		if members, ok := q.enumMembers(typeName); ok {
			result.Members = members
		}
	}

	return result
}

type qualifier struct {
	folder *folding.Folder
	res    Resolver
}

// variable returns the name e refers to when e is a name that is not a
// constant or an enum member.
func (q qualifier) variable(e m.Expr) (string, bool) {
	switch e.(type) {
	case *m.Ident, *m.MemberExpr:
	default:
		return "", false
	}

	name, ok := folding.QualifiedName(e)
	if !ok {
		return "", false
	}

	if _, isConst := q.folder.ResolveName(name); isConst {
		return "", false
	}

	return name, true
}

// freeVariables collects the variables of e keyed by lower-cased name.
func (q qualifier) freeVariables(e m.Expr, into map[string]string) {
	if name, ok := q.variable(e); ok {
		into[strings.ToLower(name)] = name
		return
	}

	switch e := e.(type) {
	case *m.ParenExpr:
		q.freeVariables(e.X, into)
	case *m.UnaryExpr:
		q.freeVariables(e.X, into)
	case *m.BinaryExpr:
		q.freeVariables(e.X, into)
		q.freeVariables(e.Y, into)
	case *m.CallExpr:
		for _, a := range e.Args {
			q.freeVariables(a, into)
		}
	}
}

func (q qualifier) infer(e m.Expr) values.Domain {
	if v, ok := q.folder.Fold(e); ok {
		return v.Domain()
	}

	if name, ok := q.variable(e); ok {
		if q.res == nil {
			return values.Indeterminate
		}

		typeName, ok := q.res.TryResolveVariable(name)
		if !ok {
			return values.Indeterminate
		}

		return q.typeDomain(typeName)
	}

	switch e := e.(type) {
	case *m.ParenExpr:
		return q.infer(e.X)
	case *m.UnaryExpr:
		return values.UnaryDomain(e.Op, q.infer(e.X))
	case *m.BinaryExpr:
		return values.ResultDomain(e.Op, q.infer(e.X), q.infer(e.Y))
	default:
		return values.Indeterminate
	}
}

func (q qualifier) enumMembers(typeName string) ([]values.Value, bool) {
	if q.res == nil {
		return nil, false
	}

	return q.res.EnumMembers(typeName)
}

// typeDomain maps a type name to a domain. Enums are Long.
func (q qualifier) typeDomain(typeName string) values.Domain {
	if _, ok := q.enumMembers(typeName); ok {
		return values.Long
	}

	return values.ParseDomain(typeName)
}
