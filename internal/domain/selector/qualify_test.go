package selector

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

type fakeResolver struct {
	constants map[string]values.Value
	variables map[string]string
	enums     map[string][]values.Value
}

func (r fakeResolver) TryResolveConstant(name string) (values.Value, bool) {
	v, ok := r.constants[strings.ToLower(name)]
	return v, ok
}

func (r fakeResolver) TryResolveEnumMember(string) (values.Value, bool) {
	return values.Value{}, false
}

func (r fakeResolver) TryResolveVariable(name string) (string, bool) {
	t, ok := r.variables[strings.ToLower(name)]
	return t, ok
}

func (r fakeResolver) EnumMembers(typeName string) ([]values.Value, bool) {
	list, ok := r.enums[strings.ToLower(typeName)]
	return list, ok
}

func newResolver() fakeResolver {
	return fakeResolver{
		constants: map[string]values.Value{"limit": values.NewInt(values.Long, 100)},
		variables: map[string]string{
			"x":     "Long",
			"y":     "Integer",
			"b":     "Byte",
			"s":     "String",
			"fruit": "Fruits",
			"v":     "Variant",
		},
		enums: map[string][]values.Value{
			"fruits": {values.NewInt(values.Long, 10), values.NewInt(values.Long, 20)},
		},
	}
}

func ident(name string) m.Expr { return &m.Ident{Name: name} }
func lit(text string) m.Expr { return &m.Literal{Text: text} }

func binary(op m.Operator, x, y m.Expr) m.Expr {
	return &m.BinaryExpr{Op: op, X: x, Y: y}
}

func TestQualify_Disqualified(t *testing.T) {
	tests := []struct {
		name     string
		selector m.Expr
		reason   Reason
	}{
		{"call", &m.CallExpr{Name: "Rnd"}, ReasonCall},
		{"parenthesized call", &m.ParenExpr{X: &m.CallExpr{Name: "Len", Args: []m.Expr{ident("s")}}}, ReasonCall},
		{"negated variable", &m.UnaryExpr{Op: m.OpSub, X: ident("x")}, ReasonUnaryOnVariable},
		{"Not on parenthesized variable", &m.UnaryExpr{Op: m.OpNot, X: &m.ParenExpr{X: ident("x")}}, ReasonUnaryOnVariable},
		{"two variables", binary(m.OpMul, ident("x"), ident("y")), ReasonMultipleVariables},
		{"two variables inside a call argument", binary(m.OpAdd, ident("x"), &m.CallExpr{Name: "Abs", Args: []m.Expr{ident("y")}}), ReasonMultipleVariables},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Qualify(tt.selector, "", newResolver())
			assert.False(t, q.Analyzable)
			assert.Equal(t, tt.reason, q.Reason)
		})
	}
}

func TestQualify_Targets(t *testing.T) {
	tests := []struct {
		name     string
		selector m.Expr
		declared string
		target   values.Domain
		variable string
	}{
		{"declared variable type", ident("x"), "", values.Long, "x"},
		{"parentheses are transparent", &m.ParenExpr{X: ident("b")}, "", values.Byte, "b"},
		{"statement type wins", ident("x"), "Integer", values.Integer, "x"},
		{"string variable", ident("s"), "", values.String, "s"},
		{"variant is indeterminate", ident("v"), "", values.Indeterminate, "v"},
		{"unknown variable is indeterminate", ident("q"), "", values.Indeterminate, "q"},
		{"arithmetic on one variable", binary(m.OpAdd, ident("y"), lit("1")), "", values.Integer, ""},
		{"arithmetic promotes", binary(m.OpAdd, ident("y"), lit("1.5")), "", values.Double, ""},
		{"comparison is boolean", binary(m.OpGt, ident("x"), lit("3")), "", values.Boolean, ""},
		{"call operand defers to the variable", binary(m.OpMul, &m.CallExpr{Name: "Bar"}, ident("x")), "", values.Long, ""},
		{"call operand under parentheses", &m.ParenExpr{X: binary(m.OpAdd, ident("b"), &m.CallExpr{Name: "Bar"})}, "", values.Byte, ""},
		{"call operand with an untyped variable", binary(m.OpMul, &m.CallExpr{Name: "Bar"}, ident("q")), "", values.Indeterminate, ""},
		{"constant selector", ident("Limit"), "", values.Long, ""},
		{"folded constant expression", binary(m.OpMul, lit("2"), lit("3")), "", values.Integer, ""},
		{"negated constant", &m.UnaryExpr{Op: m.OpSub, X: ident("Limit")}, "", values.Long, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Qualify(tt.selector, tt.declared, newResolver())
			assert.True(t, q.Analyzable)
			assert.Equal(t, ReasonNone, q.Reason)
			assert.Equal(t, tt.target, q.Target)
			assert.Equal(t, tt.variable, q.Variable)
		})
	}
}

func TestQualify_EnumVariable(t *testing.T) {
	q := Qualify(ident("fruit"), "", newResolver())

	assert.True(t, q.Analyzable)
	assert.Equal(t, values.Long, q.Target)
	assert.Len(t, q.Members, 2)

	q = Qualify(binary(m.OpAdd, ident("fruit"), lit("1")), "", newResolver())
	assert.True(t, q.Analyzable)
	assert.Equal(t, values.Long, q.Target)
	assert.Empty(t, q.Members)
}

func TestQualify_NilResolver(t *testing.T) {
	q := Qualify(ident("x"), "", nil)

	assert.True(t, q.Analyzable)
	assert.Equal(t, values.Indeterminate, q.Target)

	q = Qualify(ident("x"), "Long", nil)
	assert.Equal(t, values.Long, q.Target)
}
