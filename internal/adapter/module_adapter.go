package adapter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/casereach/internal/model"
)

// ErrInvalidNode is returned when a document node has no recognizable form.
var ErrInvalidNode = errors.New("invalid node")

// ModuleAdapter decodes module documents produced by the parser front end so
// the domain layer only ever sees materialized syntax trees.
type ModuleAdapter interface {
	// Parse decodes the document read from filename.
	Parse(filename string, src []byte) (*m.Module, error)
}

// LocalModuleAdapter provides a concrete ModuleAdapter backed by yaml.v3.
type LocalModuleAdapter struct{}

// NewLocalModuleAdapter constructs a LocalModuleAdapter.
func NewLocalModuleAdapter() *LocalModuleAdapter {
	return &LocalModuleAdapter{}
}

type moduleDoc struct {
	Module     string         `yaml:"module"`
	Constants  []constDoc     `yaml:"constants"`
	Enums      []enumDoc      `yaml:"enums"`
	Variables  []varDoc       `yaml:"variables"`
	Statements []statementDoc `yaml:"statements"`
}

type constDoc struct {
	Name  string   `yaml:"name"`
	Type  string   `yaml:"type"`
	Value *exprDoc `yaml:"value"`
}

type enumDoc struct {
	Name    string `yaml:"name"`
	Members []struct {
		Name  string   `yaml:"name"`
		Value *exprDoc `yaml:"value"`
	} `yaml:"members"`
}

type varDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type statementDoc struct {
	ID          string     `yaml:"id"`
	Line        int        `yaml:"line"`
	Col         int        `yaml:"col"`
	Selector    *exprDoc   `yaml:"selector"`
	Type        string     `yaml:"type"`
	Blocks      []blockDoc `yaml:"blocks"`
	Else        *elseDoc   `yaml:"else"`
	Annotations []string   `yaml:"annotations"`
}

type blockDoc struct {
	Line        int            `yaml:"line"`
	Col         int            `yaml:"col"`
	Clauses     []clauseDoc    `yaml:"clauses"`
	Nested      []statementDoc `yaml:"nested"`
	Annotations []string       `yaml:"annotations"`
}

type elseDoc struct {
	Line        int            `yaml:"line"`
	Col         int            `yaml:"col"`
	Nested      []statementDoc `yaml:"nested"`
	Annotations []string       `yaml:"annotations"`
}

type clauseDoc struct {
	Line  int      `yaml:"line"`
	Col   int      `yaml:"col"`
	Value *exprDoc `yaml:"value"`
	Range *struct {
		Low  *exprDoc `yaml:"low"`
		High *exprDoc `yaml:"high"`
	} `yaml:"range"`
	Is *opDoc `yaml:"is"`
}

type exprDoc struct {
	Line   int        `yaml:"line"`
	Col    int        `yaml:"col"`
	Lit    *string    `yaml:"lit"`
	Str    *string    `yaml:"str"`
	Ident  *string    `yaml:"ident"`
	Member *memberDoc `yaml:"member"`
	Paren  *exprDoc   `yaml:"paren"`
	Unary  *opDoc     `yaml:"unary"`
	Binary *opDoc     `yaml:"binary"`
	Call   *callDoc   `yaml:"call"`
}

type memberDoc struct {
	Of   string `yaml:"of"`
	Name string `yaml:"name"`
}

type opDoc struct {
	Op string   `yaml:"op"`
	X  *exprDoc `yaml:"x"`
	Y  *exprDoc `yaml:"y"`
}

type callDoc struct {
	Name string     `yaml:"name"`
	Args []*exprDoc `yaml:"args"`
}

// IsModuleDocument reports whether src looks like a module document: YAML
// with a statements list. Other YAML files in a tree are skipped.
func IsModuleDocument(src []byte) bool {
	var probe struct {
		Statements []yaml.Node `yaml:"statements"`
	}

	if err := yaml.Unmarshal(src, &probe); err != nil {
		return false
	}

	return len(probe.Statements) > 0
}

// Parse decodes a module document.
func (a *LocalModuleAdapter) Parse(filename string, src []byte) (*m.Module, error) {
	var doc moduleDoc
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	mod, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	return mod, nil
}

func (d moduleDoc) toModel() (*m.Module, error) {
	mod := &m.Module{Name: d.Module}

	for i, c := range d.Constants {
		value, err := c.Value.toModel(fmt.Sprintf("constants[%d].value", i))
		if err != nil {
			return nil, err
		}

		mod.Constants = append(mod.Constants, m.ConstDecl{Name: c.Name, Type: c.Type, Value: value})
	}

	for i, e := range d.Enums {
		decl := m.EnumDecl{Name: e.Name}

		for j, member := range e.Members {
			var value m.Expr

			if member.Value != nil {
				var err error

				value, err = member.Value.toModel(fmt.Sprintf("enums[%d].members[%d].value", i, j))
				if err != nil {
					return nil, err
				}
			}

			decl.Members = append(decl.Members, m.EnumMember{Name: member.Name, Value: value})
		}

		mod.Enums = append(mod.Enums, decl)
	}

	for _, v := range d.Variables {
		mod.Variables = append(mod.Variables, m.VarDecl{Name: v.Name, Type: v.Type})
	}

	stmts, err := statementsToModel(d.Statements, "statements")
	if err != nil {
		return nil, err
	}

	mod.Statements = stmts

	return mod, nil
}

func statementsToModel(docs []statementDoc, path string) ([]*m.SelectCase, error) {
	out := make([]*m.SelectCase, 0, len(docs))

	for i, d := range docs {
		s, err := d.toModel(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}

		out = append(out, s)
	}

	return out, nil
}

func (d statementDoc) toModel(path string) (*m.SelectCase, error) {
	selector, err := d.Selector.toModel(path + ".selector")
	if err != nil {
		return nil, err
	}

	id := d.ID
	if id == "" {
		id = path
	}

	s := &m.SelectCase{
		ID:          id,
		Selector:    selector,
		Type:        d.Type,
		Annotations: d.Annotations,
		At:          m.Position{Line: d.Line, Column: d.Col},
	}

	for i, b := range d.Blocks {
		blockPath := fmt.Sprintf("%s.blocks[%d]", path, i)
		block := &m.CaseBlock{Annotations: b.Annotations, At: m.Position{Line: b.Line, Column: b.Col}}

		if len(b.Clauses) == 0 {
			return nil, fmt.Errorf("%s: block without clauses: %w", blockPath, ErrInvalidNode)
		}

		for j, c := range b.Clauses {
			clause, err := c.toModel(fmt.Sprintf("%s.clauses[%d]", blockPath, j))
			if err != nil {
				return nil, err
			}

			block.Clauses = append(block.Clauses, clause)
		}

		block.Nested, err = statementsToModel(b.Nested, blockPath+".nested")
		if err != nil {
			return nil, err
		}

		s.Blocks = append(s.Blocks, block)
	}

	if d.Else != nil {
		s.Else = &m.CaseElse{Annotations: d.Else.Annotations, At: m.Position{Line: d.Else.Line, Column: d.Else.Col}}

		s.Else.Nested, err = statementsToModel(d.Else.Nested, path+".else.nested")
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (d clauseDoc) toModel(path string) (m.Clause, error) {
	at := m.Position{Line: d.Line, Column: d.Col}

	switch {
	case d.Range != nil:
		low, err := d.Range.Low.toModel(path + ".range.low")
		if err != nil {
			return nil, err
		}

		high, err := d.Range.High.toModel(path + ".range.high")
		if err != nil {
			return nil, err
		}

		return &m.RangeClause{Low: low, High: high, At: at}, nil
	case d.Is != nil:
		op, ok := m.ParseOperator(d.Is.Op)
		if !ok || !op.IsRelational() {
			return nil, fmt.Errorf("%s.is.op: %q is not a comparison: %w", path, d.Is.Op, ErrInvalidNode)
		}

		x, err := d.Is.X.toModel(path + ".is.x")
		if err != nil {
			return nil, err
		}

		return &m.IsClause{Op: op, X: x, At: at}, nil
	case d.Value != nil:
		x, err := d.Value.toModel(path + ".value")
		if err != nil {
			return nil, err
		}

		return &m.ValueClause{X: x, At: at}, nil
	default:
		return nil, fmt.Errorf("%s: clause needs value, range or is: %w", path, ErrInvalidNode)
	}
}

//nolint:cyclop // One case per node kind.
func (d *exprDoc) toModel(path string) (m.Expr, error) {
	if d == nil {
		return nil, fmt.Errorf("%s: missing expression: %w", path, ErrInvalidNode)
	}

	at := m.Position{Line: d.Line, Column: d.Col}

	switch {
	case d.Lit != nil:
		return &m.Literal{Text: *d.Lit, At: at}, nil
	case d.Str != nil:
		return &m.StringLit{Value: *d.Str, At: at}, nil
	case d.Ident != nil:
		return &m.Ident{Name: *d.Ident, At: at}, nil
	case d.Member != nil:
		return memberChain(d.Member.Of, d.Member.Name, at), nil
	case d.Paren != nil:
		x, err := d.Paren.toModel(path + ".paren")
		if err != nil {
			return nil, err
		}

		return &m.ParenExpr{X: x, At: at}, nil
	case d.Unary != nil:
		op, ok := m.ParseOperator(d.Unary.Op)
		if !ok || (op != m.OpSub && op != m.OpAdd && op != m.OpNot) {
			return nil, fmt.Errorf("%s.unary.op: %q: %w", path, d.Unary.Op, ErrInvalidNode)
		}

		x, err := d.Unary.X.toModel(path + ".unary.x")
		if err != nil {
			return nil, err
		}

		return &m.UnaryExpr{Op: op, X: x, At: at}, nil
	case d.Binary != nil:
		op, ok := m.ParseOperator(d.Binary.Op)
		if !ok || op == m.OpNot {
			return nil, fmt.Errorf("%s.binary.op: %q: %w", path, d.Binary.Op, ErrInvalidNode)
		}

		x, err := d.Binary.X.toModel(path + ".binary.x")
		if err != nil {
			return nil, err
		}

		y, err := d.Binary.Y.toModel(path + ".binary.y")
		if err != nil {
			return nil, err
		}

		return &m.BinaryExpr{Op: op, X: x, Y: y, At: at}, nil
	case d.Call != nil:
		call := &m.CallExpr{Name: d.Call.Name, At: at}

		for i, arg := range d.Call.Args {
			x, err := arg.toModel(fmt.Sprintf("%s.call.args[%d]", path, i))
			if err != nil {
				return nil, err
			}

			call.Args = append(call.Args, x)
		}

		return call, nil
	default:
		return nil, fmt.Errorf("%s: unknown expression node: %w", path, ErrInvalidNode)
	}
}

// memberChain turns "Module1.Fruit" plus "Apple" into nested member accesses.
func memberChain(of, name string, at m.Position) m.Expr {
	if of == "" {
		return &m.MemberExpr{Name: name, At: at}
	}

	parts := strings.Split(of, ".")

	var x m.Expr = &m.Ident{Name: parts[0], At: at}
	for _, p := range parts[1:] {
		x = &m.MemberExpr{Of: x, Name: p, At: at}
	}

	return &m.MemberExpr{Of: x, Name: name, At: at}
}
