package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/casereach/internal/model"
)

const fullDocument = `module: Module1
constants:
  - name: Limit
    type: Long
    value: {binary: {op: "*", x: {lit: "10"}, y: {lit: "10"}}}
enums:
  - name: Fruit
    members:
      - name: Apple
      - name: Pear
        value: {lit: "5"}
variables:
  - name: x
    type: Long
statements:
  - id: Foo.1
    line: 4
    col: 5
    selector: {ident: x}
    annotations: ["'@Ignore TypeMismatch"]
    blocks:
      - line: 5
        clauses:
          - range: {low: {lit: "1"}, high: {ident: Limit}}
          - is: {op: ">=", x: {unary: {op: "-", x: {lit: "3"}}}}
          - value: {member: {of: Module1.Fruit, name: Pear}}
        nested:
          - selector: {call: {name: Len, args: [{str: "abc"}]}}
            blocks:
              - clauses:
                  - value: {paren: {lit: "3"}}
    else:
      line: 9
      col: 5
`

func TestLocalModuleAdapter_Parse(t *testing.T) {
	mod, err := NewLocalModuleAdapter().Parse("doc.yaml", []byte(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, "Module1", mod.Name)
	require.Len(t, mod.Constants, 1)
	assert.Equal(t, "Long", mod.Constants[0].Type)
	assert.Equal(t, "10 * 10", mod.Constants[0].Value.String())

	require.Len(t, mod.Enums, 1)
	assert.Nil(t, mod.Enums[0].Members[0].Value)
	assert.Equal(t, "5", mod.Enums[0].Members[1].Value.String())
	assert.Equal(t, []m.VarDecl{{Name: "x", Type: "Long"}}, mod.Variables)

	require.Len(t, mod.Statements, 1)
	stmt := mod.Statements[0]
	assert.Equal(t, "Foo.1", stmt.ID)
	assert.Equal(t, m.Position{Line: 4, Column: 5}, stmt.At)
	assert.Equal(t, []string{"'@Ignore TypeMismatch"}, stmt.Annotations)
	assert.Equal(t, "x", stmt.Selector.String())

	require.Len(t, stmt.Blocks, 1)
	clauses := stmt.Blocks[0].Clauses
	require.Len(t, clauses, 3)
	assert.Equal(t, "1 To Limit", clauses[0].String())
	assert.Equal(t, "Is >= -3", clauses[1].String())
	assert.Equal(t, "Module1.Fruit.Pear", clauses[2].String())

	require.Len(t, stmt.Blocks[0].Nested, 1)
	nested := stmt.Blocks[0].Nested[0]
	assert.Equal(t, "statements[0].blocks[0].nested[0]", nested.ID)
	assert.IsType(t, &m.CallExpr{}, nested.Selector)

	require.NotNil(t, stmt.Else)
	assert.Equal(t, m.Position{Line: 9, Column: 5}, stmt.Else.At)
}

func TestLocalModuleAdapter_ParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "invalid yaml",
			doc:  "statements: [",
			want: "decode doc.yaml",
		},
		{
			name: "missing selector",
			doc:  "statements:\n  - blocks:\n      - clauses:\n          - value: {lit: \"1\"}\n",
			want: "statements[0].selector: missing expression",
		},
		{
			name: "empty clause",
			doc:  "statements:\n  - selector: {ident: x}\n    blocks:\n      - clauses:\n          - {line: 3}\n",
			want: "statements[0].blocks[0].clauses[0]: clause needs value, range or is",
		},
		{
			name: "block without clauses",
			doc:  "statements:\n  - selector: {ident: x}\n    blocks:\n      - line: 3\n",
			want: "statements[0].blocks[0]: block without clauses",
		},
		{
			name: "is with arithmetic operator",
			doc:  "statements:\n  - selector: {ident: x}\n    blocks:\n      - clauses:\n          - is: {op: \"+\", x: {lit: \"1\"}}\n",
			want: "is not a comparison",
		},
		{
			name: "unknown binary operator",
			doc:  "statements:\n  - selector: {binary: {op: \"??\", x: {lit: \"1\"}, y: {lit: \"2\"}}}\n    blocks:\n      - clauses:\n          - value: {lit: \"1\"}\n",
			want: "statements[0].selector.binary.op",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLocalModuleAdapter().Parse("doc.yaml", []byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestIsModuleDocument(t *testing.T) {
	assert.True(t, IsModuleDocument([]byte(fullDocument)))
	assert.False(t, IsModuleDocument([]byte("statements: []\n")))
	assert.False(t, IsModuleDocument([]byte("name: chart\n")))
	assert.False(t, IsModuleDocument([]byte("{{ not yaml")))
}
