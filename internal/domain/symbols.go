package domain

import (
	"math/big"
	"strings"

	"github.com/mouse-blink/casereach/internal/domain/folding"
	"github.com/mouse-blink/casereach/internal/domain/values"
	m "github.com/mouse-blink/casereach/internal/model"
)

// SymbolTable resolves the constants, enum members and variables declared in
// one module. Every declaration is folded when the table is built, so a table
// is read-only afterwards and safe to share between workers.
type SymbolTable struct {
	module    string
	constants map[string]values.Value
	members   map[string]values.Value
	enums     map[string][]values.Value
	variables map[string]string
}

type memberRef struct {
	enum  *m.EnumDecl
	index int
}

type symbolBuilder struct {
	table      *SymbolTable
	folder     *folding.Folder
	constDecls map[string]m.ConstDecl
	memberRefs map[string]memberRef
	resolving  map[string]bool
	resolved   map[string]bool
}

// NewSymbolTable folds the declarations of mod. Declarations that do not fold,
// or that depend on themselves, are left unresolved.
func NewSymbolTable(mod *m.Module) *SymbolTable {
	t := &SymbolTable{
		module:    strings.ToLower(mod.Name),
		constants: map[string]values.Value{},
		members:   map[string]values.Value{},
		enums:     map[string][]values.Value{},
		variables: map[string]string{},
	}

	b := &symbolBuilder{
		table:      t,
		constDecls: map[string]m.ConstDecl{},
		memberRefs: map[string]memberRef{},
		resolving:  map[string]bool{},
		resolved:   map[string]bool{},
	}

	b.folder = folding.New(b)

	for _, c := range mod.Constants {
		b.constDecls[strings.ToLower(c.Name)] = c
	}

	for i := range mod.Enums {
		e := &mod.Enums[i]
		for j, member := range e.Members {
			ref := memberRef{enum: e, index: j}
			b.memberRefs[memberKey(e.Name, member.Name)] = ref

			if _, taken := b.memberRefs[strings.ToLower(member.Name)]; !taken {
				b.memberRefs[strings.ToLower(member.Name)] = ref
			}
		}
	}

	for _, v := range mod.Variables {
		t.variables[strings.ToLower(v.Name)] = v.Type
	}

	for name := range b.constDecls {
		b.constant(name)
	}

	for i := range mod.Enums {
		e := &mod.Enums[i]
		list := make([]values.Value, 0, len(e.Members))

		for j := range e.Members {
			if v, ok := b.member(memberRef{enum: e, index: j}); ok {
				list = append(list, v)
			}
		}

		t.enums[strings.ToLower(e.Name)] = list
	}

	return t
}

func memberKey(enum, member string) string {
	return strings.ToLower(enum + "." + member)
}

// normalize lower-cases name and drops a leading qualifier naming this module.
func (t *SymbolTable) normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if t.module != "" && strings.HasPrefix(name, t.module+".") {
		name = name[len(t.module)+1:]
	}

	return name
}

// TryResolveConstant returns the folded value of a declared constant.
func (t *SymbolTable) TryResolveConstant(name string) (values.Value, bool) {
	v, ok := t.constants[t.normalize(name)]

	return v, ok
}

// TryResolveEnumMember returns the value of an enum member, qualified by its
// enum name or bare.
func (t *SymbolTable) TryResolveEnumMember(name string) (values.Value, bool) {
	v, ok := t.members[t.normalize(name)]

	return v, ok
}

// TryResolveVariable returns the declared type name of a variable.
func (t *SymbolTable) TryResolveVariable(name string) (string, bool) {
	typ, ok := t.variables[t.normalize(name)]

	return typ, ok
}

// EnumMembers returns the resolved member values of an enum in declaration order.
func (t *SymbolTable) EnumMembers(typeName string) ([]values.Value, bool) {
	list, ok := t.enums[t.normalize(typeName)]

	return list, ok
}

func (b *symbolBuilder) TryResolveConstant(name string) (values.Value, bool) {
	return b.constant(b.table.normalize(name))
}

func (b *symbolBuilder) TryResolveEnumMember(name string) (values.Value, bool) {
	ref, ok := b.memberRefs[b.table.normalize(name)]
	if !ok {
		return values.Value{}, false
	}

	return b.member(ref)
}

func (b *symbolBuilder) constant(name string) (values.Value, bool) {
	key := "const:" + name
	if b.resolved[key] {
		v, ok := b.table.constants[name]

		return v, ok
	}

	decl, ok := b.constDecls[name]
	if !ok || b.resolving[key] {
		return values.Value{}, false
	}

	b.resolving[key] = true
	v, ok := b.folder.Fold(decl.Value)
	delete(b.resolving, key)

	if ok {
		if d := values.ParseDomain(decl.Type); d != values.Indeterminate {
			var res values.Conversion
			if v, res = values.Convert(v, d); res != values.Converted {
				ok = false
			}
		}
	}

	b.resolved[key] = true
	if ok {
		b.table.constants[name] = v
	}

	return v, ok
}

func (b *symbolBuilder) member(ref memberRef) (values.Value, bool) {
	decl := ref.enum.Members[ref.index]
	name := memberKey(ref.enum.Name, decl.Name)
	key := "member:" + name

	if b.resolved[key] {
		v, ok := b.table.members[name]

		return v, ok
	}

	if b.resolving[key] {
		return values.Value{}, false
	}

	b.resolving[key] = true
	v, ok := b.memberValue(ref)
	delete(b.resolving, key)

	b.resolved[key] = true
	if ok {
		b.table.members[name] = v

		bare := strings.ToLower(decl.Name)
		if b.memberRefs[bare] == ref {
			b.table.members[bare] = v
		}
	}

	return v, ok
}

// memberValue folds an explicit member value to Long, or takes the previous
// member plus one.
func (b *symbolBuilder) memberValue(ref memberRef) (values.Value, bool) {
	decl := ref.enum.Members[ref.index]
	if decl.Value != nil {
		v, ok := b.folder.Fold(decl.Value)
		if !ok {
			return values.Value{}, false
		}

		v, res := values.Convert(v, values.Long)

		return v, res == values.Converted
	}

	if ref.index == 0 {
		return values.NewInt(values.Long, 0), true
	}

	prev, ok := b.member(memberRef{enum: ref.enum, index: ref.index - 1})
	if !ok {
		return values.Value{}, false
	}

	return values.NewRat(values.Long, new(big.Rat).Add(prev.Rat(), big.NewRat(1, 1))), true
}
