// Package values models the primitive value kinds of the analyzed language and
// the exact constant values the folder computes with.
package values

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Domain is the primitive kind of a constant or of a selector expression.
type Domain uint8

const (
	// Indeterminate is the kind of anything not statically known (Variant, objects, calls).
	Indeterminate Domain = iota
	Boolean
	Byte
	Integer
	Long
	Single
	Double
	Currency
	String
)

var domainNames = [...]string{
	Indeterminate: "Indeterminate",
	Boolean:       "Boolean",
	Byte:          "Byte",
	Integer:       "Integer",
	Long:          "Long",
	Single:        "Single",
	Double:        "Double",
	Currency:      "Currency",
	String:        "String",
}

func (d Domain) String() string {
	if int(d) < len(domainNames) {
		return domainNames[d]
	}

	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// ParseDomain maps a declared type name to its domain. Unknown names,
// Variant and user-defined types are Indeterminate.
func ParseDomain(name string) Domain {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "boolean":
		return Boolean
	case "byte":
		return Byte
	case "integer":
		return Integer
	case "long":
		return Long
	case "single":
		return Single
	case "double":
		return Double
	case "currency":
		return Currency
	case "string":
		return String
	default:
		return Indeterminate
	}
}

// IsNumeric reports whether d takes part in the numeric lattice, Boolean included.
func (d Domain) IsNumeric() bool {
	return d >= Boolean && d <= Currency
}

// IsIntegral reports whether values of d are whole numbers.
func (d Domain) IsIntegral() bool {
	return d >= Boolean && d <= Long
}

type bounds struct {
	lo, hi *big.Rat
}

var domainBounds = map[Domain]bounds{
	Boolean:  {big.NewRat(-1, 1), big.NewRat(0, 1)},
	Byte:     {big.NewRat(0, 1), big.NewRat(255, 1)},
	Integer:  {big.NewRat(math.MinInt16, 1), big.NewRat(math.MaxInt16, 1)},
	Long:     {big.NewRat(math.MinInt32, 1), big.NewRat(math.MaxInt32, 1)},
	Single:   {new(big.Rat).SetFloat64(-math.MaxFloat32), new(big.Rat).SetFloat64(math.MaxFloat32)},
	Double:   {new(big.Rat).SetFloat64(-math.MaxFloat64), new(big.Rat).SetFloat64(math.MaxFloat64)},
	Currency: {mustRat("-922337203685477.5808"), mustRat("922337203685477.5807")},
}

func mustRat(s string) *big.Rat {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		panic("values: bad constant " + s)
	}

	return r
}

// Bounds returns copies of the inclusive limits of a numeric domain.
func (d Domain) Bounds() (lo, hi *big.Rat, ok bool) {
	b, ok := domainBounds[d]
	if !ok {
		return nil, nil, false
	}

	return new(big.Rat).Set(b.lo), new(big.Rat).Set(b.hi), true
}

// Contains reports whether r lies within the limits of d.
func (d Domain) Contains(r *big.Rat) bool {
	b, ok := domainBounds[d]
	if !ok {
		return true
	}

	return r.Cmp(b.lo) >= 0 && r.Cmp(b.hi) <= 0
}

// Promote returns the wider of two numeric domains along
// Boolean < Byte < Integer < Long < Single < Double < Currency.
func Promote(a, b Domain) Domain {
	if !a.IsNumeric() || !b.IsNumeric() {
		return Indeterminate
	}

	return max(a, b)
}
