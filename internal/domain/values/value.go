package values

import (
	"math/big"
	"strconv"
	"strings"
)

// Value is an exact constant of a known domain. Numbers, Booleans included,
// are held as rationals: True is -1 and False is 0. The zero Value is
// Indeterminate and carries nothing.
type Value struct {
	domain      Domain
	num         *big.Rat
	text        string
	outOfDomain bool
}

var (
	ratTrue  = big.NewRat(-1, 1)
	ratFalse = big.NewRat(0, 1)
)

// NewBool returns the Boolean constant b.
func NewBool(b bool) Value {
	if b {
		return Value{domain: Boolean, num: ratTrue}
	}

	return Value{domain: Boolean, num: ratFalse}
}

// NewInt returns the whole number n in domain d.
func NewInt(d Domain, n int64) Value {
	return NewRat(d, big.NewRat(n, 1))
}

// NewRat returns r in domain d. The value is marked out of domain when r
// exceeds the limits of d; construction never fails.
func NewRat(d Domain, r *big.Rat) Value {
	if d == Boolean {
		return NewBool(r.Sign() != 0)
	}

	n := new(big.Rat).Set(r)
	if d == Currency {
		n = roundScale(n, 4)
	}

	return Value{domain: d, num: n, outOfDomain: !d.Contains(n)}
}

// NewString returns the String constant s.
func NewString(s string) Value {
	return Value{domain: String, text: s}
}

// Domain returns the kind of v.
func (v Value) Domain() Domain { return v.domain }

// Known reports whether v holds a constant.
func (v Value) Known() bool { return v.domain != Indeterminate }

// OutOfDomain reports whether v lies outside the limits of its own domain.
func (v Value) OutOfDomain() bool { return v.outOfDomain }

// Rat returns a copy of the numeric image of v, nil for strings.
func (v Value) Rat() *big.Rat {
	if v.num == nil {
		return nil
	}

	return new(big.Rat).Set(v.num)
}

// Text returns the content of a String constant.
func (v Value) Text() string { return v.text }

// Truth returns the Boolean reading of a numeric constant: non-zero is True.
func (v Value) Truth() bool {
	return v.num != nil && v.num.Sign() != 0
}

// Equal reports whether v and o are the same constant in the same domain.
func (v Value) Equal(o Value) bool {
	if v.domain != o.domain {
		return false
	}

	if v.domain == String {
		return v.text == o.text
	}

	if v.num == nil || o.num == nil {
		return v.num == o.num
	}

	return v.num.Cmp(o.num) == 0
}

func (v Value) String() string {
	switch v.domain {
	case Indeterminate:
		return "<indeterminate>"
	case String:
		return strconv.Quote(v.text)
	case Boolean:
		if v.Truth() {
			return "True"
		}

		return "False"
	default:
		return formatRat(v.num)
	}
}

func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String()
	}

	if s := r.FloatString(4); exactAt(r, s) {
		return strings.TrimRight(s, "0")
	}

	f, _ := r.Float64()
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func exactAt(r *big.Rat, s string) bool {
	p, ok := new(big.Rat).SetString(s)
	return ok && p.Cmp(r) == 0
}
