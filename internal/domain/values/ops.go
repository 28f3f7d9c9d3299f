package values

import (
	"errors"
	"math"
	"math/big"
	"strings"

	m "github.com/mouse-blink/casereach/internal/model"
)

var (
	// ErrDivisionByZero is returned when a constant expression divides by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrNotConstant is returned when an operation has no static result.
	ErrNotConstant = errors.New("operands do not fold")
)

const (
	maxExactExponent = 1024
	// maxExactBits bounds the size of an exactly computed power.
	maxExactBits = 1 << 16
)

// ResultDomain returns the domain produced by applying op to operands of
// domains a and b.
func ResultDomain(op m.Operator, a, b Domain) Domain {
	if a == Indeterminate || b == Indeterminate {
		if op.IsRelational() {
			return Boolean
		}

		return Indeterminate
	}

	if op.IsRelational() {
		return Boolean
	}

	if op == m.OpConcat || (op == m.OpAdd && a == String && b == String) {
		return String
	}

	if a == String {
		a = Double
	}

	if b == String {
		b = Double
	}

	p := Promote(a, b)
	switch op {
	case m.OpAdd, m.OpSub, m.OpMul:
		if p == Boolean {
			return Integer
		}

		return p
	case m.OpDiv:
		switch p {
		case Currency, Single:
			return p
		default:
			return Double
		}
	case m.OpPow:
		return Double
	case m.OpIntDiv, m.OpMod:
		return integralOf(p)
	case m.OpAnd, m.OpOr, m.OpXor, m.OpEqv, m.OpImp:
		if a == Boolean && b == Boolean {
			return Boolean
		}

		return integralOf(p)
	default:
		return Indeterminate
	}
}

// UnaryDomain returns the domain produced by applying op to an operand of domain a.
func UnaryDomain(op m.Operator, a Domain) Domain {
	if a == String {
		a = Double
	}

	switch {
	case !a.IsNumeric():
		return Indeterminate
	case op == m.OpNot:
		if a == Boolean {
			return Boolean
		}

		return integralOf(a)
	case a == Boolean:
		return Integer
	default:
		return a
	}
}

func integralOf(d Domain) Domain {
	switch d {
	case Boolean:
		return Integer
	case Single, Double, Currency:
		return Long
	default:
		return d
	}
}

// Unary applies -, + or Not to a constant.
func Unary(op m.Operator, a Value) (Value, error) {
	d := UnaryDomain(op, a.domain)
	if d == Indeterminate {
		return Value{}, ErrNotConstant
	}

	n, err := numeric(a)
	if err != nil {
		return Value{}, err
	}

	switch op {
	case m.OpAdd:
		return NewRat(d, n), nil
	case m.OpSub:
		return NewRat(d, n.Neg(n)), nil
	case m.OpNot:
		if d == Boolean {
			return NewBool(!a.Truth()), nil
		}

		i := RoundHalfEven(n).Num()
		return NewRat(d, new(big.Rat).SetInt(new(big.Int).Not(i))), nil
	default:
		return Value{}, ErrNotConstant
	}
}

// Binary applies op to two constants. Overflow never fails: the result is
// marked out of domain instead.
func Binary(op m.Operator, a, b Value) (Value, error) {
	d := ResultDomain(op, a.domain, b.domain)
	if d == Indeterminate || !a.Known() || !b.Known() {
		return Value{}, ErrNotConstant
	}

	if op.IsRelational() {
		c, err := Compare(a, b)
		if err != nil {
			return Value{}, err
		}

		return NewBool(relate(op, c)), nil
	}

	if d == String {
		return NewString(a.display() + b.display()), nil
	}

	x, err := numeric(a)
	if err != nil {
		return Value{}, err
	}

	y, err := numeric(b)
	if err != nil {
		return Value{}, err
	}

	switch op {
	case m.OpAdd:
		return NewRat(d, x.Add(x, y)), nil
	case m.OpSub:
		return NewRat(d, x.Sub(x, y)), nil
	case m.OpMul:
		return NewRat(d, x.Mul(x, y)), nil
	case m.OpDiv:
		if y.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}

		return NewRat(d, x.Quo(x, y)), nil
	case m.OpIntDiv, m.OpMod:
		xi, yi := RoundHalfEven(x).Num(), RoundHalfEven(y).Num()
		if yi.Sign() == 0 {
			return Value{}, ErrDivisionByZero
		}

		if op == m.OpIntDiv {
			return NewRat(d, new(big.Rat).SetInt(new(big.Int).Quo(xi, yi))), nil
		}

		return NewRat(d, new(big.Rat).SetInt(new(big.Int).Rem(xi, yi))), nil
	case m.OpPow:
		r, err := power(x, y)
		if err != nil {
			return Value{}, err
		}

		return NewRat(d, r), nil
	case m.OpAnd, m.OpOr, m.OpXor, m.OpEqv, m.OpImp:
		if d == Boolean {
			return NewBool(logic(op, a.Truth(), b.Truth())), nil
		}

		return NewRat(d, new(big.Rat).SetInt(bitwise(op, RoundHalfEven(x).Num(), RoundHalfEven(y).Num()))), nil
	default:
		return Value{}, ErrNotConstant
	}
}

// Compare orders two constants: strings ordinally, everything else numerically.
// A string compared with a number must hold numeric text.
func Compare(a, b Value) (int, error) {
	if a.domain == String && b.domain == String {
		return strings.Compare(a.text, b.text), nil
	}

	x, err := numeric(a)
	if err != nil {
		return 0, err
	}

	y, err := numeric(b)
	if err != nil {
		return 0, err
	}

	return x.Cmp(y), nil
}

func relate(op m.Operator, c int) bool {
	switch op {
	case m.OpEq:
		return c == 0
	case m.OpNe:
		return c != 0
	case m.OpLt:
		return c < 0
	case m.OpLe:
		return c <= 0
	case m.OpGt:
		return c > 0
	default:
		return c >= 0
	}
}

func logic(op m.Operator, a, b bool) bool {
	switch op {
	case m.OpAnd:
		return a && b
	case m.OpOr:
		return a || b
	case m.OpXor:
		return a != b
	case m.OpEqv:
		return a == b
	default:
		return !a || b
	}
}

func bitwise(op m.Operator, a, b *big.Int) *big.Int {
	r := new(big.Int)
	switch op {
	case m.OpAnd:
		return r.And(a, b)
	case m.OpOr:
		return r.Or(a, b)
	case m.OpXor:
		return r.Xor(a, b)
	case m.OpEqv:
		return r.Not(r.Xor(a, b))
	default:
		return r.Or(r.Not(a), b)
	}
}

func power(x, y *big.Rat) (*big.Rat, error) {
	if y.IsInt() && y.Num().IsInt64() {
		e := y.Num().Int64()
		if e < 0 && x.Sign() == 0 {
			return nil, ErrDivisionByZero
		}

		bits := int64(x.Num().BitLen() + x.Denom().BitLen())
		if e >= -maxExactExponent && e <= maxExactExponent && bits*max(e, -e) <= maxExactBits {
			abs := big.NewInt(e)
			abs.Abs(abs)
			num := new(big.Int).Exp(x.Num(), abs, nil)
			den := new(big.Int).Exp(x.Denom(), abs, nil)
			if e < 0 {
				num, den = den, num
			}

			return new(big.Rat).SetFrac(num, den), nil
		}
	}

	fx, _ := x.Float64()
	fy, _ := y.Float64()
	f := math.Pow(fx, fy)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, ErrNotConstant
	}

	return new(big.Rat).SetFloat64(f), nil
}

func numeric(v Value) (*big.Rat, error) {
	switch {
	case v.domain == String:
		n, ok := ParseNumericText(v.text)
		if !ok {
			return nil, ErrNotConstant
		}

		return n.Rat(), nil
	case v.num == nil:
		return nil, ErrNotConstant
	default:
		return new(big.Rat).Set(v.num), nil
	}
}

func (v Value) display() string {
	if v.domain == String {
		return v.text
	}

	return v.String()
}
