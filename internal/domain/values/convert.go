package values

import (
	"math/big"
	"strings"
)

// Conversion is the outcome of converting a constant to a selector's domain.
type Conversion uint8

const (
	// Converted means the returned value is in the target domain. It may still be out of range.
	Converted Conversion = iota
	// Mismatch means the constant can never convert to the target domain.
	Mismatch
	// Incomparable means the constant and the target cannot be related statically.
	Incomparable
)

func (c Conversion) String() string {
	switch c {
	case Converted:
		return "converted"
	case Mismatch:
		return "mismatch"
	default:
		return "incomparable"
	}
}

// Convert coerces v to target the way an implicit conversion at a Case
// comparison would. Fractions converted to integral domains round half to
// even and Currency keeps four decimals. Values beyond the target's limits
// convert successfully but are marked out of domain.
func Convert(v Value, target Domain) (Value, Conversion) {
	return convert(v, target, true)
}

// ConvertBound is Convert for range ends and relational operands: the
// numeric value is kept exact so that "Is > 4.5" against a Long still means
// "at least 5".
func ConvertBound(v Value, target Domain) (Value, Conversion) {
	return convert(v, target, false)
}

func convert(v Value, target Domain, round bool) (Value, Conversion) {
	if !v.Known() {
		return Value{}, Incomparable
	}

	if target == Indeterminate || v.domain == target {
		return v, Converted
	}

	if target == String {
		// Comparing a number against a String selector depends on run-time text.
		return Value{}, Incomparable
	}

	if !target.IsNumeric() {
		return Value{}, Incomparable
	}

	num := v.num
	if v.domain == String {
		switch n, ok := ParseNumericText(v.text); {
		case ok:
			num = n.num
		case target == Boolean && strings.EqualFold(strings.TrimSpace(v.text), "true"):
			return NewBool(true), Converted
		case target == Boolean && strings.EqualFold(strings.TrimSpace(v.text), "false"):
			return NewBool(false), Converted
		default:
			return Value{}, Mismatch
		}
	}

	if target == Boolean {
		return NewBool(num.Sign() != 0), Converted
	}

	if !round {
		return Value{domain: target, num: new(big.Rat).Set(num), outOfDomain: !target.Contains(num)}, Converted
	}

	if target.IsIntegral() {
		num = RoundHalfEven(num)
	}

	return NewRat(target, num), Converted
}
