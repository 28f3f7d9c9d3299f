package values

import (
	"math/big"
	"regexp"
	"strings"
)

// Numeric text patterns. Exponents may use D as in the language's Double notation.
const (
	decDigits  = `[0-9]+`
	floatFrac  = `\.[0-9]*`
	floatExp   = `[eEdD][+-]?[0-9]+`
	decPattern = `(?:` + decDigits + `(?:` + floatFrac + `)?|\.[0-9]+)(?:` + floatExp + `)?`
)

var (
	literalRegex = regexp.MustCompile(`^(` + decPattern + `)([%&!#@]?)$`)
	hexRegex     = regexp.MustCompile(`^&[hH]([0-9a-fA-F]+)([%&]?)$`)
	octRegex     = regexp.MustCompile(`^&[oO]?([0-7]+)([%&]?)$`)
	// numericTextRegex accepts the text a String constant may hold and still
	// convert to a number, surrounding blanks and a sign included.
	numericTextRegex = regexp.MustCompile(`^\s*[+-]?` + decPattern + `\s*$`)
)

var suffixDomains = map[string]Domain{
	"%": Integer,
	"&": Long,
	"!": Single,
	"#": Double,
	"@": Currency,
}

// ParseLiteral reads a numeric or Boolean literal as written in source,
// type-declaration suffix included. Unsuffixed whole numbers are Integer
// when they fit, then Long, then Double; anything with a fraction or an
// exponent is Double.
func ParseLiteral(text string) (Value, bool) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "true":
		return NewBool(true), true
	case "false":
		return NewBool(false), true
	}

	if m := hexRegex.FindStringSubmatch(text); m != nil {
		return parseRadix(m[1], 16, m[2])
	}

	if m := octRegex.FindStringSubmatch(text); m != nil {
		return parseRadix(m[1], 8, m[2])
	}

	m := literalRegex.FindStringSubmatch(text)
	if m == nil {
		return Value{}, false
	}

	body, suffix := m[1], m[2]
	r, ok := parseDecimal(body)
	if !ok {
		return Value{}, false
	}

	if d, forced := suffixDomains[suffix]; forced {
		return NewRat(d, r), true
	}

	if strings.ContainsAny(body, ".eEdD") || !r.IsInt() {
		return NewRat(Double, r), true
	}

	for _, d := range []Domain{Integer, Long} {
		if d.Contains(r) {
			return NewRat(d, r), true
		}
	}

	return NewRat(Double, r), true
}

// IsNumericText reports whether s would convert to a number.
func IsNumericText(s string) bool {
	return numericTextRegex.MatchString(s)
}

// ParseNumericText converts the content of a String constant to a Double.
func ParseNumericText(s string) (Value, bool) {
	if !IsNumericText(s) {
		return Value{}, false
	}

	r, ok := parseDecimal(strings.TrimSpace(s))
	if !ok {
		return Value{}, false
	}

	return NewRat(Double, r), true
}

func parseDecimal(s string) (*big.Rat, bool) {
	s = strings.NewReplacer("d", "e", "D", "e").Replace(s)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}

	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	s = strings.Replace(s, ".e", ".0e", 1)
	if strings.HasSuffix(s, ".") {
		s += "0"
	}

	return new(big.Rat).SetString(sign + s)
}

// parseRadix reads &H and &O literals. Like the language, a literal that
// fits 16 bits is an Integer and one that fits 32 bits is a Long, both read
// as two's complement.
func parseRadix(digits string, base int, suffix string) (Value, bool) {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return Value{}, false
	}

	switch {
	case suffix != "&" && n.BitLen() <= 16:
		if n.Bit(15) == 1 {
			n.Sub(n, big.NewInt(1<<16))
		}

		return NewRat(Integer, new(big.Rat).SetInt(n)), true
	case n.BitLen() <= 32:
		if n.Bit(31) == 1 {
			n.Sub(n, big.NewInt(1<<32))
		}

		return NewRat(Long, new(big.Rat).SetInt(n)), true
	default:
		return NewRat(Double, new(big.Rat).SetInt(n)), true
	}
}

// RoundHalfEven rounds r to the nearest whole number, ties to even.
func RoundHalfEven(r *big.Rat) *big.Rat {
	if r.IsInt() {
		return new(big.Rat).Set(r)
	}

	q, m := new(big.Int).DivMod(r.Num(), r.Denom(), new(big.Int))
	c := new(big.Int).Lsh(m, 1).Cmp(r.Denom())
	if c > 0 || (c == 0 && q.Bit(0) == 1) {
		q.Add(q, big.NewInt(1))
	}

	return new(big.Rat).SetInt(q)
}

func roundScale(r *big.Rat, digits int64) *big.Rat {
	scale := new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(digits), nil))
	n := RoundHalfEven(new(big.Rat).Mul(r, scale))

	return n.Quo(n, scale)
}
