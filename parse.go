package tpa

import (
	"fmt"
	"strings"
)

// Parse builds a Number from its text form. Accepted shapes, after
// trimming surrounding space:
//
//	[+-]?digits                  integer
//	[+-]?digits/digits           fraction
//	[+-]?digits.digits           decimal
//	[+-]?digits.digits[digits]   decimal with recurring block
//	[+-]?digits digits/digits    mixed fraction
//
// The integer and decimal digit runs may be empty; fraction numerators
// and denominators may not. A zero denominator is ErrDenInvalid. The
// mode is inferred: integer when the normalised numerator is zero.
func Parse(s string) (*Number, error) {
	return ParseMode(s, ModeAuto)
}

// MustParse is like Parse but panics on a malformed string.
func MustParse(s string) *Number {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseMode is Parse with an explicit mode.
func ParseMode(s string, mode Mode) (*Number, error) {
	t := strings.TrimSpace(s)
	if i := strings.IndexByte(t, ' '); i >= 0 {
		return parseMixed(t, i, mode)
	}
	if strings.IndexByte(t, '/') >= 0 {
		return parseFraction(t, mode)
	}
	if strings.IndexByte(t, '.') >= 0 {
		return parseDecimal(t, mode)
	}
	return parseInteger(t, mode)
}

func parseInteger(t string, mode Mode) (*Number, error) {
	n := &Number{fractional: true}
	n.den.set(1)
	i := 0
	neg := false
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		neg = t[i] == '-'
		i++
	}
	for ; i < len(t); i++ {
		c := t[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("parsing integer: %w", ErrFmtInvalid)
		}
		n.whole.digitMulAdd(10, int64(c-'0'))
	}
	if neg {
		n.whole.neg()
	}
	return n.applyMode(mode), nil
}

func parseFraction(t string, mode Mode) (*Number, error) {
	i := strings.IndexByte(t, '/')
	num, err := parseBigint(t[:i])
	if err != nil {
		return nil, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := parseUnsigned(t[i+1:])
	if err != nil {
		return nil, fmt.Errorf("parsing denominator: %w", err)
	}
	if den.isZero() {
		return nil, ErrDenInvalid
	}
	n := &Number{fractional: true, num: num, den: den}
	n.normaliseRemainder()
	return n.applyMode(mode), nil
}

func parseMixed(t string, sp int, mode Mode) (*Number, error) {
	whole, err := parseBigint(t[:sp])
	if err != nil {
		return nil, fmt.Errorf("parsing whole part: %w", err)
	}
	rest := t[sp+1:]
	sl := strings.IndexByte(rest, '/')
	if sl < 0 {
		return nil, ErrFmtInvalid
	}
	num, err := parseUnsigned(rest[:sl])
	if err != nil {
		return nil, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := parseUnsigned(rest[sl+1:])
	if err != nil {
		return nil, fmt.Errorf("parsing denominator: %w", err)
	}
	if den.isZero() {
		return nil, ErrDenInvalid
	}
	// the leading sign covers the numerator as well as the whole part
	if t[0] == '-' {
		num.neg()
	}
	n := &Number{fractional: true, whole: whole, num: num, den: den}
	n.normaliseRemainder()
	return n.applyMode(mode), nil
}

func parseDecimal(t string, mode Mode) (*Number, error) {
	i := 0
	neg := false
	if i < len(t) && (t[i] == '+' || t[i] == '-') {
		neg = t[i] == '-'
		i++
	}
	var whole bigint
	for ; i < len(t) && t[i] >= '0' && t[i] <= '9'; i++ {
		whole.digitMulAdd(10, int64(t[i]-'0'))
	}
	if i >= len(t) || t[i] != '.' {
		return nil, ErrFmtInvalid
	}
	i++
	n := &Number{fractional: true, whole: whole}
	n.den.set(1)
	// Digits accumulate into num over a growing power of ten. A '['
	// snapshots both; ']' subtracts the snapshots back out, which turns
	// the bracketed block into its exact repeating-expansion fraction:
	// 0.[3] passes through num=3, den=10 and lands on 3/9.
	var num0, den0 bigint
	inRepeat, closed := false, false
	repeatDigits := 0
	for ; i < len(t); i++ {
		switch c := t[i]; {
		case c >= '0' && c <= '9':
			if closed {
				return nil, ErrFmtInvalid
			}
			n.num.digitMulAdd(10, int64(c-'0'))
			n.den.digitMulAdd(10, 0)
			if inRepeat {
				repeatDigits++
			}
		case c == '[':
			if inRepeat || closed {
				return nil, ErrFmtInvalid
			}
			inRepeat = true
			num0 = n.num.clone()
			den0 = n.den.clone()
		case c == ']':
			if !inRepeat || repeatDigits == 0 {
				return nil, ErrFmtInvalid
			}
			inRepeat, closed = false, true
			n.num.sub(&num0)
			n.den.sub(&den0)
		default:
			return nil, ErrFmtInvalid
		}
	}
	if inRepeat {
		return nil, ErrFmtInvalid
	}
	if neg {
		n.whole.neg()
		n.num.neg()
	}
	n.normaliseRemainder()
	return n.applyMode(mode), nil
}

// parseUnsigned parses a bare digit run.
func parseUnsigned(s string) (bigint, error) {
	if len(s) == 0 || s[0] == '+' || s[0] == '-' {
		return bigint{}, ErrFmtInvalid
	}
	return parseBigint(s)
}
