package tpa

import "strings"

// String renders x as a decimal with up to 100 digits after the point.
func (x *Number) String() string {
	return x.ToDecimal(100)
}

// ToDecimal renders x as a signed decimal. A repeating expansion is
// folded into bracket notation ("-4.4[19...]"); otherwise emission stops
// after maxDP digits with a trailing "..." marker. ToDecimal panics with
// ErrArgInvalid if maxDP is negative.
func (x *Number) ToDecimal(maxDP int) string {
	if maxDP < 0 {
		panic(ErrArgInvalid)
	}
	x.normaliseRemainder()
	var b strings.Builder
	if x.Sign() < 0 {
		b.WriteByte('-')
	}
	w := absBigint(&x.whole)
	b.WriteString(w.String())
	if !x.fractional || x.num.isZero() {
		return b.String()
	}
	b.WriteByte('.')
	// Long-division digit loop. Every pre-step numerator is recorded;
	// seeing one again means the expansion has cycled, and the match
	// position is where the recurring block opens.
	n := absBigint(&x.num)
	var seen []bigint
	var digits []byte
	truncated := false
	for !n.isZero() {
		match := -1
		for i := range seen {
			if seen[i].cmp(&n) == 0 {
				match = i
				break
			}
		}
		if match >= 0 {
			marked := make([]byte, 0, len(digits)+2)
			marked = append(marked, digits[:match]...)
			marked = append(marked, '[')
			marked = append(marked, digits[match:]...)
			marked = append(marked, ']')
			digits = marked
			break
		}
		if len(digits) >= maxDP {
			truncated = true
			break
		}
		seen = append(seen, n.clone())
		n.mulScalar(10)
		rem, _ := n.div(&x.den)
		digits = append(digits, byte('0'+n.lsb()))
		n = rem
	}
	b.Write(digits)
	if truncated {
		b.WriteString("...")
	}
	return b.String()
}

// ToFraction renders x in mixed form: the signed whole part, then the
// absolute fraction when one is present, e.g. "-4 269/642".
func (x *Number) ToFraction() string {
	x.normaliseRemainder()
	var b strings.Builder
	if x.Sign() < 0 {
		b.WriteByte('-')
	}
	w := absBigint(&x.whole)
	b.WriteString(w.String())
	if x.fractional && !x.num.isZero() {
		n := absBigint(&x.num)
		b.WriteByte(' ')
		b.WriteString(n.String())
		b.WriteByte('/')
		b.WriteString(x.den.String())
	}
	return b.String()
}

// ToInteger renders the whole part of x as a signed decimal integer.
func (x *Number) ToInteger() string {
	x.normaliseRemainder()
	return x.whole.String()
}
