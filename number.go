package tpa

import (
	"math"
	"math/rand"
)

// Number is an exact rational value: a signed whole part plus, in
// fractional mode, a signed numerator over a strictly positive
// denominator. In integer-only mode arithmetic discards the fractional
// contribution of every operand and the remainder fields are unused.
// The zero value of Number is a ready-to-use integer-mode zero.
//
// The normalised form keeps |num| < den with num sharing the sign of
// whole (or whole zero), and stores a zero fraction as 0/1. Mutating
// methods return the receiver for chaining. A single value must not be
// mutated concurrently; distinct values are independent except for the
// shared prime cache behind Simplify.
type Number struct {
	fractional bool
	whole      bigint
	num        bigint
	den        bigint
}

// Mode selects how a constructor fixes the integer-vs-fractional mode of
// the value it builds.
type Mode int

const (
	// ModeAuto infers the mode: integer when the normalised numerator is
	// zero, fractional otherwise.
	ModeAuto Mode = iota
	ModeInteger
	ModeFractional
)

// New returns an integer-mode zero.
func New() *Number {
	return &Number{}
}

// FromInt returns the integer v in integer mode.
func FromInt(v int64) *Number {
	return FromIntMode(v, ModeAuto)
}

// FromIntMode returns the integer v in the given mode.
func FromIntMode(v int64, mode Mode) *Number {
	n := &Number{fractional: mode == ModeFractional}
	n.whole.set(v)
	if n.fractional {
		n.den.set(1)
	}
	return n
}

// FromFloat converts a float to an exact value: the whole part truncated
// toward zero, the fractional part taken to 8 decimal places over 10^8
// with common trailing zeros reduced away. The mode is inferred from the
// derived numerator. FromFloat errors on NaN, infinities, and whole
// parts outside the int64 range.
func FromFloat(v float64) (*Number, error) {
	return FromFloatMode(v, ModeAuto)
}

// FromFloatMode is FromFloat with an explicit mode.
func FromFloatMode(v float64, mode Mode) (*Number, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrFmtInvalid
	}
	wh := math.Trunc(v)
	if wh >= float64(math.MaxInt64) || wh <= float64(math.MinInt64) {
		return nil, ErrNumOverflow
	}
	num := int64(math.Round((v - wh) * 1e8))
	den := int64(100000000)
	if num == 0 {
		den = 1
	} else {
		for num%10 == 0 && den > 1 {
			num /= 10
			den /= 10
		}
	}
	n := &Number{fractional: true}
	n.whole.set(int64(wh))
	n.num.set(num)
	n.den.set(den)
	n.normaliseRemainder()
	return n.applyMode(mode), nil
}

// FromNumberMode clones y into the given mode. A fresh value is
// returned even when the modes already match.
func FromNumberMode(y *Number, mode Mode) *Number {
	return y.Clone().applyMode(mode)
}

// Random returns an integer-mode value of exactly digits decimal
// digits, drawn uniformly from rnd.
func Random(rnd *rand.Rand, digits int) (*Number, error) {
	if digits <= 0 {
		return nil, ErrArgInvalid
	}
	n := New()
	n.whole.randomize(rnd, digits)
	return n, nil
}

// Clone returns a deep copy of x.
func (x *Number) Clone() *Number {
	n := &Number{fractional: x.fractional, whole: x.whole.clone()}
	if x.fractional {
		n.num = x.num.clone()
		n.den = x.den.clone()
	}
	return n
}

// Set replaces x with a copy of y, mode included.
func (x *Number) Set(y *Number) *Number {
	if x == y {
		return x
	}
	x.fractional = y.fractional
	x.whole.copyFrom(&y.whole)
	if y.fractional {
		x.num.copyFrom(&y.num)
		x.den.copyFrom(&y.den)
	} else {
		x.num.reset()
		x.den.reset()
	}
	return x
}

// MakeInteger folds the fraction's integer quotient into the whole part,
// discards the rest, and switches to integer-only mode.
func (x *Number) MakeInteger() *Number {
	if x.fractional {
		x.normaliseRemainder()
		x.fractional = false
		x.num.reset()
		x.den.reset()
	}
	return x
}

// MakeFractional switches to fractional mode with a zero fraction.
func (x *Number) MakeFractional() *Number {
	if !x.fractional {
		x.fractional = true
		x.num.reset()
		x.den.set(1)
	}
	return x
}

// IsInteger reports whether x is in integer-only mode.
func (x *Number) IsInteger() bool { return !x.fractional }

// IsFractional reports whether x is in fractional mode.
func (x *Number) IsFractional() bool { return x.fractional }

// HasFraction reports whether x carries a non-zero fractional part.
func (x *Number) HasFraction() bool {
	if !x.fractional {
		return false
	}
	x.normaliseRemainder()
	return !x.num.isZero()
}

// Sign returns -1, 0, or 1 by the sign of x.
func (x *Number) Sign() int {
	x.normaliseRemainder()
	if s := x.whole.sign(); s != 0 {
		return s
	}
	if !x.fractional {
		return 0
	}
	return x.num.sign()
}

func (x *Number) IsZero() bool     { return x.Sign() == 0 }
func (x *Number) IsPositive() bool { return x.Sign() > 0 }
func (x *Number) IsNegative() bool { return x.Sign() < 0 }

// Add adds y to x. In integer-only mode just the whole parts take part.
func (x *Number) Add(y *Number) *Number {
	if x == y {
		y = x.Clone()
	}
	x.whole.add(&y.whole)
	if x.fractional && y.fractional && !y.num.isZero() {
		t := y.num.clone()
		t.mul(&x.den)
		x.num.mul(&y.den)
		x.num.add(&t)
		x.den.mul(&y.den)
	}
	x.normaliseRemainder()
	return x
}

// Sub subtracts y from x.
func (x *Number) Sub(y *Number) *Number {
	if x == y {
		y = x.Clone()
	}
	x.whole.sub(&y.whole)
	if x.fractional && y.fractional && !y.num.isZero() {
		t := y.num.clone()
		t.mul(&x.den)
		x.num.mul(&y.den)
		x.num.sub(&t)
		x.den.mul(&y.den)
	}
	x.normaliseRemainder()
	return x
}

// Mul multiplies x by y. With x = A + p/q and y = C + r/s the fraction
// expands as p*(r + s*C) + r*A*q over q*s, with A*C folded into the
// whole part.
func (x *Number) Mul(y *Number) *Number {
	if x == y {
		y = x.Clone()
	}
	if x.fractional {
		if y.fractional {
			t := y.den.clone()
			t.mul(&y.whole)
			t.add(&y.num)
			u := y.num.clone()
			u.mul(&x.whole)
			u.mul(&x.den)
			x.num.mul(&t)
			x.num.add(&u)
			x.den.mul(&y.den)
		} else {
			x.num.mul(&y.whole)
		}
	}
	x.whole.mul(&y.whole)
	x.normaliseRemainder()
	return x
}

// Div divides x by y, splitting (A*q + p)*s over q*(C*s + r) back into
// whole and remainder with the engine's long division. Div panics with
// ErrDivByZero when the divisor is zero.
func (x *Number) Div(y *Number) *Number {
	if x == y {
		y = x.Clone()
	}
	if !x.fractional {
		if y.whole.isZero() {
			panic(ErrDivByZero)
		}
		x.whole.div(&y.whole)
		return x
	}
	n := x.whole.clone()
	n.mul(&x.den)
	n.add(&x.num)
	d := y.whole.clone()
	if y.fractional {
		d.mul(&y.den)
		d.add(&y.num)
		n.mul(&y.den)
	}
	if d.isZero() {
		panic(ErrDivByZero)
	}
	d.mul(&x.den)
	rem, _ := n.div(&d)
	if d.isNegative() {
		d.neg()
		rem.neg()
	}
	x.whole = n
	x.num = rem
	x.den = d
	x.normaliseRemainder()
	return x
}

// Mod reduces x modulo y over the integer parts and discards any
// fraction. Mod panics with ErrDivByZero when y's integer part is zero.
func (x *Number) Mod(y *Number) *Number {
	if x == y {
		y = x.Clone()
	}
	if y.whole.isZero() {
		panic(ErrDivByZero)
	}
	rem, _ := x.whole.div(&y.whole)
	x.whole = rem
	if x.fractional {
		x.num.reset()
		x.den.set(1)
	}
	return x
}

// Neg negates x.
func (x *Number) Neg() *Number {
	x.whole.neg()
	if x.fractional {
		x.num.neg()
	}
	return x
}

// Abs replaces x with its absolute value.
func (x *Number) Abs() *Number {
	if x.Sign() < 0 {
		x.Neg()
	}
	return x
}

// Int truncates x to its integer part, keeping the mode.
func (x *Number) Int() *Number {
	if x.fractional {
		x.normaliseRemainder()
		x.num.reset()
		x.den.set(1)
	}
	return x
}

// Frac drops the integer part, keeping only the fractional remainder.
func (x *Number) Frac() *Number {
	x.normaliseRemainder()
	x.whole.reset()
	return x
}

// Cmp returns -1 if x < y, 0 if x == y, and 1 if x > y. Signs compare
// first, then whole-part magnitudes, then the cross-multiplied
// fractions.
func (x *Number) Cmp(y *Number) int {
	sx, sy := x.Sign(), y.Sign()
	if sx != sy {
		return sgn(sx - sy)
	}
	if sx == 0 {
		return 0
	}
	xw := absBigint(&x.whole)
	yw := absBigint(&y.whole)
	if c := xw.cmp(&yw); c != 0 {
		return c * sx
	}
	var xn, yn bigint
	if x.fractional {
		xn = absBigint(&x.num)
	}
	if y.fractional {
		yn = absBigint(&y.num)
	}
	if y.fractional {
		xn.mul(&y.den)
	}
	if x.fractional {
		yn.mul(&x.den)
	}
	xn.normalise(false)
	xn.positivise()
	yn.normalise(false)
	yn.positivise()
	return xn.cmp(&yn) * sx
}

func (x *Number) Eq(y *Number) bool  { return x.Cmp(y) == 0 }
func (x *Number) Lt(y *Number) bool  { return x.Cmp(y) < 0 }
func (x *Number) Lte(y *Number) bool { return x.Cmp(y) <= 0 }
func (x *Number) Gt(y *Number) bool  { return x.Cmp(y) > 0 }
func (x *Number) Gte(y *Number) bool { return x.Cmp(y) >= 0 }

// Value returns the float64 approximation of x, rounded to 8 decimal
// places. Lossy by design.
func (x *Number) Value() float64 {
	x.normaliseRemainder()
	v := x.whole.value()
	if x.fractional && !x.num.isZero() {
		t := x.num.clone()
		m := newBigint(100000000)
		t.mul(&m)
		t.div(&x.den)
		v += t.value() / 1e8
	}
	return math.Round(v*1e8) / 1e8
}

// normaliseRemainder restores |num| < den, folds the quotient into the
// whole part, and reconciles signs so num matches whole (or whole is
// zero). A zero fraction is stored as 0/1.
func (x *Number) normaliseRemainder() {
	if !x.fractional {
		return
	}
	if !x.num.isZero() {
		rem, _ := x.num.div(&x.den)
		x.whole.add(&x.num)
		x.num = rem
	}
	if x.num.isZero() {
		x.num.reset()
		x.den.set(1)
		return
	}
	one := newBigint(1)
	if x.num.isNegative() {
		if x.whole.isPositive() {
			x.num.add(&x.den)
			x.whole.sub(&one)
		}
	} else if x.whole.isNegative() {
		x.num.sub(&x.den)
		x.whole.add(&one)
	}
}

func (x *Number) applyMode(mode Mode) *Number {
	switch mode {
	case ModeInteger:
		x.MakeInteger()
	case ModeFractional:
		x.MakeFractional()
	default:
		if x.fractional {
			x.normaliseRemainder()
			if x.num.isZero() {
				x.MakeInteger()
			}
		}
	}
	return x
}

// absBigint returns a positivised copy of |v|.
func absBigint(v *bigint) bigint {
	t := v.clone()
	t.normalise(false)
	if len(t.dig) > 0 && t.dig[len(t.dig)-1] < 0 {
		t.neg()
	}
	t.positivise()
	return t
}
