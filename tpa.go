// Package tpa provides exact arbitrary-precision rational arithmetic.
// See the Number type and the Parse and FromInt constructors for details.
//
// Values are built from a big-integer engine that defers carry
// propagation between operations, a rational layer that keeps an exact
// (whole, numerator/denominator) split, and text forms that include
// recurring-decimal notation: Parse("0.[3]") is exactly one third.
package tpa

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Common errors returned by functions in this package.
var (
	ErrFmtInvalid  = errors.New("invalid number format")
	ErrDenInvalid  = errors.New("denominator is zero")
	ErrDivByZero   = errors.New("division by zero")
	ErrNumOverflow = errors.New("numeric overflow")
	ErrArgInvalid  = errors.New("argument out of range")
)

// The package-level operations below are the non-mutating counterparts
// of the Number mutators: each clones its first argument and applies the
// method, so the result's integer-vs-fractional mode is inherited from
// the first argument.

// Add returns a + b.
func Add(a, b *Number) *Number { return a.Clone().Add(b) }

// Sub returns a - b.
func Sub(a, b *Number) *Number { return a.Clone().Sub(b) }

// Mul returns a * b.
func Mul(a, b *Number) *Number { return a.Clone().Mul(b) }

// Div returns a / b. Div panics with ErrDivByZero if b is zero.
func Div(a, b *Number) *Number { return a.Clone().Div(b) }

// Mod returns a mod b, defined over the integer parts only.
func Mod(a, b *Number) *Number { return a.Clone().Mod(b) }

// Abs returns |a|.
func Abs(a *Number) *Number { return a.Clone().Abs() }

// Neg returns -a.
func Neg(a *Number) *Number { return a.Clone().Neg() }

// Int returns the integer part of a.
func Int(a *Number) *Number { return a.Clone().Int() }

// Frac returns the fractional part of a.
func Frac(a *Number) *Number { return a.Clone().Frac() }

// absVal returns the absolute value of v.
func absVal[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// sgn returns -1, 0, or 1 by the sign of v.
func sgn[T constraints.Signed](v T) int {
	if v < 0 {
		return -1
	}
	if v > 0 {
		return 1
	}
	return 0
}
