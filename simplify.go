package tpa

import "time"

// now is the monotonic clock behind Simplify's budget; a variable so
// tests can pin it.
var now = time.Now

// Simplify reduces the fraction in place by trial division against the
// shared prime cache, walking primes up to a rough square root of the
// numerator. The walk stops early once budget elapses (0 means
// unbounded; negative panics with ErrArgInvalid) or the cache runs out
// of primes below the radix.
//
// Primes divided out of the numerator but not matched in the
// denominator accumulate in a factor that is restored afterwards, so
// the value never changes. After the walk, if the surviving numerator
// divides the denominator exactly the fraction collapses all the way
// down. Simplify returns true iff the walk ran to completion and that
// closing division was exact; false reports a partial (still
// value-preserving) reduction.
func (x *Number) Simplify(budget time.Duration) bool {
	if budget < 0 {
		panic(ErrArgInvalid)
	}
	if !x.fractional {
		return true
	}
	x.normaliseRemainder()
	if x.num.isZero() {
		return true
	}
	start := now()
	negNum := x.num.isNegative()
	num := absBigint(&x.num)
	den := absBigint(&x.den)
	sqrtNum := num.roughSqrt()
	ceil := sqrtNum.value()
	factor := newBigint(1)
	complete := true
	var it primeIter
	for {
		p := it.next()
		if p == 0 {
			complete = false
			break
		}
		if float64(p) > ceil {
			break
		}
		for {
			t := num.clone()
			if t.divDigit(p) != 0 {
				break
			}
			num = t
			u := den.clone()
			if u.divDigit(p) == 0 {
				den = u
			} else {
				factor.mulScalar(p)
			}
		}
		if len(num.dig) == 1 && num.dig[0] == 1 {
			break
		}
		if budget > 0 && now().Sub(start) > budget {
			complete = false
			break
		}
	}
	exact := false
	q := den.clone()
	if rem, _ := q.div(&num); rem.isZero() {
		den = q
		num = factor
		exact = true
	} else {
		num.mul(&factor)
		num.normalise(false)
	}
	if negNum {
		num.neg()
	}
	x.num = num
	x.den = den
	return complete && exact
}
