package tpa

import "time"

// Hooks for the test packages. The radix is fixed in production use;
// re-binding it here lets the tests prove the arithmetic is independent
// of the digit base.
var (
	SetRadix     = setRadix
	DefaultRadix = int64(1 << 25)
)

// SetClock pins the monotonic clock consumed by Simplify.
func SetClock(f func() time.Time) { now = f }
