package tpa

import "sync"

// primeCache is the process-wide list of primes discovered so far,
// extended lazily by +2 trial division. The list only ever grows; the
// mutex covers concurrent Simplify calls.
var primeCache = struct {
	sync.Mutex
	list []int64
}{list: []int64{2, 3}}

// primeIter walks the shared prime cache. Each iterator holds only a
// cursor; advancing past the end of the cache extends it.
type primeIter struct {
	pos int
}

// next returns the next prime, or 0 once the next candidate would reach
// the radix.
func (it *primeIter) next() int64 {
	primeCache.Lock()
	defer primeCache.Unlock()
	for it.pos >= len(primeCache.list) {
		if !extendPrimeCache() {
			return 0
		}
	}
	p := primeCache.list[it.pos]
	if p >= radix {
		return 0
	}
	it.pos++
	return p
}

// extendPrimeCache appends the next prime after the current last entry,
// reporting false once candidates reach the radix. Caller holds the lock.
func extendPrimeCache() bool {
	for c := primeCache.list[len(primeCache.list)-1] + 2; ; c += 2 {
		if c >= radix {
			return false
		}
		composite := false
		for _, p := range primeCache.list {
			if p*p > c {
				break
			}
			if c%p == 0 {
				composite = true
				break
			}
		}
		if !composite {
			primeCache.list = append(primeCache.list, c)
			return true
		}
	}
}
