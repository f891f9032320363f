package poly

import "sync"

// binomialCache memoizes C(n,k) via the Pascal recurrence
// C(n,k) = C(n-1,k-1) + C(n-1,k). Entries are write-once: once a (n,k) pair
// is computed it is never invalidated, so concurrent readers are safe under
// a simple mutex (spec.md §5).
type binomialCache struct {
	mu    sync.Mutex
	table map[[2]int]float64
}

var binomials = &binomialCache{table: make(map[[2]int]float64)}

func (c *binomialCache) get(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}
	key := [2]int{n, k}

	c.mu.Lock()
	if v, ok := c.table[key]; ok {
		c.mu.Unlock()
		return v
	}
	c.mu.Unlock()

	v := c.get(n-1, k-1) + c.get(n-1, k)

	c.mu.Lock()
	c.table[key] = v
	c.mu.Unlock()
	return v
}

// binomial returns C(n,k), the binomial coefficient, using the process-wide
// memoization table. Recomputing it per call (e.g. in a single-goroutine
// caller that skips the cache) would give the same result at a performance
// cost only.
func binomial(n, k int) float64 {
	return binomials.get(n, k)
}
