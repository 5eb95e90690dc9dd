package insights

import (
	"sync"
	"time"
)

// Budget caps how many AI completions may run per day. A zero max means
// unlimited. When the budget is exhausted the extractor reports the call
// as rate limited instead of issuing it.
type Budget struct {
	mu      sync.Mutex
	count   int
	max     int
	resetAt time.Time
}

func NewBudget(max int) *Budget {
	return &Budget{
		max:     max,
		resetAt: time.Now().Add(24 * time.Hour),
	}
}

// Allow reserves one completion slot; it returns false when today's
// budget is spent.
func (b *Budget) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if time.Now().After(b.resetAt) {
		b.count = 0
		b.resetAt = time.Now().Add(24 * time.Hour)
	}

	if b.max > 0 && b.count >= b.max {
		return false
	}
	b.count++
	return true
}

// Used returns how many completions were consumed in the current window.
func (b *Budget) Used() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}
