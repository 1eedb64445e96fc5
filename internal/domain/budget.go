package domain

import "time"

// DefaultLookupTimeout bounds a whole lookup call when the caller does not
// supply its own budget.
const DefaultLookupTimeout = 5000 * time.Millisecond

// Budget is the wall-clock allowance for a single end-to-end lookup,
// captured once as an absolute deadline and shared by every cache and
// provider operation within the call. It is an immutable value; consumers
// recompute Remaining immediately before each use instead of counting down.
type Budget struct {
	deadline time.Time
}

// StartBudget captures now + timeout as the lookup deadline.
// Negative timeouts are treated as zero.
func StartBudget(timeout time.Duration) Budget {
	if timeout < 0 {
		timeout = 0
	}
	return Budget{deadline: time.Now().Add(timeout)}
}

// Remaining returns the time left before the deadline, clamped at zero.
func (b Budget) Remaining() time.Duration {
	r := time.Until(b.deadline)
	if r < 0 {
		return 0
	}
	return r
}

// Expired reports whether the budget is exhausted. An expired budget is a
// hard stop for the lookup, distinct from a provider error.
func (b Budget) Expired() bool {
	return b.Remaining() == 0
}
