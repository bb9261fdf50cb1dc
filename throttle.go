package explore

import (
	"sync"
	"time"
)

// DefaultThrottleDelay is the cooldown window used for recomputing
// autocomplete suggestions while the user types.
const DefaultThrottleDelay = 500 * time.Millisecond

// Throttle wraps a unary callback with trailing-edge coalescing.
//
// The first call within a quiet window executes immediately and opens a
// cooldown. Calls arriving during the cooldown are not dropped: only the
// most recent call's argument is retained in a single pending slot
// (last-write-wins), and it executes exactly once when the cooldown elapses.
// A trailing execution schedules a follow-up window and re-opens the
// throttle, so a call arriving after the trailing fire executes
// immediately. Bursts of rapid input therefore collapse to one immediate
// and at most one deferred execution reflecting the most recent state.
//
// The callback runs either on the caller's goroutine (immediate execution)
// or on a timer goroutine (deferred execution). Throttle is safe for
// concurrent use.
type Throttle[T any] struct {
	mu         sync.Mutex
	delay      time.Duration
	fn         func(T)
	active     bool
	hasPending bool
	pending    T
	timer      *time.Timer
	stopped    bool
}

// NewThrottle wraps fn with a throttle using the given cooldown delay.
func NewThrottle[T any](delay time.Duration, fn func(T)) *Throttle[T] {
	return &Throttle[T]{
		delay: delay,
		fn:    fn,
	}
}

// Call invokes the wrapped function with v, or defers it per the coalescing
// rules.
func (t *Throttle[T]) Call(v T) {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	if t.active {
		t.pending = v
		t.hasPending = true
		t.mu.Unlock()
		return
	}
	t.active = true
	t.timer = time.AfterFunc(t.delay, t.drain)
	t.mu.Unlock()

	t.fn(v)
}

// drain runs when a cooldown window elapses: it fires the pending call if
// one was coalesced, starts the follow-up window for it, and re-opens the
// throttle.
func (t *Throttle[T]) drain() {
	t.mu.Lock()
	if t.stopped {
		t.mu.Unlock()
		return
	}
	var v T
	fire := t.hasPending
	if fire {
		v = t.pending
		var zero T
		t.pending = zero
		t.hasPending = false
		t.timer = time.AfterFunc(t.delay, t.drain)
	}
	t.active = false
	t.mu.Unlock()

	if fire {
		t.fn(v)
	}
}

// Stop cancels any deferred execution and makes further calls no-ops.
// It does not wait for an in-flight callback to return.
func (t *Throttle[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
	t.hasPending = false
	if t.timer != nil {
		t.timer.Stop()
	}
}
