package loop

import (
	"runtime"
	"time"
)

// Thresholds of the hybrid wait.
const (
	maxSpinTime  = 3 * time.Millisecond
	maxYieldTime = 10 * time.Millisecond
	sleepSlice   = time.Millisecond
)

// HybridWaiter waits with better precision than a single time.Sleep: it sleeps
// in 1 ms slices while far from the deadline, yields the processor when close,
// and spins for the last few milliseconds.
type HybridWaiter struct {
	Now   func() time.Time
	Sleep func(time.Duration)
	Yield func()
}

// NewHybridWaiter returns a waiter on the real clock.
func NewHybridWaiter() *HybridWaiter {
	return &HybridWaiter{
		Now:   time.Now,
		Sleep: time.Sleep,
		Yield: runtime.Gosched,
	}
}

// Wait blocks until d has elapsed on the waiter's clock.
func (w *HybridWaiter) Wait(d time.Duration) {
	start := w.Now()
	for remaining := d; remaining > 0; remaining = d - w.Now().Sub(start) {
		switch {
		case remaining < maxSpinTime:
			// spin
		case remaining < maxYieldTime:
			w.Yield()
		default:
			w.Sleep(sleepSlice)
		}
	}
}
