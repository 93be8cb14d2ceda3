package loop

import (
	"testing"
	"time"
)

// fakeClock advances a little on every read, like a real spinning clock.
type fakeClock struct {
	now            time.Time
	sleeps, yields int
}

func newFakeWaiter() (*HybridWaiter, *fakeClock) {
	c := &fakeClock{now: time.Unix(0, 0)}
	w := &HybridWaiter{
		Now: func() time.Time {
			c.now = c.now.Add(100 * time.Microsecond)
			return c.now
		},
		Sleep: func(d time.Duration) {
			c.sleeps++
			c.now = c.now.Add(d)
		},
		Yield: func() {
			c.yields++
			c.now = c.now.Add(500 * time.Microsecond)
		},
	}
	return w, c
}

func TestHybridWaiterPhases(t *testing.T) {
	tests := []struct {
		name       string
		d          time.Duration
		wantSleeps bool
		wantYields bool
	}{
		{"zero", 0, false, false},
		{"spin only", 2 * time.Millisecond, false, false},
		{"yield then spin", 8 * time.Millisecond, false, true},
		{"sleep, yield, spin", 30 * time.Millisecond, true, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, c := newFakeWaiter()
			start := c.now

			w.Wait(tc.d)

			if elapsed := c.now.Sub(start); elapsed < tc.d {
				t.Errorf("returned after %v, expected at least %v", elapsed, tc.d)
			}
			if (c.sleeps > 0) != tc.wantSleeps {
				t.Errorf("sleeps = %d, expected any: %v", c.sleeps, tc.wantSleeps)
			}
			if (c.yields > 0) != tc.wantYields {
				t.Errorf("yields = %d, expected any: %v", c.yields, tc.wantYields)
			}
		})
	}
}

func TestHybridWaiterRealClock(t *testing.T) {
	w := NewHybridWaiter()
	start := time.Now()
	w.Wait(5 * time.Millisecond)
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Wait(5ms) returned after %v", elapsed)
	}
}
