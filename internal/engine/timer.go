package engine

import "time"

// TimerHandle identifies a scheduled repeating callback. The zero value
// refers to no timer.
type TimerHandle uint64

type timerEntry struct {
	handle   TimerHandle
	interval time.Duration
	elapsed  time.Duration
	fn       func()
}

// timers runs repeating callbacks on simulated time.
type timers struct {
	next    TimerHandle
	entries []*timerEntry
}

func (t *timers) schedule(interval time.Duration, fn func()) TimerHandle {
	t.next++
	t.entries = append(t.entries, &timerEntry{
		handle:   t.next,
		interval: interval,
		fn:       fn,
	})
	return t.next
}

// cancel removes the timer. Unknown or already cancelled handles are ignored.
func (t *timers) cancel(h TimerHandle) bool {
	for i, e := range t.entries {
		if e.handle == h {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			return true
		}
	}
	return false
}

func (t *timers) active(h TimerHandle) bool {
	for _, e := range t.entries {
		if e.handle == h {
			return true
		}
	}
	return false
}

// advance fires every callback whose period elapsed during dt. A callback may
// cancel timers, including its own; cancelled timers stop firing immediately.
func (t *timers) advance(dt time.Duration) {
	for _, e := range append([]*timerEntry(nil), t.entries...) {
		e.elapsed += dt
		for e.interval > 0 && e.elapsed >= e.interval {
			if !t.active(e.handle) {
				break
			}
			e.elapsed -= e.interval
			e.fn()
		}
	}
}
