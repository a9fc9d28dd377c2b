package dispatch

import (
	"sync"
	"time"

	fiberlog "github.com/gofiber/fiber/v2/log"
)

// Throttle enforces a minimum spacing between consecutive outbound
// completion calls. The last-call timestamp is process-wide: every caller
// that reaches the completion capability shares it.
type Throttle struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time

	// swappable in tests
	now   func() time.Time
	sleep func(time.Duration)
}

// NewThrottle creates a Throttle with the given minimum call spacing.
func NewThrottle(interval time.Duration) *Throttle {
	return &Throttle{
		interval: interval,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Wait blocks the caller until at least the configured interval has passed
// since the previous call, then records the current call. The timestamp is
// taken before sleeping, so back-to-back callers each wait relative to the
// caller that entered before them. Only the current caller blocks; the
// check-and-update itself is atomic.
func (t *Throttle) Wait() {
	t.mu.Lock()
	now := t.now()

	var wait time.Duration
	if !t.last.IsZero() {
		if elapsed := now.Sub(t.last); elapsed < t.interval {
			wait = t.interval - elapsed
		}
	}
	t.last = now
	t.mu.Unlock()

	if wait > 0 {
		fiberlog.Infof("Request throttled - waiting %v before Gemini API call", wait)
		t.sleep(wait)
	}
}
