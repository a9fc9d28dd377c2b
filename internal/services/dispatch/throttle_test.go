package dispatch

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClock drives a Throttle deterministically: the test advances the
// clock, the throttle records requested sleeps instead of blocking.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	sleeps []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sleeps = append(c.sleeps, d)
}

func (c *fakeClock) Sleeps() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]time.Duration(nil), c.sleeps...)
}

func newTestThrottle(interval time.Duration) (*Throttle, *fakeClock) {
	clock := newFakeClock()
	t := NewThrottle(interval)
	t.now = clock.Now
	t.sleep = clock.Sleep
	return t, clock
}

func TestThrottleFirstCallDoesNotWait(t *testing.T) {
	throttle, clock := newTestThrottle(time.Second)

	throttle.Wait()

	assert.Empty(t, clock.Sleeps())
}

func TestThrottleEnforcesSpacing(t *testing.T) {
	throttle, clock := newTestThrottle(time.Second)

	throttle.Wait()
	clock.Advance(300 * time.Millisecond)
	throttle.Wait()

	sleeps := clock.Sleeps()
	assert.Len(t, sleeps, 1)
	assert.Equal(t, 700*time.Millisecond, sleeps[0])
}

func TestThrottleNoWaitAfterInterval(t *testing.T) {
	throttle, clock := newTestThrottle(time.Second)

	throttle.Wait()
	clock.Advance(2 * time.Second)
	throttle.Wait()

	assert.Empty(t, clock.Sleeps())
}

func TestThrottleStampsBeforeSleeping(t *testing.T) {
	throttle, clock := newTestThrottle(time.Second)

	// Three calls with no clock movement: each later caller waits the
	// full interval relative to the previous caller's entry time, not
	// its wake-up time.
	throttle.Wait()
	throttle.Wait()
	throttle.Wait()

	sleeps := clock.Sleeps()
	assert.Len(t, sleeps, 2)
	assert.Equal(t, time.Second, sleeps[0])
	assert.Equal(t, time.Second, sleeps[1])
}

func TestThrottleConcurrentCallsAllStamp(t *testing.T) {
	throttle, clock := newTestThrottle(time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			throttle.Wait()
		}()
	}
	wg.Wait()

	// All but the first caller observed a zero-elapsed window.
	assert.Len(t, clock.Sleeps(), 9)
}
