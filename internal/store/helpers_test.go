// ABOUTME: Test helpers for the wellness store.
// ABOUTME: Provides a controllable clock and deterministic ids.
package store

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock is a settable time source.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock(t time.Time) *fakeClock {
	return &fakeClock{t: t}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func (c *fakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var mu sync.Mutex
	n := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var testStart = time.Date(2025, 1, 31, 9, 30, 0, 0, time.Local)

// setupTestStore creates a store with a fake clock at testStart.
func setupTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := newFakeClock(testStart)
	s := New(WithClock(clock.Now), WithIDGenerator(sequentialIDs()))
	return s, clock
}
