// ABOUTME: In-process step Source fed by explicit pushes.
// ABOUTME: Backs the MCP step tools and tests in place of a device sensor.
package steps

import (
	"context"
	"sync"
	"time"
)

// watchBuffer is the per-subscriber delta backlog.
const watchBuffer = 64

// ManualSource is a Source whose steps arrive through Push.
type ManualSource struct {
	mu        sync.Mutex
	available bool
	total     int
	// subs maps each watcher channel to its unsubscribe signal.
	subs map[chan int]<-chan struct{}
}

// Compile-time check that ManualSource implements Source.
var _ Source = (*ManualSource)(nil)

// NewManualSource creates an available source that has already counted
// todaySteps.
func NewManualSource(todaySteps int) *ManualSource {
	return &ManualSource{
		available: true,
		total:     todaySteps,
		subs:      make(map[chan int]<-chan struct{}),
	}
}

// SetAvailable toggles whether the source reports itself available.
func (m *ManualSource) SetAvailable(available bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.available = available
}

// Available implements Source.
func (m *ManualSource) Available(ctx context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.available, nil
}

// StepCount implements Source. The source keeps a single running total,
// so the range is ignored.
func (m *ManualSource) StepCount(ctx context.Context, start, end time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total, nil
}

// Watch implements Source.
func (m *ManualSource) Watch(ctx context.Context) (<-chan int, error) {
	ch := make(chan int, watchBuffer)

	m.mu.Lock()
	m.subs[ch] = ctx.Done()
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.subs, ch)
		close(ch)
		m.mu.Unlock()
	}()

	return ch, nil
}

// Push records delta steps and delivers it to every watcher, blocking
// while a watcher's backlog is full. A watcher that unsubscribes while
// Push waits is skipped.
func (m *ManualSource) Push(delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total += delta
	for ch, done := range m.subs {
		select {
		case ch <- delta:
		case <-done:
		}
	}
}

// Total returns the cumulative steps pushed, including the initial count.
func (m *ManualSource) Total() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.total
}
