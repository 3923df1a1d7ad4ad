// ABOUTME: Step counter that folds a device step feed into a daily count.
// ABOUTME: Supports a user reset via an offset without touching device history.
package steps

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultGoal is the daily step target.
const DefaultGoal = 10000

// ErrAlreadyStarted is returned by Start on a running counter.
var ErrAlreadyStarted = errors.New("step counter already started")

// Source is a device step feed.
type Source interface {
	// Available reports whether the device can count steps.
	Available(ctx context.Context) (bool, error)
	// StepCount returns the cumulative steps between start and end.
	StepCount(ctx context.Context, start, end time.Time) (int, error)
	// Watch streams incremental step deltas until ctx is cancelled,
	// then closes the channel.
	Watch(ctx context.Context) (<-chan int, error)
}

// Snapshot is a point-in-time view of a Counter.
type Snapshot struct {
	Available bool `json:"available"`
	Current   int  `json:"current"`
	Today     int  `json:"today"`
	Offset    int  `json:"offset"`
}

// Counter tracks the displayed step count for today.
type Counter struct {
	src      Source
	now      func() time.Time
	logger   *zap.Logger
	onUpdate func(Snapshot)

	mu        sync.Mutex
	starting  bool
	available bool
	current   int
	today     int
	offset    int
	cancel    context.CancelFunc
	done      chan struct{}
}

// Option configures a Counter.
type Option func(*Counter)

// WithClock overrides the time source used to find midnight.
func WithClock(now func() time.Time) Option {
	return func(c *Counter) {
		c.now = now
	}
}

// WithLogger sets the counter's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Counter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithOnUpdate registers a callback run after every change to the count.
// It runs on the watcher goroutine and must not call back into the Counter.
func WithOnUpdate(fn func(Snapshot)) Option {
	return func(c *Counter) {
		c.onUpdate = fn
	}
}

// NewCounter creates a stopped counter reading from src.
func NewCounter(src Source, opts ...Option) *Counter {
	c := &Counter{
		src:    src,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads today's steps and subscribes to the feed. An unavailable
// device is not an error; the counter simply stays at zero.
func (c *Counter) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil || c.starting {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.starting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.starting = false
		c.mu.Unlock()
	}()

	available, err := c.src.Available(ctx)
	if err != nil {
		return fmt.Errorf("check step counter: %w", err)
	}

	c.mu.Lock()
	c.available = available
	c.mu.Unlock()
	c.logger.Debug("step counter availability", zap.Bool("available", available))

	if !available {
		return nil
	}

	now := c.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if count, err := c.src.StepCount(ctx, midnight, now); err != nil {
		c.logger.Warn("read today's steps", zap.Error(err))
	} else {
		c.mu.Lock()
		c.today = count
		c.current = max(0, count-c.offset)
		c.mu.Unlock()
		c.logger.Debug("today's steps loaded", zap.Int("steps", count))
	}

	watchCtx, cancel := context.WithCancel(ctx)
	deltas, err := c.src.Watch(watchCtx)
	if err != nil {
		cancel()
		return fmt.Errorf("watch steps: %w", err)
	}

	done := make(chan struct{})
	c.mu.Lock()
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	go c.watch(watchCtx, deltas, done)
	return nil
}

func (c *Counter) watch(ctx context.Context, deltas <-chan int, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deltas:
			if !ok {
				return
			}
			c.Add(d)
		}
	}
}

// Add applies a step delta immediately, never dropping below zero.
// The watcher feeds device deltas through it; callers that record steps
// directly use it so the next Snapshot already reflects the change.
func (c *Counter) Add(delta int) Snapshot {
	c.mu.Lock()
	c.current = max(0, c.current+delta)
	snap := c.snapshotLocked()
	c.mu.Unlock()

	c.logger.Debug("step count update", zap.Int("delta", delta), zap.Int("current", snap.Current))
	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
	return snap
}

// Stop unsubscribes from the feed and waits for the watcher to exit.
// Stopping a stopped counter is a no-op.
func (c *Counter) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Reset zeroes the displayed count by offsetting today's device total.
func (c *Counter) Reset() {
	c.mu.Lock()
	c.logger.Debug("resetting steps", zap.Int("current", c.current))
	c.offset = c.today
	c.current = 0
	snap := c.snapshotLocked()
	c.mu.Unlock()

	if c.onUpdate != nil {
		c.onUpdate(snap)
	}
}

// Snapshot returns the counter's current state.
func (c *Counter) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Counter) snapshotLocked() Snapshot {
	return Snapshot{
		Available: c.available,
		Current:   c.current,
		Today:     c.today,
		Offset:    c.offset,
	}
}

// StepProgress describes progress toward a daily step goal.
type StepProgress struct {
	Steps      int     `json:"steps"`
	Goal       int     `json:"goal"`
	Percentage float64 `json:"percentage"`
	Remaining  int     `json:"remaining"`
}

// Progress computes progress toward goal, capping the percentage at 100.
func Progress(steps, goal int) StepProgress {
	p := StepProgress{Steps: steps, Goal: goal}
	if goal <= 0 {
		return p
	}
	p.Percentage = min(float64(steps)/float64(goal)*100, 100)
	p.Remaining = max(0, goal-steps)
	return p
}
