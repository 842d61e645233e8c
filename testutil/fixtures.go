package testutil

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrInjected is the default error returned by FailingSlots.
var ErrInjected = errors.New("injected storage failure")

// FailingSlots is a slot store (kvstore.Slots) whose reads and writes can be
// made to fail, for exercising persistence error paths.
type FailingSlots struct {
	mu      sync.Mutex
	values  map[string]string
	FailGet bool
	FailSet bool
	Err     error
	Writes  int
}

// NewFailingSlots creates a FailingSlots with no failures enabled.
func NewFailingSlots() *FailingSlots {
	return &FailingSlots{values: make(map[string]string)}
}

func (f *FailingSlots) err() error {
	if f.Err != nil {
		return f.Err
	}
	return ErrInjected
}

// Get returns the stored value, or the injected error when FailGet is set.
func (f *FailingSlots) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailGet {
		return "", f.err()
	}
	v, ok := f.values[key]
	if !ok {
		return "", errors.New("slot not found")
	}
	return v, nil
}

// Set stores the value, or returns the injected error when FailSet is set.
func (f *FailingSlots) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return f.err()
	}
	f.Writes++
	f.values[key] = value
	return nil
}

// Delete removes the value.
func (f *FailingSlots) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.FailSet {
		return f.err()
	}
	delete(f.values, key)
	return nil
}

// Clock is a settable time source for code that takes a func() time.Time.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock frozen at t.
func NewClock(t time.Time) *Clock {
	return &Clock{now: t}
}

// Now returns the current clock time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
