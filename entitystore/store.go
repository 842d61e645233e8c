// Package entitystore implements the persisted entity store: an ordered,
// in-memory collection of records that is written in full to a durable slot
// after every mutation and rehydrated from that slot when opened.
//
// The store performs no uniqueness checks. Callers choose identifiers;
// Add appends unconditionally, Get returns the first match, and Update and
// Delete act on every match and report how many records they touched.
package entitystore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/metrics"
	"github.com/samber/lo"
)

var (
	// ErrInvalidOptions is returned by Open when the store is misconfigured.
	ErrInvalidOptions = errors.New("invalid store options")

	// ErrPersist wraps slot write failures.
	ErrPersist = errors.New("failed to persist store")
)

// Setter mutates one record in place. Setters are the unit of partial
// update: Update applies them to every matching record.
type Setter[T any] func(*T) error

// Options describe one store instance.
type Options[T any] struct {
	// Key is the slot the store persists to, e.g. "bug-report-storage".
	Key string

	// Field names the record list inside the persisted envelope's state.
	Field string

	// Version is written alongside the records.
	Version int

	// ID returns a record's identifier.
	ID func(*T) string

	// Seed returns the records used when nothing usable is persisted.
	Seed func() []T
}

func (o Options[T]) validate() error {
	switch {
	case o.Key == "":
		return fmt.Errorf("%w: key is required", ErrInvalidOptions)
	case o.Field == "":
		return fmt.Errorf("%w: field is required", ErrInvalidOptions)
	case o.ID == nil:
		return fmt.Errorf("%w: id accessor is required", ErrInvalidOptions)
	}
	return nil
}

// Store is a persisted, ordered collection of T. It is safe for concurrent
// use; every mutation holds the write lock until its snapshot is written.
type Store[T any] struct {
	mu      sync.RWMutex
	opts    Options[T]
	records []T
	slots   kvstore.Slots
	logger  logger.Logger
}

// Open creates a store and rehydrates it from its slot. A missing, unreadable
// or undecodable slot falls back to the seed dataset; that is logged but not
// an error.
func Open[T any](ctx context.Context, slots kvstore.Slots, log logger.Logger, opts Options[T]) (*Store[T], error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if slots == nil {
		return nil, fmt.Errorf("%w: slots are required", ErrInvalidOptions)
	}
	if log == nil {
		log = logger.Noop()
	}

	s := &Store[T]{
		opts:   opts,
		slots:  slots,
		logger: log.WithField("store", opts.Key),
	}
	s.records = s.rehydrate(ctx)
	return s, nil
}

func (s *Store[T]) rehydrate(ctx context.Context) []T {
	raw, err := s.slots.Get(ctx, s.opts.Key)
	if err != nil {
		reason := "read_error"
		if errors.Is(err, kvstore.ErrSlotNotFound) {
			reason = "empty"
			s.logger.Info(ctx, "no persisted data, using seed dataset", nil)
		} else {
			s.logger.Warn(ctx, "failed to read persisted data, using seed dataset", map[string]interface{}{
				"error": err.Error(),
			})
		}
		metrics.SeedFallbacks.WithLabelValues(s.opts.Key, reason).Inc()
		return s.seed()
	}

	records, version, err := decodeSnapshot[T](raw, s.opts.Field)
	if err != nil {
		s.logger.Warn(ctx, "failed to decode persisted data, using seed dataset", map[string]interface{}{
			"error": err.Error(),
		})
		metrics.SeedFallbacks.WithLabelValues(s.opts.Key, "corrupt").Inc()
		return s.seed()
	}
	if version != s.opts.Version {
		s.logger.Info(ctx, "persisted data has a different version", map[string]interface{}{
			"persisted_version": version,
			"version":           s.opts.Version,
		})
	}

	s.logger.Debug(ctx, "store rehydrated", map[string]interface{}{
		"count": len(records),
	})
	return records
}

func (s *Store[T]) seed() []T {
	if s.opts.Seed == nil {
		return []T{}
	}
	seed := s.opts.Seed()
	out := make([]T, 0, len(seed))
	for _, r := range seed {
		out = append(out, clone(r))
	}
	return out
}

// Key returns the slot key of the store.
func (s *Store[T]) Key() string {
	return s.opts.Key
}

// persistLocked writes the full snapshot. Callers hold the write lock.
func (s *Store[T]) persistLocked(ctx context.Context, op string) error {
	raw, err := encodeSnapshot(s.records, s.opts.Field, s.opts.Version)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	if err := s.slots.Set(ctx, s.opts.Key, raw); err != nil {
		metrics.PersistFailures.WithLabelValues(s.opts.Key).Inc()
		s.logger.Error(ctx, "failed to persist store", map[string]interface{}{
			"error": err.Error(),
			"op":    op,
		})
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	metrics.StoreMutations.WithLabelValues(s.opts.Key, op).Inc()
	return nil
}

// Add appends a copy of record and persists. No uniqueness check is made.
// If the write fails the record stays in memory and the error is returned.
func (s *Store[T]) Add(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, clone(record))
	if err := s.persistLocked(ctx, "add"); err != nil {
		return err
	}

	s.logger.Info(ctx, "record added", map[string]interface{}{
		"id": s.opts.ID(&record),
	})
	return nil
}

// AddAll appends copies of all records and persists once.
func (s *Store[T]) AddAll(ctx context.Context, records []T) error {
	if len(records) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range records {
		s.records = append(s.records, clone(r))
	}
	if err := s.persistLocked(ctx, "add_all"); err != nil {
		return err
	}

	s.logger.Info(ctx, "records added", map[string]interface{}{
		"count": len(records),
	})
	return nil
}

// Update applies setters to every record whose ID matches and returns how
// many records matched. With no match nothing changes and nothing is
// written. If any setter fails no record is modified.
func (s *Store[T]) Update(ctx context.Context, id string, setters ...Setter[T]) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []int
	for i := range s.records {
		if s.matches(&s.records[i], id) {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		s.logger.Debug(ctx, "update matched no records", map[string]interface{}{
			"id": id,
		})
		return 0, nil
	}

	updated := make([]T, len(matches))
	for n, idx := range matches {
		rec := clone(s.records[idx])
		for _, set := range setters {
			if err := set(&rec); err != nil {
				return 0, err
			}
		}
		updated[n] = rec
	}
	for n, idx := range matches {
		s.records[idx] = updated[n]
	}

	if err := s.persistLocked(ctx, "update"); err != nil {
		return len(matches), err
	}

	s.logger.Info(ctx, "record updated", map[string]interface{}{
		"id":    id,
		"count": len(matches),
	})
	return len(matches), nil
}

// Delete removes every record whose ID matches and returns how many were
// removed. With no match nothing is written.
func (s *Store[T]) Delete(ctx context.Context, id string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := lo.Filter(s.records, func(r T, _ int) bool {
		return !s.matches(&r, id)
	})
	removed := len(s.records) - len(kept)
	if removed == 0 {
		s.logger.Debug(ctx, "delete matched no records", map[string]interface{}{
			"id": id,
		})
		return 0, nil
	}

	s.records = kept
	if err := s.persistLocked(ctx, "delete"); err != nil {
		return removed, err
	}

	s.logger.Info(ctx, "record deleted", map[string]interface{}{
		"id":    id,
		"count": removed,
	})
	return removed, nil
}

// Replace swaps the whole collection and persists.
func (s *Store[T]) Replace(ctx context.Context, records []T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]T, 0, len(records))
	for _, r := range records {
		next = append(next, clone(r))
	}
	s.records = next
	if err := s.persistLocked(ctx, "replace"); err != nil {
		return err
	}

	s.logger.Info(ctx, "store replaced", map[string]interface{}{
		"count": len(next),
	})
	return nil
}

// ResetToSeed replaces the collection with the seed dataset.
func (s *Store[T]) ResetToSeed(ctx context.Context) error {
	return s.Replace(ctx, s.seed())
}

// Get returns a copy of the first record whose ID matches.
func (s *Store[T]) Get(ctx context.Context, id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.matches(&s.records[i], id) {
			return clone(s.records[i]), true
		}
	}
	var zero T
	return zero, false
}

// List returns copies of all records in insertion order.
func (s *Store[T]) List(ctx context.Context) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, clone(r))
	}
	return out
}

// Find returns copies of the records matching pred, in order.
func (s *Store[T]) Find(ctx context.Context, pred func(T) bool) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := lo.Filter(s.records, func(r T, _ int) bool { return pred(r) })
	return lo.Map(matched, func(r T, _ int) T { return clone(r) })
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *Store[T]) matches(r *T, id string) bool {
	return s.opts.ID(r) == normalizeID(id)
}

// normalizeID replaces each invalid UTF-8 byte with U+FFFD, matching what
// the JSON round trip in clone does to stored identifiers.
func normalizeID(id string) string {
	if utf8.ValidString(id) {
		return id
	}
	var b strings.Builder
	b.Grow(len(id) + 8)
	for _, r := range id {
		b.WriteRune(r)
	}
	return b.String()
}

// clone deep-copies a record through its JSON form, the same form it is
// persisted in, so copies and rehydrated records are indistinguishable.
func clone[T any](v T) T {
	data, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return v
	}
	return out
}
