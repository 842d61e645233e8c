package testsuite

import (
	"context"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the test suite list.
	StorageKey   = "test-suite-storage"
	storageField = "testSuites"
	version      = 0
)

// UpdateSetter is a function that updates a test suite field.
type UpdateSetter = entitystore.Setter[TestSuite]

// Store defines the test suite persistence operations. Every mutation
// refreshes UpdatedAt; Add also fills a blank CreatedAt.
type Store interface {
	entitystore.Repository[TestSuite]
}

type store struct {
	*entitystore.Store[TestSuite]
	now func() time.Time
}

// NewStore opens the test suite store over slots. now stamps the
// timestamps and defaults to time.Now.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger, now func() time.Time) (Store, error) {
	if now == nil {
		now = time.Now
	}
	s, err := entitystore.Open(ctx, slots, log, entitystore.Options[TestSuite]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(s *TestSuite) string { return s.ID },
		Seed:    Seed,
	})
	if err != nil {
		return nil, err
	}
	return &store{Store: s, now: now}, nil
}

func (s *store) stamp(ts *TestSuite) {
	t := idgen.ISO(s.now())
	if ts.CreatedAt == "" {
		ts.CreatedAt = t
	}
	ts.UpdatedAt = t
}

func (s *store) Add(ctx context.Context, ts TestSuite) error {
	s.stamp(&ts)
	return s.Store.Add(ctx, ts)
}

func (s *store) AddAll(ctx context.Context, suites []TestSuite) error {
	stamped := make([]TestSuite, len(suites))
	for i, ts := range suites {
		s.stamp(&ts)
		stamped[i] = ts
	}
	return s.Store.AddAll(ctx, stamped)
}

func (s *store) Update(ctx context.Context, id string, setters ...UpdateSetter) (int, error) {
	t := idgen.ISO(s.now())
	all := make([]UpdateSetter, 0, len(setters)+1)
	all = append(all, setters...)
	all = append(all, func(ts *TestSuite) error {
		ts.UpdatedAt = t
		return nil
	})
	return s.Store.Update(ctx, id, all...)
}
