package qareport

import (
	"context"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the report list.
	StorageKey   = "qa-report-storage"
	storageField = "reports"
	version      = 0

	// IDPrefix prefixes generated report identifiers.
	IDPrefix = "QA"
)

// UpdateSetter is a function that updates a report field.
type UpdateSetter = entitystore.Setter[QaReport]

// Store defines the report persistence operations. Add sets CreatedAt and
// UpdatedAt; Update refreshes UpdatedAt.
type Store interface {
	entitystore.Repository[QaReport]
}

type store struct {
	*entitystore.Store[QaReport]
	now func() time.Time
}

// NewStore opens the report store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger, now func() time.Time) (Store, error) {
	if now == nil {
		now = time.Now
	}
	s, err := entitystore.Open(ctx, slots, log, entitystore.Options[QaReport]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(r *QaReport) string { return r.ID },
		Seed:    Seed,
	})
	if err != nil {
		return nil, err
	}
	return &store{Store: s, now: now}, nil
}

func (s *store) Add(ctx context.Context, r QaReport) error {
	t := idgen.ISO(s.now())
	r.CreatedAt, r.UpdatedAt = t, t
	return s.Store.Add(ctx, r)
}

func (s *store) AddAll(ctx context.Context, reports []QaReport) error {
	t := idgen.ISO(s.now())
	stamped := make([]QaReport, len(reports))
	for i, r := range reports {
		r.CreatedAt, r.UpdatedAt = t, t
		stamped[i] = r
	}
	return s.Store.AddAll(ctx, stamped)
}

func (s *store) Update(ctx context.Context, id string, setters ...UpdateSetter) (int, error) {
	t := idgen.ISO(s.now())
	all := append(append(make([]UpdateSetter, 0, len(setters)+1), setters...), func(r *QaReport) error {
		r.UpdatedAt = t
		return nil
	})
	return s.Store.Update(ctx, id, all...)
}
