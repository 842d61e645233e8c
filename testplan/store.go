package testplan

import (
	"context"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
)

const (
	// StorageKey is the slot holding the test plan list.
	StorageKey   = "test-plan-storage"
	storageField = "testPlans"
	version      = 1
)

// UpdateSetter is a function that updates a test plan field.
type UpdateSetter = entitystore.Setter[TestPlan]

// Store defines the test plan persistence operations.
type Store interface {
	entitystore.Repository[TestPlan]

	// GetByProjectName returns the first plan for the project.
	GetByProjectName(ctx context.Context, projectName string) (TestPlan, bool)
}

type store struct {
	*entitystore.Store[TestPlan]
}

// NewStore opens the test plan store over slots.
func NewStore(ctx context.Context, slots kvstore.Slots, log logger.Logger) (Store, error) {
	s, err := entitystore.Open(ctx, slots, log, entitystore.Options[TestPlan]{
		Key:     StorageKey,
		Field:   storageField,
		Version: version,
		ID:      func(p *TestPlan) string { return p.ID },
		Seed:    Seed,
	})
	if err != nil {
		return nil, err
	}
	return &store{Store: s}, nil
}

func (s *store) GetByProjectName(ctx context.Context, projectName string) (TestPlan, bool) {
	found := s.Find(ctx, func(p TestPlan) bool { return p.ProjectName == projectName })
	if len(found) == 0 {
		return TestPlan{}, false
	}
	return found[0], true
}
