package testplan

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hairizuanbinnoorazman/qa-workbench/form"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates an in-memory slot store and a plan store over it.
func setupTestStore(t *testing.T) (*kvstore.MemorySlots, Store) {
	t.Helper()
	slots := kvstore.NewMemorySlots()
	store, err := NewStore(context.Background(), slots, logger.NewTestLogger())
	require.NoError(t, err)
	return slots, store
}

func TestTestPlan_Validate(t *testing.T) {
	tests := []struct {
		name    string
		plan    TestPlan
		wantErr error
	}{
		{"valid", TestPlan{ProjectName: "Acme", PreparedBy: "QA"}, nil},
		{"missing project", TestPlan{PreparedBy: "QA"}, ErrInvalidProjectName},
		{"missing author", TestPlan{ProjectName: "Acme", PreparedBy: " "}, ErrInvalidPreparedBy},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.plan.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStore_UpdateStrategyKeepsTables(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestStore(t)
	clock := testutil.NewClock(time.UnixMilli(1718000000000))

	f := NewForm(store, clock.Now)
	require.NoError(t, f.Open(nil))
	require.NoError(t, f.Edit(func(p *TestPlan) {
		p.ProjectName = "Acme Checkout"
		p.PreparedBy = "Team X"
		p.Roles = []Role{{Role: "Lead", Name: "X"}}
		p.Schedule = []ScheduleEntry{{Activity: "Run", StartDate: "2024-06-01", EndDate: "2024-06-02"}}
		p.Risks = []Risk{{Risk: "Flaky env", Impact: "Medium"}}
	}))
	created, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "PLAN-1718000000000", created.ID)

	plan, ok := store.GetByProjectName(ctx, "Acme Checkout")
	require.True(t, ok)

	n, err := store.Update(ctx, plan.ID, SetTestStrategy("Exploratory first, then scripted"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	updated, _ := store.Get(ctx, plan.ID)
	assert.Equal(t, "Exploratory first, then scripted", updated.TestStrategy)
	plan.TestStrategy = updated.TestStrategy
	if diff := cmp.Diff(plan, updated); diff != "" {
		t.Errorf("update changed more than the strategy (-want +got):\n%s", diff)
	}
}

func TestStore_SharedProjectName(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestStore(t)

	require.NoError(t, store.Add(ctx, TestPlan{ID: "P-1", ProjectName: "Same", PreparedBy: "A"}))
	require.NoError(t, store.Add(ctx, TestPlan{ID: "P-2", ProjectName: "Same", PreparedBy: "B"}))

	_, err := store.Update(ctx, "P-2", SetVersion("2.0"))
	require.NoError(t, err)

	first, _ := store.Get(ctx, "P-1")
	second, _ := store.Get(ctx, "P-2")
	assert.Empty(t, first.Version)
	assert.Equal(t, "2.0", second.Version)

	byName, ok := store.GetByProjectName(ctx, "Same")
	require.True(t, ok)
	assert.Equal(t, "P-1", byName.ID)

	_, ok = store.GetByProjectName(ctx, "Nope")
	assert.False(t, ok)
}

func TestStore_Persistence(t *testing.T) {
	ctx := context.Background()
	slots, store := setupTestStore(t)
	_, err := store.Update(ctx, "PLAN-1714550400000", SetMembers([]string{"Only One"}))
	require.NoError(t, err)

	reopened, err := NewStore(ctx, slots, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(store.List(ctx), reopened.List(ctx)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	got, _ := reopened.Get(ctx, "PLAN-1714550400000")
	assert.Len(t, got.Roles, 2)
	assert.Len(t, got.Schedule, 2)
	assert.Equal(t, []string{"Only One"}, got.Members)
}

func TestForm_RequiredFields(t *testing.T) {
	_, store := setupTestStore(t)
	f := NewForm(store, time.Now)
	require.NoError(t, f.Open(nil))

	_, err := f.Submit(context.Background())
	var verr *form.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"projectName", "preparedBy"}, verr.Missing)
	assert.Equal(t, 1, store.Len())
}

func TestSearch(t *testing.T) {
	assert.Len(t, Search(Seed(), "portal"), 1)
	assert.Empty(t, Search(Seed(), "acme"))
}

func TestSetters_SingleSection(t *testing.T) {
	ctx := context.Background()
	const id = "PLAN-1714550400000"

	tests := []struct {
		name   string
		setter UpdateSetter
		get    func(TestPlan) string
	}{
		{"introduction", SetIntroduction("New intro"), func(p TestPlan) string { return p.Introduction }},
		{"objectives", SetObjectives("New objectives"), func(p TestPlan) string { return p.Objectives }},
		{"environment", SetTestEnvironment("Staging EU"), func(p TestPlan) string { return p.TestEnvironment }},
		{"entry criteria", SetEntryCriteria("Build green"), func(p TestPlan) string { return p.EntryCriteria }},
		{"exit criteria", SetExitCriteria("No open criticals"), func(p TestPlan) string { return p.ExitCriteria }},
		{"deliverables", SetDeliverables("Test summary report"), func(p TestPlan) string { return p.Deliverables }},
		{"prepared by", SetPreparedBy("New Author"), func(p TestPlan) string { return p.PreparedBy }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, store := setupTestStore(t)
			before, ok := store.Get(ctx, id)
			require.True(t, ok)

			n, err := store.Update(ctx, id, tt.setter)
			require.NoError(t, err)
			assert.Equal(t, 1, n)

			after, _ := store.Get(ctx, id)
			want := before
			require.NoError(t, tt.setter(&want))
			assert.NotEqual(t, tt.get(before), tt.get(after))
			if diff := cmp.Diff(want, after); diff != "" {
				t.Errorf("update changed more than one section (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("blank author is rejected", func(t *testing.T) {
		_, store := setupTestStore(t)
		before, _ := store.Get(ctx, id)

		_, err := store.Update(ctx, id, SetPreparedBy("  "))
		assert.ErrorIs(t, err, ErrInvalidPreparedBy)

		after, _ := store.Get(ctx, id)
		assert.Equal(t, before.PreparedBy, after.PreparedBy)
	})
}
