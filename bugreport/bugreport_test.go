package bugreport

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/logger"
	"github.com/hairizuanbinnoorazman/qa-workbench/spreadsheet"
	"github.com/hairizuanbinnoorazman/qa-workbench/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestStore creates an in-memory slot store and a bug store over it.
func setupTestStore(t *testing.T) (*kvstore.MemorySlots, Store) {
	t.Helper()
	slots := kvstore.NewMemorySlots()
	store, err := NewStore(context.Background(), slots, logger.NewTestLogger())
	require.NoError(t, err)
	return slots, store
}

func TestBugReport_Validate(t *testing.T) {
	valid := func() BugReport {
		return BugReport{Title: "t", Module: "m", Severity: LevelHigh, Priority: LevelLow}
	}
	tests := []struct {
		name    string
		mutate  func(*BugReport)
		wantErr error
	}{
		{"valid", func(*BugReport) {}, nil},
		{"missing title", func(b *BugReport) { b.Title = "" }, ErrInvalidTitle},
		{"missing module", func(b *BugReport) { b.Module = "" }, ErrInvalidModule},
		{"bad severity", func(b *BugReport) { b.Severity = "Urgent" }, ErrInvalidSeverity},
		{"bad priority", func(b *BugReport) { b.Priority = "" }, ErrInvalidPriority},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid()
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBugReport_Status(t *testing.T) {
	b := BugReport{}
	assert.Equal(t, StatusOpen, b.Status())
	b.DateResolved = "2024-05-06"
	assert.Equal(t, StatusResolved, b.Status())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelCritical, ParseLevel("critical"))
	assert.Equal(t, LevelHigh, ParseLevel(" HIGH "))
	assert.Equal(t, LevelMedium, ParseLevel(""))
	assert.Equal(t, LevelMedium, ParseLevel("p1"))
}

func TestCreateSearchDelete(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestStore(t)
	clock := testutil.NewClock(time.UnixMilli(1718000000000))
	f := NewForm(store, clock.Now)

	require.NoError(t, f.Open(nil))
	require.NoError(t, f.Edit(func(b *BugReport) {
		b.Title = "Null pointer on save"
		b.Module = "Editor"
		b.Severity = LevelHigh
		b.Priority = LevelMedium
		b.ReportedBy = "QA1"
	}))
	created, err := f.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, "BUG-1718000000000", created.ID)
	assert.Equal(t, clock.Now().Format("2006-01-02"), created.DateReported)

	found := Search(store.List(ctx), Filter{Query: "Null pointer"})
	require.Len(t, found, 1)
	assert.Equal(t, created.ID, found[0].ID)
	assert.Equal(t, StatusOpen, found[0].Status())

	n, err := store.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, Search(store.List(ctx), Filter{Query: "Null pointer"}))
}

func TestStore_ResolveAndPersist(t *testing.T) {
	ctx := context.Background()
	slots, store := setupTestStore(t)

	_, err := store.Update(ctx, "BUG-1714620000000", Resolve("2024-06-01"), SetComments("fixed in 2.0.1"))
	require.NoError(t, err)

	reopened, err := NewStore(ctx, slots, nil)
	require.NoError(t, err)
	if diff := cmp.Diff(store.List(ctx), reopened.List(ctx)); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	got, _ := reopened.Get(ctx, "BUG-1714620000000")
	assert.Equal(t, StatusResolved, got.Status())

	_, err = reopened.Update(ctx, got.ID, Reopen())
	require.NoError(t, err)
	got, _ = reopened.Get(ctx, got.ID)
	assert.Equal(t, StatusOpen, got.Status())
}

func TestSearch(t *testing.T) {
	bugs := Seed()

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"everything", Filter{}, 2},
		{"query on module", Filter{Query: "reports"}, 1},
		{"severity", Filter{Severity: LevelHigh}, 1},
		{"resolved", Filter{Status: StatusResolved}, 1},
		{"module exact", Filter{Module: "authentication"}, 1},
		{"assignee", Filter{Query: "wei jie"}, 2},
		{"no match", Filter{Query: "zzz"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Search(bugs, tt.filter), tt.want)
		})
	}

	assert.Equal(t, []string{"Authentication", "Reports"}, Modules(bugs))
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	_, store := setupTestStore(t)

	t.Run("recognized headers with empty cells take defaults", func(t *testing.T) {
		input := "Bug ID,Title,Module,Severity,Priority,Date Reported,Unknown\n,,,,,,x\n"
		records, err := spreadsheet.Import(ctx, strings.NewReader(input), spreadsheet.FormatCSV, Columns())
		require.NoError(t, err)
		require.Len(t, records, 1)

		b := records[0]
		assert.True(t, strings.HasPrefix(b.ID, "BUG-IMP-"))
		assert.Empty(t, b.Title)
		assert.Empty(t, b.Module)
		assert.Equal(t, LevelMedium, b.Severity)
		assert.Equal(t, spreadsheet.Today(), b.DateReported)
		assert.Empty(t, b.DateResolved)
	})

	t.Run("export and import into the store", func(t *testing.T) {
		data, err := spreadsheet.Export("Bug Reports", store.List(ctx), Columns())
		require.NoError(t, err)

		before := store.Len()
		n, err := spreadsheet.ImportInto[BugReport](ctx, store, bytes.NewReader(data), spreadsheet.FormatXLSX, Columns())
		require.NoError(t, err)
		assert.Equal(t, before, n)
		assert.Equal(t, 2*before, store.Len())
	})

	t.Run("malformed file leaves store untouched", func(t *testing.T) {
		before := store.Len()
		_, err := spreadsheet.ImportInto[BugReport](ctx, store, strings.NewReader("garbage"), spreadsheet.FormatXLSX, Columns())
		assert.ErrorIs(t, err, spreadsheet.ErrMalformed)
		assert.Equal(t, before, store.Len())
	})
}
