package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/hairizuanbinnoorazman/qa-workbench/internal/idgen"
	"github.com/hairizuanbinnoorazman/qa-workbench/kvstore"
	"github.com/hairizuanbinnoorazman/qa-workbench/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ticket struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Severity string   `json:"severity"`
	Labels   []string `json:"labels"`
	Saved    string   `json:"saved"`
}

func ticketConfig(clock *testutil.Clock) Config[ticket] {
	return Config[ticket]{
		Defaults: func() ticket { return ticket{Severity: "Medium", Labels: []string{}} },
		Required: []Field[ticket]{
			Required("title", func(t *ticket) string { return t.Title }),
			Required("severity", func(t *ticket) string { return t.Severity }),
		},
		ID: func(t *ticket) string { return t.ID },
		AssignID: func(t *ticket, now time.Time) {
			t.ID = idgen.Prefixed("TKT", now)
		},
		Prepare: func(t *ticket, editing bool, now time.Time) {
			t.Saved = idgen.ISO(now)
		},
		Now: clock.Now,
	}
}

func setupTestForm(t *testing.T) (*Controller[ticket], *entitystore.Store[ticket], *testutil.Clock) {
	t.Helper()
	store, err := entitystore.Open(context.Background(), kvstore.NewMemorySlots(), nil, entitystore.Options[ticket]{
		Key:   "ticket-storage",
		Field: "tickets",
		ID:    func(t *ticket) string { return t.ID },
	})
	require.NoError(t, err)
	clock := testutil.NewClock(time.UnixMilli(1718000000000))
	return New[ticket](store, ticketConfig(clock)), store, clock
}

// blockingStore holds every Add until release is closed.
type blockingStore struct {
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) Add(ctx context.Context, record ticket) error {
	close(b.entered)
	<-b.release
	return nil
}

func (b *blockingStore) Update(ctx context.Context, id string, setters ...entitystore.Setter[ticket]) (int, error) {
	return 0, nil
}

type failingStore struct{ err error }

func (f failingStore) Add(ctx context.Context, record ticket) error { return f.err }
func (f failingStore) Update(ctx context.Context, id string, setters ...entitystore.Setter[ticket]) (int, error) {
	return 0, f.err
}

func TestController_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("opens with defaults", func(t *testing.T) {
		c, _, _ := setupTestForm(t)
		assert.Equal(t, StateClosed, c.State())

		require.NoError(t, c.Open(nil))
		assert.Equal(t, StateOpen, c.State())
		assert.False(t, c.Editing())
		assert.Equal(t, "Medium", c.Draft().Severity)
	})

	t.Run("blank id gets generated and record is added", func(t *testing.T) {
		c, store, _ := setupTestForm(t)
		var called ticket
		c.OnSuccess(func(t ticket) { called = t })

		require.NoError(t, c.Open(nil))
		require.NoError(t, c.Edit(func(t *ticket) { t.Title = "Crash on save" }))

		got, err := c.Submit(ctx)
		require.NoError(t, err)
		assert.Equal(t, "TKT-1718000000000", got.ID)
		assert.Equal(t, "2024-06-10T06:13:20.000Z", got.Saved)
		assert.Equal(t, StateClosed, c.State())
		assert.Equal(t, got, called)

		stored, ok := store.Get(ctx, got.ID)
		require.True(t, ok)
		assert.Equal(t, "Crash on save", stored.Title)
	})

	t.Run("user supplied id is kept", func(t *testing.T) {
		c, store, _ := setupTestForm(t)
		require.NoError(t, c.Open(nil))
		require.NoError(t, c.Edit(func(t *ticket) { t.ID = "TC-001"; t.Title = "Login" }))

		_, err := c.Submit(ctx)
		require.NoError(t, err)
		_, ok := store.Get(ctx, "TC-001")
		assert.True(t, ok)
	})
}

func TestController_Validation(t *testing.T) {
	ctx := context.Background()
	c, store, _ := setupTestForm(t)

	require.NoError(t, c.Open(nil))
	require.NoError(t, c.Edit(func(t *ticket) { t.Severity = "  " }))

	_, err := c.Submit(ctx)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"title", "severity"}, verr.Missing)
	assert.Equal(t, StateError, c.State())
	assert.Contains(t, c.Message(), "title")
	assert.Equal(t, 0, store.Len())

	// the error state still accepts edits and a second submit
	require.NoError(t, c.Edit(func(t *ticket) { t.Title = "Fixed"; t.Severity = "Low" }))
	_, err = c.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
	assert.Empty(t, c.Message())
}

func TestController_Edit(t *testing.T) {
	ctx := context.Background()

	t.Run("updates the record captured at open", func(t *testing.T) {
		c, store, clock := setupTestForm(t)
		require.NoError(t, store.Add(ctx, ticket{ID: "T-1", Title: "Old", Severity: "Low", Labels: []string{"ui"}}))
		existing, _ := store.Get(ctx, "T-1")

		require.NoError(t, c.Open(&existing))
		assert.True(t, c.Editing())
		assert.Equal(t, existing, c.Draft())

		clock.Advance(time.Hour)
		require.NoError(t, c.Edit(func(t *ticket) { t.Title = "New" }))
		got, err := c.Submit(ctx)
		require.NoError(t, err)

		assert.Equal(t, "T-1", got.ID)
		stored, _ := store.Get(ctx, "T-1")
		assert.Equal(t, "New", stored.Title)
		assert.Equal(t, []string{"ui"}, stored.Labels)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("draft does not alias the record", func(t *testing.T) {
		c, _, _ := setupTestForm(t)
		existing := ticket{ID: "T-2", Title: "x", Severity: "Low", Labels: []string{"a"}}
		require.NoError(t, c.Open(&existing))
		require.NoError(t, c.Edit(func(t *ticket) { t.Labels[0] = "changed" }))
		assert.Equal(t, []string{"a"}, existing.Labels)
	})

	t.Run("record deleted while editing", func(t *testing.T) {
		c, store, _ := setupTestForm(t)
		require.NoError(t, store.Add(ctx, ticket{ID: "T-3", Title: "x", Severity: "Low"}))
		existing, _ := store.Get(ctx, "T-3")
		require.NoError(t, c.Open(&existing))
		_, err := store.Delete(ctx, "T-3")
		require.NoError(t, err)

		_, err = c.Submit(ctx)
		assert.ErrorIs(t, err, ErrRecordGone)
		assert.Equal(t, StateError, c.State())
		assert.Equal(t, 0, store.Len())
	})
}

func TestController_Transitions(t *testing.T) {
	ctx := context.Background()

	t.Run("closed form rejects edit and submit", func(t *testing.T) {
		c, _, _ := setupTestForm(t)
		assert.ErrorIs(t, c.Edit(func(*ticket) {}), ErrNotOpen)
		_, err := c.Submit(ctx)
		assert.ErrorIs(t, err, ErrNotOpen)
	})

	t.Run("close discards the draft", func(t *testing.T) {
		c, _, _ := setupTestForm(t)
		require.NoError(t, c.Open(nil))
		require.NoError(t, c.Edit(func(t *ticket) { t.Title = "draft" }))
		require.NoError(t, c.Close())

		assert.Equal(t, StateClosed, c.State())
		require.NoError(t, c.Open(nil))
		assert.Empty(t, c.Draft().Title)
	})

	t.Run("store failure moves to error", func(t *testing.T) {
		c := New[ticket](failingStore{err: errors.New("quota exceeded")}, ticketConfig(testutil.NewClock(time.Now())))
		require.NoError(t, c.Open(nil))
		require.NoError(t, c.Edit(func(t *ticket) { t.Title = "x" }))

		_, err := c.Submit(ctx)
		assert.EqualError(t, err, "quota exceeded")
		assert.Equal(t, StateError, c.State())
		assert.Equal(t, "quota exceeded", c.Message())
	})

	t.Run("second submit while first is pending is rejected", func(t *testing.T) {
		store := &blockingStore{entered: make(chan struct{}), release: make(chan struct{})}
		c := New[ticket](store, ticketConfig(testutil.NewClock(time.Now())))
		require.NoError(t, c.Open(nil))
		require.NoError(t, c.Edit(func(t *ticket) { t.Title = "x" }))

		done := make(chan error, 1)
		go func() {
			_, err := c.Submit(ctx)
			done <- err
		}()
		<-store.entered

		assert.Equal(t, StateSubmitting, c.State())
		_, err := c.Submit(ctx)
		assert.ErrorIs(t, err, ErrSubmitInProgress)
		assert.ErrorIs(t, c.Open(nil), ErrSubmitInProgress)
		assert.ErrorIs(t, c.Close(), ErrSubmitInProgress)
		assert.ErrorIs(t, c.Edit(func(*ticket) {}), ErrSubmitInProgress)

		close(store.release)
		require.NoError(t, <-done)
		assert.Equal(t, StateClosed, c.State())
	})
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "closed", StateClosed.String())
	assert.Equal(t, "submitting", StateSubmitting.String())
	assert.Equal(t, "state(9)", State(9).String())
}

func TestController_ValidateHook(t *testing.T) {
	ctx := context.Background()
	_, store, clock := setupTestForm(t)
	cfg := ticketConfig(clock)
	cfg.Validate = func(t *ticket) error {
		if t.Severity != "Low" && t.Severity != "Medium" {
			return errors.New("unknown severity")
		}
		return nil
	}
	c := New[ticket](store, cfg)

	require.NoError(t, c.Open(nil))
	require.NoError(t, c.Edit(func(t *ticket) { t.Title = "x"; t.Severity = "Extreme" }))
	_, err := c.Submit(ctx)
	assert.EqualError(t, err, "unknown severity")
	assert.Equal(t, StateError, c.State())
	assert.Equal(t, 0, store.Len())
}
