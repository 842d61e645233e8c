// Package form implements the create/edit dialog controller shared by every
// entity type: a draft record, required-field validation and the
// add-or-update dispatch to the entity's store.
//
// A controller moves through Closed -> Open -> Submitting -> Closed. A failed
// validation or store call leaves it in Error, which still accepts edits and
// another submit.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hairizuanbinnoorazman/qa-workbench/entitystore"
	"github.com/jinzhu/copier"
)

var (
	// ErrNotOpen is returned by Edit and Submit on a closed form.
	ErrNotOpen = errors.New("form is not open")

	// ErrSubmitInProgress is returned when a submit is already running.
	ErrSubmitInProgress = errors.New("submit already in progress")

	// ErrRecordGone is returned when the record being edited no longer exists.
	ErrRecordGone = errors.New("record being edited no longer exists")
)

// State is the controller's position in its lifecycle.
type State int

const (
	StateClosed State = iota
	StateOpen
	StateSubmitting
	StateError
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateSubmitting:
		return "submitting"
	case StateError:
		return "error"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Field is a required draft field.
type Field[T any] struct {
	Name  string
	Value func(*T) string
}

// Required is shorthand for building a Field.
func Required[T any](name string, value func(*T) string) Field[T] {
	return Field[T]{Name: name, Value: value}
}

// ValidationError lists the required fields that were blank.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "please fill in all required fields: " + strings.Join(e.Missing, ", ")
}

// Mutator is the part of an entity store a form writes through.
type Mutator[T any] interface {
	Add(ctx context.Context, record T) error
	Update(ctx context.Context, id string, setters ...entitystore.Setter[T]) (int, error)
}

// Config declares the per-entity behaviour of a form.
type Config[T any] struct {
	// Defaults seeds the draft of a new record.
	Defaults func() T

	// Required fields must be non-blank for a submit to reach the store.
	Required []Field[T]

	// ID returns the record identifier.
	ID func(*T) string

	// Validate runs after the required-field check. Optional.
	Validate func(*T) error

	// AssignID fills in the identifier of a new record whose ID is blank.
	AssignID func(record *T, now time.Time)

	// Prepare runs on the validated record right before it is stored,
	// e.g. to stamp timestamps.
	Prepare func(record *T, editing bool, now time.Time)

	// Now is the clock. Defaults to time.Now.
	Now func() time.Time
}

// Controller holds the draft of one dialog.
type Controller[T any] struct {
	mu        sync.Mutex
	cfg       Config[T]
	store     Mutator[T]
	state     State
	draft     T
	editing   bool
	editingID string
	message   string
	onSuccess func(T)
}

// New creates a closed controller writing to store.
func New[T any](store Mutator[T], cfg Config[T]) *Controller[T] {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Controller[T]{cfg: cfg, store: store}
}

// OnSuccess registers the callback invoked with the stored record after a
// successful submit.
func (c *Controller[T]) OnSuccess(fn func(T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSuccess = fn
}

// Open seeds the draft from existing, or from the defaults when existing is
// nil, and opens the form. Editing an existing record targets the ID it had
// when the form was opened.
func (c *Controller[T]) Open(existing *T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitInProgress
	}

	var draft T
	if existing != nil {
		if err := copier.CopyWithOption(&draft, existing, copier.Option{DeepCopy: true}); err != nil {
			return fmt.Errorf("failed to seed draft: %w", err)
		}
		c.editing = true
		c.editingID = c.cfg.ID(existing)
	} else {
		if c.cfg.Defaults != nil {
			draft = c.cfg.Defaults()
		}
		c.editing = false
		c.editingID = ""
	}

	c.draft = draft
	c.message = ""
	c.state = StateOpen
	return nil
}

// Edit applies fn to the draft.
func (c *Controller[T]) Edit(fn func(*T)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateOpen, StateError:
		fn(&c.draft)
		return nil
	case StateSubmitting:
		return ErrSubmitInProgress
	default:
		return ErrNotOpen
	}
}

// Submit validates the draft and adds or updates it in the store. On
// success the form closes and the stored record is returned.
func (c *Controller[T]) Submit(ctx context.Context) (T, error) {
	var zero T

	c.mu.Lock()
	switch c.state {
	case StateSubmitting:
		c.mu.Unlock()
		return zero, ErrSubmitInProgress
	case StateClosed:
		c.mu.Unlock()
		return zero, ErrNotOpen
	}

	if missing := c.missingLocked(); len(missing) > 0 {
		verr := &ValidationError{Missing: missing}
		c.state = StateError
		c.message = verr.Error()
		c.mu.Unlock()
		return zero, verr
	}

	if c.cfg.Validate != nil {
		if err := c.cfg.Validate(&c.draft); err != nil {
			c.state = StateError
			c.message = err.Error()
			c.mu.Unlock()
			return zero, err
		}
	}

	record := c.draft
	editing, id := c.editing, c.editingID
	now := c.cfg.Now()
	if !editing && c.cfg.AssignID != nil && strings.TrimSpace(c.cfg.ID(&record)) == "" {
		c.cfg.AssignID(&record, now)
	}
	if c.cfg.Prepare != nil {
		c.cfg.Prepare(&record, editing, now)
	}
	c.state = StateSubmitting
	c.mu.Unlock()

	err := c.write(ctx, record, editing, id)

	c.mu.Lock()
	if err != nil {
		c.state = StateError
		c.message = err.Error()
		c.mu.Unlock()
		return zero, err
	}
	c.state = StateClosed
	c.message = ""
	c.draft = zero
	callback := c.onSuccess
	c.mu.Unlock()

	if callback != nil {
		callback(record)
	}
	return record, nil
}

func (c *Controller[T]) write(ctx context.Context, record T, editing bool, id string) error {
	if !editing {
		return c.store.Add(ctx, record)
	}

	n, err := c.store.Update(ctx, id, func(r *T) error {
		*r = record
		return nil
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRecordGone, id)
	}
	return nil
}

func (c *Controller[T]) missingLocked() []string {
	var missing []string
	for _, f := range c.cfg.Required {
		if strings.TrimSpace(f.Value(&c.draft)) == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// Close discards the draft. Closing during a submit is refused.
func (c *Controller[T]) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	var zero T
	c.state = StateClosed
	c.draft = zero
	c.message = ""
	c.editing = false
	c.editingID = ""
	return nil
}

// State returns the current state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Draft returns a copy of the current draft.
func (c *Controller[T]) Draft() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out T
	if err := copier.CopyWithOption(&out, &c.draft, copier.Option{DeepCopy: true}); err != nil {
		return c.draft
	}
	return out
}

// Editing reports whether the form was opened on an existing record.
func (c *Controller[T]) Editing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editing
}

// Message returns the error shown in StateError.
func (c *Controller[T]) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}
