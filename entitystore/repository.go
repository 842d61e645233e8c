package entitystore

import "context"

// Repository is the operation set every entity store exposes. *Store
// implements it; entity packages embed it in their own Store interfaces.
type Repository[T any] interface {
	// Add appends a record. No uniqueness check is made.
	Add(ctx context.Context, record T) error

	// AddAll appends records with a single persistence write.
	AddAll(ctx context.Context, records []T) error

	// Get returns the first record with the given ID.
	Get(ctx context.Context, id string) (T, bool)

	// Update applies setters to every record with the given ID and reports
	// how many matched.
	Update(ctx context.Context, id string, setters ...Setter[T]) (int, error)

	// Delete removes every record with the given ID and reports how many
	// were removed.
	Delete(ctx context.Context, id string) (int, error)

	// List returns all records in insertion order.
	List(ctx context.Context) []T

	// Find returns the records matching pred.
	Find(ctx context.Context, pred func(T) bool) []T

	// Replace swaps the whole collection.
	Replace(ctx context.Context, records []T) error

	// ResetToSeed restores the seed dataset.
	ResetToSeed(ctx context.Context) error

	// Len returns the number of records.
	Len() int
}

var _ Repository[struct{}] = (*Store[struct{}])(nil)
