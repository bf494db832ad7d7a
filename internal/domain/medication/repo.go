package medication

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an operation references an id absent from the
// store.
var ErrNotFound = errors.New("medication reminder not found")

type Repository interface {
	Create(ctx context.Context, r *Reminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*Reminder, error)
	Update(ctx context.Context, r *Reminder) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns a snapshot in insertion order (oldest first).
	List(ctx context.Context) ([]*Reminder, error)
}
