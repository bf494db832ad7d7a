package symptom

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("symptom entry not found")

type Repository interface {
	Create(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Entry, error)
	Update(ctx context.Context, e *Entry) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns a snapshot newest first: the symptom log prepends new
	// entries, unlike the reminder stores.
	List(ctx context.Context) ([]*Entry, error)
}
