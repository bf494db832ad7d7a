package symptom

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// memRepo prepends new ids so List comes back newest first.
type memRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*Entry
	order []uuid.UUID
}

func NewMemRepo() Repository {
	return &memRepo{
		byID: make(map[uuid.UUID]*Entry),
	}
}

func (r *memRepo) Create(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == uuid.Nil {
		return fmt.Errorf("entry id is required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return fmt.Errorf("entry %s already exists", e.ID)
	}

	cp := *e
	r.byID[e.ID] = &cp
	r.order = append([]uuid.UUID{e.ID}, r.order...)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, e *Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[e.ID]; !ok {
		return ErrNotFound
	}
	cp := *e
	r.byID[e.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *memRepo) List(_ context.Context) ([]*Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Entry, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}
