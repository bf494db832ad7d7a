package appointment

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

type memRepo struct {
	mu    sync.RWMutex
	byID  map[uuid.UUID]*Reminder
	order []uuid.UUID
}

func NewMemRepo() Repository {
	return &memRepo{
		byID: make(map[uuid.UUID]*Reminder),
	}
}

func (r *memRepo) Create(_ context.Context, rem *Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rem.ID == uuid.Nil {
		return fmt.Errorf("reminder id is required")
	}
	if _, exists := r.byID[rem.ID]; exists {
		return fmt.Errorf("reminder %s already exists", rem.ID)
	}

	cp := *rem
	r.byID[rem.ID] = &cp
	r.order = append(r.order, rem.ID)
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id uuid.UUID) (*Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rem, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *rem
	return &cp, nil
}

func (r *memRepo) Update(_ context.Context, rem *Reminder) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[rem.ID]; !ok {
		return ErrNotFound
	}
	cp := *rem
	r.byID[rem.ID] = &cp
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

func (r *memRepo) List(_ context.Context) ([]*Reminder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Reminder, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}
