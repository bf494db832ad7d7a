package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (*Reminder, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	rem := &Reminder{
		ID:        uuid.New(),
		Doctor:    in.Doctor,
		Specialty: in.Specialty,
		Date:      in.Date,
		Time:      in.Time,
		Location:  in.Location,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, rem); err != nil {
		return nil, err
	}
	return rem, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Reminder, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the reminder's fields wholesale; the id and creation time
// are preserved.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*Reminder, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Doctor = in.Doctor
	existing.Specialty = in.Specialty
	existing.Date = in.Date
	existing.Time = in.Time
	existing.Location = in.Location
	existing.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Reminder, error) {
	return s.repo.List(ctx)
}
