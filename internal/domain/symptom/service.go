package symptom

import (
	"context"
	"sort"
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

func (s *Service) Create(ctx context.Context, in Input) (*Entry, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	e := &Entry{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		Severity:    in.Severity,
		Date:        in.Date,
		Time:        in.Time,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if e.Date == "" {
		e.Date = now.Format("2006-01-02")
	}
	if e.Time == "" {
		e.Time = now.Format("15:04")
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, in Input) (*Entry, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.Description = in.Description
	existing.Severity = in.Severity
	existing.Date = in.Date
	existing.Time = in.Time
	existing.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context) ([]*Entry, error) {
	return s.repo.List(ctx)
}

// ListBySeverity returns entries most severe first; entries of equal
// severity keep their newest-first log order.
func (s *Service) ListBySeverity(ctx context.Context) ([]*Entry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Severity.Rank() > entries[j].Severity.Rank()
	})
	return entries, nil
}
