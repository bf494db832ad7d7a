// Package session ties the per-session record stores, scheduler, and
// collaborators together behind a single facade, and resolves the session for
// each incoming request.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/phr/phr/internal/domain/agenda"
	"github.com/phr/phr/internal/domain/appointment"
	"github.com/phr/phr/internal/domain/catalog"
	"github.com/phr/phr/internal/domain/medication"
	"github.com/phr/phr/internal/domain/prescription"
	"github.com/phr/phr/internal/domain/profile"
	"github.com/phr/phr/internal/domain/symptom"
	"github.com/phr/phr/internal/platform/notification"
)

// Session owns one user's records and the services operating on them. Each
// session has its own stores; nothing is shared across sessions except the
// read-only catalogs and the notification senders.
type Session struct {
	ID        string
	CreatedAt time.Time

	Medications   *medication.Service
	Appointments  *appointment.Service
	Symptoms      *symptom.Service
	Agenda        *agenda.Service
	Prescriptions *prescription.Service
	Profile       *profile.Service
	Outbox        *notification.Outbox

	catalogs *catalog.Service
}

// Reminder operations, parameterized per record kind.

func (s *Session) AddMedication(ctx context.Context, in medication.Input) (*medication.Reminder, error) {
	return s.Medications.Create(ctx, in)
}

func (s *Session) EditMedication(ctx context.Context, id uuid.UUID, in medication.Input) (*medication.Reminder, error) {
	return s.Medications.Update(ctx, id, in)
}

func (s *Session) DeleteMedication(ctx context.Context, id uuid.UUID) error {
	return s.Medications.Delete(ctx, id)
}

func (s *Session) AddAppointment(ctx context.Context, in appointment.Input) (*appointment.Reminder, error) {
	return s.Appointments.Create(ctx, in)
}

func (s *Session) EditAppointment(ctx context.Context, id uuid.UUID, in appointment.Input) (*appointment.Reminder, error) {
	return s.Appointments.Update(ctx, id, in)
}

func (s *Session) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	return s.Appointments.Delete(ctx, id)
}

func (s *Session) AddSymptom(ctx context.Context, in symptom.Input) (*symptom.Entry, error) {
	return s.Symptoms.Create(ctx, in)
}

func (s *Session) EditSymptom(ctx context.Context, id uuid.UUID, in symptom.Input) (*symptom.Entry, error) {
	return s.Symptoms.Update(ctx, id, in)
}

func (s *Session) DeleteSymptom(ctx context.Context, id uuid.UUID) error {
	return s.Symptoms.Delete(ctx, id)
}

// GetAgenda returns the merged, time-ordered occurrences for a date.
func (s *Session) GetAgenda(ctx context.Context, date string) ([]agenda.Occurrence, error) {
	return s.Agenda.ForDate(ctx, date)
}

// Catalog lookups delegate to the shared read-only catalogs.

func (s *Session) LookupAlternatives(name string) []catalog.Alternative {
	return s.catalogs.FindAlternatives(name)
}

func (s *Session) SearchResources(query string) []catalog.Resource {
	return s.catalogs.SearchResources(query)
}

func (s *Session) FilterByCategory(category string) []catalog.Resource {
	return s.catalogs.FilterByCategory(category)
}

// ImportPrescription saves an extracted prescription's medications as
// reminders in this session's store.
func (s *Session) ImportPrescription(ctx context.Context, x prescription.Extraction) ([]*medication.Reminder, error) {
	return s.Prescriptions.Import(ctx, x)
}
