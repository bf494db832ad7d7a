// Package agenda merges medication and appointment reminders into a single
// chronologically ordered view for a calendar date or date range.
package agenda

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/phr/phr/internal/domain/appointment"
	"github.com/phr/phr/internal/domain/medication"
	"github.com/phr/phr/internal/validation"
)

// ErrInvalidDate is returned when a requested date or range does not parse.
var ErrInvalidDate = fmt.Errorf("invalid agenda date")

// maxRangeDays bounds ForRange so a caller cannot expand years of recurring
// occurrences in one request.
const maxRangeDays = 92

type Service struct {
	medications  medication.Repository
	appointments appointment.Repository
}

func NewService(meds medication.Repository, appts appointment.Repository) *Service {
	return &Service{
		medications:  meds,
		appointments: appts,
	}
}

// ForDate returns the merged agenda for one calendar date, ordered by time of
// day ascending. Ties order appointments before medications, then by
// insertion order of the underlying record. The stores are not mutated.
func (s *Service) ForDate(ctx context.Context, date string) ([]Occurrence, error) {
	if !validation.ValidDate(date) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	occs, err := s.expand(ctx, date)
	if err != nil {
		return nil, err
	}
	sortOccurrences(occs)
	out := make([]Occurrence, len(occs))
	for i, o := range occs {
		out[i] = o.Occurrence
	}
	return out, nil
}

// ForRange returns the agenda for every date in [from, to], dates ascending.
func (s *Service) ForRange(ctx context.Context, from, to string) ([]Occurrence, error) {
	if !validation.ValidDate(from) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, from)
	}
	if !validation.ValidDate(to) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, to)
	}
	start, _ := time.Parse("2006-01-02", from)
	end, _ := time.Parse("2006-01-02", to)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: range end %s before start %s", ErrInvalidDate, to, from)
	}
	if end.Sub(start) > maxRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: range longer than %d days", ErrInvalidDate, maxRangeDays)
	}

	out := []Occurrence{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day, err := s.ForDate(ctx, d.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}
		out = append(out, day...)
	}
	return out, nil
}

// ordered carries the record's position in its store so ties can fall back
// to insertion order.
type ordered struct {
	Occurrence
	seq int
}

func (s *Service) expand(ctx context.Context, date string) ([]ordered, error) {
	var occs []ordered

	appts, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, a := range appts {
		if a.Date != date || !validation.ValidTimeOfDay(a.Time) {
			continue
		}
		detail := a.Location
		if a.Specialty != "" {
			detail = strings.TrimSpace(a.Specialty + " " + a.Location)
		}
		occs = append(occs, ordered{
			Occurrence: Occurrence{
				Date:     date,
				Time:     a.Time,
				Kind:     KindAppointment,
				RecordID: a.ID,
				Title:    a.Doctor,
				Detail:   detail,
			},
			seq: i,
		})
	}

	meds, err := s.medications.List(ctx)
	if err != nil {
		return nil, err
	}
	for i, m := range meds {
		for _, t := range m.Times {
			// A record with no valid times contributes nothing; it should
			// have failed validation, so skip rather than fail the agenda.
			if !validation.ValidTimeOfDay(t) {
				continue
			}
			occs = append(occs, ordered{
				Occurrence: Occurrence{
					Date:     date,
					Time:     t,
					Kind:     KindMedication,
					RecordID: m.ID,
					Title:    m.Name,
					Detail:   m.Dosage,
				},
				seq: i,
			})
		}
	}

	return occs, nil
}

func sortOccurrences(occs []ordered) {
	sort.SliceStable(occs, func(i, j int) bool {
		a, b := occs[i], occs[j]
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		if a.Kind != b.Kind {
			return a.Kind == KindAppointment
		}
		return a.seq < b.seq
	})
}
