// Package prescription turns an OCR extraction payload into medication
// reminders ("save to medication list"). Image handling and extraction
// itself belong to an external collaborator.
package prescription

import (
	"context"
	"strings"

	"github.com/phr/phr/internal/domain/medication"
)

// frequencyTimes maps the free-text frequency descriptors the extractor
// produces to concrete reminder times. Unknown descriptors fall back to a
// single morning dose.
var frequencyTimes = map[string][]string{
	"daily":         {"09:00"},
	"once daily":    {"09:00"},
	"twice daily":   {"09:00", "21:00"},
	"3 times daily": {"08:00", "14:00", "20:00"},
	"as needed":     {"09:00"},
}

var defaultTimes = []string{"09:00"}

// TimesForFrequency resolves a frequency descriptor to reminder times.
func TimesForFrequency(freq string) []string {
	times, ok := frequencyTimes[strings.ToLower(strings.TrimSpace(freq))]
	if !ok {
		times = defaultTimes
	}
	out := make([]string, len(times))
	copy(out, times)
	return out
}

type Service struct {
	medications *medication.Service
}

func NewService(meds *medication.Service) *Service {
	return &Service{medications: meds}
}

// Import validates the extraction and creates one medication reminder per
// extracted drug. The whole payload is checked before anything is stored, so
// a bad entry never leaves a partial import behind.
func (s *Service) Import(ctx context.Context, x Extraction) ([]*medication.Reminder, error) {
	x.Normalize()
	if err := x.Validate(); err != nil {
		return nil, err
	}

	created := make([]*medication.Reminder, 0, len(x.Medications))
	for _, m := range x.Medications {
		notes := ""
		if m.Duration != "" {
			notes = "Duration: " + m.Duration
		}
		if x.DoctorName != "" {
			if notes != "" {
				notes += ". "
			}
			notes += "Prescribed by " + x.DoctorName
		}
		rem, err := s.medications.Create(ctx, medication.Input{
			Name:      m.Name,
			Dosage:    m.Dosage,
			Frequency: m.Frequency,
			Times:     TimesForFrequency(m.Frequency),
			Notes:     notes,
		})
		if err != nil {
			return created, err
		}
		created = append(created, rem)
	}
	return created, nil
}
