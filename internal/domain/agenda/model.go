package agenda

import "github.com/google/uuid"

// Kind identifies which record type produced an occurrence.
type Kind string

const (
	KindAppointment Kind = "appointment"
	KindMedication  Kind = "medication"
)

// Occurrence is one concrete (date, time) instance on the agenda: an
// appointment on its scheduled date, or one expansion of a recurring
// medication reminder's times.
type Occurrence struct {
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Kind     Kind      `json:"kind"`
	RecordID uuid.UUID `json:"record_id"`
	Title    string    `json:"title"`
	Detail   string    `json:"detail,omitempty"`
}
