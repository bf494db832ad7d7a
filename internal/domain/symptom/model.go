package symptom

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phr/phr/internal/validation"
)

// Entry is a single symptom-log record. Date and Time are the moment the
// symptom was observed, as entered by the patient (2006-01-02 / HH:MM).
type Entry struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Severity    Severity  `json:"severity"`
	Date        string    `json:"date,omitempty"`
	Time        string    `json:"time,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Input struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
}

func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Severity = Severity(strings.ToLower(strings.TrimSpace(string(in.Severity))))
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	if in.Severity == "" {
		in.Severity = DefaultSeverity
	}
}

func (in *Input) Validate() *validation.Error {
	var c validation.Collector
	c.Require("name", in.Name)
	if !in.Severity.IsValid() {
		c.Add("severity", "must be one of mild, moderate, severe")
	}
	if in.Date != "" && !validation.ValidDate(in.Date) {
		c.Add("date", "invalid calendar date: "+in.Date)
	}
	if in.Time != "" && !validation.ValidTimeOfDay(in.Time) {
		c.Add("time", "invalid time of day: "+in.Time)
	}
	return c.Err()
}
