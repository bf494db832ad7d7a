package medication

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phr/phr/internal/validation"
)

// Reminder is a recurring medication reminder. Times holds the scheduled
// times of day as HH:MM strings and always contains at least one entry once
// the record has passed validation.
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Dosage    string    `json:"dosage"`
	Frequency string    `json:"frequency,omitempty"`
	Times     []string  `json:"times"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Input carries the caller-supplied fields for create and for wholesale
// replace on edit.
type Input struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	Times     []string `json:"times"`
	Notes     string   `json:"notes"`
}

// Normalize trims every field and drops empty or duplicate time entries,
// preserving the order of first appearance.
func (in *Input) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Dosage = strings.TrimSpace(in.Dosage)
	in.Frequency = strings.TrimSpace(in.Frequency)
	in.Notes = strings.TrimSpace(in.Notes)

	seen := make(map[string]bool, len(in.Times))
	times := in.Times[:0]
	for _, t := range in.Times {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		times = append(times, t)
	}
	in.Times = times
}

// Validate reports every missing or malformed field.
func (in *Input) Validate() *validation.Error {
	var c validation.Collector
	c.Require("name", in.Name)
	c.Require("dosage", in.Dosage)
	if len(in.Times) == 0 {
		c.Add("times", "at least one time is required")
	}
	for _, t := range in.Times {
		if !validation.ValidTimeOfDay(t) {
			c.Add("times", "invalid time of day: "+t)
		}
	}
	return c.Err()
}
