package appointment

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phr/phr/internal/validation"
)

// Reminder is a single-occurrence appointment reminder. Date is a calendar
// date (2006-01-02) and Time a time of day (HH:MM).
type Reminder struct {
	ID        uuid.UUID `json:"id"`
	Doctor    string    `json:"doctor"`
	Specialty string    `json:"specialty,omitempty"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Input struct {
	Doctor    string `json:"doctor"`
	Specialty string `json:"specialty"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
}

func (in *Input) Normalize() {
	in.Doctor = strings.TrimSpace(in.Doctor)
	in.Specialty = strings.TrimSpace(in.Specialty)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	in.Location = strings.TrimSpace(in.Location)
}

func (in *Input) Validate() *validation.Error {
	var c validation.Collector
	c.Require("doctor", in.Doctor)
	switch {
	case in.Date == "":
		c.Add("date", "is required")
	case !validation.ValidDate(in.Date):
		c.Add("date", "invalid calendar date: "+in.Date)
	}
	switch {
	case in.Time == "":
		c.Add("time", "is required")
	case !validation.ValidTimeOfDay(in.Time):
		c.Add("time", "invalid time of day: "+in.Time)
	}
	return c.Err()
}
