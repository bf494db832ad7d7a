package prescription

import (
	"fmt"
	"strings"

	"github.com/phr/phr/internal/validation"
)

// Extraction is the structured payload produced by the external image/OCR
// collaborator. The core only consumes it; it never performs extraction.
type Extraction struct {
	PatientName string                `json:"patient_name"`
	DoctorName  string                `json:"doctor_name"`
	Date        string                `json:"date"`
	Medications []ExtractedMedication `json:"medications"`
}

// ExtractedMedication is one prescribed drug as read off the prescription.
type ExtractedMedication struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency"`
	Duration  string `json:"duration"`
}

func (x *Extraction) Normalize() {
	x.PatientName = strings.TrimSpace(x.PatientName)
	x.DoctorName = strings.TrimSpace(x.DoctorName)
	x.Date = strings.TrimSpace(x.Date)
	for i := range x.Medications {
		m := &x.Medications[i]
		m.Name = strings.TrimSpace(m.Name)
		m.Dosage = strings.TrimSpace(m.Dosage)
		m.Frequency = strings.TrimSpace(m.Frequency)
		m.Duration = strings.TrimSpace(m.Duration)
	}
}

func (x *Extraction) Validate() *validation.Error {
	var c validation.Collector
	if len(x.Medications) == 0 {
		c.Add("medications", "at least one medication is required")
	}
	for i, m := range x.Medications {
		if m.Name == "" {
			c.Add(fmt.Sprintf("medications[%d].name", i), "is required")
		}
		if m.Dosage == "" {
			c.Add(fmt.Sprintf("medications[%d].dosage", i), "is required")
		}
	}
	return c.Err()
}
