package profile

import (
	"strings"

	"github.com/phr/phr/internal/validation"
)

// Profile holds the hospital-form fields for the session's patient. It is a
// single record per session, not a collection.
type Profile struct {
	FullName          string `json:"full_name"`
	DateOfBirth       string `json:"date_of_birth"`
	Address           string `json:"address,omitempty"`
	Phone             string `json:"phone,omitempty"`
	Email             string `json:"email,omitempty"`
	EmergencyContact  string `json:"emergency_contact,omitempty"`
	EmergencyPhone    string `json:"emergency_phone,omitempty"`
	PrimaryDoctor     string `json:"primary_doctor,omitempty"`
	Allergies         string `json:"allergies,omitempty"`
	CurrentMedication string `json:"current_medications,omitempty"`
	MedicalHistory    string `json:"medical_history,omitempty"`
	SurgicalHistory   string `json:"surgical_history,omitempty"`
	SmokingStatus     string `json:"smoking_status,omitempty"`
	AlcoholUse        string `json:"alcohol_use,omitempty"`
	InsuranceProvider string `json:"insurance_provider,omitempty"`
	PolicyNumber      string `json:"policy_number,omitempty"`
	Notes             string `json:"notes,omitempty"`
}

func (p *Profile) Normalize() {
	p.FullName = strings.TrimSpace(p.FullName)
	p.DateOfBirth = strings.TrimSpace(p.DateOfBirth)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
}

func (p *Profile) Validate() *validation.Error {
	var c validation.Collector
	c.Require("full_name", p.FullName)
	switch {
	case p.DateOfBirth == "":
		c.Add("date_of_birth", "is required")
	case !validation.ValidDate(p.DateOfBirth):
		c.Add("date_of_birth", "invalid calendar date: "+p.DateOfBirth)
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		c.Add("email", "invalid email address")
	}
	return c.Err()
}
