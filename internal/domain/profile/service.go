package profile

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/phr/phr/internal/platform/document"
)

// ErrNotSet is returned when the session has not saved a profile yet.
var ErrNotSet = errors.New("profile not set")

// Documents bundles the generated hospital-form artifacts. The byte slices
// marshal to base64 in JSON responses.
type Documents struct {
	FormPDF []byte `json:"form_pdf"`
	CodePNG []byte `json:"code_png"`
}

// Service holds the session's single profile and hands validated fields to
// the document-generation collaborator.
type Service struct {
	mu      sync.RWMutex
	profile *Profile
	docs    document.Generator
}

func NewService(docs document.Generator) *Service {
	return &Service{docs: docs}
}

func (s *Service) Get(_ context.Context) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil, ErrNotSet
	}
	cp := *s.profile
	return &cp, nil
}

// Set validates and replaces the profile wholesale.
func (s *Service) Set(_ context.Context, p Profile) (*Profile, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()

	cp := p
	return &cp, nil
}

// GenerateDocuments renders the printable form and the scannable code from
// the stored profile.
func (s *Service) GenerateDocuments(ctx context.Context) (*Documents, error) {
	p, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	pdf, err := s.docs.Form(ctx, "Hospital Intake Form", p.formFields())
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(map[string]string{
		"full_name":         p.FullName,
		"date_of_birth":     p.DateOfBirth,
		"emergency_contact": p.EmergencyContact,
		"emergency_phone":   p.EmergencyPhone,
		"allergies":         p.Allergies,
		"primary_doctor":    p.PrimaryDoctor,
	})
	if err != nil {
		return nil, err
	}
	png, err := s.docs.Code(ctx, string(payload))
	if err != nil {
		return nil, err
	}

	return &Documents{FormPDF: pdf, CodePNG: png}, nil
}

func (p *Profile) formFields() []document.Field {
	return []document.Field{
		{Label: "Full Name", Value: p.FullName},
		{Label: "Date of Birth", Value: p.DateOfBirth},
		{Label: "Address", Value: p.Address},
		{Label: "Phone", Value: p.Phone},
		{Label: "Email", Value: p.Email},
		{Label: "Emergency Contact", Value: p.EmergencyContact},
		{Label: "Emergency Phone", Value: p.EmergencyPhone},
		{Label: "Primary Doctor", Value: p.PrimaryDoctor},
		{Label: "Allergies", Value: p.Allergies},
		{Label: "Current Medications", Value: p.CurrentMedication},
		{Label: "Medical History", Value: p.MedicalHistory},
		{Label: "Surgical History", Value: p.SurgicalHistory},
		{Label: "Smoking Status", Value: p.SmokingStatus},
		{Label: "Alcohol Use", Value: p.AlcoholUse},
		{Label: "Insurance Provider", Value: p.InsuranceProvider},
		{Label: "Policy Number", Value: p.PolicyNumber},
		{Label: "Notes", Value: p.Notes},
	}
}
