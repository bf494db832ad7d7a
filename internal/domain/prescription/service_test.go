package prescription

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/phr/phr/internal/domain/medication"
	"github.com/phr/phr/internal/validation"
)

func newTestFixture() (*Service, *medication.Service) {
	meds := medication.NewService(medication.NewMemRepo())
	return NewService(meds), meds
}

func sampleExtraction() Extraction {
	return Extraction{
		PatientName: "John Doe",
		DoctorName:  "Dr. Sarah Miller",
		Date:        "2025-04-15",
		Medications: []ExtractedMedication{
			{Name: "Amoxicillin", Dosage: "500mg", Frequency: "3 times daily", Duration: "7 days"},
			{Name: "Ibuprofen", Dosage: "400mg", Frequency: "As needed", Duration: "For pain"},
		},
	}
}

func TestTimesForFrequency(t *testing.T) {
	cases := map[string][]string{
		"Daily":         {"09:00"},
		"Twice daily":   {"09:00", "21:00"},
		"3 times daily": {"08:00", "14:00", "20:00"},
		"every fortnight under a full moon": {"09:00"},
	}
	for freq, want := range cases {
		if got := TimesForFrequency(freq); !reflect.DeepEqual(got, want) {
			t.Errorf("TimesForFrequency(%q) = %v, want %v", freq, got, want)
		}
	}
}

func TestService_Import(t *testing.T) {
	svc, meds := newTestFixture()
	ctx := context.Background()

	created, err := svc.Import(ctx, sampleExtraction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 reminders, got %d", len(created))
	}
	if created[0].Name != "Amoxicillin" || created[0].Dosage != "500mg" {
		t.Errorf("unexpected first reminder: %+v", created[0])
	}
	if len(created[0].Times) != 3 {
		t.Errorf("expected 3 times for '3 times daily', got %v", created[0].Times)
	}
	if !strings.Contains(created[0].Notes, "Dr. Sarah Miller") {
		t.Errorf("expected prescriber in notes, got %q", created[0].Notes)
	}
	if !strings.Contains(created[0].Notes, "7 days") {
		t.Errorf("expected duration in notes, got %q", created[0].Notes)
	}

	list, _ := meds.List(ctx)
	if len(list) != 2 {
		t.Errorf("expected reminders stored, got %d", len(list))
	}
}

func TestService_Import_EmptyPayload(t *testing.T) {
	svc, meds := newTestFixture()

	_, err := svc.Import(context.Background(), Extraction{})
	var verr *validation.Error
	if !errors.As(err, &verr) || !verr.Has("medications") {
		t.Errorf("expected medications to be reported, got %v", err)
	}
	list, _ := meds.List(context.Background())
	if len(list) != 0 {
		t.Error("nothing should be stored on a failed import")
	}
}

func TestService_Import_ReportsEveryBadEntry(t *testing.T) {
	svc, meds := newTestFixture()

	x := Extraction{
		Medications: []ExtractedMedication{
			{Name: "", Dosage: "500mg"},
			{Name: "Ibuprofen", Dosage: ""},
		},
	}
	_, err := svc.Import(context.Background(), x)
	var verr *validation.Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *validation.Error, got %T", err)
	}
	if !verr.Has("medications[0].name") || !verr.Has("medications[1].dosage") {
		t.Errorf("expected both entries reported, got %+v", verr.Fields)
	}
	list, _ := meds.List(context.Background())
	if len(list) != 0 {
		t.Error("partial import should not happen")
	}
}
