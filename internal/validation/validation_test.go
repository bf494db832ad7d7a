package validation

import "testing"

func TestCollector_NoErrors(t *testing.T) {
	var c Collector
	c.Require("name", "Lisinopril")
	if err := c.Err(); err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
}

func TestCollector_ReportsAllFields(t *testing.T) {
	var c Collector
	c.Require("name", "")
	c.Require("dosage", "10mg")
	c.Add("times", "at least one time is required")

	err := c.Err()
	if err == nil {
		t.Fatal("expected error")
	}
	if len(err.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Fields))
	}
	if !err.Has("name") {
		t.Error("expected name to be reported")
	}
	if !err.Has("times") {
		t.Error("expected times to be reported")
	}
	if err.Has("dosage") {
		t.Error("dosage should not be reported")
	}
}

func TestCollector_RequireTrimsWhitespace(t *testing.T) {
	var c Collector
	c.Require("doctor", "   ")
	if err := c.Err(); err == nil || !err.Has("doctor") {
		t.Error("whitespace-only value should fail the required check")
	}
}

func TestValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:00", "23:59", "14:30"}
	for _, s := range valid {
		if !ValidTimeOfDay(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"", "24:00", "9am", "12:60", "noon"}
	for _, s := range invalid {
		if ValidTimeOfDay(s) {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}

// Schedule times sort lexicographically, so the unpadded forms time.Parse
// tolerates must be rejected.
func TestValidTimeOfDay_RequiresPadding(t *testing.T) {
	for _, s := range []string{"9:00", "09:5", "9:5", " 9:00"} {
		if ValidTimeOfDay(s) {
			t.Errorf("expected unpadded %q to be invalid", s)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2025-04-28") {
		t.Error("expected valid date")
	}
	if ValidDate("2025-02-30") {
		t.Error("expected invalid calendar date to fail")
	}
	if ValidDate("28/04/2025") {
		t.Error("expected wrong format to fail")
	}
	if ValidDate("2025-4-28") {
		t.Error("expected unpadded date to fail")
	}
}
