package symptom

import "testing"

func TestSeverity_Rank(t *testing.T) {
	if SeverityMild.Rank() != 0 {
		t.Errorf("mild rank = %d, want 0", SeverityMild.Rank())
	}
	if SeverityModerate.Rank() != 1 {
		t.Errorf("moderate rank = %d, want 1", SeverityModerate.Rank())
	}
	if SeveritySevere.Rank() != 2 {
		t.Errorf("severe rank = %d, want 2", SeveritySevere.Rank())
	}
	if Severity("critical").Rank() != -1 {
		t.Error("unknown severity should rank below mild")
	}
}

func TestSeverity_Ordering(t *testing.T) {
	if !(SeverityMild.Rank() < SeverityModerate.Rank() &&
		SeverityModerate.Rank() < SeveritySevere.Rank()) {
		t.Error("expected mild < moderate < severe")
	}
}

func TestSeverity_Label(t *testing.T) {
	cases := map[Severity]string{
		SeverityMild:     "Mild",
		SeverityModerate: "Moderate",
		SeveritySevere:   "Severe",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Errorf("%s label = %q, want %q", s, got, want)
		}
	}
}

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range []Severity{SeverityMild, SeverityModerate, SeveritySevere} {
		if !s.IsValid() {
			t.Errorf("expected %s to be valid", s)
		}
	}
	for _, s := range []Severity{"", "critical", "Mild "} {
		if s.IsValid() {
			t.Errorf("expected %q to be invalid", s)
		}
	}
}
