package symptom

// Severity is the fixed ordered scale for symptom entries:
// mild < moderate < severe.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"

	// DefaultSeverity applies when a caller leaves the field unspecified.
	DefaultSeverity = SeverityModerate
)

var severityRanks = map[Severity]int{
	SeverityMild:     0,
	SeverityModerate: 1,
	SeveritySevere:   2,
}

var severityLabels = map[Severity]string{
	SeverityMild:     "Mild",
	SeverityModerate: "Moderate",
	SeveritySevere:   "Severe",
}

// Rank returns the severity's position on the ordered scale. Unknown values
// rank below mild so they never sort ahead of real entries.
func (s Severity) Rank() int {
	r, ok := severityRanks[s]
	if !ok {
		return -1
	}
	return r
}

func (s Severity) Label() string {
	return severityLabels[s]
}

func (s Severity) IsValid() bool {
	_, ok := severityRanks[s]
	return ok
}
