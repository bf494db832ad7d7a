package catalog

// Alternative is one substitute option for a catalog medication.
type Alternative struct {
	Name           string `json:"name"`
	Classification string `json:"classification"`
	Dosage         string `json:"dosage"`
	CostTier       string `json:"cost_tier"`
	Description    string `json:"description"`
}

// AlternativeSet groups the alternatives known for one canonical medication
// name. Lookup is case-insensitive on Medication.
type AlternativeSet struct {
	Medication   string        `json:"medication"`
	Alternatives []Alternative `json:"alternatives"`
}

// Resource is one educational-resource entry.
type Resource struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary"`
	Link     string `json:"link"`
}
