// Package catalog answers read-only queries over the static reference data:
// medication alternatives and educational resources. The catalogs are loaded
// once at startup and never mutated.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed data/alternatives.json data/resources.json
var dataFS embed.FS

type Service struct {
	// alternatives keyed by lowercased canonical medication name.
	alternatives map[string]AlternativeSet
	// suggestions preserves the catalog's original key order and casing.
	suggestions []string
	resources   []Resource
	categories  []string
}

// NewService loads the embedded catalogs. It fails only on a malformed data
// file, which is a build problem rather than a runtime condition.
func NewService() (*Service, error) {
	var sets []AlternativeSet
	if err := loadJSON("data/alternatives.json", &sets); err != nil {
		return nil, err
	}
	var resources []Resource
	if err := loadJSON("data/resources.json", &resources); err != nil {
		return nil, err
	}

	s := &Service{
		alternatives: make(map[string]AlternativeSet, len(sets)),
		resources:    resources,
	}
	for _, set := range sets {
		s.alternatives[strings.ToLower(set.Medication)] = set
		s.suggestions = append(s.suggestions, set.Medication)
	}
	seen := make(map[string]bool)
	for _, r := range resources {
		if !seen[r.Category] {
			seen[r.Category] = true
			s.categories = append(s.categories, r.Category)
		}
	}
	return s, nil
}

func loadJSON(name string, v any) error {
	b, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read catalog %s: %w", name, err)
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("parse catalog %s: %w", name, err)
	}
	return nil
}

// FindAlternatives looks up alternatives by case-insensitive exact match on
// the canonical medication name. An unknown name yields an empty slice: "no
// known alternatives" is an expected outcome, not a failure.
func (s *Service) FindAlternatives(name string) []Alternative {
	set, ok := s.alternatives[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return []Alternative{}
	}
	out := make([]Alternative, len(set.Alternatives))
	copy(out, set.Alternatives)
	return out
}

// Suggestions returns the canonical medication names the alternatives
// catalog knows about, in catalog order.
func (s *Service) Suggestions() []string {
	out := make([]string, len(s.suggestions))
	copy(out, s.suggestions)
	return out
}

// SearchResources matches the query case-insensitively against title,
// category, and summary; a hit in any field qualifies. An empty or
// whitespace-only query returns an empty set by contract, distinct from
// "searched and found nothing".
func (s *Service) SearchResources(query string) []Resource {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Resource{}
	}
	out := []Resource{}
	for _, r := range s.resources {
		if strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Category), q) ||
			strings.Contains(strings.ToLower(r.Summary), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByCategory matches the category field exactly; categories are a
// closed vocabulary, so the match is case-sensitive.
func (s *Service) FilterByCategory(category string) []Resource {
	out := []Resource{}
	for _, r := range s.resources {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Categories returns the closed category vocabulary in catalog order.
func (s *Service) Categories() []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
