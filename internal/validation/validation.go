// Package validation collects field-level validity checks shared by the
// record types. A failed validation reports every offending field, not just
// the first, so callers can surface all problems at once.
package validation

import (
	"fmt"
	"strings"
	"time"
)

// FieldError describes a single invalid or missing field.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error aggregates every field failure found in one record.
type Error struct {
	Fields []FieldError `json:"fields"`
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(names, ", "))
}

// Has reports whether the error names the given field.
func (e *Error) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Collector accumulates field errors while a record is checked.
type Collector struct {
	fields []FieldError
}

func (c *Collector) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "is required")
	}
}

func (c *Collector) Add(field, reason string) {
	c.fields = append(c.fields, FieldError{Field: field, Reason: reason})
}

// Err returns nil when no field failed.
func (c *Collector) Err() *Error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Fields: c.fields}
}

// ValidTimeOfDay reports whether s is a zero-padded HH:MM value. The length
// check matters: time.Parse alone accepts "9:00", but schedule times are
// compared lexicographically, so only the padded form is valid.
func ValidTimeOfDay(s string) bool {
	if len(s) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

// ValidDate reports whether s is a zero-padded 2006-01-02 calendar date.
func ValidDate(s string) bool {
	if len(s) != len("2006-01-02") {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
