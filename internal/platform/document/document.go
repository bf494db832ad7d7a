// Package document is the document-generation collaborator: it renders a
// printable hospital form and a scannable code from validated profile
// fields. The core supplies the fields; everything here is an adapter the
// core calls through the Generator interface.
package document

import "context"

// Field is one labeled value on the generated form.
type Field struct {
	Label string
	Value string
}

// Generator produces the downloadable form and scannable code.
type Generator interface {
	// Form renders a printable document titled title from the given fields.
	Form(ctx context.Context, title string, fields []Field) ([]byte, error)
	// Code renders a scannable code (PNG) carrying the payload.
	Code(ctx context.Context, payload string) ([]byte, error)
}
