package validation

import (
	"sort"
	"strings"
)

// Kind classifies why a field was rejected
type Kind string

const (
	KindRequired        Kind = "required"
	KindInvalidFormat   Kind = "invalid-format"
	KindTooShort        Kind = "too-short"
	KindWeakComposition Kind = "weak-composition"
	KindMismatch        Kind = "mismatch"
	// KindOutOfRange is only reported when a Policy sets numeric bounds
	KindOutOfRange Kind = "out-of-range"
)

// FieldError is the rejection of a single field
type FieldError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Errors maps a field name to its rejection. An empty mapping means the input was accepted.
// Errors satisfies error so it can travel through service return values.
type Errors map[string]FieldError

// Add records a rejection for field, keeping the first one recorded
func (e Errors) Add(field string, kind Kind, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = FieldError{Kind: kind, Message: message}
}

// Kind returns the rejection kind for field, or "" if the field was accepted
func (e Errors) Kind(field string) Kind {
	return e[field].Kind
}

// Has reports whether field was rejected
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Fields returns the rejected field names in sorted order
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error implements error
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f].Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
