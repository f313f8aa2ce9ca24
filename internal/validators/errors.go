package validators

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotAnObject     = errors.New("request part is not a JSON object")
	ErrBodyTooLarge    = errors.New("request body is too large")
	ErrUnsupportedPart = errors.New("unsupported request part")
)

// Violation constraints that are not validator tags.
const (
	ConstraintForbidden = "forbidden"
	ConstraintType      = "type"
	ConstraintObject    = "object"
)

// Classes of received values.
const (
	KindString  = "string"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindNull    = "null"
	KindArray   = "array"
	KindObject  = "object"
	KindMissing = "missing"
)

// FieldViolation describes one failed constraint on one field.
type FieldViolation struct {
	// Field is the JSON name of the offending field, empty for
	// violations that concern the whole part.
	Field string `json:"field"`

	// Constraint names the failed rule (e.g. "required", "email",
	// "forbidden").
	Constraint string `json:"constraint"`

	// Message is a human-readable explanation.
	Message string `json:"message"`

	// Received is the class of the value found (see the Kind constants),
	// never the value itself.
	Received string `json:"received,omitempty"`
}

// ValidationError is returned when a request part fails validation.
// It always carries at least one violation.
type ValidationError struct {
	Part       Part
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		if v.Field == "" {
			parts = append(parts, v.Message)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}

	return fmt.Sprintf("invalid %s: %s", e.Part, strings.Join(parts, "; "))
}
