package validators

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"sort"
	"strings"

	"github.com/MKhiriev/todo-keeper/models"
	"github.com/go-playground/validator/v10"
)

var validate = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report violations under the JSON field names clients use
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("todostatus", func(fl validator.FieldLevel) bool {
		return models.TodoStatus(fl.Field().String()).IsValid()
	}); err != nil {
		panic(err)
	}

	return v
}

// Schema describes how one request part is turned into a T.
//
// Keys listed as forbidden are rejected when present, regardless of their
// value. Any other key T does not declare is ignored.
type Schema[T any] struct {
	part      Part
	forbidden []string
}

// NewSchema returns a schema for part that rejects the forbidden keys.
func NewSchema[T any](part Part, forbidden ...string) Schema[T] {
	return Schema[T]{part: part, forbidden: forbidden}
}

// Part returns the request part the schema applies to.
func (s Schema[T]) Part() Part {
	return s.part
}

// ParseRequest reads the schema's part from r and parses it.
func (s Schema[T]) ParseRequest(r *http.Request) (T, error) {
	raw, err := readPart(r, s.part)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.Parse(raw)
}

// Parse decodes raw, applies defaults and checks constraints. On failure
// the returned error is a [*ValidationError] listing every violation found.
func (s Schema[T]) Parse(raw []byte) (T, error) {
	var value T

	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil || object == nil {
		return value, s.fail(FieldViolation{
			Constraint: ConstraintObject,
			Message:    ErrNotAnObject.Error(),
			Received:   jsonKind(raw),
		})
	}

	violations := s.checkForbidden(object)
	mistyped, typeViolations := s.checkTypes(object)
	violations = append(violations, typeViolations...)

	// keys of the wrong type are left zero, the rest is decoded
	if err := json.Unmarshal(raw, &value); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return value, fmt.Errorf("error decoding %s: %w", s.part, err)
		}
	}

	if normalizer, ok := any(&value).(Normalizer); ok {
		normalizer.Normalize()
	}

	for _, v := range structViolations(value, object) {
		if !mistyped[v.Field] {
			violations = append(violations, v)
		}
	}
	if len(violations) > 0 {
		return value, s.fail(violations...)
	}

	return value, nil
}

// checkTypes decodes every key on its own so that each mistyped key is
// reported, not only the first one.
func (s Schema[T]) checkTypes(object map[string]json.RawMessage) (map[string]bool, []FieldViolation) {
	keys := make([]string, 0, len(object))
	for key := range object {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	mistyped := make(map[string]bool)
	var violations []FieldViolation
	for _, key := range keys {
		single, err := json.Marshal(map[string]json.RawMessage{key: object[key]})
		if err != nil {
			continue
		}

		var scratch T
		var typeErr *json.UnmarshalTypeError
		if err = json.Unmarshal(single, &scratch); !errors.As(err, &typeErr) {
			continue
		}

		field := typeErr.Field
		if field == "" {
			field = key
		}
		mistyped[field] = true
		violations = append(violations, FieldViolation{
			Field:      field,
			Constraint: ConstraintType,
			Message:    fmt.Sprintf("expected %s, received %s", typeErr.Type.Kind(), jsonKind(object[key])),
			Received:   jsonKind(object[key]),
		})
	}
	return mistyped, violations
}

func (s Schema[T]) checkForbidden(object map[string]json.RawMessage) []FieldViolation {
	var violations []FieldViolation
	for _, key := range s.forbidden {
		if _, ok := object[key]; !ok {
			continue
		}
		violations = append(violations, FieldViolation{
			Field:      key,
			Constraint: ConstraintForbidden,
			Message:    "field is not allowed",
			Received:   jsonKind(object[key]),
		})
	}
	return violations
}

func (s Schema[T]) fail(violations ...FieldViolation) error {
	return &ValidationError{Part: s.part, Violations: violations}
}

func structViolations(value any, object map[string]json.RawMessage) []FieldViolation {
	err := validate.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []FieldViolation{{Constraint: ConstraintType, Message: err.Error()}}
	}

	violations := make([]FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, FieldViolation{
			Field:      fe.Field(),
			Constraint: fe.Tag(),
			Message:    constraintMessage(fe),
			Received:   jsonKind(object[fe.Field()]),
		})
	}

	sort.SliceStable(violations, func(i, j int) bool {
		return violations[i].Field < violations[j].Field
	})
	return violations
}

func constraintMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "email":
		return "must be a valid email address"
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	case "uuid":
		return fmt.Sprintf("must be a valid UUID, received %q", fmt.Sprint(fe.Value()))
	case "todostatus":
		return fmt.Sprintf("must be one of %s, received %q", strings.Join(todoStatuses(), ", "), enumValue(fe))
	default:
		return fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
}

// enumValue is the offending value of an enum field. Enum values are safe
// to echo, unlike free-form fields such as passwords.
func enumValue(fe validator.FieldError) string {
	value := reflect.ValueOf(fe.Value())
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}
		value = value.Elem()
	}
	return fmt.Sprint(value.Interface())
}

// jsonKind names the class of a raw JSON value without revealing it.
func jsonKind(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return KindMissing
	}

	switch trimmed[0] {
	case '"':
		return KindString
	case '{':
		return KindObject
	case '[':
		return KindArray
	case 't', 'f':
		return KindBoolean
	case 'n':
		return KindNull
	default:
		return KindNumber
	}
}

func todoStatuses() []string {
	return []string{
		models.TodoStatusNotStarted.String(),
		models.TodoStatusOnGoing.String(),
		models.TodoStatusCompleted.String(),
	}
}
