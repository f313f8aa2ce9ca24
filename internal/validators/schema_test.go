// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/todo-keeper/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var digest = strings.Repeat("a", 64)

func requireViolations(t *testing.T, err error) []FieldViolation {
	t.Helper()
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr), "expected *ValidationError, got %v", err)
	require.NotEmpty(t, validationErr.Violations)
	return validationErr.Violations
}

func hasViolation(violations []FieldViolation, field, constraint string) bool {
	for _, v := range violations {
		if v.Field == field && v.Constraint == constraint {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// User bodies
// ---------------------------------------------------------------------------

func TestSignupBody_Valid(t *testing.T) {
	req, err := SignupBody.Parse([]byte(`{"email":"a@b.io","password":"` + digest + `"}`))

	require.NoError(t, err)
	assert.Equal(t, "a@b.io", req.Email)
	assert.Equal(t, digest, req.Password)
}

func TestSignupBody_UnknownKeysAreIgnored(t *testing.T) {
	req, err := SignupBody.Parse([]byte(`{"email":"a@b.io","password":"` + digest + `","nickname":"bob"}`))

	require.NoError(t, err)
	assert.Equal(t, "a@b.io", req.Email)
}

func TestSignupBody_Violations(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		field      string
		constraint string
	}{
		{"forbidden id", `{"id":"x","email":"a@b.io","password":"` + digest + `"}`, "id", ConstraintForbidden},
		{"forbidden createdAt", `{"createdAt":"2024-01-01","email":"a@b.io","password":"` + digest + `"}`, "createdAt", ConstraintForbidden},
		{"missing email", `{"password":"` + digest + `"}`, "email", "required"},
		{"bad email", `{"email":"not-an-email","password":"` + digest + `"}`, "email", "email"},
		{"short password", `{"email":"a@b.io","password":"abc"}`, "password", "len"},
		{"long password", `{"email":"a@b.io","password":"` + digest + `b"}`, "password", "len"},
		{"password of wrong type", `{"email":"a@b.io","password":42}`, "password", ConstraintType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignupBody.Parse([]byte(tt.body))

			violations := requireViolations(t, err)
			assert.True(t, hasViolation(violations, tt.field, tt.constraint), "violations: %+v", violations)
		})
	}
}

func TestSignupBody_ReportsAllViolations(t *testing.T) {
	_, err := SignupBody.Parse([]byte(`{"id":"x","email":"nope","password":"short"}`))

	violations := requireViolations(t, err)
	assert.True(t, hasViolation(violations, "id", ConstraintForbidden))
	assert.True(t, hasViolation(violations, "email", "email"))
	assert.True(t, hasViolation(violations, "password", "len"))
}

func TestSchema_NotAnObject(t *testing.T) {
	for _, body := range []string{`[]`, `"text"`, `null`, `{"email":`} {
		t.Run(body, func(t *testing.T) {
			_, err := SigninBody.Parse([]byte(body))

			violations := requireViolations(t, err)
			assert.Equal(t, ConstraintObject, violations[0].Constraint)
		})
	}
}

func TestSchema_PasswordIsNeverEchoed(t *testing.T) {
	_, err := SignupBody.Parse([]byte(`{"email":"a@b.io","password":"secret"}`))

	for _, v := range requireViolations(t, err) {
		assert.Equal(t, KindString, v.Received)
		assert.NotContains(t, v.Message, "secret")
	}
}

func TestSchema_ReceivedIsValueClass(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		field    string
		received string
	}{
		{"number for string", `{"name":5}`, "name", KindNumber},
		{"null for required", `{"name":null}`, "name", KindNull},
		{"boolean for string", `{"name":"test","description":true}`, "description", KindBoolean},
		{"array for enum", `{"name":"test","status":["OnGoing"]}`, "status", KindArray},
		{"object for string", `{"name":{"first":"a"}}`, "name", KindObject},
		{"absent", `{"description":"d"}`, "name", KindMissing},
		{"forbidden string", `{"id":"x","name":"test"}`, "id", KindString},
		{"unknown enum value", `{"name":"test","status":"Done"}`, "status", KindString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateTodoBody.Parse([]byte(tt.body))

			var found bool
			for _, v := range requireViolations(t, err) {
				if v.Field == tt.field {
					found = true
					assert.Equal(t, tt.received, v.Received)
				}
			}
			assert.True(t, found, "no violation for %s", tt.field)
		})
	}
}

func TestSchema_ReportsEveryMistypedField(t *testing.T) {
	_, err := CreateTodoBody.Parse([]byte(`{"userId":"x","name":5,"description":7,"status":false}`))

	violations := requireViolations(t, err)
	assert.Equal(t, []FieldViolation{
		{Field: "userId", Constraint: ConstraintForbidden, Message: "field is not allowed", Received: KindString},
		{Field: "description", Constraint: ConstraintType, Message: "expected string, received number", Received: KindNumber},
		{Field: "name", Constraint: ConstraintType, Message: "expected string, received number", Received: KindNumber},
		{Field: "status", Constraint: ConstraintType, Message: "expected string, received boolean", Received: KindBoolean},
	}, violations)
}

func TestSchema_TypeAndConstraintViolationsTogether(t *testing.T) {
	_, err := SignupBody.Parse([]byte(`{"email":"nope","password":42}`))

	violations := requireViolations(t, err)
	assert.Len(t, violations, 2)
	assert.True(t, hasViolation(violations, "password", ConstraintType))
	assert.True(t, hasViolation(violations, "email", "email"))
	assert.False(t, hasViolation(violations, "password", "required"), "a mistyped field is not also reported as missing")
}

// ---------------------------------------------------------------------------
// Todo bodies
// ---------------------------------------------------------------------------

func TestCreateTodoBody_DefaultsStatus(t *testing.T) {
	req, err := CreateTodoBody.Parse([]byte(`{"name":"test"}`))

	require.NoError(t, err)
	assert.Equal(t, "test", req.Name)
	assert.Nil(t, req.Description)
	require.NotNil(t, req.Status)
	assert.Equal(t, models.TodoStatusNotStarted, *req.Status)
}

func TestCreateTodoBody_KeepsGivenStatus(t *testing.T) {
	req, err := CreateTodoBody.Parse([]byte(`{"name":"test","description":"d","status":"OnGoing"}`))

	require.NoError(t, err)
	require.NotNil(t, req.Description)
	assert.Equal(t, "d", *req.Description)
	assert.Equal(t, models.TodoStatusOnGoing, *req.Status)
}

func TestCreateTodoBody_Violations(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		field      string
		constraint string
	}{
		{"forbidden id", `{"id":"x","name":"test"}`, "id", ConstraintForbidden},
		{"forbidden userId", `{"userId":"x","name":"test"}`, "userId", ConstraintForbidden},
		{"forbidden updatedAt", `{"updatedAt":"x","name":"test"}`, "updatedAt", ConstraintForbidden},
		{"missing name", `{"description":"d"}`, "name", "required"},
		{"unknown status", `{"name":"test","status":"Done"}`, "status", "todostatus"},
		{"empty status", `{"name":"test","status":""}`, "status", "todostatus"},
		{"name of wrong type", `{"name":5}`, "name", ConstraintType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateTodoBody.Parse([]byte(tt.body))

			violations := requireViolations(t, err)
			assert.True(t, hasViolation(violations, tt.field, tt.constraint), "violations: %+v", violations)
		})
	}
}

func TestUpdateTodoBody_PartialIsValid(t *testing.T) {
	req, err := UpdateTodoBody.Parse([]byte(`{"status":"Completed"}`))

	require.NoError(t, err)
	assert.Nil(t, req.Name)
	assert.Nil(t, req.Description)
	require.NotNil(t, req.Status)
	assert.Equal(t, models.TodoStatusCompleted, *req.Status)
}

func TestUpdateTodoBody_EmptyIsValid(t *testing.T) {
	req, err := UpdateTodoBody.Parse([]byte(`{}`))

	require.NoError(t, err)
	assert.Equal(t, models.UpdateTodoRequest{}, req)
}

func TestUpdateTodoBody_Violations(t *testing.T) {
	_, err := UpdateTodoBody.Parse([]byte(`{"userId":"x","name":"","status":"Nope"}`))

	violations := requireViolations(t, err)
	assert.True(t, hasViolation(violations, "userId", ConstraintForbidden))
	assert.True(t, hasViolation(violations, "name", "min"))
	assert.True(t, hasViolation(violations, "status", "todostatus"))
}

// ---------------------------------------------------------------------------
// Request parts
// ---------------------------------------------------------------------------

func withRouteParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestTodoIDParams_ParseRequest(t *testing.T) {
	id := "0190c0de-7a3b-7c4d-9e5f-a1b2c3d4e5f6"
	r := withRouteParams(httptest.NewRequest(http.MethodPut, "/todos/"+id, nil), map[string]string{"id": id})

	params, err := TodoIDParams.ParseRequest(r)

	require.NoError(t, err)
	assert.Equal(t, id, params.ID)
}

func TestTodoIDParams_RejectsNonUUID(t *testing.T) {
	r := withRouteParams(httptest.NewRequest(http.MethodPut, "/todos/42", nil), map[string]string{"id": "42"})

	_, err := TodoIDParams.ParseRequest(r)

	violations := requireViolations(t, err)
	assert.True(t, hasViolation(violations, "id", "uuid"))
	assert.Equal(t, KindString, violations[0].Received)
	assert.Contains(t, violations[0].Message, `"42"`)
}

func TestListTodosQuery_ParseRequest(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		q, err := ListTodosQuery.ParseRequest(httptest.NewRequest(http.MethodGet, "/todos", nil))

		require.NoError(t, err)
		assert.Nil(t, q.Status)
	})

	t.Run("known status", func(t *testing.T) {
		q, err := ListTodosQuery.ParseRequest(httptest.NewRequest(http.MethodGet, "/todos?status=OnGoing&status=Completed", nil))

		require.NoError(t, err)
		require.NotNil(t, q.Status)
		assert.Equal(t, models.TodoStatusOnGoing, *q.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := ListTodosQuery.ParseRequest(httptest.NewRequest(http.MethodGet, "/todos?status=Later", nil))

		violations := requireViolations(t, err)
		assert.True(t, hasViolation(violations, "status", "todostatus"))
	})
}

func TestBodySchema_ParseRequest(t *testing.T) {
	t.Run("json body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(`{"name":"test"}`))

		req, err := CreateTodoBody.ParseRequest(r)

		require.NoError(t, err)
		assert.Equal(t, "test", req.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/todos", nil)

		_, err := CreateTodoBody.ParseRequest(r)

		violations := requireViolations(t, err)
		assert.True(t, hasViolation(violations, "name", "required"))
	})

	t.Run("too large", func(t *testing.T) {
		body := `{"name":"` + strings.Repeat("x", maxBodyBytes) + `"}`
		r := httptest.NewRequest(http.MethodPost, "/todos", strings.NewReader(body))

		_, err := CreateTodoBody.ParseRequest(r)

		assert.ErrorIs(t, err, ErrBodyTooLarge)
	})
}

func TestHeadersSchema_LowercasesNames(t *testing.T) {
	type traceHeaders struct {
		TraceID string `json:"x-trace-id" validate:"required"`
	}
	schema := NewSchema[traceHeaders](PartHeaders)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Trace-ID", "abc")

	headers, err := schema.ParseRequest(r)

	require.NoError(t, err)
	assert.Equal(t, "abc", headers.TraceID)
	assert.Equal(t, PartHeaders, schema.Part())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Part: PartBody,
		Violations: []FieldViolation{
			{Field: "email", Constraint: "email", Message: "must be a valid email address"},
			{Constraint: ConstraintObject, Message: "request part is not a JSON object"},
		},
	}

	assert.Equal(t, "invalid body: email: must be a valid email address; request part is not a JSON object", err.Error())
}

func TestInputFromContext(t *testing.T) {
	ctx := WithInput(context.Background(), models.TodoParams{ID: "id-1"})

	params, ok := InputFromContext[models.TodoParams](ctx)
	require.True(t, ok)
	assert.Equal(t, "id-1", params.ID)

	_, ok = InputFromContext[models.ListTodosQuery](ctx)
	assert.False(t, ok, "each input type has its own slot")
}
