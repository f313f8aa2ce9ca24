package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/todo-keeper/internal/service"
	"github.com/MKhiriev/todo-keeper/internal/store"
	"github.com/MKhiriev/todo-keeper/internal/validators"
	"github.com/MKhiriev/todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		ok     bool
	}{
		{"validation", &validators.ValidationError{Part: validators.PartBody}, http.StatusUnprocessableEntity, true},
		{"wrapped validation", fmt.Errorf("ctx: %w", &validators.ValidationError{}), http.StatusUnprocessableEntity, true},
		{"missing credential", ErrMissingCredential, http.StatusUnprocessableEntity, true},
		{"body too large", fmt.Errorf("read: %w", validators.ErrBodyTooLarge), http.StatusRequestEntityTooLarge, true},
		{"invalid credential", fmt.Errorf("%w: token is expired", service.ErrInvalidCredential), http.StatusPreconditionFailed, true},
		{"malformed subject", service.ErrMalformedSubject, http.StatusInternalServerError, true},
		{"token creation", service.ErrTokenCreationFailed, http.StatusInternalServerError, true},
		{"no principal", service.ErrNoPrincipal, http.StatusBadRequest, true},
		{"wrong credentials", service.ErrWrongCredentials, http.StatusUnauthorized, true},
		{"access denied", service.ErrAccessDenied, http.StatusForbidden, true},
		{"email mismatch", service.ErrEmailMismatch, http.StatusForbidden, true},
		{"email taken", fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists), http.StatusConflict, true},
		{"sql", fmt.Errorf("%w: conn reset", store.ErrExecutingQuery), http.StatusInternalServerError, true},
		{"explicit", &statusError{status: http.StatusTeapot, err: errors.New("tea")}, http.StatusTeapot, true},
		{"unknown", errors.New("mystery"), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, ok := statusFromError(tt.err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.status, status)
		})
	}
}

func TestStatusFromError_SeveralSentinelsResolveStably(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"conflict over sql", fmt.Errorf("%w: %w", store.ErrExecutingQuery, store.ErrEmailAlreadyExists), http.StatusConflict},
		{"credential over access", errors.Join(service.ErrAccessDenied, service.ErrInvalidCredential), http.StatusPreconditionFailed},
		{"missing credential over no principal", errors.Join(service.ErrNoPrincipal, ErrMissingCredential), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 100 {
				status, ok := statusFromError(tt.err)
				require.True(t, ok)
				require.Equal(t, tt.status, status)
			}
		})
	}
}

func TestResolveStatus_KeepsRecordedErrorStatus(t *testing.T) {
	rw := &responseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusGatewayTimeout}
	assert.Equal(t, http.StatusGatewayTimeout, resolveStatus(rw, errors.New("late")))

	// an explicit status still wins
	assert.Equal(t, http.StatusForbidden, resolveStatus(rw, service.ErrAccessDenied))

	// a success status on the wire is not an error status
	ok := &responseWriter{ResponseWriter: httptest.NewRecorder(), status: http.StatusOK}
	assert.Equal(t, http.StatusInternalServerError, resolveStatus(ok, errors.New("late")))

	assert.Equal(t, http.StatusInternalServerError, resolveStatus(httptest.NewRecorder(), errors.New("late")))
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestWriteError_Envelope(t *testing.T) {
	h := newTestHandler()
	rr := httptest.NewRecorder()

	h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("signin: %w", service.ErrWrongCredentials))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, models.ErrorResponseStatusFail, body["status"])
	assert.Equal(t, "signin: wrong credentials", body["message"])
	assert.Contains(t, body["stack"], "caused by: wrong credentials")
}

func TestWriteError_ValidationMessageIsViolationList(t *testing.T) {
	h := newTestHandler()
	rr := httptest.NewRecorder()

	err := &validators.ValidationError{
		Part: validators.PartBody,
		Violations: []validators.FieldViolation{
			{Field: "id", Constraint: validators.ConstraintForbidden, Message: "field is not allowed"},
		},
	}
	h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), err)

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := decodeError(t, rr)
	violations, ok := body["message"].([]any)
	require.True(t, ok)
	require.Len(t, violations, 1)
	assert.Equal(t, "id", violations[0].(map[string]any)["field"])
	assert.Equal(t, "forbidden", violations[0].(map[string]any)["constraint"])
}

func TestWriteError_ProductionHidesDetails(t *testing.T) {
	h := newTestHandler()
	h.production = true

	rr := httptest.NewRecorder()
	h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), fmt.Errorf("%w: password authentication failed", store.ErrExecutingQuery))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "Internal Server Error", body["message"])
	assert.NotContains(t, body, "stack")

	rr = httptest.NewRecorder()
	h.writeError(rr, httptest.NewRequest(http.MethodGet, "/", nil), service.ErrAccessDenied)

	body = decodeError(t, rr)
	assert.Equal(t, "access denied", body["message"])
	assert.NotContains(t, body, "stack")
}

func TestWriteError_NotFoundHasNoStack(t *testing.T) {
	h := newTestHandler()
	rr := httptest.NewRecorder()

	h.notFound(rr, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeError(t, rr)
	assert.Equal(t, "Not Found", body["message"])
	assert.NotContains(t, body, "stack")
}

func TestWriteError_StartedResponseIsLeftAlone(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}
	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("partial"))

	h.writeError(rw, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("late failure"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestErrorChain(t *testing.T) {
	base := errors.New("base")
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", base))

	assert.Equal(t, "outer: inner: base\n  caused by: inner: base\n  caused by: base", errorChain(wrapped))
	assert.Equal(t, "base", errorChain(base))

	joined := fmt.Errorf("%w: %w", service.ErrInvalidCredential, base)
	assert.Equal(t, "invalid credential: base\n  caused by: base", errorChain(joined))
}
