package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/service"
	"github.com/MKhiriev/todo-keeper/internal/store"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/internal/validators"
	"github.com/MKhiriev/todo-keeper/models"
)

// errorStatuses is searched in order, so an error wrapping several
// sentinels gets the status of the first one listed.
var errorStatuses = []struct {
	err    error
	status int
}{
	{ErrMissingCredential, http.StatusUnprocessableEntity},
	{validators.ErrBodyTooLarge, http.StatusRequestEntityTooLarge},

	{service.ErrInvalidCredential, http.StatusPreconditionFailed},
	{service.ErrMalformedSubject, http.StatusInternalServerError},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{service.ErrNoPrincipal, http.StatusBadRequest},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrAccessDenied, http.StatusForbidden},
	{service.ErrEmailMismatch, http.StatusForbidden},

	{store.ErrEmailAlreadyExists, http.StatusConflict},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

// statusFromError returns the status err explicitly asks for, if any.
func statusFromError(err error) (int, bool) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusUnprocessableEntity, true
	}

	var withStatus *statusError
	if errors.As(err, &withStatus) {
		return withStatus.status, true
	}

	for _, mapped := range errorStatuses {
		if errors.Is(err, mapped.err) {
			return mapped.status, true
		}
	}
	return 0, false
}

// resolveStatus picks the status for err: its explicit status, else the
// error status already recorded on the response, else 500.
func resolveStatus(w http.ResponseWriter, err error) int {
	if status, ok := statusFromError(err); ok {
		return status
	}
	if rw := unwrapResponseWriter(w); rw != nil && rw.status >= http.StatusBadRequest {
		return rw.status
	}
	return http.StatusInternalServerError
}

// writeError is the only place error responses are written.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := resolveStatus(w, err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if rw := unwrapResponseWriter(w); rw != nil && rw.wroteHeader {
		// headers are gone, the status on the wire stays
		return
	}

	response := models.ErrorResponse{
		Status:  models.ErrorResponseStatusFail,
		Message: h.errorMessage(err, status),
	}
	if !h.production && status != http.StatusNotFound {
		response.Stack = errorChain(err)
	}

	if _, err = utils.WriteJSON(w, response, status); err != nil {
		log.Err(err).Msg("error writing error response")
	}
}

func (h *Handler) errorMessage(err error, status int) any {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Violations
	}
	if h.production && status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// errorChain lists err and every error it wraps, outermost first.
func errorChain(err error) string {
	var b strings.Builder
	for e := err; e != nil; {
		if b.Len() > 0 {
			b.WriteString("\n  caused by: ")
		}
		b.WriteString(e.Error())

		switch x := e.(type) {
		case interface{ Unwrap() []error }:
			errs := x.Unwrap()
			if len(errs) == 0 {
				return b.String()
			}
			e = errs[len(errs)-1]
		case interface{ Unwrap() error }:
			e = x.Unwrap()
		default:
			e = nil
		}
	}
	return b.String()
}

// notFound answers unmatched routes and methods a route does not register.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, errNotFound)
}
