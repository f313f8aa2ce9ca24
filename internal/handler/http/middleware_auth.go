package http

import (
	"net/http"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/utils"
)

// requireAuth is the authorization stage of protected routes.
//
// A request without an "Authorization" header, or with one that does not
// start with the case-sensitive "Bearer " prefix, fails with
// [ErrMissingCredential]. Otherwise the token is verified and its principal
// attached to the request context; verification errors are passed on as is.
func (h *Handler) requireAuth(r *http.Request) (*http.Request, error) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("no bearer credential")
		return r, ErrMissingCredential
	}

	return h.authenticate(r, token)
}

// optionalAuth lets anonymous requests through. A bearer credential that
// is present still has to verify.
func (h *Handler) optionalAuth(r *http.Request) (*http.Request, error) {
	token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	if err != nil {
		return r, nil
	}

	return h.authenticate(r, token)
}

func (h *Handler) authenticate(r *http.Request, token string) (*http.Request, error) {
	ctx := r.Context()

	principal, err := h.services.AuthService.ParseToken(ctx, token)
	if err != nil {
		return r, err
	}

	log := logger.FromContext(ctx).WithField("user_id", principal.UserID)
	ctx = log.WithContext(utils.WithPrincipal(ctx, principal))

	return r.WithContext(ctx), nil
}
