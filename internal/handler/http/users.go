package http

import (
	"net/http"

	"github.com/MKhiriev/todo-keeper/models"
)

func (h *Handler) signup(r *http.Request) (any, error) {
	req, err := input[models.SignupRequest](r)
	if err != nil {
		return nil, err
	}

	user := models.User{Email: req.Email, Password: req.Password}
	if _, err = h.services.AuthService.Signup(r.Context(), user); err != nil {
		return nil, err
	}

	return models.OKResponse{OK: true}, nil
}

func (h *Handler) signin(r *http.Request) (any, error) {
	req, err := input[models.SigninRequest](r)
	if err != nil {
		return nil, err
	}

	token, err := h.services.AuthService.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	return models.TokenResponse{Token: token.String()}, nil
}

func (h *Handler) changePassword(r *http.Request) (any, error) {
	req, err := input[models.ChangePasswordRequest](r)
	if err != nil {
		return nil, err
	}

	if err = h.services.AuthService.ChangePassword(r.Context(), req.Email, req.Password); err != nil {
		return nil, err
	}

	return models.OKResponse{OK: true}, nil
}
