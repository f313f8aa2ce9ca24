package service

import "errors"

var (
	// ErrInvalidCredential is returned when a bearer token fails
	// verification. The wrapped error carries the reason.
	ErrInvalidCredential = errors.New("invalid credential")
	// ErrMalformedSubject is returned for a verified token without a subject.
	ErrMalformedSubject = errors.New("credential subject is malformed")
	// ErrTokenCreationFailed is returned when signing a token fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrWrongCredentials covers both an unknown email and a wrong password.
	ErrWrongCredentials = errors.New("wrong credentials")
	ErrNoPrincipal      = errors.New("no authenticated principal")
	ErrEmailMismatch    = errors.New("email does not match the authenticated account")
	ErrAccessDenied     = errors.New("access denied")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
