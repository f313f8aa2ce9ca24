// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
)

// Sentinel errors produced by the transport layer itself. Callers can match
// against them with [errors.Is].
var (
	// ErrMissingCredential is returned by the required authorization stage
	// when the "Authorization" header is absent or lacks the "Bearer " prefix.
	ErrMissingCredential = errors.New("missing bearer credential in `Authorization` header")

	// errMissingInput means an endpoint asked for a validated value its
	// route never parsed. It is a wiring bug and ends as 500.
	errMissingInput = errors.New("validated input is missing from request context")
)

// statusError pins an explicit status code to err.
type statusError struct {
	status int
	err    error
}

func (e *statusError) Error() string {
	return e.err.Error()
}

func (e *statusError) Unwrap() error {
	return e.err
}

// errNotFound is reported for unmatched routes and unregistered methods.
var errNotFound = &statusError{
	status: http.StatusNotFound,
	err:    errors.New(http.StatusText(http.StatusNotFound)),
}
