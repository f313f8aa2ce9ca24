// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandlers    = errors.New("no HTTP handler to serve")
	errNoAddress     = errors.New("no HTTP address configured")
	errStoppedServer = errors.New("HTTP server stopped unexpectedly")
)
