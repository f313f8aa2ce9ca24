package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// securityHeaders are set on every response.
var securityHeaders = [][2]string{
	{"X-Content-Type-Options", "nosniff"},
	{"X-Frame-Options", "DENY"},
	{"Referrer-Policy", "no-referrer"},
	{"Cross-Origin-Opener-Policy", "same-origin"},
	{"Cross-Origin-Resource-Policy", "same-origin"},
	{"Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'"},
}

func withSecurityHeaders() []func(http.Handler) http.Handler {
	middlewares := make([]func(http.Handler) http.Handler, 0, len(securityHeaders))
	for _, h := range securityHeaders {
		middlewares = append(middlewares, middleware.SetHeader(h[0], h[1]))
	}
	return middlewares
}
