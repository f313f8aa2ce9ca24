package server

import (
	stdlog "log"

	"github.com/MKhiriev/todo-keeper/internal/logger"
)

// newServerErrorLog routes net/http's internal error log through zerolog.
func newServerErrorLog(l *logger.Logger) *stdlog.Logger {
	child := l.With().Str("component", "net/http").Logger()
	return stdlog.New(child, "", 0)
}
