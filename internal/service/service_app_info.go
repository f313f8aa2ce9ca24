package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/todo-keeper/internal/config"
	"github.com/MKhiriev/todo-keeper/internal/logger"
)

// appInfoService serves the version string fixed at startup.
type appInfoService struct {
	version string
}

// NewAppInfoService returns an AppInfoService reporting cfg.Version. A blank
// version is rejected with [ErrVersionIsNotSpecified].
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Info().Str("version", version).Str("environment", cfg.Environment).Msg("app info")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
