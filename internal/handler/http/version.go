package http

import (
	"net/http"

	"github.com/MKhiriev/todo-keeper/internal/logger"
	"github.com/MKhiriev/todo-keeper/internal/utils"
	"github.com/MKhiriev/todo-keeper/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	if _, err := utils.WriteText(w, serverVersion, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing version")
	}
}

// hello is the smoke-test endpoint.
func (h *Handler) hello(*http.Request) (any, error) {
	return models.HelloResponse{Hello: "world"}, nil
}
