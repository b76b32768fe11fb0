package get_calendar_config

import (
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/calendar/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/calendar/config - Failed to get config: %v", err)
		handlers.RespondInternalError(w, err)
		return
	}

	h.logger.Info("GET /admin/calendar/config - Config retrieved successfully: slot=%d, buffer=%d",
		result.SlotDuration, result.BufferTime)
	handlers.RespondJSON(w, http.StatusOK, result)
}
