package update_calendar_config

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings"
)

const (
	msgMissingAdminID     = "X-Admin-ID header is required"
	msgInvalidRequestBody = "Invalid request body"
	msgEmptyUpdate        = "Nothing to update"
	msgInvalidData        = "Invalid calendar configuration"
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

// Handle PUT /api/v1/admin/calendar/config
// Новая конфигурация действует для всех последующих запросов процесса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PUT /admin/calendar/config - Missing admin ID")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingAdminID)
		return
	}

	var req UpdateCalendarConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/calendar/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(adminID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrEmptyUpdate):
			h.logger.Warn("PUT /admin/calendar/config - Empty update: admin_id=%s", adminID)
			handlers.RespondBadRequest(w, msgEmptyUpdate)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /admin/calendar/config - Invalid data: admin_id=%s, error=%v", adminID, err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidData,
				Details: []string{err.Error()},
			})

		default:
			h.logger.Error("PUT /admin/calendar/config - Failed to update config: admin_id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /admin/calendar/config - Config updated successfully: admin_id=%s", adminID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
