package list_bookings

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
)

const (
	msgMissingAdminID = "X-Admin-ID header is required"
	msgInvalidParams  = "Invalid query parameters"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: startDate, endDate, status, search, page, pageSize (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/bookings - Missing admin ID")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingAdminID)
		return
	}

	serviceReq, err := ToServiceRequest(r, adminID)
	if err != nil {
		h.logger.Warn("GET /admin/bookings - Invalid parameters: %v", err)
		handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
			Error:   msgInvalidParams,
			Details: []string{err.Error()},
		})
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: admin_id=%s, error=%v", adminID, err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidParams,
				Details: []string{err.Error()},
			})

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: admin_id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: admin_id=%s, count=%d, total=%d",
		adminID, len(result.Bookings), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
