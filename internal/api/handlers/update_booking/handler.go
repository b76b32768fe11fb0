package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
)

const (
	msgMissingAdminID     = "X-Admin-ID header is required"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidData        = "Invalid booking update"
	msgNotFound           = "Booking not found"
	msgInvalidTransition  = "Booking status cannot be changed this way"
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

// Handle PATCH /api/v1/admin/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /admin/bookings/{id} - Missing admin ID")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingAdminID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), bookingID, req.ToServiceRequest(adminID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/bookings/{id} - Invalid data: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidData,
				Details: []string{err.Error()},
			})

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /admin/bookings/{id} - Booking not found: booking_id=%s, admin_id=%s", bookingID, adminID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatusTransition):
			h.logger.Warn("PATCH /admin/bookings/{id} - Invalid transition: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondErrorBody(w, http.StatusConflict, handlers.ErrorResponse{
				Error:   msgInvalidTransition,
				Details: []string{err.Error()},
			})

		default:
			h.logger.Error("PATCH /admin/bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /admin/bookings/{id} - Booking updated successfully: booking_id=%s, status=%s",
		bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
