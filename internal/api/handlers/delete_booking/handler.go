package delete_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
)

const (
	msgMissingAdminID = "X-Admin-ID header is required"
	msgNotFound       = "Booking not found"
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

// Handle DELETE /api/v1/admin/bookings/{bookingId}
// Удаление безвозвратное, в отличие от отмены
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	adminID, ok := middleware.AdminIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("DELETE /admin/bookings/{id} - Missing admin ID")
		handlers.RespondError(w, http.StatusUnauthorized, msgMissingAdminID)
		return
	}

	if err := h.service.Delete(r.Context(), bookingID, adminID); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /admin/bookings/{id} - Booking not found: booking_id=%s, admin_id=%s", bookingID, adminID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /admin/bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /admin/bookings/{id} - Booking deleted successfully: booking_id=%s, admin_id=%s", bookingID, adminID)
	w.WriteHeader(http.StatusNoContent)
}
