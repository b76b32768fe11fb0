package get_booking

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
)

const (
	msgMissingReference = "Booking ID or confirmation number is required"
	msgNotFound         = "Booking not found"
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

// Handle GET /api/v1/bookings?id=&confirmation=&email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.LookupRequest{
		ID:                 handlers.QueryOptional(r, "id"),
		ConfirmationNumber: handlers.QueryOptional(r, "confirmation"),
		Email:              handlers.QueryOptional(r, "email"),
	}

	booking, err := h.service.Lookup(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Missing booking reference")
			handlers.RespondBadRequest(w, msgMissingReference)

		case errors.Is(err, bookings.ErrBookingNotFound):
			// один ответ и для отсутствующего бронирования, и для чужого e-mail
			h.logger.Warn("GET /bookings - Booking not found: id=%q, confirmation=%q", query.Get("id"), query.Get("confirmation"))
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to get booking: error=%v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /bookings - Booking retrieved successfully: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
