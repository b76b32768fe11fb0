package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
)

const (
	msgMissingReference = "Booking ID or confirmation number is required"
	msgNotFound         = "Booking not found or already cancelled"
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

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message string `json:"message"`
}

// Handle DELETE /api/v1/bookings?id=&confirmation=&email=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &models.CancelRequest{
		ID:                 handlers.QueryOptional(r, "id"),
		ConfirmationNumber: handlers.QueryOptional(r, "confirmation"),
		Email:              handlers.QueryOptional(r, "email"),
	}

	err := h.service.Cancel(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings - Missing booking reference")
			handlers.RespondBadRequest(w, msgMissingReference)

		case errors.Is(err, bookings.ErrNotFoundOrCancelled):
			h.logger.Warn("DELETE /bookings - Booking not found or already cancelled: id=%q", query.Get("id"))
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /bookings - Failed to cancel booking: id=%q, error=%v", query.Get("id"), err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /bookings - Booking cancelled successfully: id=%q, confirmation=%q",
		query.Get("id"), query.Get("confirmation"))
	handlers.RespondJSON(w, http.StatusOK, CancelBookingResponse{Message: "Booking cancelled successfully"})
}
