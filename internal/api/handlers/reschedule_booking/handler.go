package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	rescheduleBooking "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidInput       = "Booking reference, preferredDate and preferredTime are required"
	msgNotFound           = "Booking not found"
	msgNotReschedulable   = "Only pending or confirmed bookings can be rescheduled"
	msgInvalidSlot        = "Invalid time slot"
	msgSlotNotAvailable   = "Time slot is not available"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var (
			validationErr *rescheduleBooking.ValidationError
			conflictErr   *rescheduleBooking.ConflictError
		)
		switch {
		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings - Booking not found: id=%q, confirmation=%q", req.BookingID, req.Confirmation)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrNotReschedulable):
			h.logger.Warn("PUT /bookings - Booking is not active: id=%q, confirmation=%q", req.BookingID, req.Confirmation)
			handlers.RespondConflict(w, msgNotReschedulable)

		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /bookings - Invalid slot: %s", validationErr.Reason)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:  msgInvalidSlot,
				Reason: validationErr.Reason,
			})

		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /bookings - Slot not available: date=%s, time=%s", req.PreferredDate, req.PreferredTime)
			handlers.RespondErrorBody(w, http.StatusConflict, handlers.ErrorResponse{
				Error:                 msgSlotNotAvailable,
				Reason:                conflictErr.Reason,
				SuggestedAlternatives: handlers.FromDomainSlots(conflictErr.Alternatives),
			})

		default:
			h.logger.Error("PUT /bookings - Failed to reschedule booking: id=%q, error=%v", req.BookingID, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("PUT /bookings - Booking rescheduled successfully: booking_id=%s", result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
