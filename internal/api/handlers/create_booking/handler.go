package create_booking

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	createBooking "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgValidationFailed   = "Validation failed"
	msgSlotNotAvailable   = "Time slot is not available"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var (
			validationErr *createBooking.ValidationError
			conflictErr   *createBooking.ConflictError
		)
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:    msgValidationFailed,
				Details:  validationErr.Errors,
				Warnings: validationErr.Warnings,
				Reason:   validationErr.Reason,
			})

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.PreferredDate, req.PreferredTime)
			handlers.RespondErrorBody(w, http.StatusConflict, handlers.ErrorResponse{
				Error:                 msgSlotNotAvailable,
				Reason:                conflictErr.Reason,
				SuggestedAlternatives: handlers.FromDomainSlots(conflictErr.Alternatives),
			})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, time=%s, error=%v",
				req.PreferredDate, req.PreferredTime, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	status := http.StatusCreated
	if result.Duplicate {
		status = http.StatusOK
	}

	h.logger.Info("POST /bookings - Booking accepted: booking_id=%s, confirmation=%s, duplicate=%t",
		result.BookingID, result.ConfirmationNumber, result.Duplicate)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
