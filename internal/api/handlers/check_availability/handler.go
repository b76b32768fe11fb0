package check_availability

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	checkAvailability "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingFields      = "Date and time are required"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingFields)

		default:
			h.logger.Error("POST /availability - Failed to check slot: date=%s, time=%s, error=%v", req.Date, req.Time, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("POST /availability - date=%s, time=%s, available=%t", req.Date, req.Time, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
