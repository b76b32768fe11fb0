package list_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	listSlots "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/list_slots"
)

const (
	msgInvalidParams = "Invalid query parameters"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/slots
// Query params: startDate, endDate, adminId, onlyAvailable (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	onlyFree := false
	if raw := query.Get("onlyAvailable"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /availability/slots - Invalid onlyAvailable: %v", err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidParams,
				Details: []string{"onlyAvailable must be true or false"},
			})
			return
		}
		onlyFree = parsed
	}

	req := &listSlots.Request{
		AdminID:   query.Get("adminId"),
		StartDate: query.Get("startDate"),
		EndDate:   query.Get("endDate"),
		OnlyFree:  onlyFree,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, listSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid range: %v", err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidParams,
				Details: []string{err.Error()},
			})

		default:
			h.logger.Error("GET /availability/slots - Failed to list slots: error=%v", err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Slots listed: range=%s..%s, count=%d",
		result.StartDate, result.EndDate, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
