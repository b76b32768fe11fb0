package get_calendar

import (
	"errors"
	"net/http"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	getCalendar "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/get_calendar"
)

const (
	msgInvalidMonth = "Invalid month or year"
	msgInvalidInput = "Invalid calendar request"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: month, year (по умолчанию текущие), timezone, adminId, bookingType
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	month, err := handlers.QueryInt(r, "month", 0)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}
	year, err := handlers.QueryInt(r, "year", 0)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	query := r.URL.Query()
	req := &getCalendar.Request{
		AdminID:     query.Get("adminId"),
		Month:       month,
		Year:        year,
		Timezone:    query.Get("timezone"),
		BookingType: query.Get("bookingType"),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondErrorBody(w, http.StatusBadRequest, handlers.ErrorResponse{
				Error:   msgInvalidInput,
				Details: []string{err.Error()},
			})

		default:
			h.logger.Error("GET /availability - Failed to build calendar: month=%d, year=%d, error=%v", month, year, err)
			handlers.RespondInternalError(w, err)
		}
		return
	}

	h.logger.Info("GET /availability - Calendar built: month=%d, year=%d, available_slots=%d",
		result.Calendar.Month, result.Calendar.Year, result.Calendar.AvailableSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
