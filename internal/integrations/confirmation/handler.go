package confirmation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Handler обработчик задач подтверждения в воркере
type Handler struct {
	sender  Sender
	metrics Metrics
	log     Logger
}

// NewHandler создает обработчик задач
func NewHandler(sender Sender, metrics Metrics, log Logger) *Handler {
	return &Handler{
		sender:  sender,
		metrics: metrics,
		log:     log,
	}
}

// Register регистрирует обработчик в mux воркера
func (h *Handler) Register(mux *asynq.ServeMux) {
	mux.Handle(TypeBookingConfirmation, h)
}

// ProcessTask реализует asynq.Handler
// Некорректный payload не ретраится, ошибки отправки ретраятся asynq
func (h *Handler) ProcessTask(ctx context.Context, task *asynq.Task) error {
	var p Payload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		h.log.Error("ProcessTask: invalid payload: %v", err)
		return fmt.Errorf("%w: %v: %w", ErrInvalidPayload, err, asynq.SkipRetry)
	}
	if err := p.Validate(); err != nil {
		h.log.Error("ProcessTask: %v", err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	if err := h.sender.Send(ctx, p.Message()); err != nil {
		h.metrics.IncConfirmationDelivery(err)
		h.log.Warn("ProcessTask: failed to send confirmation for booking id=%s: %v", p.BookingID, err)
		return fmt.Errorf("%w: booking id=%s: %v", ErrDelivery, p.BookingID, err)
	}

	h.metrics.IncConfirmationDelivery(nil)
	h.log.Info("ProcessTask: confirmation %s sent to %s", p.ConfirmationNumber, p.Email)
	return nil
}
