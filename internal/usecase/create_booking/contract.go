package create_booking

import (
	"context"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error)
	FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error)
	FindDuplicate(ctx context.Context, adminID, email string, date time.Time, slotTime types.TimeString) (*domain.Booking, error)
}

// CalendarService интерфейс вычислений календаря
type CalendarService interface {
	ValidateTimeSlot(date, slotTime, timezone string) domain.SlotValidation
	SuggestAlternatives(date, slotTime string, bookings []*domain.Booking, count int) []domain.CalendarSlot
	ParseDate(date string) (time.Time, error)
	Config() domain.CalendarConfig
}

// ConfirmationSender интерфейс отправки подтверждения (очередь asynq)
type ConfirmationSender interface {
	SendConfirmation(ctx context.Context, booking *domain.Booking) error
}

// Metrics интерфейс метрик сценария
type Metrics interface {
	IncBookingOutcome(outcome string)
	IncDuplicateGuardError(operation string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// ConfirmationNumberGenerator генератор номеров подтверждения
type ConfirmationNumberGenerator func() (string, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
