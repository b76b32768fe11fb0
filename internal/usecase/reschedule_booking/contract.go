package reschedule_booking

import (
	"context"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error)
	FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error)
	FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, id, adminID string, date time.Time, slotTime types.TimeString, timezone string) (*domain.Booking, error)
}

// CalendarService интерфейс вычислений календаря
type CalendarService interface {
	ValidateTimeSlot(date, slotTime, timezone string) domain.SlotValidation
	SuggestAlternatives(date, slotTime string, bookings []*domain.Booking, count int) []domain.CalendarSlot
	ParseDate(date string) (time.Time, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
