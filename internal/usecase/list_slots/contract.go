package list_slots

import (
	"context"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error)
}

// CalendarService интерфейс вычислений календаря
type CalendarService interface {
	GenerateSlotsForRange(startDate, endDate time.Time, bookings []*domain.Booking) []domain.CalendarSlot
	ParseDate(date string) (time.Time, error)
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
