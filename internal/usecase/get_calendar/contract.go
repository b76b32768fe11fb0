package get_calendar

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
	FormatMonth(month, year int, timezone string, bookings []*domain.Booking) (*domain.CalendarMonth, error)
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
