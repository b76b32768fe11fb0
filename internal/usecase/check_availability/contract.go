package check_availability

import (
	"context"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	FindActiveBySlot(ctx context.Context, adminID string, date time.Time, slotTime types.TimeString) ([]*domain.Booking, error)
	FindActiveInRange(ctx context.Context, adminID string, from, to time.Time) ([]*domain.Booking, error)
}

// CalendarService интерфейс вычислений календаря
type CalendarService interface {
	ValidateTimeSlot(date, slotTime, timezone string) domain.SlotValidation
	CheckSlot(date string, slotTime types.TimeString, datetime time.Time, bookings []*domain.Booking) domain.SlotCheck
	SuggestAlternatives(date, slotTime string, bookings []*domain.Booking, count int) []domain.CalendarSlot
	ParseDate(date string) (time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
