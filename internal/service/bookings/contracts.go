package bookings

import (
	"context"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByConfirmationNumber(ctx context.Context, number string) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingFilter, page, pageSize int) (*domain.BookingPage, error)
	UpdateWithAdminNotes(ctx context.Context, id string, update domain.BookingUpdate) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
