package get_booking

import (
	"context"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
)

type BookingService interface {
	Lookup(ctx context.Context, req *models.LookupRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
