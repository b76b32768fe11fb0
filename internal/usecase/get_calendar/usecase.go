package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// UseCase use case для получения сетки месяца
type UseCase struct {
	bookingRepo    BookingRepository
	calendar       CalendarService
	defaultAdminID string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, calendar CalendarService, defaultAdminID string, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		calendar:       calendar,
		defaultAdminID: defaultAdminID,
		logger:         logger,
	}
}

// Execute выполняет use case получения сетки месяца
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	now := uc.calendar.Now()
	in, err := normalizeRequest(req, now)
	if err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}
	if in.AdminID == "" {
		in.AdminID = uc.defaultAdminID
	}

	uc.logger.Info("GetCalendar: admin=%s, month=%d, year=%d, type=%s", in.AdminID, in.Month, in.Year, in.BookingType)

	// 2. Активные бронирования месяца (только этого администратора)
	first := time.Date(in.Year, time.Month(in.Month), 1, 0, 0, 0, 0, now.Location())
	last := first.AddDate(0, 1, -1)

	bookings, err := uc.bookingRepo.FindActiveInRange(ctx, in.AdminID, first, last)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Сетка месяца
	month, err := uc.calendar.FormatMonth(in.Month, in.Year, in.Timezone, bookings)
	if err != nil {
		uc.logger.Warn("GetCalendar: failed to format month: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	uc.logger.Info("GetCalendar: %d available slots in %d-%02d", month.AvailableSlots, in.Year, in.Month)

	return &Response{
		Calendar:    month,
		BookingType: domain.BookingType(in.BookingType),
	}, nil
}
