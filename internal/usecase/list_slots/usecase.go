package list_slots

import (
	"context"
	"fmt"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// UseCase use case для получения слотов за диапазон дат
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

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация диапазона
	start, end, err := resolveRange(req, uc.calendar.Now(), uc.calendar.ParseDate)
	if err != nil {
		uc.logger.Warn("ListSlots: validation failed: %v", err)
		return nil, err
	}

	adminID := req.AdminID
	if adminID == "" {
		adminID = uc.defaultAdminID
	}

	uc.logger.Info("ListSlots: admin=%s, range=%s..%s", adminID,
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	// 2. Активные бронирования диапазона
	bookings, err := uc.bookingRepo.FindActiveInRange(ctx, adminID, start, end)
	if err != nil {
		uc.logger.Error("ListSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Генерация слотов
	slots := uc.calendar.GenerateSlotsForRange(start, end, bookings)

	available := 0
	result := make([]domain.CalendarSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			available++
		} else if req.OnlyFree {
			continue
		}
		result = append(result, slot)
	}

	uc.logger.Info("ListSlots: %d slots generated, %d available", len(slots), available)

	return &Response{
		StartDate:      start.Format(domain.DateFormat),
		EndDate:        end.Format(domain.DateFormat),
		Slots:          result,
		AvailableCount: available,
	}, nil
}
