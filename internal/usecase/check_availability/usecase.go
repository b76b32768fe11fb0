package check_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// UseCase use case проверки доступности одного слота
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

// Execute валидирует слот, затем проверяет его по активным бронированиям
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	date := strings.TrimSpace(req.Date)
	slotTime := strings.TrimSpace(req.Time)
	adminID := strings.TrimSpace(req.AdminID)
	if adminID == "" {
		adminID = uc.defaultAdminID
	}

	uc.logger.Info("CheckAvailability: admin=%s, date=%s, time=%s", adminID, date, slotTime)

	// 1. Обязательные поля
	if date == "" || slotTime == "" {
		return nil, fmt.Errorf("%w: date and time are required", ErrInvalidInput)
	}

	// 2. Валидатор слота
	if v := uc.calendar.ValidateTimeSlot(date, slotTime, req.Timezone); !v.Valid {
		uc.logger.Info("CheckAvailability: slot %s %s rejected: %s", date, slotTime, v.Reason)
		return &Response{
			Available:    false,
			Reason:       v.Reason,
			Alternatives: uc.alternatives(ctx, adminID, date, slotTime),
		}, nil
	}

	day, err := uc.calendar.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}
	ts, err := types.NewTimeStringFromString(slotTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}
	datetime, err := ts.OnDate(day)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time: %v", ErrInvalidInput, err)
	}

	// 3. Занятость слота
	bookings, err := uc.bookingRepo.FindActiveBySlot(ctx, adminID, day, ts)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings for slot: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	check := uc.calendar.CheckSlot(date, ts, datetime, bookings)
	if check.Available {
		return &Response{Available: true}, nil
	}

	return &Response{
		Available:    false,
		Reason:       check.Reason,
		Alternatives: uc.alternatives(ctx, adminID, date, ts.String()),
	}, nil
}

// alternatives ближайшие свободные слоты; при ошибках возвращает пустой список
func (uc *UseCase) alternatives(ctx context.Context, adminID, date, slotTime string) []domain.CalendarSlot {
	day, err := uc.calendar.ParseDate(date)
	if err != nil || !types.IsValidTimeString(slotTime) {
		return []domain.CalendarSlot{}
	}

	bookings, err := uc.bookingRepo.FindActiveInRange(ctx, adminID, day, day.AddDate(0, 0, domain.AlternativesWindowDays))
	if err != nil {
		uc.logger.Warn("CheckAvailability: failed to load bookings for alternatives: %v", err)
		return []domain.CalendarSlot{}
	}

	return uc.calendar.SuggestAlternatives(date, slotTime, bookings, domain.DefaultAlternativesCount)
}
