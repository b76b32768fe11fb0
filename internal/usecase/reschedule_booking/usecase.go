package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// UseCase use case переноса бронирования на другой слот
// Защита от дублей при переносе не выполняется
type UseCase struct {
	bookingRepo BookingRepository
	calendar    CalendarService
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, calendar CalendarService, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case переноса бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: id=%s, confirmation=%s, date=%s, time=%s",
		req.BookingID, req.ConfirmationNumber, req.PreferredDate, req.PreferredTime)

	// 1. Валидация входных данных
	bookingID := strings.TrimSpace(req.BookingID)
	number := strings.ToUpper(strings.TrimSpace(req.ConfirmationNumber))
	date := strings.TrimSpace(req.PreferredDate)
	slotTime := strings.TrimSpace(req.PreferredTime)

	if bookingID == "" && number == "" {
		return nil, fmt.Errorf("%w: bookingId or confirmation number is required", ErrInvalidInput)
	}
	if date == "" || slotTime == "" {
		return nil, fmt.Errorf("%w: preferredDate and preferredTime are required", ErrInvalidInput)
	}

	// 2. Находим бронирование
	booking, err := uc.find(ctx, bookingID, number)
	if err != nil {
		return nil, err
	}
	if email := strings.TrimSpace(req.Email); email != "" && !booking.BelongsTo(email) {
		uc.logger.Warn("RescheduleBooking: e-mail mismatch for booking id=%s", booking.ID)
		return nil, ErrBookingNotFound
	}

	// 3. Переносить можно только активные бронирования
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%s has status %s", booking.ID, booking.Status)
		return nil, ErrNotReschedulable
	}

	// 4. Валидация нового слота
	timezone := strings.TrimSpace(req.Timezone)
	if timezone == "" {
		timezone = booking.Timezone
	}
	v := uc.calendar.ValidateTimeSlot(date, slotTime, timezone)
	if !v.Valid {
		uc.logger.Warn("RescheduleBooking: slot %s %s rejected: %s", date, slotTime, v.Reason)
		return nil, &ValidationError{Reason: v.Reason}
	}

	ts, err := types.NewTimeStringFromString(slotTime)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	day, err := uc.calendar.ParseDate(date)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	previous := scheduleOf(booking)

	// 5. Перенос с проверкой занятости в транзакции
	var updated *domain.Booking
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		occupants, err := uc.bookingRepo.FindActiveBySlot(txCtx, booking.AdminID, day, ts)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		for _, o := range occupants {
			if o.ID != booking.ID {
				return bookingRepo.ErrSlotTaken
			}
		}

		updated, err = uc.bookingRepo.Reschedule(txCtx, booking.ID, booking.AdminID, day, ts, timezone)
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, bookingRepo.ErrSlotTaken):
		uc.logger.Warn("RescheduleBooking: slot %s %s is taken", date, ts)
		return nil, uc.conflict(ctx, booking.AdminID, day, ts)
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		// статус изменился между чтением и обновлением
		uc.logger.Warn("RescheduleBooking: booking id=%s is no longer active", booking.ID)
		return nil, ErrNotReschedulable
	case errors.Is(err, ErrInternal):
		uc.logger.Error("RescheduleBooking: %v", err)
		return nil, err
	default:
		uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleBooking: booking id=%s moved from %s %s to %s %s",
		updated.ID, previous.Date, previous.Time, updated.DateKey(), updated.PreferredTime)

	return &Response{
		BookingID:          updated.ID,
		Status:             updated.Status,
		ConfirmationNumber: updated.ConfirmationNumber,
		ScheduledFor:       scheduleOf(updated),
		PreviousSchedule:   previous,
	}, nil
}

func (uc *UseCase) find(ctx context.Context, id, number string) (*domain.Booking, error) {
	var (
		booking *domain.Booking
		err     error
	)
	if id != "" {
		booking, err = uc.bookingRepo.GetByID(ctx, id)
	} else {
		booking, err = uc.bookingRepo.GetByConfirmationNumber(ctx, number)
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking not found (id=%q, confirmation=%q)", id, number)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking: %v", err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

func (uc *UseCase) conflict(ctx context.Context, adminID string, day time.Time, ts types.TimeString) error {
	date := day.Format(domain.DateFormat)
	bookings, err := uc.bookingRepo.FindActiveInRange(ctx, adminID, day, day.AddDate(0, 0, domain.AlternativesWindowDays))
	if err != nil {
		uc.logger.Warn("RescheduleBooking: failed to load bookings for alternatives: %v", err)
		return &ConflictError{Reason: "Time slot is already booked", Alternatives: []domain.CalendarSlot{}}
	}

	return &ConflictError{
		Reason:       "Time slot is already booked",
		Alternatives: uc.calendar.SuggestAlternatives(date, ts.String(), bookings, domain.DefaultAlternativesCount),
	}
}

func scheduleOf(b *domain.Booking) ScheduledFor {
	return ScheduledFor{
		Date:     b.DateKey(),
		Time:     b.PreferredTime.String(),
		Timezone: b.Timezone,
	}
}
