package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	bookingRepo "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/infra/storage/booking"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

const (
	maxCreateAttempts = 3

	outcomeCreated   = "created"
	outcomeDuplicate = "duplicate"
	outcomeConflict  = "conflict"
	outcomeInvalid   = "invalid"
	outcomeError     = "error"
)

// UseCase use case для приема заявки на бронирование
type UseCase struct {
	bookingRepo    BookingRepository
	calendar       CalendarService
	confirmations  ConfirmationSender
	txManager      TransactionManager
	generateNumber ConfirmationNumberGenerator
	metrics        Metrics
	defaultAdminID string
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// confirmations может быть nil: тогда подтверждения не отправляются
func NewUseCase(
	bookingRepo BookingRepository,
	calendar CalendarService,
	confirmations ConfirmationSender,
	txManager TransactionManager,
	generateNumber ConfirmationNumberGenerator,
	metrics Metrics,
	defaultAdminID string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:    bookingRepo,
		calendar:       calendar,
		confirmations:  confirmations,
		txManager:      txManager,
		generateNumber: generateNumber,
		metrics:        metrics,
		defaultAdminID: defaultAdminID,
		logger:         logger,
	}
}

// Execute выполняет use case: валидация, проверка слота, защита от дублей,
// сохранение, подтверждение и ответ. Шаги выполняются строго по порядку
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: admin=%s, date=%s, time=%s, type=%s",
		req.AdminID, req.PreferredDate, req.PreferredTime, req.BookingType)

	// 1. Валидация входных данных (все ошибки сразу)
	in, verr := validateRequest(req, uc.calendar, uc.defaultAdminID)
	if verr != nil {
		uc.metrics.IncBookingOutcome(outcomeInvalid)
		uc.logger.Warn("CreateBooking: validation failed: %v", verr)
		return nil, verr
	}

	date, err := uc.calendar.ParseDate(in.date)
	if err != nil {
		uc.metrics.IncBookingOutcome(outcomeInvalid)
		return nil, &ValidationError{Errors: []string{"Invalid date format. Use YYYY-MM-DD"}, Warnings: in.warnings}
	}
	slotTime := types.TimeString(in.slotTime)

	// 2. Проверка доступности слота: повторная валидация и поиск занятых бронирований
	if v := uc.calendar.ValidateTimeSlot(in.date, in.slotTime, in.timezone); !v.Valid {
		uc.metrics.IncBookingOutcome(outcomeInvalid)
		uc.logger.Warn("CreateBooking: slot %s %s rejected on re-check: %s", in.date, in.slotTime, v.Reason)
		return nil, &ValidationError{Errors: []string{v.Reason}, Warnings: in.warnings, Reason: v.Reason}
	}

	occupants, err := uc.bookingRepo.FindActiveBySlot(ctx, in.adminID, date, slotTime)
	if err != nil {
		uc.metrics.IncBookingOutcome(outcomeError)
		uc.logger.Error("CreateBooking: failed to get bookings for slot: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// Бронирование того же e-mail на этот слот не конфликт, а повторная отправка: ее разбирает шаг 3
	if hasOtherOccupant(occupants, in.email) {
		uc.metrics.IncBookingOutcome(outcomeConflict)
		uc.logger.Warn("CreateBooking: slot %s %s already booked for admin=%s", in.date, in.slotTime, in.adminID)
		return nil, uc.conflict(ctx, in, date)
	}

	// 3. Защита от дублей; ошибки не блокируют бронирование
	duplicate, err := uc.bookingRepo.FindDuplicate(ctx, in.adminID, in.email, date, slotTime)
	switch {
	case err == nil:
		uc.metrics.IncBookingOutcome(outcomeDuplicate)
		uc.logger.Info("CreateBooking: duplicate submission, returning booking id=%s", duplicate.ID)
		return uc.duplicateResponse(duplicate, in), nil
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		// дубля нет
	default:
		uc.metrics.IncDuplicateGuardError("find_duplicate")
		uc.logger.Warn("CreateBooking: duplicate guard failed, continuing without it: %v", err)
	}

	// 4. Сохранение с повторной проверкой слота в транзакции
	created, existing, err := uc.persist(ctx, in, date, slotTime)
	if err != nil {
		var conflictErr *ConflictError
		if errors.As(err, &conflictErr) {
			uc.metrics.IncBookingOutcome(outcomeConflict)
			return nil, err
		}
		uc.metrics.IncBookingOutcome(outcomeError)
		return nil, err
	}
	if existing != nil {
		uc.metrics.IncBookingOutcome(outcomeDuplicate)
		uc.logger.Info("CreateBooking: concurrent duplicate submission, returning booking id=%s", existing.ID)
		return uc.duplicateResponse(existing, in), nil
	}

	uc.logger.Info("CreateBooking: created booking id=%s, confirmation=%s", created.ID, created.ConfirmationNumber)

	// 5. Подтверждение (best effort)
	if uc.confirmations != nil {
		if err := uc.confirmations.SendConfirmation(ctx, created); err != nil {
			uc.logger.Warn("CreateBooking: failed to send confirmation for booking id=%s: %v", created.ID, err)
		}
	}

	// 6. Ответ
	uc.metrics.IncBookingOutcome(outcomeCreated)
	return &Response{
		BookingID:          created.ID,
		Status:             created.Status,
		ConfirmationNumber: created.ConfirmationNumber,
		ScheduledFor: ScheduledFor{
			Date:     created.DateKey(),
			Time:     created.PreferredTime.String(),
			Timezone: created.Timezone,
		},
		NextSteps: buildNextSteps(created),
		Warnings:  nonNil(in.warnings),
	}, nil
}

// persist создает бронирование; existing != nil, если тот же e-mail успел занять слот
func (uc *UseCase) persist(ctx context.Context, in *input, date time.Time, slotTime types.TimeString) (*domain.Booking, *domain.Booking, error) {
	var created, existing *domain.Booking

	for attempt := 1; attempt <= maxCreateAttempts; attempt++ {
		number, err := uc.generateNumber()
		if err != nil {
			uc.logger.Error("CreateBooking: failed to generate confirmation number: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to generate confirmation number: %v", ErrInternal, err)
		}

		err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
			// 4.1. Повторная проверка слота (строки блокируются FOR UPDATE)
			occupants, err := uc.bookingRepo.FindActiveBySlot(txCtx, in.adminID, date, slotTime)
			if err != nil {
				return fmt.Errorf("%w: failed to re-check slot: %v", ErrInternal, err)
			}
			if len(occupants) > 0 {
				if !hasOtherOccupant(occupants, in.email) {
					existing = occupants[0]
					return nil
				}
				return bookingRepo.ErrSlotTaken
			}

			// 4.2. Создаем бронирование
			created, err = uc.bookingRepo.Create(txCtx, newBooking(in, date, slotTime, number))
			return err
		})

		switch {
		case err == nil:
			return created, existing, nil
		case errors.Is(err, bookingRepo.ErrConfirmationNumberTaken):
			uc.logger.Warn("CreateBooking: confirmation number collision (attempt %d/%d)", attempt, maxCreateAttempts)
			continue
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			uc.logger.Warn("CreateBooking: slot %s %s taken before insert", in.date, in.slotTime)
			return nil, nil, uc.conflict(ctx, in, date)
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			return nil, nil, err
		default:
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return nil, nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}
	}

	return nil, nil, fmt.Errorf("%w: could not allocate a unique confirmation number", ErrInternal)
}

// conflict собирает ConflictError с альтернативами; ошибка загрузки альтернатив не критична
func (uc *UseCase) conflict(ctx context.Context, in *input, date time.Time) error {
	bookings, err := uc.bookingRepo.FindActiveInRange(ctx, in.adminID, date, date.AddDate(0, 0, domain.AlternativesWindowDays))
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to load bookings for alternatives: %v", err)
		return &ConflictError{Reason: "Time slot is already booked", Alternatives: []domain.CalendarSlot{}}
	}

	return &ConflictError{
		Reason:       "Time slot is already booked",
		Alternatives: uc.calendar.SuggestAlternatives(in.date, in.slotTime, bookings, domain.DefaultAlternativesCount),
	}
}

func (uc *UseCase) duplicateResponse(b *domain.Booking, in *input) *Response {
	return &Response{
		BookingID:          b.ID,
		Status:             b.Status,
		ConfirmationNumber: b.ConfirmationNumber,
		ScheduledFor: ScheduledFor{
			Date:     b.DateKey(),
			Time:     b.PreferredTime.String(),
			Timezone: b.Timezone,
		},
		Duplicate: true,
		NextSteps: buildNextSteps(b),
		Warnings:  nonNil(in.warnings),
	}
}

func newBooking(in *input, date time.Time, slotTime types.TimeString, number string) *domain.Booking {
	return &domain.Booking{
		AdminID:            in.adminID,
		PreferredDate:      date,
		PreferredTime:      slotTime,
		Timezone:           in.timezone,
		Status:             domain.StatusPending,
		BookingType:        in.bookingType,
		Priority:           domain.DefaultPriority,
		Name:               in.name,
		Email:              in.email,
		Company:            in.company,
		Phone:              in.phone,
		Requirements:       in.requirements,
		ConfirmationNumber: number,
	}
}

func hasOtherOccupant(occupants []*domain.Booking, email string) bool {
	for _, b := range occupants {
		if b.OccupiesSlot() && !b.BelongsTo(email) {
			return true
		}
	}
	return false
}

// buildNextSteps подсказки клиенту после заявки
func buildNextSteps(b *domain.Booking) []string {
	steps := []string{
		fmt.Sprintf("A confirmation email will be sent to %s", b.Email),
		"Our team will review your request and confirm the meeting shortly",
		fmt.Sprintf("Keep your confirmation number %s to reschedule or cancel", b.ConfirmationNumber),
	}
	if b.BookingType == domain.BookingTypeDemo {
		steps = append(steps, "Please make sure you have a stable internet connection for the demo")
	}
	if b.Phone != nil && *b.Phone != "" {
		steps = append(steps, fmt.Sprintf("If we cannot reach you online, we will call you at %s", *b.Phone))
	}
	return steps
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
