package reschedule_booking

import (
	"errors"
	"fmt"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

var (
	// ErrInvalidInput возвращается, если не указаны бронирование, дата или время
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrNotReschedulable возвращается для отмененных и завершенных бронирований
	ErrNotReschedulable = errors.New("reschedule_booking: only pending or confirmed bookings can be rescheduled")

	// ErrInvalidSlot возвращается, когда новый слот не прошел валидацию
	ErrInvalidSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrSlotNotAvailable возвращается, когда новый слот занят другим бронированием
	ErrSlotNotAvailable = errors.New("reschedule_booking: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)

// ConflictError новый слот занят; содержит предложенные альтернативы
type ConflictError struct {
	Reason       string
	Alternatives []domain.CalendarSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: %s", ErrSlotNotAvailable, e.Reason)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}

// ValidationError новый слот отклонен валидатором
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrInvalidSlot, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSlot
}
