package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

var (
	// ErrValidation возвращается, когда запрос не прошел валидацию
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrSlotNotAvailable возвращается, когда слот занят другим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: time slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ValidationError все найденные ошибки валидации и предупреждения
// Reason заполняется, если отказал валидатор слота (бизнес-правило)
type ValidationError struct {
	Errors   []string
	Warnings []string
	Reason   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Errors, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ConflictError слот занят; содержит предложенные альтернативы
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
