package calendar

import "errors"

var (
	// ErrInvalidConfig возвращается, если новая конфигурация нарушает инварианты
	ErrInvalidConfig = errors.New("calendar: invalid calendar config")

	// ErrInvalidMonth возвращается при некорректных месяце или годе
	ErrInvalidMonth = errors.New("calendar: invalid month or year")
)

// Причины недоступности слота и отказа валидации
const (
	ReasonPast          = "Time slot is in the past"
	ReasonAlreadyBooked = "Time slot is already booked"

	ReasonInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	ReasonInvalidTimeFormat = "Invalid time format. Use HH:MM"
	ReasonInvalidDateTime   = "Invalid date or time"
	ReasonPastDateTime      = "Cannot book time slots in the past"
	ReasonWeekend           = "Bookings are not available on weekends"
	ReasonNonWorkingDay     = "Bookings are not available on this day"
	ReasonValidationFailed  = "Error validating time slot"

	BlockReasonPast    = "Past date"
	BlockReasonWeekend = "Weekend"
)
