package get_calendar

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных месяце, годе или типе встречи
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
