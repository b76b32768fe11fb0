package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается, если не указаны дата или время
	ErrInvalidInput = errors.New("check_availability: invalid input")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
