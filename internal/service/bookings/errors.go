package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	// (в том числе при несовпадении e-mail или администратора)
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrNotFoundOrCancelled возвращается при отмене отсутствующего или уже неактивного бронирования
	ErrNotFoundOrCancelled = errors.New("bookings: booking not found or already cancelled")

	// ErrInvalidStatusTransition возвращается при недопустимой смене статуса
	ErrInvalidStatusTransition = errors.New("bookings: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
