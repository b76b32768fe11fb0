package email

import "errors"

var (
	// ErrNotConfigured возвращается, если отправитель не настроен (нет ключа API)
	ErrNotConfigured = errors.New("email client: sender not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("email client: internal error")

	// ErrInvalidResponse возвращается при ошибочном статусе от SendGrid
	ErrInvalidResponse = errors.New("email client: invalid response")
)
