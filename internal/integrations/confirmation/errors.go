package confirmation

import "errors"

var (
	// ErrInvalidPayload возвращается при некорректном payload задачи
	ErrInvalidPayload = errors.New("confirmation: invalid payload")

	// ErrEnqueue возвращается, если задачу не удалось поставить в очередь
	ErrEnqueue = errors.New("confirmation: failed to enqueue task")

	// ErrDelivery возвращается, если письмо не удалось отправить
	ErrDelivery = errors.New("confirmation: failed to deliver")
)
