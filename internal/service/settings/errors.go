package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных конфигурации
	ErrInvalidInput = errors.New("settings: invalid input data")

	// ErrEmptyUpdate возвращается, если в запросе нет ни одного поля
	ErrEmptyUpdate = errors.New("settings: nothing to update")
)
