package mongobooking

import "errors"

// Ошибки "не найдено", "слот занят" и т.п. общие с PostgreSQL хранилищем (пакет booking),
// чтобы сервисы не зависели от выбранного драйвера

var (
	// ErrIndexes возвращается, если не удалось создать индексы
	ErrIndexes = errors.New("mongobooking: failed to ensure indexes")

	// ErrDecode возвращается при ошибке декодирования документа
	ErrDecode = errors.New("mongobooking: failed to decode document")
)
