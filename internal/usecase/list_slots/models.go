package list_slots

import "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"

// Request модель запроса списка слотов
// Пустые даты: с сегодняшнего дня на DefaultSlotRangeDays вперед
type Request struct {
	AdminID   string
	StartDate string // YYYY-MM-DD
	EndDate   string // YYYY-MM-DD, включительно
	OnlyFree  bool
}

// Response модель ответа
type Response struct {
	StartDate      string
	EndDate        string
	Slots          []domain.CalendarSlot
	AvailableCount int
}
