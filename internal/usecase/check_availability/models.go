package check_availability

import "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"

// Request проверка одного слота
type Request struct {
	AdminID  string
	Date     string // "2025-06-02"
	Time     string // "10:00"
	Timezone string // метка, на вычисления не влияет
}

// Response результат проверки; Alternatives заполняется только для недоступного слота
type Response struct {
	Available    bool
	Reason       string
	Alternatives []domain.CalendarSlot
}
