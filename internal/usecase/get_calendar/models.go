package get_calendar

import "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"

// Request модель запроса сетки месяца
// Month и Year равные 0 означают текущий месяц
type Request struct {
	AdminID     string
	Month       int
	Year        int
	Timezone    string
	BookingType string
}

// Response сетка месяца
type Response struct {
	Calendar    *domain.CalendarMonth
	BookingType domain.BookingType
}
