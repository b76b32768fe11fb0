package create_booking

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	AdminID       string // администратор (tenant); пусто - администратор по умолчанию
	PreferredDate string // "2025-06-02"
	PreferredTime string // "10:00"
	Timezone      string // метка часового пояса; пусто - из конфигурации
	Name          string
	Email         string
	Company       *string
	Phone         *string
	Requirements  *string
	BookingType   string // пусто - demo
}

// ScheduledFor дата и время бронирования
type ScheduledFor struct {
	Date     string
	Time     string
	Timezone string
}

// Response модель ответа с созданным (или уже существующим) бронированием
type Response struct {
	BookingID          string
	Status             domain.BookingStatus
	ConfirmationNumber string
	ScheduledFor       ScheduledFor
	Duplicate          bool // true - найдено существующее бронирование с тем же e-mail и слотом
	NextSteps          []string
	Warnings           []string
}

// input проверенные и очищенные данные запроса
type input struct {
	adminID      string
	date         string
	slotTime     string
	timezone     string
	name         string
	email        string
	company      *string
	phone        *string
	requirements *string
	bookingType  domain.BookingType
	warnings     []string
}
