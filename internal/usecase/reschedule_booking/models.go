package reschedule_booking

import "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"

// Request перенос бронирования; нужен BookingID или ConfirmationNumber
type Request struct {
	BookingID          string
	ConfirmationNumber string
	Email              string // необязателен; при несовпадении бронирование считается не найденным
	PreferredDate      string
	PreferredTime      string
	Timezone           string // пусто - метка бронирования сохраняется
}

// ScheduledFor дата и время бронирования
type ScheduledFor struct {
	Date     string
	Time     string
	Timezone string
}

// Response перенесенное бронирование
type Response struct {
	BookingID          string
	Status             domain.BookingStatus
	ConfirmationNumber string
	ScheduledFor       ScheduledFor
	PreviousSchedule   ScheduledFor
}
