package get_calendar

import (
	getCalendar "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/get_calendar"
)

// TimeSlotResponse слот внутри дня
type TimeSlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// CalendarDayResponse день сетки
type CalendarDayResponse struct {
	Date        string             `json:"date"`
	DayOfWeek   int                `json:"dayOfWeek"`
	Available   bool               `json:"available"`
	TimeSlots   []TimeSlotResponse `json:"timeSlots"`
	IsBlocked   bool               `json:"isBlocked"`
	BlockReason string             `json:"blockReason,omitempty"`
}

// BusinessHoursResponse рабочие часы
type BusinessHoursResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Month          int                   `json:"month"`
	Year           int                   `json:"year"`
	Timezone       string                `json:"timezone"`
	BookingType    string                `json:"bookingType"`
	Days           []CalendarDayResponse `json:"days"`
	AvailableSlots int                   `json:"availableSlots"`
	BusinessHours  BusinessHoursResponse `json:"businessHours"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	month := resp.Calendar
	out := &CalendarResponse{
		Month:          month.Month,
		Year:           month.Year,
		Timezone:       month.Timezone,
		BookingType:    string(resp.BookingType),
		Days:           make([]CalendarDayResponse, 0, len(month.Days)),
		AvailableSlots: month.AvailableSlots,
		BusinessHours: BusinessHoursResponse{
			Start:    month.BusinessHours.Start.String(),
			End:      month.BusinessHours.End.String(),
			Timezone: month.BusinessHours.Timezone,
		},
	}

	for _, day := range month.Days {
		slots := make([]TimeSlotResponse, 0, len(day.TimeSlots))
		for _, s := range day.TimeSlots {
			slots = append(slots, TimeSlotResponse{Time: s.Time, Available: s.Available, Reason: s.Reason})
		}
		out.Days = append(out.Days, CalendarDayResponse{
			Date:        day.Date,
			DayOfWeek:   day.DayOfWeek,
			Available:   day.Available,
			TimeSlots:   slots,
			IsBlocked:   day.IsBlocked,
			BlockReason: day.BlockReason,
		})
	}

	return out
}
