package reschedule_booking

import (
	rescheduleBooking "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	BookingID     string `json:"bookingId,omitempty"`
	Confirmation  string `json:"confirmation,omitempty"`
	Email         string `json:"email,omitempty"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`
	Timezone      string `json:"timezone,omitempty"`
}

// ScheduleResponse дата и время встречи
type ScheduleResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	BookingID          string           `json:"bookingId"`
	Status             string           `json:"status"`
	ConfirmationNumber string           `json:"confirmationNumber"`
	ScheduledFor       ScheduleResponse `json:"scheduledFor"`
	PreviousSchedule   ScheduleResponse `json:"previousSchedule"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest() *rescheduleBooking.Request {
	return &rescheduleBooking.Request{
		BookingID:          r.BookingID,
		ConfirmationNumber: r.Confirmation,
		Email:              r.Email,
		PreferredDate:      r.PreferredDate,
		PreferredTime:      r.PreferredTime,
		Timezone:           r.Timezone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	return &RescheduleBookingResponse{
		BookingID:          resp.BookingID,
		Status:             string(resp.Status),
		ConfirmationNumber: resp.ConfirmationNumber,
		ScheduledFor:       fromSchedule(resp.ScheduledFor),
		PreviousSchedule:   fromSchedule(resp.PreviousSchedule),
	}
}

func fromSchedule(s rescheduleBooking.ScheduledFor) ScheduleResponse {
	return ScheduleResponse{Date: s.Date, Time: s.Time, Timezone: s.Timezone}
}
