package create_booking

import (
	createBooking "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PreferredDate string  `json:"preferredDate"` // "2025-06-02"
	PreferredTime string  `json:"preferredTime"` // "10:00"
	Timezone      string  `json:"timezone,omitempty"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Company       *string `json:"company,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	BookingType   string  `json:"bookingType,omitempty"`
	Requirements  *string `json:"requirements,omitempty"`
	AdminID       string  `json:"adminId,omitempty"`
}

// ScheduledForResponse дата и время встречи
type ScheduledForResponse struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
}

// BookingCreatedResponse HTTP response model
type BookingCreatedResponse struct {
	BookingID          string               `json:"bookingId"`
	Status             string               `json:"status"`
	ConfirmationNumber string               `json:"confirmationNumber"`
	ScheduledFor       ScheduledForResponse `json:"scheduledFor"`
	Duplicate          bool                 `json:"duplicate,omitempty"`
	NextSteps          []string             `json:"nextSteps"`
	Warnings           []string             `json:"warnings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		AdminID:       r.AdminID,
		PreferredDate: r.PreferredDate,
		PreferredTime: r.PreferredTime,
		Timezone:      r.Timezone,
		Name:          r.Name,
		Email:         r.Email,
		Company:       r.Company,
		Phone:         r.Phone,
		Requirements:  r.Requirements,
		BookingType:   r.BookingType,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *createBooking.Response) *BookingCreatedResponse {
	nextSteps := resp.NextSteps
	if nextSteps == nil {
		nextSteps = []string{}
	}
	warnings := resp.Warnings
	if warnings == nil {
		warnings = []string{}
	}

	return &BookingCreatedResponse{
		BookingID:          resp.BookingID,
		Status:             string(resp.Status),
		ConfirmationNumber: resp.ConfirmationNumber,
		ScheduledFor: ScheduledForResponse{
			Date:     resp.ScheduledFor.Date,
			Time:     resp.ScheduledFor.Time,
			Timezone: resp.ScheduledFor.Timezone,
		},
		Duplicate: resp.Duplicate,
		NextSteps: nextSteps,
		Warnings:  warnings,
	}
}
