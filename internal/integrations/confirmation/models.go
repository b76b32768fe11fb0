package confirmation

import (
	"fmt"
	"strings"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/integrations/email"
)

// TypeBookingConfirmation тип задачи asynq
const TypeBookingConfirmation = "booking:confirmation"

// Payload данные задачи подтверждения бронирования
type Payload struct {
	BookingID          string  `json:"bookingId"`
	ConfirmationNumber string  `json:"confirmationNumber"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	Company            *string `json:"company,omitempty"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Timezone           string  `json:"timezone"`
	BookingType        string  `json:"bookingType"`
}

// PayloadFromBooking собирает payload из бронирования
func PayloadFromBooking(b *domain.Booking) Payload {
	return Payload{
		BookingID:          b.ID,
		ConfirmationNumber: b.ConfirmationNumber,
		Name:               b.Name,
		Email:              b.Email,
		Company:            b.Company,
		Date:               b.DateKey(),
		Time:               b.PreferredTime.String(),
		Timezone:           b.Timezone,
		BookingType:        string(b.BookingType),
	}
}

// Validate проверяет обязательные поля
func (p Payload) Validate() error {
	if p.BookingID == "" || p.Email == "" || p.ConfirmationNumber == "" {
		return fmt.Errorf("%w: bookingId, email and confirmationNumber are required", ErrInvalidPayload)
	}
	return nil
}

// Message формирует письмо-подтверждение
func (p Payload) Message() email.Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", p.Name)
	fmt.Fprintf(&b, "We received your %s request for %s at %s (%s).\n", p.BookingType, p.Date, p.Time, p.Timezone)
	fmt.Fprintf(&b, "Your confirmation number is %s.\n\n", p.ConfirmationNumber)
	b.WriteString("Our team will review the request and follow up shortly. ")
	b.WriteString("Keep the confirmation number to reschedule or cancel.\n")

	return email.Message{
		To:      p.Email,
		ToName:  p.Name,
		Subject: fmt.Sprintf("Booking request received (%s)", p.ConfirmationNumber),
		Text:    b.String(),
	}
}
