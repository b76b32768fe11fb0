package mongobooking

import (
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// bookingDocument хранимое представление бронирования
// occupiesSlot дублирует статус и нужен для частичного уникального индекса
type bookingDocument struct {
	ID                 string     `bson:"_id"`
	AdminID            string     `bson:"adminId"`
	PreferredDate      string     `bson:"preferredDate"`
	PreferredTime      string     `bson:"preferredTime"`
	Timezone           string     `bson:"timezone"`
	Status             string     `bson:"status"`
	OccupiesSlot       bool       `bson:"occupiesSlot"`
	BookingType        string     `bson:"bookingType"`
	Priority           string     `bson:"priority"`
	Name               string     `bson:"name"`
	Email              string     `bson:"email"`
	EmailLower         string     `bson:"emailLower"`
	Company            *string    `bson:"company,omitempty"`
	Phone              *string    `bson:"phone,omitempty"`
	Requirements       *string    `bson:"requirements,omitempty"`
	ConfirmationNumber string     `bson:"confirmationNumber"`
	AdminNotes         *string    `bson:"adminNotes,omitempty"`
	CancelledAt        *time.Time `bson:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt"`
}

func fromDomain(b *domain.Booking) *bookingDocument {
	return &bookingDocument{
		ID:                 b.ID,
		AdminID:            b.AdminID,
		PreferredDate:      b.DateKey(),
		PreferredTime:      b.PreferredTime.String(),
		Timezone:           b.Timezone,
		Status:             string(b.Status),
		OccupiesSlot:       b.OccupiesSlot(),
		BookingType:        string(b.BookingType),
		Priority:           string(b.Priority),
		Name:               b.Name,
		Email:              b.Email,
		EmailLower:         normalizeEmail(b.Email),
		Company:            b.Company,
		Phone:              b.Phone,
		Requirements:       b.Requirements,
		ConfirmationNumber: b.ConfirmationNumber,
		AdminNotes:         b.AdminNotes,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

func (d *bookingDocument) toDomain() (*domain.Booking, error) {
	date, err := time.Parse(domain.DateFormat, d.PreferredDate)
	if err != nil {
		return nil, err
	}
	slotTime, err := types.NewTimeStringFromString(d.PreferredTime)
	if err != nil {
		return nil, err
	}

	return &domain.Booking{
		ID:                 d.ID,
		AdminID:            d.AdminID,
		PreferredDate:      date,
		PreferredTime:      slotTime,
		Timezone:           d.Timezone,
		Status:             domain.BookingStatus(d.Status),
		BookingType:        domain.BookingType(d.BookingType),
		Priority:           domain.Priority(d.Priority),
		Name:               d.Name,
		Email:              d.Email,
		Company:            d.Company,
		Phone:              d.Phone,
		Requirements:       d.Requirements,
		ConfirmationNumber: d.ConfirmationNumber,
		AdminNotes:         d.AdminNotes,
		CancelledAt:        d.CancelledAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}, nil
}
