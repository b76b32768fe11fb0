package domain

import (
	"strings"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OccupiesSlot returns true if a booking with this status blocks its time slot
func (s BookingStatus) OccupiesSlot() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo reports whether status may change from s to next
// pending -> confirmed -> completed; pending|confirmed -> cancelled
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// BookingType kind of meeting requested
type BookingType string

const (
	BookingTypeDemo         BookingType = "demo"
	BookingTypeConsultation BookingType = "consultation"
	BookingTypeSupport      BookingType = "support"
	BookingTypeOther        BookingType = "other"
)

// IsValid returns true for known booking types
func (t BookingType) IsValid() bool {
	switch t {
	case BookingTypeDemo, BookingTypeConsultation, BookingTypeSupport, BookingTypeOther:
		return true
	}
	return false
}

// Priority admin-facing triage level
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid returns true for known priorities
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// Booking represents a scheduled meeting request
type Booking struct {
	ID      string
	AdminID string // tenant; every query is scoped by it

	PreferredDate time.Time // date only, time of day is ignored
	PreferredTime types.TimeString
	Timezone      string // label only

	Status      BookingStatus
	BookingType BookingType
	Priority    Priority

	Name         string
	Email        string
	Company      *string
	Phone        *string
	Requirements *string

	ConfirmationNumber string
	AdminNotes         *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DateKey returns the booking date as YYYY-MM-DD
func (b *Booking) DateKey() string {
	return b.PreferredDate.Format(DateFormat)
}

// OccupiesSlot returns true if the booking blocks its time slot
func (b *Booking) OccupiesSlot() bool {
	return b.Status.OccupiesSlot()
}

// IsAt returns true if the booking is scheduled for the given date and time
func (b *Booking) IsAt(date string, t types.TimeString) bool {
	return b.DateKey() == date && b.PreferredTime == t
}

// BelongsTo compares the attendee e-mail case-insensitively
func (b *Booking) BelongsTo(email string) bool {
	return strings.EqualFold(strings.TrimSpace(b.Email), strings.TrimSpace(email))
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled) && b.Status != StatusCancelled
}

// CanBeRescheduled returns true if the booking date and time may change
func (b *Booking) CanBeRescheduled() bool {
	return b.Status.OccupiesSlot()
}

// BookingFilter фильтр списка бронирований
type BookingFilter struct {
	AdminID    *string
	StartDate  *time.Time
	EndDate    *time.Time
	Status     *BookingStatus
	SearchTerm *string // имя, e-mail, компания или номер подтверждения
}

// BookingPage страница результатов
type BookingPage struct {
	Bookings []*Booking
	Total    int64
	Page     int
	PageSize int
	HasMore  bool
}

// NewBookingPage считает HasMore по общему количеству
func NewBookingPage(bookings []*Booking, total int64, page, pageSize int) *BookingPage {
	if bookings == nil {
		bookings = make([]*Booking, 0)
	}
	return &BookingPage{
		Bookings: bookings,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		HasMore:  int64(page*pageSize) < total,
	}
}

// BookingUpdate административное обновление; nil поля не меняются
type BookingUpdate struct {
	AdminNotes *string
	Status     *BookingStatus
	Priority   *Priority
}

// IsEmpty returns true if there is nothing to update
func (u BookingUpdate) IsEmpty() bool {
	return u.AdminNotes == nil && u.Status == nil && u.Priority == nil
}

// ActiveStatuses статусы, занимающие слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
