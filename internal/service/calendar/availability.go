package calendar

import (
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// CheckSlot проверяет, свободен ли слот относительно переданных бронирований
// Слот занят только бронированиями в статусах pending и confirmed
func (s *Service) CheckSlot(date string, slotTime types.TimeString, datetime time.Time, bookings []*domain.Booking) domain.SlotCheck {
	return checkSlotAt(s.timeProvider.Now(), date, slotTime, datetime, bookings)
}

func checkSlotAt(now time.Time, date string, slotTime types.TimeString, datetime time.Time, bookings []*domain.Booking) domain.SlotCheck {
	if !datetime.After(now) {
		return domain.SlotCheck{Available: false, Reason: ReasonPast}
	}

	if len(FindOccupants(date, slotTime, bookings)) > 0 {
		return domain.SlotCheck{Available: false, Reason: ReasonAlreadyBooked}
	}

	return domain.SlotCheck{Available: true}
}

// FindOccupants возвращает активные бронирования, занимающие слот
func FindOccupants(date string, slotTime types.TimeString, bookings []*domain.Booking) []*domain.Booking {
	occupants := make([]*domain.Booking, 0)
	for _, b := range bookings {
		if b.OccupiesSlot() && b.IsAt(date, slotTime) {
			occupants = append(occupants, b)
		}
	}
	return occupants
}
