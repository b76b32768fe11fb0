package calendar

import (
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain")

// GenerateSlotsForRange генерирует слоты для дней с startDate по endDate включительно
// Нерабочие дни и дни вне окна бронирования [advanceBookingDays, maxBookingDays] пропускаются целиком
func (s *Service) GenerateSlotsForRange(startDate, endDate time.Time, bookings []*domain.Booking) []domain.CalendarSlot {
	return generateSlots(s.holder.Get(), s.timeProvider.Now(), startDate, endDate, bookings)
}

func generateSlots(
	cfg domain.CalendarConfig,
	now time.Time,
	startDate, endDate time.Time,
	bookings []*domain.Booking,
) []domain.CalendarSlot {
	loc := now.Location()
	today := dateOnly(now, loc)
	first := dateOnly(startDate, loc)
	last := dateOnly(endDate, loc)

	step := cfg.SlotDuration + cfg.BufferTime

	slots := make([]domain.CalendarSlot, 0)

	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		if !cfg.IsWorkingDay(int(day.Weekday())) {
			continue
		}

		diff := diffDays(day, today)
		if diff < cfg.AdvanceBookingDays || diff > cfg.MaxBookingDays {
			continue
		}

		date := day.Format(domain.DateFormat)

		slotTime := cfg.BusinessHours.Start
		for {
			// Слот, который не помещается до закрытия, не создается
			slotEnd, err := slotTime.AddMinutes(cfg.SlotDuration)
			if err != nil || slotEnd.IsAfter(cfg.BusinessHours.End) {
				break
			}
			datetime, err := slotTime.OnDate(day)
			if err != nil {
				break
			}

			check := checkSlotAt(now, date, slotTime, datetime, bookings)
			slots = append(slots, domain.CalendarSlot{
				Date:      date,
				Time:      slotTime.String(),
				Datetime:  datetime,
				Available: check.Available,
				Reason:    check.Reason,
			})

			if slotTime, err = slotTime.AddMinutes(step); err != nil {
				break
			}
		}
	}

	return slots
}
