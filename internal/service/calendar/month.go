package calendar

import (
	"fmt"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// FormatMonth собирает сетку месяца: каждый день месяца, его слоты и причину блокировки
func (s *Service) FormatMonth(month, year int, timezone string, bookings []*domain.Booking) (*domain.CalendarMonth, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d is out of range 1..12", ErrInvalidMonth, month)
	}
	if year < 1970 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d is out of range", ErrInvalidMonth, year)
	}

	cfg := s.holder.Get()
	now := s.timeProvider.Now()
	loc := now.Location()
	today := dateOnly(now, loc)

	if timezone == "" {
		timezone = cfg.BusinessHours.Timezone
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	slots := generateSlots(cfg, now, first, last, bookings)

	byDate := make(map[string][]domain.DaySlot)
	availableSlots := 0
	for _, slot := range slots {
		byDate[slot.Date] = append(byDate[slot.Date], domain.DaySlot{
			Time:      slot.Time,
			Available: slot.Available,
			Reason:    slot.Reason,
		})
		if slot.Available {
			availableSlots++
		}
	}

	days := make([]domain.CalendarDay, 0, last.Day())
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		weekday := int(day.Weekday())

		timeSlots := byDate[date]
		if timeSlots == nil {
			timeSlots = make([]domain.DaySlot, 0)
		}

		calendarDay := domain.CalendarDay{
			Date:      date,
			DayOfWeek: weekday,
			TimeSlots: timeSlots,
		}

		for _, ts := range timeSlots {
			if ts.Available {
				calendarDay.Available = true
				break
			}
		}

		// "Past date" важнее "Weekend"
		switch {
		case day.Before(today):
			calendarDay.IsBlocked = true
			calendarDay.BlockReason = BlockReasonPast
		case !cfg.IsWorkingDay(weekday):
			calendarDay.IsBlocked = true
			calendarDay.BlockReason = BlockReasonWeekend
		}

		days = append(days, calendarDay)
	}

	return &domain.CalendarMonth{
		Month:          month,
		Year:           year,
		Timezone:       timezone,
		Days:           days,
		AvailableSlots: availableSlots,
		BusinessHours:  cfg.BusinessHours,
	}, nil
}
