package calendar

import (
	"fmt"
	"regexp"
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateTimeSlot проверяет формат и бизнес-ограничения предложенных даты и времени
// Проверки выполняются по порядку, возвращается первая нарушенная
// Существующие бронирования не учитываются. Часовой пояс принимается только как метка
func (s *Service) ValidateTimeSlot(date, slotTime, timezone string) (result domain.SlotValidation) {
	defer func() {
		if r := recover(); r != nil {
			result = domain.SlotValidation{Valid: false, Reason: ReasonValidationFailed}
		}
	}()

	cfg := s.holder.Get()
	now := s.timeProvider.Now()
	return validateSlot(cfg, now, date, slotTime)
}

func validateSlot(cfg domain.CalendarConfig, now time.Time, date, slotTime string) domain.SlotValidation {
	loc := now.Location()

	// 1. Формат даты
	if !datePattern.MatchString(date) {
		return invalid(ReasonInvalidDateFormat)
	}

	// 2. Формат времени
	if !types.IsCanonicalTimeString(slotTime) {
		return invalid(ReasonInvalidTimeFormat)
	}

	// 3. Дата и время образуют реальный момент (2025-02-30 отклоняется)
	day, err := time.ParseInLocation(domain.DateFormat, date, loc)
	if err != nil {
		return invalid(ReasonInvalidDateTime)
	}
	ts, err := types.NewTimeStringFromString(slotTime)
	if err != nil {
		return invalid(ReasonInvalidDateTime)
	}
	slotAt, err := ts.OnDate(day)
	if err != nil {
		return invalid(ReasonInvalidDateTime)
	}

	// 4. Строго в будущем
	if !slotAt.After(now) {
		return invalid(ReasonPastDateTime)
	}

	// 5. Рабочий день
	weekday := slotAt.Weekday()
	if !cfg.IsWorkingDay(int(weekday)) {
		if weekday == time.Saturday || weekday == time.Sunday {
			return invalid(ReasonWeekend)
		}
		return invalid(ReasonNonWorkingDay)
	}

	// 6. Рабочие часы, конец не включается
	if ts.IsBefore(cfg.BusinessHours.Start) || !ts.IsBefore(cfg.BusinessHours.End) {
		return invalid(fmt.Sprintf("Time must be between %s and %s",
			cfg.BusinessHours.Start, cfg.BusinessHours.End))
	}

	diff := diffDays(slotAt, dateOnly(now, loc))

	// 7. Минимальный срок
	if diff < cfg.AdvanceBookingDays {
		return invalid(fmt.Sprintf("Bookings must be made at least %d day(s) in advance", cfg.AdvanceBookingDays))
	}

	// 8. Максимальный срок
	if diff > cfg.MaxBookingDays {
		return invalid(fmt.Sprintf("Bookings cannot be made more than %d days in advance", cfg.MaxBookingDays))
	}

	return domain.SlotValidation{Valid: true}
}

func invalid(reason string) domain.SlotValidation {
	return domain.SlotValidation{Valid: false, Reason: reason}
}
