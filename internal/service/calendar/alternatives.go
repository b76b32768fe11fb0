package calendar

import (
	"sort"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// SuggestAlternatives ищет до count свободных слотов в окне [date, date+7 дней]
// Ближе по времени суток важнее, чем ближе по дате: тот же час на следующий день
// идет раньше другого часа в тот же день. При равенстве выигрывает более ранний слот
func (s *Service) SuggestAlternatives(date, slotTime string, bookings []*domain.Booking, count int) []domain.CalendarSlot {
	if count <= 0 {
		count = domain.DefaultAlternativesCount
	}

	now := s.timeProvider.Now()

	day, err := s.ParseDate(date)
	if err != nil {
		return []domain.CalendarSlot{}
	}
	requested, err := types.NewTimeStringFromString(slotTime)
	if err != nil {
		return []domain.CalendarSlot{}
	}
	requestedMinutes, _ := requested.Minutes()

	slots := generateSlots(s.holder.Get(), now, day, day.AddDate(0, 0, domain.AlternativesWindowDays), bookings)

	candidates := make([]domain.CalendarSlot, 0, len(slots))
	for _, slot := range slots {
		if slot.Available {
			candidates = append(candidates, slot)
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		di := distance(candidates[i], requestedMinutes)
		dj := distance(candidates[j], requestedMinutes)
		if di != dj {
			return di < dj
		}
		return candidates[i].Datetime.Before(candidates[j].Datetime)
	})

	if len(candidates) > count {
		candidates = candidates[:count]
	}
	return candidates
}

func distance(slot domain.CalendarSlot, requestedMinutes int) int {
	d := slot.Datetime.Hour()*60 + slot.Datetime.Minute() - requestedMinutes
	if d < 0 {
		return -d
	}
	return d
}
