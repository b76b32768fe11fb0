package handlers

import (
	"time"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

// FromDomainSlots конвертирует слоты в модели ответа; nil превращается в пустой список
func FromDomainSlots(slots []domain.CalendarSlot) []SlotPayload {
	out := make([]SlotPayload, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotPayload{
			Date:      s.Date,
			Time:      s.Time,
			Datetime:  s.Datetime.Format(time.RFC3339),
			Available: s.Available,
			Reason:    s.Reason,
		})
	}
	return out
}
