package list_slots

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	listSlots "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/list_slots"
)

// SlotsResponse HTTP response model
type SlotsResponse struct {
	StartDate      string                 `json:"startDate"`
	EndDate        string                 `json:"endDate"`
	Slots          []handlers.SlotPayload `json:"slots"`
	AvailableCount int                    `json:"availableCount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *listSlots.Response) *SlotsResponse {
	return &SlotsResponse{
		StartDate:      resp.StartDate,
		EndDate:        resp.EndDate,
		Slots:          handlers.FromDomainSlots(resp.Slots),
		AvailableCount: resp.AvailableCount,
	}
}
