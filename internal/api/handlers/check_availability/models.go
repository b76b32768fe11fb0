package check_availability

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/handlers"
	checkAvailability "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/check_availability"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	Date     string `json:"date"` // "2025-06-02"
	Time     string `json:"time"` // "10:00"
	Timezone string `json:"timezone,omitempty"`
	AdminID  string `json:"adminId,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available             bool                   `json:"available"`
	Reason                string                 `json:"reason,omitempty"`
	SuggestedAlternatives []handlers.SlotPayload `json:"suggestedAlternatives,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() *checkAvailability.Request {
	return &checkAvailability.Request{
		AdminID:  r.AdminID,
		Date:     r.Date,
		Time:     r.Time,
		Timezone: r.Timezone,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	out := &CheckAvailabilityResponse{
		Available: resp.Available,
		Reason:    resp.Reason,
	}
	if !resp.Available {
		out.SuggestedAlternatives = handlers.FromDomainSlots(resp.Alternatives)
	}
	return out
}
