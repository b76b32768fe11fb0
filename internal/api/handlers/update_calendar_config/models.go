package update_calendar_config

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings/models"
)

// BusinessHoursRequest частичное изменение рабочих часов
type BusinessHoursRequest struct {
	Start    *string `json:"start,omitempty"`
	End      *string `json:"end,omitempty"`
	Timezone *string `json:"timezone,omitempty"`
}

// UpdateCalendarConfigRequest HTTP request model
type UpdateCalendarConfigRequest struct {
	BusinessHours      *BusinessHoursRequest `json:"businessHours,omitempty"`
	WorkingDays        []int                 `json:"workingDays,omitempty"`
	SlotDuration       *int                  `json:"slotDuration,omitempty"`
	BufferTime         *int                  `json:"bufferTime,omitempty"`
	AdvanceBookingDays *int                  `json:"advanceBookingDays,omitempty"`
	MaxBookingDays     *int                  `json:"maxBookingDays,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCalendarConfigRequest) ToServiceRequest(adminID string) *models.UpdateSettingsRequest {
	req := &models.UpdateSettingsRequest{
		AdminID:            adminID,
		WorkingDays:        r.WorkingDays,
		SlotDuration:       r.SlotDuration,
		BufferTime:         r.BufferTime,
		AdvanceBookingDays: r.AdvanceBookingDays,
		MaxBookingDays:     r.MaxBookingDays,
	}
	if r.BusinessHours != nil {
		req.BusinessHoursStart = r.BusinessHours.Start
		req.BusinessHoursEnd = r.BusinessHours.End
		req.Timezone = r.BusinessHours.Timezone
	}
	return req
}
