package models

import (
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// Request модели

// UpdateSettingsRequest частичное обновление конфигурации календаря
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	AdminID            string
	BusinessHoursStart *string
	BusinessHoursEnd   *string
	Timezone           *string
	WorkingDays        []int // nil - не менять
	SlotDuration       *int
	BufferTime         *int
	AdvanceBookingDays *int
	MaxBookingDays     *int
}

// IsEmpty возвращает true, если обновлять нечего
func (r *UpdateSettingsRequest) IsEmpty() bool {
	return r.BusinessHoursStart == nil && r.BusinessHoursEnd == nil && r.Timezone == nil &&
		r.WorkingDays == nil && r.SlotDuration == nil && r.BufferTime == nil &&
		r.AdvanceBookingDays == nil && r.MaxBookingDays == nil
}

// ApplyToConfig применяет обновления к конфигурации
// Время нормализуется ("9:00" -> "09:00"); некорректное значение отловит Validate
func (r *UpdateSettingsRequest) ApplyToConfig(cfg *domain.CalendarConfig) {
	if r.BusinessHoursStart != nil {
		cfg.BusinessHours.Start = normalizeTime(*r.BusinessHoursStart)
	}
	if r.BusinessHoursEnd != nil {
		cfg.BusinessHours.End = normalizeTime(*r.BusinessHoursEnd)
	}
	if r.Timezone != nil {
		cfg.BusinessHours.Timezone = *r.Timezone
	}
	if r.WorkingDays != nil {
		cfg.WorkingDays = append([]int(nil), r.WorkingDays...)
	}
	if r.SlotDuration != nil {
		cfg.SlotDuration = *r.SlotDuration
	}
	if r.BufferTime != nil {
		cfg.BufferTime = *r.BufferTime
	}
	if r.AdvanceBookingDays != nil {
		cfg.AdvanceBookingDays = *r.AdvanceBookingDays
	}
	if r.MaxBookingDays != nil {
		cfg.MaxBookingDays = *r.MaxBookingDays
	}
}

func normalizeTime(s string) types.TimeString {
	if ts, err := types.NewTimeStringFromString(s); err == nil {
		return ts
	}
	return types.TimeString(s)
}

// Response модели

// BusinessHoursResponse рабочие часы
type BusinessHoursResponse struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Timezone string `json:"timezone"`
}

// SettingsResponse текущая конфигурация календаря
type SettingsResponse struct {
	BusinessHours      BusinessHoursResponse `json:"businessHours"`
	WorkingDays        []int                 `json:"workingDays"`
	SlotDuration       int                   `json:"slotDuration"`
	BufferTime         int                   `json:"bufferTime"`
	AdvanceBookingDays int                   `json:"advanceBookingDays"`
	MaxBookingDays     int                   `json:"maxBookingDays"`
}

// Методы конвертации

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg domain.CalendarConfig) *SettingsResponse {
	workingDays := append([]int{}, cfg.WorkingDays...)
	return &SettingsResponse{
		BusinessHours: BusinessHoursResponse{
			Start:    cfg.BusinessHours.Start.String(),
			End:      cfg.BusinessHours.End.String(),
			Timezone: cfg.BusinessHours.Timezone,
		},
		WorkingDays:        workingDays,
		SlotDuration:       cfg.SlotDuration,
		BufferTime:         cfg.BufferTime,
		AdvanceBookingDays: cfg.AdvanceBookingDays,
		MaxBookingDays:     cfg.MaxBookingDays,
	}
}
