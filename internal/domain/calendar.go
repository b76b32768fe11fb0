package domain

import (
	"errors"
	"fmt"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/types"
)

// ErrInvalidCalendarConfig is returned when a configuration breaks its invariants
var ErrInvalidCalendarConfig = errors.New("domain: invalid calendar config")

// BusinessHours daily opening window; End is exclusive
type BusinessHours struct {
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
	Timezone string           `json:"timezone"`
}

// CalendarConfig booking rules shared by the whole process
type CalendarConfig struct {
	BusinessHours      BusinessHours
	WorkingDays        []int // 0=Sunday..6=Saturday
	SlotDuration       int   // minutes
	BufferTime         int   // minutes between consecutive slots
	AdvanceBookingDays int   // minimum days from today
	MaxBookingDays     int   // maximum days from today
}

// DefaultCalendarConfig returns built-in defaults
func DefaultCalendarConfig() CalendarConfig {
	return CalendarConfig{
		BusinessHours: BusinessHours{
			Start:    DefaultBusinessHoursStart,
			End:      DefaultBusinessHoursEnd,
			Timezone: DefaultTimezone,
		},
		WorkingDays:        []int{1, 2, 3, 4, 5},
		SlotDuration:       DefaultSlotDuration,
		BufferTime:         DefaultBufferTime,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		MaxBookingDays:     DefaultMaxBookingDays,
	}
}

// Clone returns a deep copy
func (c CalendarConfig) Clone() CalendarConfig {
	clone := c
	clone.WorkingDays = append([]int(nil), c.WorkingDays...)
	return clone
}

// IsWorkingDay reports whether weekday (0=Sunday) is a working day
func (c CalendarConfig) IsWorkingDay(weekday int) bool {
	for _, d := range c.WorkingDays {
		if d == weekday {
			return true
		}
	}
	return false
}

// Validate checks the configuration invariants
func (c CalendarConfig) Validate() error {
	start, err := c.BusinessHours.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: businessHours.start: %v", ErrInvalidCalendarConfig, err)
	}
	end, err := c.BusinessHours.End.Minutes()
	if err != nil {
		return fmt.Errorf("%w: businessHours.end: %v", ErrInvalidCalendarConfig, err)
	}
	if start >= end {
		return fmt.Errorf("%w: businessHours.start must be before businessHours.end", ErrInvalidCalendarConfig)
	}

	if c.SlotDuration < MinSlotDuration || c.SlotDuration > MaxSlotDuration {
		return fmt.Errorf("%w: slotDuration must be between %d and %d",
			ErrInvalidCalendarConfig, MinSlotDuration, MaxSlotDuration)
	}
	if c.SlotDuration > end-start {
		return fmt.Errorf("%w: slotDuration does not fit into business hours", ErrInvalidCalendarConfig)
	}
	if c.BufferTime < 0 || c.BufferTime > MaxBufferTime {
		return fmt.Errorf("%w: bufferTime must be between 0 and %d", ErrInvalidCalendarConfig, MaxBufferTime)
	}

	if len(c.WorkingDays) == 0 {
		return fmt.Errorf("%w: at least one working day is required", ErrInvalidCalendarConfig)
	}
	seen := make(map[int]struct{}, len(c.WorkingDays))
	for _, d := range c.WorkingDays {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: working day %d is out of range 0..6", ErrInvalidCalendarConfig, d)
		}
		if _, dup := seen[d]; dup {
			return fmt.Errorf("%w: working day %d is listed twice", ErrInvalidCalendarConfig, d)
		}
		seen[d] = struct{}{}
	}

	if c.AdvanceBookingDays < 0 || c.MaxBookingDays > MaxBookingWindowDays {
		return fmt.Errorf("%w: booking window must stay within 0..%d days", ErrInvalidCalendarConfig, MaxBookingWindowDays)
	}
	if c.AdvanceBookingDays > c.MaxBookingDays {
		return fmt.Errorf("%w: advanceBookingDays must not exceed maxBookingDays", ErrInvalidCalendarConfig)
	}

	return nil
}
