package domain

import "time"

// CalendarSlot a bookable slot computed on request, never stored
type CalendarSlot struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM
	Datetime  time.Time
	Available bool
	Reason    string
}

// DaySlot time slot inside a CalendarDay
type DaySlot struct {
	Time      string
	Available bool
	Reason    string
}

// CalendarDay one day of the month grid
type CalendarDay struct {
	Date        string
	DayOfWeek   int // 0=Sunday
	Available   bool
	TimeSlots   []DaySlot
	IsBlocked   bool
	BlockReason string
}

// CalendarMonth month grid with aggregate availability
type CalendarMonth struct {
	Month          int
	Year           int
	Timezone       string
	Days           []CalendarDay
	AvailableSlots int
	BusinessHours  BusinessHours
}

// SlotCheck result of an availability check
type SlotCheck struct {
	Available bool
	Reason    string
}

// SlotValidation result of validating a proposed date and time
type SlotValidation struct {
	Valid  bool
	Reason string
}
