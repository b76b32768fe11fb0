package domain

// Calendar defaults
const (
	DefaultBusinessHoursStart = "09:00"
	DefaultBusinessHoursEnd   = "17:00"
	DefaultTimezone           = "America/New_York"
	DefaultSlotDuration       = 30
	DefaultBufferTime         = 0
	DefaultAdvanceBookingDays = 1
	DefaultMaxBookingDays     = 30
)

// Booking defaults
const (
	DefaultBookingType = BookingTypeDemo
	DefaultPriority    = PriorityMedium

	DefaultAlternativesCount = 3
	AlternativesWindowDays   = 7

	// Диапазон списка слотов: по умолчанию неделя, не больше месяца
	DefaultSlotRangeDays = 7
	MaxSlotRangeDays     = 31
)

// Business validation constants
const (
	MinSlotDuration       = 5
	MaxSlotDuration       = 480 // 8 hours
	MaxBufferTime         = 240
	MaxBookingWindowDays  = 365
	MaxNameLength         = 100
	MaxCompanyLength      = 100
	MaxRequirementsLength = 2000
	MaxAdminNotesLength   = 5000

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
