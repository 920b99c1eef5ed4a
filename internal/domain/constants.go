package domain

// Default booking policy values
const (
	DefaultSlotDurationMinutes   = 60
	DefaultMaxAdvanceBookingDays = 365
)

// Business validation constants
const (
	MinSlotDurationMinutes   = 60
	MaxSlotDurationMinutes   = 480 // 8 hours
	SlotDurationStepMinutes  = 60  // слоты начинаются в начале часа
	MinAdvanceBookingDays    = 0
	MaxAdvanceBookingDaysCap = 3650 // 10 years
	MaxOwnerIDLength         = 128
	MaxInviteeNameLength     = 255
	MaxInviteeEmailLength    = 320
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
