package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// AvailabilityWindow represents the daily working hours of a calendar owner.
// The window is a recurring template: it applies to every date.
type AvailabilityWindow struct {
	OwnerID   string
	StartTime types.TimeString
	EndTime   types.TimeString
	UpdatedAt time.Time
}

// IsValid returns true if the window is well formed and non-empty
func (w *AvailabilityWindow) IsValid() bool {
	return w.StartTime.Validate() == nil &&
		w.EndTime.Validate() == nil &&
		w.StartTime.IsBefore(w.EndTime)
}

// Contains returns true if t lies in [StartTime, EndTime)
func (w *AvailabilityWindow) Contains(t types.TimeString) bool {
	return !t.IsBefore(w.StartTime) && t.IsBefore(w.EndTime)
}

// BookingPolicy holds the parameters injected into the booking core at construction
type BookingPolicy struct {
	SlotDurationMinutes   int
	MaxAdvanceBookingDays int
}

// DefaultBookingPolicy returns the policy used when nothing is configured
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		SlotDurationMinutes:   DefaultSlotDurationMinutes,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
	}
}
