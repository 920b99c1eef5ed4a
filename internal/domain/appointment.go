package domain

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
)

// Appointment represents a booked slot in an owner's calendar.
// Appointments are immutable once created.
type Appointment struct {
	ID           string
	OwnerID      string
	InviteeName  string
	InviteeEmail string
	Date         time.Time // calendar date, time part is zero
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       AppointmentStatus
	CreatedAt    time.Time
}

// SlotKey identifies the (owner, date, slot start) tuple an appointment occupies
func (a *Appointment) SlotKey() string {
	return SlotKey(a.OwnerID, a.Date, a.StartTime)
}

// IsUpcoming returns true if the appointment date is today or later
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return !IsDateInPast(a.Date, now)
}

// SlotKey builds the mutual-exclusion key for a slot tuple
func SlotKey(ownerID string, date time.Time, start types.TimeString) string {
	return ownerID + "|" + date.Format(DateFormat) + "|" + start.String()
}
