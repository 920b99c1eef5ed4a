package domain

import "github.com/m04kA/SMC-CalendarBooking/pkg/types"

// GenerateSlots returns the start times of every full slot that fits in the window.
// Slots are generated from StartTime with a fixed step of slotDurationMinutes.
// A slot ending exactly at EndTime fits and is included; a trailing partial
// slot is never emitted. Empty, inverted or too short windows yield no slots.
func GenerateSlots(window AvailabilityWindow, slotDurationMinutes int) []types.TimeString {
	slots := make([]types.TimeString, 0)
	if slotDurationMinutes <= 0 {
		return slots
	}

	start := window.StartTime.Minutes()
	end := window.EndTime.Minutes()
	if start < 0 || end < 0 {
		return slots
	}

	for current := start; current+slotDurationMinutes <= end; current += slotDurationMinutes {
		slot, err := types.NewTimeStringFromMinutes(current)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// FreeSlots removes booked start times from slots, keeping the original order
func FreeSlots(slots []types.TimeString, booked []types.TimeString) []types.TimeString {
	taken := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		taken[b] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if _, ok := taken[s]; ok {
			continue
		}
		free = append(free, s)
	}

	return free
}

// ComputeSlots returns the bookable slots of the window given the already booked starts
func ComputeSlots(window AvailabilityWindow, slotDurationMinutes int, booked []types.TimeString) []types.TimeString {
	return FreeSlots(GenerateSlots(window, slotDurationMinutes), booked)
}

// IsOnSlotGrid reports whether start is the beginning of one of the window's slots:
// inside the window, aligned to the grid anchored at StartTime, and fitting
// entirely before EndTime.
func IsOnSlotGrid(window AvailabilityWindow, start types.TimeString, slotDurationMinutes int) bool {
	if slotDurationMinutes <= 0 {
		return false
	}

	s := start.Minutes()
	ws := window.StartTime.Minutes()
	we := window.EndTime.Minutes()
	if s < 0 || ws < 0 || we < 0 {
		return false
	}

	if s < ws || s+slotDurationMinutes > we {
		return false
	}

	return (s-ws)%slotDurationMinutes == 0
}
