package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

func window(start, end string) AvailabilityWindow {
	return AvailabilityWindow{
		OwnerID:   "owner-1",
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestGenerateSlots_WorkingDay(t *testing.T) {
	got := GenerateSlots(window("09:00", "17:00"), 60)

	want := []types.TimeString{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00"}
	assert.Equal(t, want, got)
}

func TestGenerateSlots_SlotEndingAtWindowEndIsIncluded(t *testing.T) {
	got := GenerateSlots(window("16:00", "17:00"), 60)

	assert.Equal(t, []types.TimeString{"16:00"}, got)
}

func TestGenerateSlots_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		window   AvailabilityWindow
		duration int
	}{
		{name: "zero length window", window: window("10:00", "10:00"), duration: 60},
		{name: "inverted window", window: window("17:00", "09:00"), duration: 60},
		{name: "shorter than one slot", window: window("10:00", "10:30"), duration: 60},
		{name: "invalid times", window: window("", "10:00"), duration: 60},
		{name: "non positive duration", window: window("09:00", "17:00"), duration: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GenerateSlots(tt.window, tt.duration)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestGenerateSlots_NoTrailingPartialSlot(t *testing.T) {
	got := GenerateSlots(window("09:00", "11:30"), 60)

	assert.Equal(t, []types.TimeString{"09:00", "10:00"}, got)
}

func TestGenerateSlots_LastSlotOfDay(t *testing.T) {
	got := GenerateSlots(window("21:00", "23:00"), 60)

	assert.Equal(t, []types.TimeString{"21:00", "22:00"}, got)
}

func TestComputeSlots_ExcludesBooked(t *testing.T) {
	got := ComputeSlots(window("09:00", "13:00"), 60, []types.TimeString{"10:00", "12:00", "18:00"})

	assert.Equal(t, []types.TimeString{"09:00", "11:00"}, got)
}

func TestFreeSlots_AllBooked(t *testing.T) {
	all := []types.TimeString{"09:00", "10:00"}

	got := FreeSlots(all, all)

	assert.Empty(t, got)
}

func TestIsOnSlotGrid(t *testing.T) {
	w := window("09:00", "17:00")

	assert.True(t, IsOnSlotGrid(w, "09:00", 60))
	assert.True(t, IsOnSlotGrid(w, "16:00", 60))
	assert.False(t, IsOnSlotGrid(w, "17:00", 60), "slot starting at window end")
	assert.False(t, IsOnSlotGrid(w, "08:00", 60), "slot before window")
	assert.False(t, IsOnSlotGrid(w, "09:30", 60), "off grid")
	assert.False(t, IsOnSlotGrid(w, "", 60))
	assert.False(t, IsOnSlotGrid(w, "10:00", 0))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 10, 16, 23, 59, 0, 0, time.Local)

	assert.True(t, IsDateInPast(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), now))
}

func TestIsBeyondAdvanceLimit(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)
	limit := DateOnly(now).AddDate(0, 0, 365)

	assert.False(t, IsBeyondAdvanceLimit(limit, now, 365))
	assert.True(t, IsBeyondAdvanceLimit(limit.AddDate(0, 0, 1), now, 365))
	assert.False(t, IsBeyondAdvanceLimit(DateOnly(now), now, 0))
}

func TestSlotKey(t *testing.T) {
	appt := Appointment{
		OwnerID:   "owner-1",
		Date:      time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
	}

	assert.Equal(t, "owner-1|2026-11-02|10:00", appt.SlotKey())
}

func TestAvailabilityWindow(t *testing.T) {
	w := window("09:00", "17:00")

	assert.True(t, w.IsValid())
	assert.True(t, w.Contains("09:00"))
	assert.True(t, w.Contains("16:59"))
	assert.False(t, w.Contains("17:00"))

	inverted := window("17:00", "09:00")
	assert.False(t, inverted.IsValid())
}
