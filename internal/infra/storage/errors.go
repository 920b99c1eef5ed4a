package storage

import "errors"

// Errors shared by every storage backend
var (
	// ErrAvailabilityNotFound возвращается, когда у владельца календаря нет окна доступности
	ErrAvailabilityNotFound = errors.New("storage: availability not found")

	// ErrSlotAlreadyBooked возвращается, когда слот (owner, date, start) уже занят
	ErrSlotAlreadyBooked = errors.New("storage: slot already booked")
)
