package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

var (
	// ErrAvailabilityNotFound возвращается, когда владелец не задал окно доступности
	ErrAvailabilityNotFound = fmt.Errorf("%w: create_booking: availability not set for owner", domain.ErrNotFound)

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят
	ErrSlotAlreadyBooked = fmt.Errorf("%w: create_booking: slot already booked", domain.ErrConflict)

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = fmt.Errorf("%w: create_booking: invalid booking date", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = fmt.Errorf("%w: create_booking: date is too far in the future", domain.ErrValidation)

	// ErrInvalidTimeSlot возвращается, когда время слота не кратно часу или вне окна доступности
	ErrInvalidTimeSlot = fmt.Errorf("%w: create_booking: invalid time slot", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_booking: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
