package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

var (
	// ErrAvailabilityNotFound возвращается, когда владелец не задал окно доступности
	ErrAvailabilityNotFound = fmt.Errorf("%w: get_available_slots: availability not set for owner", domain.ErrNotFound)

	// ErrInvalidDate возвращается при некорректной дате или дате в прошлом
	ErrInvalidDate = fmt.Errorf("%w: get_available_slots: invalid date", domain.ErrValidation)

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = fmt.Errorf("%w: get_available_slots: date is too far in the future", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: get_available_slots: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
