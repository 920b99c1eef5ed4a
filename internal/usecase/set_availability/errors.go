package set_availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: set_availability: invalid input data", domain.ErrValidation)

	// ErrInvalidTimeRange возвращается, когда начало окна не раньше его конца
	ErrInvalidTimeRange = fmt.Errorf("%w: set_availability: start time must be before end time", domain.ErrValidation)

	// ErrNotOnTheHour возвращается, когда время окна не кратно часу
	ErrNotOnTheHour = fmt.Errorf("%w: set_availability: time must be on the hour", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_availability: internal error")
)
