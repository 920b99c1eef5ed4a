package list_appointments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: list_appointments: invalid input data", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_appointments: internal error")
)
