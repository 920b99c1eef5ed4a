package set_availability

import (
	"context"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

// AvailabilityRepository интерфейс хранилища окон доступности
type AvailabilityRepository interface {
	SetAvailability(ctx context.Context, window domain.AvailabilityWindow) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
