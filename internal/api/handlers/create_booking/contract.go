package create_booking

import (
	"context"

	createBooking "github.com/m04kA/SMC-CalendarBooking/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// BookingObserver учитывает исход попытки бронирования
type BookingObserver interface {
	ObserveBooking(result string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
