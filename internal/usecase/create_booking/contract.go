package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Repository интерфейс хранилища окон доступности и записей
type Repository interface {
	GetAvailability(ctx context.Context, ownerID string) (*domain.AvailabilityWindow, error)
	IsSlotBooked(ctx context.Context, ownerID string, date time.Time, start types.TimeString) (bool, error)
	CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// SlotLocker сериализует попытки бронирования одного и того же слота
type SlotLocker interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

// IDGenerator генерирует идентификаторы записей
type IDGenerator interface {
	NewID() (string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генерирует UUID v7 (упорядоченные по времени)
type UUIDGenerator struct{}

// NewID возвращает новый идентификатор
func (g *UUIDGenerator) NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
