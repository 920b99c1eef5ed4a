package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Repository in-memory хранилище окон доступности и записей.
//
// Все данные защищены одним RWMutex: мутации выполняются под блокировкой на
// запись, чтения под блокировкой на чтение и возвращают копии, поэтому
// читатель никогда не видит частично сохраненную запись.
type Repository struct {
	mu sync.RWMutex

	windows      map[string]domain.AvailabilityWindow
	appointments map[string][]domain.Appointment // ownerID -> записи в порядке создания
	booked       map[string]string               // slot key -> appointment ID
}

// NewRepository создает пустое хранилище
func NewRepository() *Repository {
	return &Repository{
		windows:      make(map[string]domain.AvailabilityWindow),
		appointments: make(map[string][]domain.Appointment),
		booked:       make(map[string]string),
	}
}

// SetAvailability заменяет окно доступности владельца
func (r *Repository) SetAvailability(ctx context.Context, window domain.AvailabilityWindow) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if window.UpdatedAt.IsZero() {
		window.UpdatedAt = time.Now()
	}
	r.windows[window.OwnerID] = window
	return nil
}

// GetAvailability возвращает окно доступности владельца
func (r *Repository) GetAvailability(ctx context.Context, ownerID string) (*domain.AvailabilityWindow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	window, ok := r.windows[ownerID]
	if !ok {
		return nil, storage.ErrAvailabilityNotFound
	}
	return &window, nil
}

// GetBookedStartTimes возвращает занятые слоты владельца на дату
func (r *Repository) GetBookedStartTimes(ctx context.Context, ownerID string, date time.Time) ([]types.TimeString, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format(domain.DateFormat)
	booked := make([]types.TimeString, 0)
	for _, appt := range r.appointments[ownerID] {
		if appt.Date.Format(domain.DateFormat) == day {
			booked = append(booked, appt.StartTime)
		}
	}
	return booked, nil
}

// IsSlotBooked проверяет, занят ли слот
func (r *Repository) IsSlotBooked(ctx context.Context, ownerID string, date time.Time, start types.TimeString) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.booked[domain.SlotKey(ownerID, date, start)]
	return ok, nil
}

// CreateAppointment атомарно сохраняет запись, если слот свободен.
// Проверка и вставка выполняются под одной блокировкой на запись.
func (r *Repository) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := appt.SlotKey()
	if _, ok := r.booked[key]; ok {
		return nil, storage.ErrSlotAlreadyBooked
	}

	stored := *appt
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.booked[key] = stored.ID
	r.appointments[stored.OwnerID] = append(r.appointments[stored.OwnerID], stored)

	out := stored
	return &out, nil
}

// ListAppointmentsByOwner возвращает копии всех записей владельца в порядке создания
func (r *Repository) ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]*domain.Appointment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.appointments[ownerID]
	result := make([]*domain.Appointment, 0, len(stored))
	for i := range stored {
		appt := stored[i]
		result = append(result, &appt)
	}
	return result, nil
}
