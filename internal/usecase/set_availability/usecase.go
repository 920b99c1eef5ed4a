package set_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

// UseCase use case для установки окна доступности владельца календаря
type UseCase struct {
	repo   AvailabilityRepository
	policy domain.BookingPolicy
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AvailabilityRepository, policy domain.BookingPolicy, logger Logger) *UseCase {
	return &UseCase{
		repo:   repo,
		policy: policy,
		logger: logger,
	}
}

// Execute выполняет use case установки окна доступности.
// Повторный вызов заменяет предыдущее окно владельца.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetAvailability: owner=%s, start=%s, end=%s", req.OwnerID, req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	window, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем окно, заменяя предыдущее
	if err := uc.repo.SetAvailability(ctx, window); err != nil {
		uc.logger.Error("SetAvailability: failed to save window for owner=%s: %v", window.OwnerID, err)
		return nil, fmt.Errorf("%w: failed to save availability: %v", ErrInternal, err)
	}

	slots := domain.GenerateSlots(window, uc.policy.SlotDurationMinutes)

	uc.logger.Info("SetAvailability: owner=%s window %s-%s saved, %d slots per day",
		window.OwnerID, window.StartTime, window.EndTime, len(slots))

	return &Response{
		OwnerID:        window.OwnerID,
		StartTime:      window.StartTime,
		EndTime:        window.EndTime,
		AvailableHours: len(slots),
	}, nil
}
