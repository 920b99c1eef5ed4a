package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage"
)

// UseCase use case для получения свободных слотов владельца на дату
type UseCase struct {
	repo         Repository
	policy       domain.BookingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo Repository, policy domain.BookingPolicy, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: owner=%s, date=%s", req.OwnerID, req.Date)

	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем окно доступности
	window, err := uc.repo.GetAvailability(ctx, in.ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrAvailabilityNotFound) {
			uc.logger.Warn("GetAvailableSlots: owner=%s has no availability", in.ownerID)
			return nil, ErrAvailabilityNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for owner=%s: %v", in.ownerID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Проверяем горизонт бронирования
	if err := validateDate(in.date, uc.timeProvider.Now(), uc.policy.MaxAdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем занятые слоты на дату
	booked, err := uc.repo.GetBookedStartTimes(ctx, in.ownerID, in.date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get booked slots for owner=%s: %v", in.ownerID, err)
		return nil, fmt.Errorf("%w: failed to get booked slots: %v", ErrInternal, err)
	}

	// 5. Вычисляем свободные слоты
	slots := domain.ComputeSlots(*window, uc.policy.SlotDurationMinutes, booked)

	uc.logger.Info("GetAvailableSlots: %d free slots for owner=%s, date=%s (%d booked)",
		len(slots), in.ownerID, in.date.Format(domain.DateFormat), len(booked))

	return &Response{
		OwnerID:         in.ownerID,
		Date:            in.date,
		DurationMinutes: uc.policy.SlotDurationMinutes,
		Slots:           slots,
	}, nil
}
