package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/internal/infra/storage"
)

// UseCase use case для создания записи на слот
type UseCase struct {
	repo         Repository
	locker       SlotLocker
	policy       domain.BookingPolicy
	idGenerator  IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	repo Repository,
	locker SlotLocker,
	policy domain.BookingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		locker:       locker,
		policy:       policy,
		idGenerator:  &UUIDGenerator{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка занятости и вставка выполняются под блокировкой слота
// (владелец, дата, время начала), а сама вставка атомарна в хранилище,
// поэтому из конкурентных запросов на один слот успешен ровно один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%s, invitee=%s, date=%s, time=%s",
		req.OwnerID, req.InviteeEmail, req.Date, req.SlotStartTime)

	// 1. Валидация входных данных
	in, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем окно доступности
	window, err := uc.repo.GetAvailability(ctx, in.ownerID)
	if err != nil {
		if errors.Is(err, storage.ErrAvailabilityNotFound) {
			uc.logger.Warn("CreateBooking: owner=%s has no availability", in.ownerID)
			return nil, ErrAvailabilityNotFound
		}
		uc.logger.Error("CreateBooking: failed to get availability for owner=%s: %v", in.ownerID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 3. Слот должен лежать на сетке окна
	if err := validateSlot(window, in.start, uc.policy.SlotDurationMinutes); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Дата должна попадать в горизонт бронирования
	if err := validateDate(in.date, uc.timeProvider.Now(), uc.policy.MaxAdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	end, err := in.start.AddMinutes(uc.policy.SlotDurationMinutes)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to calculate slot end for %s: %v", in.start, err)
		return nil, fmt.Errorf("%w: failed to calculate slot end: %v", ErrInternal, err)
	}

	id, err := uc.idGenerator.NewID()
	if err != nil {
		uc.logger.Error("CreateBooking: failed to generate appointment id: %v", err)
		return nil, fmt.Errorf("%w: failed to generate id: %v", ErrInternal, err)
	}

	appt := &domain.Appointment{
		ID:           id,
		OwnerID:      in.ownerID,
		InviteeName:  in.inviteeName,
		InviteeEmail: in.inviteeEmail,
		Date:         in.date,
		StartTime:    in.start,
		EndTime:      end,
		Status:       domain.StatusConfirmed,
	}

	// 5. Проверка и вставка под блокировкой слота
	var created *domain.Appointment
	err = uc.locker.Do(ctx, appt.SlotKey(), func(ctx context.Context) error {
		booked, err := uc.repo.IsSlotBooked(ctx, appt.OwnerID, appt.Date, appt.StartTime)
		if err != nil {
			return fmt.Errorf("%w: failed to check slot: %v", ErrInternal, err)
		}
		if booked {
			return ErrSlotAlreadyBooked
		}

		created, err = uc.repo.CreateAppointment(ctx, appt)
		if err != nil {
			if errors.Is(err, storage.ErrSlotAlreadyBooked) {
				return ErrSlotAlreadyBooked
			}
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotAlreadyBooked) {
			uc.logger.Warn("CreateBooking: slot %s already booked", appt.SlotKey())
			return nil, err
		}
		if !errors.Is(err, ErrInternal) {
			err = fmt.Errorf("%w: %v", ErrInternal, err)
		}
		uc.logger.Error("CreateBooking: failed to book slot %s: %v", appt.SlotKey(), err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: appointment id=%s created for slot %s", created.ID, created.SlotKey())

	return toResponse(created), nil
}

func toResponse(appt *domain.Appointment) *Response {
	return &Response{
		ID:           appt.ID,
		OwnerID:      appt.OwnerID,
		InviteeName:  appt.InviteeName,
		InviteeEmail: appt.InviteeEmail,
		Date:         appt.Date,
		StartTime:    appt.StartTime,
		EndTime:      appt.EndTime,
		Status:       string(appt.Status),
		CreatedAt:    appt.CreatedAt,
	}
}
