package list_appointments

import (
	"context"
	"fmt"
	"strings"
)

// UseCase use case для получения записей владельца календаря
type UseCase struct {
	repo         AppointmentRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(repo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает записи владельца в порядке их создания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListAppointments: owner=%s, upcomingOnly=%t", req.OwnerID, req.UpcomingOnly)

	ownerID := strings.TrimSpace(req.OwnerID)
	if ownerID == "" {
		uc.logger.Warn("ListAppointments: validation failed: empty owner id")
		return nil, fmt.Errorf("%w: calendarOwnerId is required", ErrInvalidInput)
	}

	appointments, err := uc.repo.ListAppointmentsByOwner(ctx, ownerID)
	if err != nil {
		uc.logger.Error("ListAppointments: failed to list appointments for owner=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: failed to list appointments: %v", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	result := make([]Appointment, 0, len(appointments))
	for _, appt := range appointments {
		if req.UpcomingOnly && !appt.IsUpcoming(now) {
			continue
		}
		result = append(result, Appointment{
			ID:           appt.ID,
			OwnerID:      appt.OwnerID,
			InviteeName:  appt.InviteeName,
			InviteeEmail: appt.InviteeEmail,
			Date:         appt.Date,
			StartTime:    appt.StartTime,
			EndTime:      appt.EndTime,
			Status:       string(appt.Status),
			CreatedAt:    appt.CreatedAt,
		})
	}

	uc.logger.Info("ListAppointments: found %d appointments for owner=%s", len(result), ownerID)

	return &Response{Appointments: result}, nil
}
