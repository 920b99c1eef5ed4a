package set_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// validateRequest валидирует запрос и возвращает нормализованное окно
func validateRequest(req *Request) (domain.AvailabilityWindow, error) {
	ownerID := strings.TrimSpace(req.OwnerID)
	if ownerID == "" {
		return domain.AvailabilityWindow{}, fmt.Errorf("%w: calendarOwnerId is required", ErrInvalidInput)
	}
	if len(ownerID) > domain.MaxOwnerIDLength {
		return domain.AvailabilityWindow{}, fmt.Errorf("%w: calendarOwnerId is longer than %d characters", ErrInvalidInput, domain.MaxOwnerIDLength)
	}

	start, err := parseHour("startTime", req.StartTime)
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}

	end, err := parseHour("endTime", req.EndTime)
	if err != nil {
		return domain.AvailabilityWindow{}, err
	}

	if !start.IsBefore(end) {
		return domain.AvailabilityWindow{}, fmt.Errorf("%w: %s >= %s", ErrInvalidTimeRange, start, end)
	}

	return domain.AvailabilityWindow{
		OwnerID:   ownerID,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// parseHour разбирает время в формате HH:MM и проверяет, что минуты равны нулю
func parseHour(field, value string) (types.TimeString, error) {
	if strings.TrimSpace(value) == "" {
		return "", fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}

	t, err := types.NewTimeStringFromString(value)
	if err != nil {
		return "", fmt.Errorf("%w: invalid %s format, expected HH:MM: %v", ErrInvalidInput, field, err)
	}

	if !t.IsOnTheHour() {
		return "", fmt.Errorf("%w: %s=%s", ErrNotOnTheHour, field, t)
	}

	return t, nil
}
