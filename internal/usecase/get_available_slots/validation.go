package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
)

// slotsInput провалидированные и нормализованные данные запроса
type slotsInput struct {
	ownerID string
	date    time.Time
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*slotsInput, error) {
	ownerID := strings.TrimSpace(req.OwnerID)
	if ownerID == "" {
		return nil, fmt.Errorf("%w: calendarOwnerId is required", ErrInvalidInput)
	}

	rawDate := strings.TrimSpace(req.Date)
	if rawDate == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.Date)
	}

	return &slotsInput{ownerID: ownerID, date: date}, nil
}

// validateDate проверяет, что дата попадает в горизонт бронирования
func validateDate(date, now time.Time, maxAdvanceDays int) error {
	if domain.IsDateInPast(date, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date.Format(domain.DateFormat))
	}

	if domain.IsBeyondAdvanceLimit(date, now, maxAdvanceDays) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceDays)
	}

	return nil
}
