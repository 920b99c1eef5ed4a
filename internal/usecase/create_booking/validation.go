package create_booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bookingInput провалидированные и нормализованные данные запроса
type bookingInput struct {
	ownerID      string
	inviteeName  string
	inviteeEmail string
	date         time.Time
	start        types.TimeString
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) (*bookingInput, error) {
	normalized := Request{
		OwnerID:       strings.TrimSpace(req.OwnerID),
		InviteeName:   strings.TrimSpace(req.InviteeName),
		InviteeEmail:  strings.TrimSpace(req.InviteeEmail),
		Date:          strings.TrimSpace(req.Date),
		SlotStartTime: strings.TrimSpace(req.SlotStartTime),
	}

	if err := validate.Struct(normalized); err != nil {
		return nil, describeValidationError(err)
	}

	date, err := time.Parse(domain.DateFormat, normalized.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.Date)
	}

	start, err := types.NewTimeStringFromString(normalized.SlotStartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: expected HH:00, got %q", ErrInvalidTimeSlot, req.SlotStartTime)
	}

	// Слоты начинаются только в начале часа
	if !start.IsOnTheHour() {
		return nil, fmt.Errorf("%w: %s is not on the hour", ErrInvalidTimeSlot, start)
	}

	return &bookingInput{
		ownerID:      normalized.OwnerID,
		inviteeName:  normalized.InviteeName,
		inviteeEmail: normalized.InviteeEmail,
		date:         date,
		start:        start,
	}, nil
}

// describeValidationError переводит ошибку validator в ошибку use case
func describeValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, fe.Field())
	case "max":
		return fmt.Errorf("%w: %s is longer than %s characters", ErrInvalidInput, fe.Field(), fe.Param())
	case "email":
		return fmt.Errorf("%w: %s is not a valid email address", ErrInvalidInput, fe.Field())
	case "datetime":
		return fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, fe.Value())
	default:
		return fmt.Errorf("%w: %s failed %s check", ErrInvalidInput, fe.Field(), fe.Tag())
	}
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

// validateSlot проверяет, что слот начинается на сетке окна доступности и помещается в него
func validateSlot(window *domain.AvailabilityWindow, start types.TimeString, slotDuration int) error {
	if !domain.IsOnSlotGrid(*window, start, slotDuration) {
		return fmt.Errorf("%w: %s is outside of working hours %s-%s",
			ErrInvalidTimeSlot, start, window.StartTime, window.EndTime)
	}
	return nil
}
