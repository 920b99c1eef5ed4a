package set_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
	setAvailability "github.com/m04kA/SMC-CalendarBooking/internal/usecase/set_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса, ожидается время в формате HH:MM"
	msgNotOnTheHour       = "время начала и окончания должно быть кратно часу"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
)

type Handler struct {
	useCase SetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, setAvailability.ErrNotOnTheHour):
			h.logger.Warn("POST /availability - Time not on the hour: owner=%s", req.CalendarOwnerID)
			handlers.RespondBadRequest(w, msgNotOnTheHour)

		case errors.Is(err, setAvailability.ErrInvalidTimeRange):
			h.logger.Warn("POST /availability - Invalid time range: owner=%s, %s-%s",
				req.CalendarOwnerID, req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, setAvailability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability - Failed to set availability: owner=%s, error=%v",
				req.CalendarOwnerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability set: owner=%s, %s-%s",
		result.OwnerID, result.StartTime, result.EndTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
