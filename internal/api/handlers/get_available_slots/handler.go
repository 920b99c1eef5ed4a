package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarBooking/internal/usecase/get_available_slots"
)

const (
	msgMissingDate          = "дата обязательна"
	msgInvalidDate          = "некорректная дата, ожидается YYYY-MM-DD не раньше сегодняшнего дня"
	msgDateTooFar           = "дата слишком далеко в будущем"
	msgInvalidInput         = "некорректные данные запроса"
	msgAvailabilityNotFound = "владелец календаря не задал часы работы"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/available-slots
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /owners/{id}/available-slots - Missing date: owner=%s", ownerID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(ownerID, dateStr))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrAvailabilityNotFound):
			h.logger.Warn("GET /owners/{id}/available-slots - Availability not found: owner=%s", ownerID)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /owners/{id}/available-slots - Date too far in future: owner=%s, date=%s", ownerID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /owners/{id}/available-slots - Invalid date: owner=%s, date=%s", ownerID, dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("GET /owners/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /owners/{id}/available-slots - Failed to get slots: owner=%s, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /owners/{id}/available-slots - Found %d slots: owner=%s, date=%s",
		len(result.Slots), ownerID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
