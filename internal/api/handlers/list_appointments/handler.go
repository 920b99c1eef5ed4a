package list_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
	listAppointments "github.com/m04kA/SMC-CalendarBooking/internal/usecase/list_appointments"
)

const (
	msgInvalidUpcoming = "некорректное значение параметра upcoming, ожидается true или false"
	msgInvalidInput    = "некорректный ID владельца календаря"
)

type Handler struct {
	useCase ListAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ListAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/appointments
// Query params: upcoming (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	upcomingOnly := false
	if raw := r.URL.Query().Get("upcoming"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.Warn("GET /owners/{id}/appointments - Invalid upcoming param: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidUpcoming)
			return
		}
		upcomingOnly = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &listAppointments.Request{
		OwnerID:      ownerID,
		UpcomingOnly: upcomingOnly,
	})
	if err != nil {
		if errors.Is(err, listAppointments.ErrInvalidInput) {
			h.logger.Warn("GET /owners/{id}/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("GET /owners/{id}/appointments - Failed to list appointments: owner=%s, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /owners/{id}/appointments - Found %d appointments: owner=%s", len(result.Appointments), ownerID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
