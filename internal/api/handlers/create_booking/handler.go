package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CalendarBooking/internal/api/handlers"
	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CalendarBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-CalendarBooking/pkg/metrics"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidInput         = "некорректные данные запроса"
	msgInvalidBookingDate   = "некорректная дата бронирования, ожидается YYYY-MM-DD не раньше сегодняшнего дня"
	msgDateTooFar           = "дата бронирования слишком далеко в будущем"
	msgInvalidTimeSlot      = "некорректный временной слот"
	msgSlotAlreadyBooked    = "выбранный временной слот уже занят"
	msgAvailabilityNotFound = "владелец календаря не задал часы работы"
)

type Handler struct {
	useCase  CreateBookingUseCase
	observer BookingObserver
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, observer BookingObserver, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		observer: observer,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		h.observer.ObserveBooking(metrics.BookingRejected)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /appointments - Slot already booked: owner=%s, date=%s, time=%s",
				req.CalendarOwnerID, req.Date, req.SlotStartTime)
			h.observer.ObserveBooking(metrics.BookingConflict)
			handlers.RespondConflict(w, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrAvailabilityNotFound):
			h.logger.Warn("POST /appointments - Availability not found: owner=%s", req.CalendarOwnerID)
			h.observer.ObserveBooking(metrics.BookingRejected)
			handlers.RespondNotFound(w, msgAvailabilityNotFound)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: owner=%s, date=%s", req.CalendarOwnerID, req.Date)
			h.observer.ObserveBooking(metrics.BookingRejected)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid booking date: owner=%s, date=%s", req.CalendarOwnerID, req.Date)
			h.observer.ObserveBooking(metrics.BookingRejected)
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: owner=%s, time=%s", req.CalendarOwnerID, req.SlotStartTime)
			h.observer.ObserveBooking(metrics.BookingRejected)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			h.observer.ObserveBooking(metrics.BookingRejected)
			handlers.RespondBadRequest(w, msgInvalidInput+": "+err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: owner=%s, error=%v",
				req.CalendarOwnerID, err)
			h.observer.ObserveBooking(metrics.BookingError)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.observer.ObserveBooking(metrics.BookingCreated)
	h.logger.Info("POST /appointments - Appointment created: id=%s, owner=%s, date=%s, time=%s",
		result.ID, result.OwnerID, req.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
