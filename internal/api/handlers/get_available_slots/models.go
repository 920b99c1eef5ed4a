package get_available_slots

import (
	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-CalendarBooking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CalendarOwnerID string   `json:"calendarOwnerId"`
	Date            string   `json:"date"`
	DurationMinutes int      `json:"durationMinutes"`
	AvailableSlots  []string `json:"availableSlots"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(ownerID, date string) *getAvailableSlots.Request {
	return &getAvailableSlots.Request{
		OwnerID: ownerID,
		Date:    date,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		CalendarOwnerID: resp.OwnerID,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		AvailableSlots:  slots,
	}
}
