package set_availability

import setAvailability "github.com/m04kA/SMC-CalendarBooking/internal/usecase/set_availability"

// SetAvailabilityRequest HTTP request model
type SetAvailabilityRequest struct {
	CalendarOwnerID string `json:"calendarOwnerId"`
	StartTime       string `json:"startTime"` // "09:00"
	EndTime         string `json:"endTime"`   // "17:00"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CalendarOwnerID string `json:"calendarOwnerId"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	AvailableHours  int    `json:"availableHours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SetAvailabilityRequest) ToUseCaseRequest() *setAvailability.Request {
	return &setAvailability.Request{
		OwnerID:   r.CalendarOwnerID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CalendarOwnerID: resp.OwnerID,
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		AvailableHours:  resp.AvailableHours,
	}
}
