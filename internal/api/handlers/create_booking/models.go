package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-CalendarBooking/internal/usecase/create_booking"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CalendarOwnerID string `json:"calendarOwnerId"`
	InviteeName     string `json:"inviteeName"`
	InviteeEmail    string `json:"inviteeEmail"`
	Date            string `json:"date"`          // "2026-10-20"
	SlotStartTime   string `json:"slotStartTime"` // "10:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string `json:"id"`
	CalendarOwnerID string `json:"calendarOwnerId"`
	InviteeName     string `json:"inviteeName"`
	InviteeEmail    string `json:"inviteeEmail"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
	CreatedAt       string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		OwnerID:       r.CalendarOwnerID,
		InviteeName:   r.InviteeName,
		InviteeEmail:  r.InviteeEmail,
		Date:          r.Date,
		SlotStartTime: r.SlotStartTime,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CalendarOwnerID: resp.OwnerID,
		InviteeName:     resp.InviteeName,
		InviteeEmail:    resp.InviteeEmail,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
