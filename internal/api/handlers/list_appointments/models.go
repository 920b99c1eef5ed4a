package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/internal/domain"
	listAppointments "github.com/m04kA/SMC-CalendarBooking/internal/usecase/list_appointments"
)

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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *listAppointments.Response) []AppointmentResponse {
	result := make([]AppointmentResponse, len(resp.Appointments))
	for i, appt := range resp.Appointments {
		result[i] = AppointmentResponse{
			ID:              appt.ID,
			CalendarOwnerID: appt.OwnerID,
			InviteeName:     appt.InviteeName,
			InviteeEmail:    appt.InviteeEmail,
			Date:            appt.Date.Format(domain.DateFormat),
			StartTime:       appt.StartTime.String(),
			EndTime:         appt.EndTime.String(),
			Status:          appt.Status,
			CreatedAt:       appt.CreatedAt.Format(time.RFC3339),
		}
	}
	return result
}
