package list_appointments

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Request модель запроса на получение записей владельца
type Request struct {
	OwnerID      string
	UpcomingOnly bool // Только записи на сегодня и позже
}

// Response модель ответа со списком записей
type Response struct {
	Appointments []Appointment
}

// Appointment модель записи
type Appointment struct {
	ID           string
	OwnerID      string
	InviteeName  string
	InviteeEmail string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Status       string
	CreatedAt    time.Time
}
