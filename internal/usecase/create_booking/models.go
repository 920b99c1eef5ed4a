package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	OwnerID       string `validate:"required,max=128"`             // ID владельца календаря
	InviteeName   string `validate:"required,max=255"`             // Имя приглашенного
	InviteeEmail  string `validate:"required,email,max=320"`       // Email приглашенного
	Date          string `validate:"required,datetime=2006-01-02"` // Дата в формате YYYY-MM-DD
	SlotStartTime string `validate:"required"`                     // Начало слота, "HH:00"
}

// Response модель ответа с созданной записью
type Response struct {
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
