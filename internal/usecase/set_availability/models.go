package set_availability

import "github.com/m04kA/SMC-CalendarBooking/pkg/types"

// Request модель запроса на установку окна доступности
type Request struct {
	OwnerID   string // ID владельца календаря
	StartTime string // Начало рабочего дня, "HH:MM"
	EndTime   string // Конец рабочего дня, "HH:MM"
}

// Response модель ответа с сохраненным окном
type Response struct {
	OwnerID        string
	StartTime      types.TimeString
	EndTime        types.TimeString
	AvailableHours int // Количество слотов, которые дает окно
}
