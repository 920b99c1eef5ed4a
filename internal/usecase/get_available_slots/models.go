package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-CalendarBooking/pkg/types"
)

// Request модель запроса на получение свободных слотов
type Request struct {
	OwnerID string // ID владельца календаря
	Date    string // Дата в формате YYYY-MM-DD
}

// Response модель ответа со списком свободных слотов
type Response struct {
	OwnerID         string
	Date            time.Time          // Дата, на которую запрашивались слоты
	DurationMinutes int                // Длительность слота
	Slots           []types.TimeString // Начала свободных слотов в хронологическом порядке
}
