package get_available_slots

import (
	"time"

	"github.com/m04kA/IS-SalonBookingService/pkg/types"
)

// Request модель запроса на получение слотов дня
type Request struct {
	ProfessionalID int64     // ID профессионала
	ServiceID      int64     // ID услуги (определяет длительность)
	Date           time.Time // Дата для расчёта слотов (без времени)
}

// Response модель ответа с сеткой слотов дня
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	ProfessionalID  int64     // ID профессионала
	ServiceID       int64     // ID услуги
	DurationMinutes int       // Длительность услуги в минутах
	Slots           []Slot    // Сетка слотов с шагом 30 минут
}

// Slot модель временного слота.
// Недоступные слоты не скрываются - клиент видит всю сетку дня.
type Slot struct {
	StartTime types.TimeString // Время начала слота (например, "10:00")
	Available bool             // Свободен ли слот
}
