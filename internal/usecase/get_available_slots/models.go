package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProjectID       int64
	SubprojectIndex *int
	Date            types.Date // Дата в зоне специалиста
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            types.Date
	Timezone        string
	DurationMinutes int
	Slots           []Slot

	// Misconfigured длительность не помещается ни в один рабочий день недели
	Misconfigured    bool
	RecommendDayMode bool
	// Degraded источники, замененные значениями по умолчанию
	Degraded []string
}

// Slot модель временного слота
type Slot struct {
	StartTime types.TimeString // Время начала в зоне специалиста (например, "10:00")
	StartsAt  time.Time        // Момент начала в UTC
	EndsAt    time.Time        // Момент окончания работ в UTC
}
