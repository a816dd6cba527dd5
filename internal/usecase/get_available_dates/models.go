package get_available_dates

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// DefaultDays количество дней по умолчанию
const DefaultDays = 30

// Request модель запроса календаря доступности
type Request struct {
	ProjectID       int64
	SubprojectIndex *int
	From            *types.Date // Первая дата (по умолчанию сегодня в зоне специалиста)
	Days            int         // Количество дней (по умолчанию DefaultDays)
}

// Response модель ответа с доступностью по датам
type Response struct {
	From     types.Date
	Timezone string
	Mode     string
	Dates    []DateAvailability
	Degraded []string
}

// DateAvailability доступность одной даты
type DateAvailability struct {
	Date      types.Date
	Available bool
	Reason    string // Причина недоступности, пусто для доступной даты
}
