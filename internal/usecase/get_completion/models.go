package get_completion

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса прогноза завершения
type Request struct {
	ProjectID       int64
	SubprojectIndex *int
	Date            types.Date        // Дата начала в зоне специалиста
	Time            *types.TimeString // Время начала, обязательно для часового режима
	IncludeBuffer   bool
	ViewerTimezone  string // Зона клиента, пусто = зона специалиста
}

// Response модель прогноза завершения
type Response struct {
	Mode           string
	Timezone       string
	ViewerTimezone string

	Start          Moment
	ExecutionEnd   Moment
	CompletionDate types.Date

	// BufferEnd заполняется, если запрошен буфер и он задан в конфигурации
	BufferEnd     *Moment
	BufferEndDate *types.Date
}

// Moment момент времени в UTC и в зонах специалиста и клиента
type Moment struct {
	Instant time.Time
	Local   string
	Viewer  string
}

func newMoment(t time.Time, local, viewer *time.Location) Moment {
	return Moment{
		Instant: t.UTC(),
		Local:   scheduling.FormatIn(t, local, scheduling.LocalLayout),
		Viewer:  scheduling.FormatIn(t, viewer, scheduling.LocalLayout),
	}
}
