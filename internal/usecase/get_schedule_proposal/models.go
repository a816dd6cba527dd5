package get_schedule_proposal

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса ближайшей даты
type Request struct {
	ProjectID       int64
	SubprojectIndex *int
	ViewerTimezone  string // Зона клиента, пусто = зона специалиста
}

// Response модель ответа с ближайшей датой и окнами сервера
type Response struct {
	Mode           string
	Timezone       string
	ViewerTimezone string

	EarliestDate *types.Date // nil, если в горизонте поиска нет доступных дат
	Source       string      // proposal | local | none
	ScannedDays  int

	EarliestProposal           *Window
	ShortestThroughputProposal *Window
	ResourcePolicy             *domain.ResourcePolicy
	Degraded                   []string
}

// Window окно сервера, подтвержденное локальными данными
type Window struct {
	Start        Moment
	End          Moment
	ExecutionEnd Moment
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

func newWindow(w *domain.ProposalWindow, local, viewer *time.Location) *Window {
	if w == nil {
		return nil
	}
	return &Window{
		Start:        newMoment(w.Start, local, viewer),
		End:          newMoment(w.End, local, viewer),
		ExecutionEnd: newMoment(w.ExecutionEnd, local, viewer),
	}
}
