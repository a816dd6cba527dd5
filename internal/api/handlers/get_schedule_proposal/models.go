package get_schedule_proposal

import (
	"time"

	getScheduleProposal "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_schedule_proposal"
)

// ScheduleProposalResponse HTTP response model
type ScheduleProposalResponse struct {
	Mode                       string          `json:"mode"`
	Timezone                   string          `json:"timezone"`
	ViewerTimezone             string          `json:"viewerTimezone"`
	EarliestDate               *string         `json:"earliestDate"`
	Source                     string          `json:"source"`
	ScannedDays                int             `json:"scannedDays"`
	EarliestProposal           *Window         `json:"earliestProposal,omitempty"`
	ShortestThroughputProposal *Window         `json:"shortestThroughputProposal,omitempty"`
	ResourcePolicy             *ResourcePolicy `json:"resourcePolicy,omitempty"`
	Degraded                   []string        `json:"degraded,omitempty"`
}

// Window окно, предложенное сервером расписаний
type Window struct {
	Start        Moment `json:"start"`
	End          Moment `json:"end"`
	ExecutionEnd Moment `json:"executionEnd"`
}

// Moment момент времени в UTC и в зонах специалиста и клиента
type Moment struct {
	Instant time.Time `json:"instant"`
	Local   string    `json:"local"`
	Viewer  string    `json:"viewer"`
}

// ResourcePolicy политика ресурсов специалиста
type ResourcePolicy struct {
	MinResources         int     `json:"minResources"`
	TotalResources       int     `json:"totalResources"`
	MinOverlapPercentage float64 `json:"minOverlapPercentage"`
}

func fromMoment(m getScheduleProposal.Moment) Moment {
	return Moment{Instant: m.Instant, Local: m.Local, Viewer: m.Viewer}
}

func fromWindow(w *getScheduleProposal.Window) *Window {
	if w == nil {
		return nil
	}
	return &Window{
		Start:        fromMoment(w.Start),
		End:          fromMoment(w.End),
		ExecutionEnd: fromMoment(w.ExecutionEnd),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleProposal.Response) *ScheduleProposalResponse {
	out := &ScheduleProposalResponse{
		Mode:                       resp.Mode,
		Timezone:                   resp.Timezone,
		ViewerTimezone:             resp.ViewerTimezone,
		Source:                     resp.Source,
		ScannedDays:                resp.ScannedDays,
		EarliestProposal:           fromWindow(resp.EarliestProposal),
		ShortestThroughputProposal: fromWindow(resp.ShortestThroughputProposal),
		Degraded:                   resp.Degraded,
	}

	if resp.EarliestDate != nil {
		earliest := resp.EarliestDate.String()
		out.EarliestDate = &earliest
	}
	if resp.ResourcePolicy != nil {
		out.ResourcePolicy = &ResourcePolicy{
			MinResources:         resp.ResourcePolicy.MinResources,
			TotalResources:       resp.ResourcePolicy.TotalResources,
			MinOverlapPercentage: resp.ResourcePolicy.MinOverlapPercentage,
		}
	}

	return out
}
