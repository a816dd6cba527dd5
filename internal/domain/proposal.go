package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ResourcePolicy требования к количеству одновременно занятых исполнителей.
// Движком не пересчитывается, передается дальше как есть
type ResourcePolicy struct {
	MinResources         int
	TotalResources       int
	MinOverlapPercentage float64
}

// ProposalWindow окно, предложенное сервером
type ProposalWindow struct {
	Start        time.Time
	End          time.Time
	ExecutionEnd time.Time
}

// ScheduleProposal подсказки сервера о ближайшей дате и кратчайшем окне.
// EarliestBookableDate хранится как календарная дата в том виде, как ее записал сервер
type ScheduleProposal struct {
	Mode                       ExecutionMode
	EarliestBookableDate       types.Date
	EarliestProposal           *ProposalWindow
	ShortestThroughputProposal *ProposalWindow
}
