package get_schedule_proposal

import (
	"context"

	getScheduleProposal "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_schedule_proposal"
)

type GetScheduleProposalUseCase interface {
	Execute(ctx context.Context, req *getScheduleProposal.Request) (*getScheduleProposal.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
