package get_completion

import (
	"context"

	getCompletion "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_completion"
)

type GetCompletionUseCase interface {
	Execute(ctx context.Context, req *getCompletion.Request) (*getCompletion.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
