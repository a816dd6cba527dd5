package get_completion

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// Planner собирает движок расписания для пакета
type Planner interface {
	Prepare(ctx context.Context, projectID int64, subprojectIndex *int) (*planner.Plan, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
