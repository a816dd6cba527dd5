package get_schedule_proposal

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// Planner собирает движок расписания для пакета
type Planner interface {
	Prepare(ctx context.Context, projectID int64, subprojectIndex *int) (*planner.Plan, error)
}

// Metrics метрики расчета
type Metrics interface {
	ObserveMinDateScan(days int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
