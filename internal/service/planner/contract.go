package planner

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ConfigResolver источник действующей конфигурации пакета
type ConfigResolver interface {
	Resolve(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error)
}

// SnapshotLoader источник снапшота внешних данных
type SnapshotLoader interface {
	Load(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.Snapshot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
