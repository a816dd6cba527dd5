package snapshot

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
)

// MarketplaceClient интерфейс клиента маркетплейса
type MarketplaceClient interface {
	GetAvailability(ctx context.Context, projectID int64, subprojectIndex *int) (*marketplace.AvailabilityResponse, error)
	GetWorkingHours(ctx context.Context, projectID int64) (*marketplace.WorkingHoursResponse, error)
	GetScheduleProposals(ctx context.Context, projectID int64, subprojectIndex *int) (*marketplace.ScheduleProposalsResponse, error)
}

// ManualBlockRepository интерфейс репозитория ручных блокировок
type ManualBlockRepository interface {
	List(ctx context.Context, filter domain.ManualBlocksFilter) ([]*domain.ManualBlock, error)
}

// Cache интерфейс кэша ответов маркетплейса
type Cache interface {
	Key(endpoint string, projectID int64, subprojectIndex *int) string
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{})
}

// Metrics интерфейс метрик загрузки снапшота
type Metrics interface {
	IncSnapshotFailOpen(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
