package config

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// ConfigRepository интерфейс репозитория конфигураций пакетов
type ConfigRepository interface {
	GetConfigWithHierarchy(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error)
	Upsert(ctx context.Context, cfg *domain.PackageConfig) (*domain.PackageConfig, error)
	Delete(ctx context.Context, projectID int64, subprojectIndex *int) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
