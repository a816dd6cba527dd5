package blocks

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	Create(ctx context.Context, block *domain.ManualBlock) (*domain.ManualBlock, error)
	GetByID(ctx context.Context, id int64) (*domain.ManualBlock, error)
	List(ctx context.Context, filter domain.ManualBlocksFilter) ([]*domain.ManualBlock, error)
	Delete(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
