package planner

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
)

// Plan все, что нужно для расчета расписания пакета в один момент времени
type Plan struct {
	Config   *domain.PackageConfig
	Snapshot *domain.Snapshot
	Engine   *scheduling.Engine
}

// Service собирает движок расписания для пары (проект, пакет)
type Service struct {
	configs      ConfigResolver
	snapshots    SnapshotLoader
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(configs ConfigResolver, snapshots SnapshotLoader, logger Logger) *Service {
	return &Service{
		configs:      configs,
		snapshots:    snapshots,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Prepare получает конфигурацию и снапшот и создает движок на текущий момент
func (s *Service) Prepare(ctx context.Context, projectID int64, subprojectIndex *int) (*Plan, error) {
	if projectID <= 0 {
		return nil, fmt.Errorf("%w: projectId must be positive", ErrInvalidInput)
	}
	if subprojectIndex != nil && *subprojectIndex < 0 {
		return nil, fmt.Errorf("%w: subprojectIndex must not be negative", ErrInvalidInput)
	}

	cfg, err := s.configs.Resolve(ctx, projectID, subprojectIndex)
	if err != nil {
		s.logger.Error("Prepare: failed to resolve config for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to resolve config: %v", ErrInternal, err)
	}

	snapshot, err := s.snapshots.Load(ctx, projectID, subprojectIndex)
	if err != nil {
		s.logger.Error("Prepare: failed to load snapshot for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to load snapshot: %v", ErrInternal, err)
	}

	engine := scheduling.New(snapshot, scheduling.ParamsFromConfig(cfg), s.timeProvider.Now(), s.logger)

	s.logger.Info("Prepare: project=%d, subproject=%v, mode=%s, tz=%s, today=%s",
		projectID, subprojectIndex, cfg.Mode, snapshot.Timezone, engine.Today())

	return &Plan{Config: cfg, Snapshot: snapshot, Engine: engine}, nil
}
