package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
	configService "github.com/m04kA/SMC-SchedulingService/internal/service/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
	plannerService "github.com/m04kA/SMC-SchedulingService/internal/service/planner"
	snapshotService "github.com/m04kA/SMC-SchedulingService/internal/service/snapshot"
)

// fixtureUserID автор конфигурации, загруженной из фикстуры
const fixtureUserID = 1

// Fixture снимок ответов маркетплейса и конфигурации пакета.
// Отсутствующая секция маркетплейса воспроизводит недоступность источника
type Fixture struct {
	ProjectID       int64          `yaml:"projectId"`
	SubprojectIndex *int           `yaml:"subprojectIndex"`
	Now             time.Time      `yaml:"now"`
	Config          *FixtureConfig `yaml:"config"`

	WorkingHours      *marketplace.WorkingHoursResponse      `yaml:"workingHours"`
	Availability      *marketplace.AvailabilityResponse      `yaml:"availability"`
	ScheduleProposals *marketplace.ScheduleProposalsResponse `yaml:"scheduleProposals"`
	ManualBlocks      []FixtureBlock                         `yaml:"manualBlocks"`
}

// FixtureConfig конфигурация пакета в формате PUT /package-config
type FixtureConfig struct {
	Mode      string `yaml:"mode"`
	Execution struct {
		Value float64  `yaml:"value"`
		Unit  string   `yaml:"unit"`
		Min   *float64 `yaml:"min"`
		Max   *float64 `yaml:"max"`
	} `yaml:"execution"`
	Buffer *struct {
		Value float64 `yaml:"value"`
		Unit  string  `yaml:"unit"`
	} `yaml:"buffer"`
}

// FixtureBlock ручная блокировка специалиста
type FixtureBlock struct {
	StartsAt time.Time `yaml:"startsAt"`
	EndsAt   time.Time `yaml:"endsAt"`
	Reason   *string   `yaml:"reason"`
}

// LoadFixture читает YAML фикстуру
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}

	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if f.ProjectID == 0 {
		f.ProjectID = 1
	}
	return &f, nil
}

func (f *Fixture) upsertRequest() *models.UpsertConfigRequest {
	req := &models.UpsertConfigRequest{
		UserID:          fixtureUserID,
		ProjectID:       f.ProjectID,
		SubprojectIndex: f.SubprojectIndex,
		Mode:            f.Config.Mode,
		Execution: models.ExecutionDTO{
			Value: f.Config.Execution.Value,
			Unit:  f.Config.Execution.Unit,
			Min:   f.Config.Execution.Min,
			Max:   f.Config.Execution.Max,
		},
	}
	if f.Config.Buffer != nil {
		req.Buffer = &models.BufferDTO{Value: f.Config.Buffer.Value, Unit: f.Config.Buffer.Unit}
	}
	return req
}

// BuildPlanner собирает тот же конвейер, что и сервис: конфигурация проходит
// валидацию сервиса конфигураций, снапшот собирается сервисом снапшотов
func (f *Fixture) BuildPlanner(ctx context.Context, log Logger) (*plannerService.Service, error) {
	configs := configService.NewService(newMemoryConfigRepo(), log)
	if f.Config != nil {
		if _, err := configs.Upsert(ctx, f.upsertRequest()); err != nil {
			return nil, fmt.Errorf("fixture config: %w", err)
		}
	}

	snapshots := snapshotService.NewService(fixtureClient{f: f}, fixtureBlocks{f: f}, nil, nil, log)

	now := f.Now
	if now.IsZero() {
		now = time.Now()
	}

	return plannerService.NewService(configs, snapshots, log).
		WithTimeProvider(fixedTime(now)), nil
}

type fixedTime time.Time

func (t fixedTime) Now() time.Time { return time.Time(t) }

// fixtureClient отдает ответы маркетплейса из фикстуры
type fixtureClient struct {
	f *Fixture
}

func (c fixtureClient) GetAvailability(context.Context, int64, *int) (*marketplace.AvailabilityResponse, error) {
	if c.f.Availability == nil {
		return nil, fmt.Errorf("%w: availability is absent in fixture", marketplace.ErrInternal)
	}
	return c.f.Availability, nil
}

func (c fixtureClient) GetWorkingHours(context.Context, int64) (*marketplace.WorkingHoursResponse, error) {
	if c.f.WorkingHours == nil {
		return nil, fmt.Errorf("%w: working hours are absent in fixture", marketplace.ErrInternal)
	}
	return c.f.WorkingHours, nil
}

func (c fixtureClient) GetScheduleProposals(context.Context, int64, *int) (*marketplace.ScheduleProposalsResponse, error) {
	if c.f.ScheduleProposals == nil {
		return nil, fmt.Errorf("%w: schedule proposals are absent in fixture", marketplace.ErrInternal)
	}
	return c.f.ScheduleProposals, nil
}

// fixtureBlocks отдает ручные блокировки из фикстуры
type fixtureBlocks struct {
	f *Fixture
}

func (b fixtureBlocks) List(context.Context, domain.ManualBlocksFilter) ([]*domain.ManualBlock, error) {
	blocks := make([]*domain.ManualBlock, 0, len(b.f.ManualBlocks))
	for i, fb := range b.f.ManualBlocks {
		blocks = append(blocks, &domain.ManualBlock{
			ID:        int64(i + 1),
			ProjectID: b.f.ProjectID,
			StartsAt:  fb.StartsAt.UTC(),
			EndsAt:    fb.EndsAt.UTC(),
			Reason:    fb.Reason,
			CreatedBy: fixtureUserID,
		})
	}
	return blocks, nil
}

// memoryConfigRepo хранилище конфигураций в памяти с той же иерархией, что и в БД
type memoryConfigRepo struct {
	mu      sync.Mutex
	configs map[string]*domain.PackageConfig
}

func newMemoryConfigRepo() *memoryConfigRepo {
	return &memoryConfigRepo{configs: make(map[string]*domain.PackageConfig)}
}

func configKey(projectID int64, subprojectIndex *int) string {
	if subprojectIndex == nil {
		return fmt.Sprintf("%d", projectID)
	}
	return fmt.Sprintf("%d:%d", projectID, *subprojectIndex)
}

func (r *memoryConfigRepo) GetConfigWithHierarchy(_ context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if subprojectIndex != nil {
		if cfg, ok := r.configs[configKey(projectID, subprojectIndex)]; ok {
			return cfg, nil
		}
	}
	if cfg, ok := r.configs[configKey(projectID, nil)]; ok {
		return cfg, nil
	}
	return nil, configRepo.ErrConfigNotFound
}

func (r *memoryConfigRepo) Upsert(_ context.Context, cfg *domain.PackageConfig) (*domain.PackageConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *cfg
	stored.ID = int64(len(r.configs) + 1)
	r.configs[configKey(cfg.ProjectID, cfg.SubprojectIndex)] = &stored
	return &stored, nil
}

func (r *memoryConfigRepo) Delete(_ context.Context, projectID int64, subprojectIndex *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := configKey(projectID, subprojectIndex)
	if _, ok := r.configs[key]; !ok {
		return configRepo.ErrConfigNotFound
	}
	delete(r.configs, key)
	return nil
}
