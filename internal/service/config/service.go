package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

// Service сервис для работы с конфигурацией пакетов
type Service struct {
	configRepo ConfigRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(configRepo ConfigRepository, logger Logger) *Service {
	return &Service{
		configRepo: configRepo,
		logger:     logger,
	}
}

// Resolve получает конфигурацию с учетом иерархии приоритетов:
// пакет > проект > встроенная конфигурация по умолчанию
func (s *Service) Resolve(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error) {
	cfg, err := s.configRepo.GetConfigWithHierarchy(ctx, projectID, subprojectIndex)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Info("Resolve: no config for project=%d, subproject=%v, using default", projectID, subprojectIndex)
			return domain.DefaultPackageConfig(projectID), nil
		}
		s.logger.Error("Resolve: repository error for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	return cfg, nil
}

// Get получает действующую конфигурацию пакета
// Публичный метод - доступен всем
func (s *Service) Get(ctx context.Context, req *models.GetConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Get: fetching config for project=%d, subproject=%v", req.ProjectID, req.SubprojectIndex)

	cfg, err := s.Resolve(ctx, req.ProjectID, req.SubprojectIndex)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainConfig(cfg)
	s.logger.Info("Get: successfully fetched config for project=%d (level: %s)", req.ProjectID, resp.Level)
	return resp, nil
}

// Upsert создает или заменяет конфигурацию уровня
// Требует авторизованного пользователя
func (s *Service) Upsert(ctx context.Context, req *models.UpsertConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Upsert: saving config for project=%d, subproject=%v by user=%d",
		req.ProjectID, req.SubprojectIndex, req.UserID)

	if req.UserID <= 0 {
		s.logger.Warn("Upsert: anonymous request for project=%d", req.ProjectID)
		return nil, ErrAccessDenied
	}

	cfg := req.ToDomainConfig()
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Upsert: validation failed: %v", err)
		return nil, err
	}

	saved, err := s.configRepo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Upsert: repository error: %v", err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Upsert: successfully saved config id=%d", saved.ID)
	return models.FromDomainConfig(saved), nil
}

// Delete удаляет конфигурацию уровня, после чего действует уровень выше
func (s *Service) Delete(ctx context.Context, req *models.DeleteConfigRequest) error {
	s.logger.Info("Delete: deleting config for project=%d, subproject=%v by user=%d",
		req.ProjectID, req.SubprojectIndex, req.UserID)

	if req.UserID <= 0 {
		s.logger.Warn("Delete: anonymous request for project=%d", req.ProjectID)
		return ErrAccessDenied
	}

	if err := s.configRepo.Delete(ctx, req.ProjectID, req.SubprojectIndex); err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			s.logger.Warn("Delete: config not found for project=%d, subproject=%v", req.ProjectID, req.SubprojectIndex)
			return ErrConfigNotFound
		}
		s.logger.Error("Delete: repository error: %v", err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted config for project=%d, subproject=%v", req.ProjectID, req.SubprojectIndex)
	return nil
}

// validateConfig валидирует параметры конфигурации
func validateConfig(cfg *domain.PackageConfig) error {
	if cfg.ProjectID <= 0 {
		return fmt.Errorf("%w: projectId must be positive", ErrInvalidInput)
	}
	if cfg.SubprojectIndex != nil && *cfg.SubprojectIndex < 0 {
		return fmt.Errorf("%w: subprojectIndex must not be negative", ErrInvalidInput)
	}
	if !cfg.Mode.IsValid() {
		return fmt.Errorf("%w: mode must be hours or days", ErrInvalidInput)
	}

	exec := cfg.Execution
	if !exec.Unit.IsValid() {
		return fmt.Errorf("%w: execution unit must be hours or days", ErrInvalidInput)
	}
	if exec.Value < 0 {
		return fmt.Errorf("%w: execution value must not be negative", ErrInvalidInput)
	}
	if exec.Range != nil {
		if (exec.Range.Min != nil && *exec.Range.Min < 0) || (exec.Range.Max != nil && *exec.Range.Max < 0) {
			return fmt.Errorf("%w: execution range must not be negative", ErrInvalidInput)
		}
		if exec.Range.Min != nil && exec.Range.Max != nil && *exec.Range.Min > *exec.Range.Max {
			return fmt.Errorf("%w: execution range min must not exceed max", ErrInvalidInput)
		}
	}
	if exec.Magnitude() <= 0 {
		return fmt.Errorf("%w: execution duration must be positive", ErrInvalidInput)
	}
	if cfg.Mode == domain.ModeHours && exec.Hours() > domain.MaxHourModeExecutionHours {
		return fmt.Errorf("%w: hour mode execution must not exceed %d hours", ErrInvalidInput, domain.MaxHourModeExecutionHours)
	}
	if exec.Days() > domain.MaxExecutionDays {
		return fmt.Errorf("%w: execution must not exceed %d days", ErrInvalidInput, domain.MaxExecutionDays)
	}

	buffer := cfg.Buffer
	if buffer.Value < 0 {
		return fmt.Errorf("%w: buffer value must not be negative", ErrInvalidInput)
	}
	if !buffer.IsZero() {
		if !buffer.Unit.IsValid() {
			return fmt.Errorf("%w: buffer unit must be hours or days", ErrInvalidInput)
		}
		if buffer.Unit == domain.UnitHours && buffer.Value > domain.MaxBufferHours {
			return fmt.Errorf("%w: buffer must not exceed %d hours", ErrInvalidInput, domain.MaxBufferHours)
		}
		if buffer.Unit == domain.UnitDays && buffer.Value > domain.MaxBufferDays {
			return fmt.Errorf("%w: buffer must not exceed %d days", ErrInvalidInput, domain.MaxBufferDays)
		}
	}

	return nil
}
