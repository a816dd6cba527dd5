package blocks

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	blockRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/manualblock"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks/models"
)

// Service сервис для работы с ручными блокировками
type Service struct {
	blockRepo BlockRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса ручных блокировок
func NewService(
	blockRepo BlockRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Create создает ручную блокировку от имени специалиста
func (s *Service) Create(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("Create: creating manual block for project=%d by user=%d", req.ProjectID, req.UserID)

	if req.UserID <= 0 {
		s.logger.Warn("Create: anonymous request for project=%d", req.ProjectID)
		return nil, ErrAccessDenied
	}

	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed for project=%d: %v", req.ProjectID, err)
		return nil, err
	}

	block, err := s.blockRepo.Create(ctx, req.ToDomainBlock())
	if err != nil {
		s.logger.Error("Create: repository error for project=%d: %v", req.ProjectID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created manual block id=%d", block.ID)
	return models.FromDomainBlock(block), nil
}

// List получает блокировки проекта, пересекающиеся с периодом
func (s *Service) List(ctx context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	s.logger.Info("List: fetching manual blocks for project=%d, from=%v, to=%v", req.ProjectID, req.From, req.To)

	if req.From != nil && req.To != nil && !req.To.After(*req.From) {
		s.logger.Warn("List: invalid period for project=%d", req.ProjectID)
		return nil, fmt.Errorf("%w: to must be after from", ErrInvalidTimeRange)
	}

	blocks, err := s.blockRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error for project=%d: %v", req.ProjectID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d manual blocks for project=%d", len(blocks), req.ProjectID)
	return models.FromDomainBlockList(blocks), nil
}

// Delete удаляет ручную блокировку
// Удалить блокировку может только ее автор
func (s *Service) Delete(ctx context.Context, blockID int64, userID int64) error {
	s.logger.Info("Delete: deleting manual block id=%d by user=%d", blockID, userID)

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		block, err := s.blockRepo.GetByID(ctx, blockID)
		if err != nil {
			return err
		}

		if !block.IsOwnedBy(userID) {
			return ErrAccessDenied
		}

		return s.blockRepo.Delete(ctx, blockID)
	})

	switch {
	case err == nil:
		s.logger.Info("Delete: successfully deleted manual block id=%d", blockID)
		return nil
	case errors.Is(err, blockRepo.ErrBlockNotFound):
		s.logger.Warn("Delete: manual block id=%d not found", blockID)
		return ErrBlockNotFound
	case errors.Is(err, ErrAccessDenied):
		s.logger.Warn("Delete: user=%d is not the author of manual block id=%d", userID, blockID)
		return ErrAccessDenied
	default:
		s.logger.Error("Delete: failed to delete manual block id=%d: %v", blockID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}
}

// validateCreate валидирует параметры блокировки
func validateCreate(req *models.CreateBlockRequest) error {
	if req.ProjectID <= 0 {
		return fmt.Errorf("%w: projectId must be positive", ErrInvalidInput)
	}
	if req.StartsAt.IsZero() || req.EndsAt.IsZero() {
		return fmt.Errorf("%w: startsAt and endsAt are required", ErrInvalidTimeRange)
	}
	if !req.EndsAt.After(req.StartsAt) {
		return fmt.Errorf("%w: endsAt must be after startsAt", ErrInvalidTimeRange)
	}
	if req.EndsAt.Sub(req.StartsAt) > domain.MaxManualBlockDays*24*time.Hour {
		return fmt.Errorf("%w: block must not exceed %d days", ErrInvalidTimeRange, domain.MaxManualBlockDays)
	}
	if req.Reason != nil && utf8.RuneCountInString(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason must not exceed %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}
	return nil
}
