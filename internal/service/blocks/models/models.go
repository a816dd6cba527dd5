package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модели

// CreateBlockRequest запрос на создание ручной блокировки
type CreateBlockRequest struct {
	UserID    int64     `json:"-"`
	ProjectID int64     `json:"-"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Reason    *string   `json:"reason,omitempty"`
}

// ListBlocksRequest запрос на получение блокировок проекта
type ListBlocksRequest struct {
	UserID    int64
	ProjectID int64
	From      *time.Time // Начало периода (опционально)
	To        *time.Time // Конец периода (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBlocksRequest) ToDomainFilter() domain.ManualBlocksFilter {
	return domain.ManualBlocksFilter{
		ProjectID: r.ProjectID,
		From:      r.From,
		To:        r.To,
	}
}

// ToDomainBlock конвертирует CreateBlockRequest в domain модель
func (r *CreateBlockRequest) ToDomainBlock() *domain.ManualBlock {
	return &domain.ManualBlock{
		ProjectID: r.ProjectID,
		StartsAt:  r.StartsAt.UTC(),
		EndsAt:    r.EndsAt.UTC(),
		Reason:    r.Reason,
		CreatedBy: r.UserID,
	}
}

// Response модели

// BlockResponse ответ с данными ручной блокировки
type BlockResponse struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"projectId"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	Reason    string    `json:"reason"`
	CreatedBy int64     `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.ManualBlock) *BlockResponse {
	if b == nil {
		return nil
	}

	return &BlockResponse{
		ID:        b.ID,
		ProjectID: b.ProjectID,
		StartsAt:  b.StartsAt,
		EndsAt:    b.EndsAt,
		Reason:    b.ToBlockedRange().Reason,
		CreatedBy: b.CreatedBy,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.ManualBlock) *BlockListResponse {
	resp := &BlockListResponse{
		Blocks: make([]BlockResponse, 0, len(blocks)),
	}

	for _, b := range blocks {
		if blockResp := FromDomainBlock(b); blockResp != nil {
			resp.Blocks = append(resp.Blocks, *blockResp)
		}
	}

	return resp
}
