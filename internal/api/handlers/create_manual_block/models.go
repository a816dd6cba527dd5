package create_manual_block

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks/models"
)

// CreateManualBlockRequest HTTP request model
type CreateManualBlockRequest struct {
	StartsAt time.Time `json:"startsAt"` // RFC3339, например "2026-10-20T09:00:00+03:00"
	EndsAt   time.Time `json:"endsAt"`
	Reason   *string   `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateManualBlockRequest) ToServiceRequest(userID, projectID int64) *models.CreateBlockRequest {
	return &models.CreateBlockRequest{
		UserID:    userID,
		ProjectID: projectID,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
		Reason:    r.Reason,
	}
}
