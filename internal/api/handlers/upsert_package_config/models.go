package upsert_package_config

import (
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

// UpsertPackageConfigRequest HTTP request model
type UpsertPackageConfigRequest struct {
	SubprojectIndex *int                `json:"subprojectIndex,omitempty"`
	Mode            string              `json:"mode"`
	Execution       models.ExecutionDTO `json:"execution"`
	Buffer          *models.BufferDTO   `json:"buffer,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpsertPackageConfigRequest) ToServiceRequest(userID, projectID int64) *models.UpsertConfigRequest {
	return &models.UpsertConfigRequest{
		UserID:          userID,
		ProjectID:       projectID,
		SubprojectIndex: r.SubprojectIndex,
		Mode:            r.Mode,
		Execution:       r.Execution,
		Buffer:          r.Buffer,
	}
}
