package models

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Уровни, на которых найдена конфигурация
const (
	LevelSubproject = "subproject"
	LevelProject    = "project"
	LevelDefault    = "default"
)

// Request модели

// ExecutionDTO длительность выполнения работ
type ExecutionDTO struct {
	Value float64  `json:"value"`
	Unit  string   `json:"unit"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
}

// BufferDTO буфер после выполнения работ
type BufferDTO struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// UpsertConfigRequest запрос на создание или замену конфигурации
type UpsertConfigRequest struct {
	UserID          int64        `json:"-"`
	ProjectID       int64        `json:"-"`
	SubprojectIndex *int         `json:"subprojectIndex,omitempty"` // NULL = для всех пакетов проекта
	Mode            string       `json:"mode"`
	Execution       ExecutionDTO `json:"execution"`
	Buffer          *BufferDTO   `json:"buffer,omitempty"`
}

// GetConfigRequest запрос на получение конфигурации (для иерархического поиска)
type GetConfigRequest struct {
	ProjectID       int64
	SubprojectIndex *int // nil означает конфигурацию проекта
}

// DeleteConfigRequest запрос на удаление конфигурации уровня
type DeleteConfigRequest struct {
	UserID          int64
	ProjectID       int64
	SubprojectIndex *int
}

// Response модели

// ConfigResponse ответ с данными конфигурации пакета
type ConfigResponse struct {
	ID              int64        `json:"id,omitempty"`
	ProjectID       int64        `json:"projectId"`
	SubprojectIndex *int         `json:"subprojectIndex,omitempty"`
	Mode            string       `json:"mode"`
	Execution       ExecutionDTO `json:"execution"`
	Buffer          *BufferDTO   `json:"buffer,omitempty"`
	Level           string       `json:"level"`
	CreatedAt       *time.Time   `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time   `json:"updatedAt,omitempty"`
}

// Методы конвертации

// Level возвращает уровень иерархии, к которому относится конфигурация
func Level(c *domain.PackageConfig) string {
	if c.ID == 0 {
		return LevelDefault
	}
	if c.IsProjectWide() {
		return LevelProject
	}
	return LevelSubproject
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.PackageConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		ID:              c.ID,
		ProjectID:       c.ProjectID,
		SubprojectIndex: c.SubprojectIndex,
		Mode:            string(c.Mode),
		Execution: ExecutionDTO{
			Value: c.Execution.Value,
			Unit:  string(c.Execution.Unit),
		},
		Level: Level(c),
	}

	if c.Execution.Range != nil {
		resp.Execution.Min = c.Execution.Range.Min
		resp.Execution.Max = c.Execution.Range.Max
	}
	if c.HasBuffer() {
		resp.Buffer = &BufferDTO{Value: c.Buffer.Value, Unit: string(c.Buffer.Unit)}
	}
	if !c.CreatedAt.IsZero() {
		createdAt, updatedAt := c.CreatedAt, c.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// ToDomainConfig конвертирует UpsertConfigRequest в domain модель
func (r *UpsertConfigRequest) ToDomainConfig() *domain.PackageConfig {
	cfg := &domain.PackageConfig{
		ProjectID:       r.ProjectID,
		SubprojectIndex: r.SubprojectIndex,
		Mode:            domain.ExecutionMode(r.Mode),
		Execution: domain.ExecutionDuration{
			Value: r.Execution.Value,
			Unit:  domain.DurationUnit(r.Execution.Unit),
		},
	}

	if r.Execution.Min != nil || r.Execution.Max != nil {
		cfg.Execution.Range = &domain.DurationRange{Min: r.Execution.Min, Max: r.Execution.Max}
	}
	if r.Buffer != nil {
		cfg.Buffer = domain.BufferDuration{Value: r.Buffer.Value, Unit: domain.DurationUnit(r.Buffer.Unit)}
	}

	return cfg
}
