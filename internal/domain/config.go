package domain

import "time"

// PackageConfig параметры планирования пакета (подпроекта) проекта
// Поддерживает иерархию:
// 1. Конкретный пакет проекта (project_id, subproject_index)
// 2. Весь проект (project_id, NULL)
type PackageConfig struct {
	ID              int64
	ProjectID       int64
	SubprojectIndex *int // NULL = конфигурация для всех пакетов проекта
	Mode            ExecutionMode
	Execution       ExecutionDuration
	Buffer          BufferDuration
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsProjectWide возвращает true, если конфигурация общая для проекта
func (c *PackageConfig) IsProjectWide() bool {
	return c.SubprojectIndex == nil
}

// HasBuffer возвращает true, если после работ требуется буфер
func (c *PackageConfig) HasBuffer() bool {
	return !c.Buffer.IsZero()
}

// DefaultPackageConfig конфигурация, используемая при отсутствии сохраненной
func DefaultPackageConfig(projectID int64) *PackageConfig {
	return &PackageConfig{
		ProjectID: projectID,
		Mode:      DefaultExecutionMode,
		Execution: ExecutionDuration{
			Value: DefaultExecutionValue,
			Unit:  UnitDays,
		},
	}
}
