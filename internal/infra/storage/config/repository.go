package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/psqlbuilder"
)

const table = "package_configs"

var columns = []string{
	"id",
	"project_id",
	"subproject_index",
	"execution_mode",
	"execution_value",
	"execution_unit",
	"execution_min",
	"execution_max",
	"buffer_value",
	"buffer_unit",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигураций пакетов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций пакетов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// GetByProjectAndSubproject получает конфигурацию ровно для указанного уровня:
// subprojectIndex = nil означает конфигурацию всего проекта
func (r *Repository) GetByProjectAndSubproject(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"project_id": projectID})

	// Фильтрация по subproject_index (NULL или конкретное значение)
	if subprojectIndex == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"subproject_index": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"subproject_index": *subprojectIndex})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProjectAndSubproject - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := scanConfig(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProjectAndSubproject - scan config: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// GetConfigWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретного пакета (projectID, subprojectIndex)
// 2. Конфигурация всего проекта (projectID, NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrConfigNotFound
func (r *Repository) GetConfigWithHierarchy(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.PackageConfig, error) {
	// 1. Пробуем получить конфигурацию пакета (если указан)
	if subprojectIndex != nil {
		cfg, err := r.GetByProjectAndSubproject(ctx, projectID, subprojectIndex)
		if err == nil {
			return cfg, nil
		}
		if !errors.Is(err, ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 1 (subproject): %v", ErrExecQuery, err)
		}
	}

	// 2. Пробуем получить конфигурацию проекта
	cfg, err := r.GetByProjectAndSubproject(ctx, projectID, nil)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, fmt.Errorf("%w: GetConfigWithHierarchy - level 2 (project): %v", ErrExecQuery, err)
	}

	return nil, ErrConfigNotFound
}

// Upsert создает конфигурацию уровня или заменяет существующую
func (r *Repository) Upsert(ctx context.Context, cfg *domain.PackageConfig) (*domain.PackageConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := upsertQuery(cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&cfg.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return cfg, nil
}

// Delete удаляет конфигурацию уровня
func (r *Repository) Delete(ctx context.Context, projectID int64, subprojectIndex *int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"project_id": projectID})

	if subprojectIndex == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"subproject_index": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"subproject_index": *subprojectIndex})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrConfigNotFound
	}

	return nil
}

// upsertQuery строит INSERT ... ON CONFLICT по уникальному индексу (project_id, COALESCE(subproject_index, -1))
func upsertQuery(cfg *domain.PackageConfig) (string, []interface{}, error) {
	var rangeMin, rangeMax *float64
	if cfg.Execution.Range != nil {
		rangeMin = cfg.Execution.Range.Min
		rangeMax = cfg.Execution.Range.Max
	}

	var bufferUnit *string
	if !cfg.Buffer.IsZero() {
		unit := string(cfg.Buffer.Unit)
		bufferUnit = &unit
	}

	return psqlbuilder.Insert(table).
		Columns(
			"project_id",
			"subproject_index",
			"execution_mode",
			"execution_value",
			"execution_unit",
			"execution_min",
			"execution_max",
			"buffer_value",
			"buffer_unit",
		).
		Values(
			cfg.ProjectID,
			cfg.SubprojectIndex,
			string(cfg.Mode),
			cfg.Execution.Value,
			string(cfg.Execution.Unit),
			rangeMin,
			rangeMax,
			cfg.Buffer.Value,
			bufferUnit,
		).
		Suffix(`ON CONFLICT (project_id, COALESCE(subproject_index, -1)) DO UPDATE SET
			execution_mode = EXCLUDED.execution_mode,
			execution_value = EXCLUDED.execution_value,
			execution_unit = EXCLUDED.execution_unit,
			execution_min = EXCLUDED.execution_min,
			execution_max = EXCLUDED.execution_max,
			buffer_value = EXCLUDED.buffer_value,
			buffer_unit = EXCLUDED.buffer_unit,
			updated_at = NOW()
			RETURNING id, created_at, updated_at`).
		ToSql()
}

func scanConfig(row rowScanner) (*domain.PackageConfig, error) {
	var (
		cfg                  domain.PackageConfig
		subprojectIndex      sql.NullInt64
		mode, execUnit       string
		execMin, execMax     sql.NullFloat64
		bufferUnit           sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&cfg.ID,
		&cfg.ProjectID,
		&subprojectIndex,
		&mode,
		&cfg.Execution.Value,
		&execUnit,
		&execMin,
		&execMax,
		&cfg.Buffer.Value,
		&bufferUnit,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if subprojectIndex.Valid {
		idx := int(subprojectIndex.Int64)
		cfg.SubprojectIndex = &idx
	}

	cfg.Mode = domain.ExecutionMode(mode)
	cfg.Execution.Unit = domain.DurationUnit(execUnit)

	if execMin.Valid || execMax.Valid {
		cfg.Execution.Range = &domain.DurationRange{}
		if execMin.Valid {
			cfg.Execution.Range.Min = &execMin.Float64
		}
		if execMax.Valid {
			cfg.Execution.Range.Max = &execMax.Float64
		}
	}

	if bufferUnit.Valid {
		cfg.Buffer.Unit = domain.DurationUnit(bufferUnit.String)
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time

	return &cfg, nil
}
