package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// UseCase use case для получения доступных слотов часового режима
type UseCase struct {
	planner Planner
	metrics Metrics
	logger  Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil
func NewUseCase(planner Planner, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		planner: planner,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: project=%d, subproject=%v, date=%s",
		req.ProjectID, req.SubprojectIndex, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Собираем движок: конфигурация пакета, снапшот, текущее время
	plan, err := uc.planner.Prepare(ctx, req.ProjectID, req.SubprojectIndex)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Слоты есть только у часового режима
	if plan.Config.Mode != domain.ModeHours {
		uc.logger.Warn("GetAvailableSlots: project=%d uses %s mode", req.ProjectID, plan.Config.Mode)
		return nil, ErrWrongMode
	}

	engine := plan.Engine
	loc := engine.Location()
	duration := engine.ExecutionDuration()

	// 4. Генерируем слоты
	generated := engine.GenerateSlots(req.Date)
	slots := make([]Slot, 0, len(generated))
	for _, s := range generated {
		startsAt := s.Start.On(s.Date.In(loc), loc).UTC()
		slots = append(slots, Slot{
			StartTime: s.Start,
			StartsAt:  startsAt,
			EndsAt:    startsAt.Add(duration),
		})
	}

	misconfigured := engine.HourModeMisconfigured()
	if misconfigured {
		uc.logger.Warn("GetAvailableSlots: execution of %s does not fit any working day of project=%d",
			duration, req.ProjectID)
	}

	if uc.metrics != nil {
		uc.metrics.ObserveSlotsGenerated(len(slots))
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for project=%d, date=%s",
		len(slots), req.ProjectID, req.Date)

	return &Response{
		Date:             req.Date,
		Timezone:         loc.String(),
		DurationMinutes:  int(duration.Minutes()),
		Slots:            slots,
		Misconfigured:    misconfigured,
		RecommendDayMode: misconfigured,
		Degraded:         plan.Snapshot.Degraded,
	}, nil
}
