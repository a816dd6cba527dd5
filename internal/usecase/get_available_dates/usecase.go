package get_available_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// UseCase use case для получения доступности по датам
type UseCase struct {
	planner     Planner
	logger      Logger
	defaultDays int
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planner Planner, logger Logger) *UseCase {
	return &UseCase{
		planner:     planner,
		logger:      logger,
		defaultDays: DefaultDays,
	}
}

// WithDefaultDays задает длину периода для запросов без days
func (uc *UseCase) WithDefaultDays(days int) *UseCase {
	if days > 0 && days <= domain.MaxAvailableDatesDays {
		uc.defaultDays = days
	}
	return uc
}

// Execute оценивает каждую дату периода
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableDates: project=%d, subproject=%v, from=%v, days=%d",
		req.ProjectID, req.SubprojectIndex, req.From, req.Days)

	days := req.Days
	if days == 0 {
		days = uc.defaultDays
	}
	if days < 0 || days > domain.MaxAvailableDatesDays {
		uc.logger.Warn("GetAvailableDates: days=%d out of range", days)
		return nil, fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxAvailableDatesDays)
	}

	plan, err := uc.planner.Prepare(ctx, req.ProjectID, req.SubprojectIndex)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	engine := plan.Engine
	from := engine.Today()
	if req.From != nil && !req.From.IsZero() {
		from = *req.From
	}

	dates := make([]DateAvailability, 0, days)
	available := 0
	for i := 0; i < days; i++ {
		date := from.AddDays(i)
		status := engine.Evaluate(date)

		entry := DateAvailability{Date: date, Available: status == scheduling.DayAvailable}
		if entry.Available {
			available++
		} else {
			entry.Reason = string(status)
		}
		dates = append(dates, entry)
	}

	uc.logger.Info("GetAvailableDates: %d of %d dates available for project=%d from %s",
		available, days, req.ProjectID, from)

	return &Response{
		From:     from,
		Timezone: engine.Location().String(),
		Mode:     string(engine.Mode()),
		Dates:    dates,
		Degraded: plan.Snapshot.Degraded,
	}, nil
}
