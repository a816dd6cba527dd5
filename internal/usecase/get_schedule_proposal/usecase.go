package get_schedule_proposal

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// UseCase use case ближайшей даты начала работ
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

// Execute согласует подсказки сервера с локальными данными
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleProposal: project=%d, subproject=%v", req.ProjectID, req.SubprojectIndex)

	var viewer *time.Location
	if strings.TrimSpace(req.ViewerTimezone) != "" {
		loc, err := scheduling.NormalizeTimezone(req.ViewerTimezone)
		if err != nil {
			uc.logger.Warn("GetScheduleProposal: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		viewer = loc
	}

	plan, err := uc.planner.Prepare(ctx, req.ProjectID, req.SubprojectIndex)
	if err != nil {
		if errors.Is(err, planner.ErrInvalidInput) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	engine := plan.Engine
	loc := engine.Location()
	if viewer == nil {
		viewer = loc
	}

	selection := engine.Reconcile(plan.Snapshot.Proposal)

	if selection.Source != scheduling.SourceProposal && uc.metrics != nil {
		uc.metrics.ObserveMinDateScan(selection.ScannedDays)
	}

	resp := &Response{
		Mode:                       string(engine.Mode()),
		Timezone:                   loc.String(),
		ViewerTimezone:             viewer.String(),
		Source:                     string(selection.Source),
		ScannedDays:                selection.ScannedDays,
		EarliestProposal:           newWindow(selection.EarliestProposal, loc, viewer),
		ShortestThroughputProposal: newWindow(selection.ShortestThroughputProposal, loc, viewer),
		ResourcePolicy:             selection.ResourcePolicy,
		Degraded:                   plan.Snapshot.Degraded,
	}

	if selection.HasEarliest {
		earliest := selection.EarliestDate
		resp.EarliestDate = &earliest
		uc.logger.Info("GetScheduleProposal: earliest date for project=%d is %s (source: %s)",
			req.ProjectID, earliest, selection.Source)
	} else {
		uc.logger.Warn("GetScheduleProposal: no available date for project=%d within %d days",
			req.ProjectID, selection.ScannedDays)
	}

	return resp, nil
}
