package get_completion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
)

// UseCase use case прогноза даты завершения работ и буфера
type UseCase struct {
	planner Planner
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(planner Planner, logger Logger) *UseCase {
	return &UseCase{
		planner: planner,
		logger:  logger,
	}
}

// Execute рассчитывает окончание работ для выбранного начала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCompletion: project=%d, subproject=%v, date=%s, time=%v, includeBuffer=%t",
		req.ProjectID, req.SubprojectIndex, req.Date, req.Time, req.IncludeBuffer)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time != nil && !req.Time.IsValid() {
		return nil, fmt.Errorf("%w: time must be HH:MM", ErrInvalidInput)
	}

	var viewer *time.Location
	if strings.TrimSpace(req.ViewerTimezone) != "" {
		loc, err := scheduling.NormalizeTimezone(req.ViewerTimezone)
		if err != nil {
			uc.logger.Warn("GetCompletion: %v", err)
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

	var completion scheduling.Completion
	if engine.Mode() == domain.ModeHours {
		if req.Time == nil {
			uc.logger.Warn("GetCompletion: project=%d is in hours mode, time is required", req.ProjectID)
			return nil, ErrTimeRequired
		}
		start := req.Time.On(req.Date.In(loc), loc)
		completion = engine.CalculateCompletionDateTime(start, req.IncludeBuffer)
	} else {
		completion = engine.CalculateCompletionDate(req.Date, req.IncludeBuffer)
	}

	resp := &Response{
		Mode:           string(engine.Mode()),
		Timezone:       loc.String(),
		ViewerTimezone: viewer.String(),
		Start:          newMoment(completion.Start, loc, viewer),
		ExecutionEnd:   newMoment(completion.ExecutionEnd, loc, viewer),
		CompletionDate: completion.CompletionDate,
	}

	if req.IncludeBuffer && plan.Config.HasBuffer() {
		bufferEnd := newMoment(completion.BufferEnd, loc, viewer)
		bufferEndDate := completion.BufferEndDate
		resp.BufferEnd = &bufferEnd
		resp.BufferEndDate = &bufferEndDate
	}

	if resp.BufferEnd != nil {
		uc.logger.Info("GetCompletion: project=%d, execution ends %s, buffer ends %s",
			req.ProjectID, resp.ExecutionEnd.Local, resp.BufferEnd.Local)
	} else {
		uc.logger.Info("GetCompletion: project=%d, execution ends %s", req.ProjectID, resp.ExecutionEnd.Local)
	}

	return resp, nil
}
