package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
	"github.com/m04kA/SMC-SchedulingService/internal/service/planner"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakePlanner struct {
	cfg      *domain.PackageConfig
	snapshot *domain.Snapshot
	now      time.Time
	err      error
}

func (p fakePlanner) Prepare(context.Context, int64, *int) (*planner.Plan, error) {
	if p.err != nil {
		return nil, p.err
	}
	snapshot := p.snapshot
	if snapshot == nil {
		snapshot = domain.EmptySnapshot()
	}
	return &planner.Plan{
		Config:   p.cfg,
		Snapshot: snapshot,
		Engine:   scheduling.New(snapshot, scheduling.ParamsFromConfig(p.cfg), p.now, nil),
	}, nil
}

type fakeMetrics struct {
	observed []int
}

func (m *fakeMetrics) ObserveSlotsGenerated(count int) {
	m.observed = append(m.observed, count)
}

var monday = time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC)

func hoursConfig(h float64) *domain.PackageConfig {
	return &domain.PackageConfig{
		ProjectID: 1,
		Mode:      domain.ModeHours,
		Execution: domain.ExecutionDuration{Value: h, Unit: domain.UnitHours},
	}
}

func tuesday() types.Date {
	return types.Date{Year: 2026, Month: time.October, Day: 20}
}

func TestUseCase_Execute(t *testing.T) {
	m := &fakeMetrics{}
	uc := NewUseCase(fakePlanner{cfg: hoursConfig(2), now: monday}, m, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1, Date: tuesday()})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 13)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), resp.Slots[0].StartsAt)
	assert.Equal(t, time.Date(2026, 10, 20, 11, 0, 0, 0, time.UTC), resp.Slots[0].EndsAt)
	assert.Equal(t, types.TimeString("15:00"), resp.Slots[12].StartTime)
	assert.Equal(t, 120, resp.DurationMinutes)
	assert.Equal(t, "UTC", resp.Timezone)
	assert.False(t, resp.Misconfigured)
	assert.Equal(t, []int{13}, m.observed)
}

func TestUseCase_ExecuteInProfessionalZone(t *testing.T) {
	snapshot := domain.EmptySnapshot()
	snapshot.Location = time.FixedZone("UTC+03:00", 3*60*60)
	snapshot.Timezone = snapshot.Location.String()
	uc := NewUseCase(fakePlanner{cfg: hoursConfig(2), snapshot: snapshot, now: monday}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1, Date: tuesday()})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)
	assert.Equal(t, time.Date(2026, 10, 20, 6, 0, 0, 0, time.UTC), resp.Slots[0].StartsAt)
}

func TestUseCase_Misconfigured(t *testing.T) {
	uc := NewUseCase(fakePlanner{cfg: hoursConfig(10), now: monday}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1, Date: tuesday()})

	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.True(t, resp.Misconfigured)
	assert.True(t, resp.RecommendDayMode)
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		planner fakePlanner
		req     *Request
		wantErr error
	}{
		{
			name:    "day mode",
			planner: fakePlanner{cfg: domain.DefaultPackageConfig(1), now: monday},
			req:     &Request{ProjectID: 1, Date: tuesday()},
			wantErr: ErrWrongMode,
		},
		{
			name:    "missing date",
			planner: fakePlanner{cfg: hoursConfig(2), now: monday},
			req:     &Request{ProjectID: 1},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "planner failure",
			planner: fakePlanner{err: errors.New("db down")},
			req:     &Request{ProjectID: 1, Date: tuesday()},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.planner, nil, nopLogger{})

			_, err := uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
