package get_available_dates

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
	return &planner.Plan{
		Config:   p.cfg,
		Snapshot: p.snapshot,
		Engine:   scheduling.New(p.snapshot, scheduling.ParamsFromConfig(p.cfg), p.now, nil),
	}, nil
}

func date(day int) types.Date {
	return types.Date{Year: 2026, Month: time.October, Day: day}
}

func TestUseCase_Execute(t *testing.T) {
	snapshot := domain.EmptySnapshot()
	snapshot.BlockedDates = []types.Date{date(21)}
	snapshot.Weekly[time.Sunday] = domain.DaySchedule{Defined: true, Available: false}
	snapshot.Degraded = []string{"schedule_proposals"}

	uc := NewUseCase(fakePlanner{
		cfg:      domain.DefaultPackageConfig(1),
		snapshot: snapshot,
		now:      time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC),
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1, Days: 7})

	require.NoError(t, err)
	assert.Equal(t, date(19), resp.From)
	assert.Equal(t, "days", resp.Mode)
	assert.Equal(t, []string{"schedule_proposals"}, resp.Degraded)
	require.Len(t, resp.Dates, 7)

	want := map[int]string{21: "blocked_date", 25: "non_working_day"}
	for _, d := range resp.Dates {
		reason, blocked := want[d.Date.Day]
		assert.Equal(t, !blocked, d.Available, d.Date.String())
		assert.Equal(t, reason, d.Reason, d.Date.String())
	}
}

func TestUseCase_ExecuteFromPast(t *testing.T) {
	from := date(17)
	uc := NewUseCase(fakePlanner{
		cfg:      domain.DefaultPackageConfig(1),
		snapshot: domain.EmptySnapshot(),
		now:      time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1, From: &from, Days: 4})

	require.NoError(t, err)
	require.Len(t, resp.Dates, 4)
	assert.Equal(t, "past", resp.Dates[0].Reason)
	assert.Equal(t, "past", resp.Dates[1].Reason)
	// сегодняшний день доступен, даже когда рабочие часы уже идут
	assert.True(t, resp.Dates[2].Available)
	assert.Empty(t, resp.Dates[2].Reason)
	assert.True(t, resp.Dates[3].Available)
}

func TestUseCase_DefaultDays(t *testing.T) {
	uc := NewUseCase(fakePlanner{
		cfg:      domain.DefaultPackageConfig(1),
		snapshot: domain.EmptySnapshot(),
		now:      time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC),
	}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Dates, DefaultDays)
}

func TestUseCase_ConfiguredDefaultDays(t *testing.T) {
	uc := NewUseCase(fakePlanner{
		cfg:      domain.DefaultPackageConfig(1),
		snapshot: domain.EmptySnapshot(),
		now:      time.Date(2026, 10, 19, 6, 0, 0, 0, time.UTC),
	}, nopLogger{}).WithDefaultDays(14)

	resp, err := uc.Execute(context.Background(), &Request{ProjectID: 1})

	require.NoError(t, err)
	assert.Len(t, resp.Dates, 14)
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		planner fakePlanner
		days    int
		wantErr error
	}{
		{name: "too many days", planner: fakePlanner{}, days: 121, wantErr: ErrInvalidInput},
		{name: "negative days", planner: fakePlanner{}, days: -1, wantErr: ErrInvalidInput},
		{name: "planner invalid input", planner: fakePlanner{err: planner.ErrInvalidInput}, days: 5, wantErr: ErrInvalidInput},
		{name: "planner failure", planner: fakePlanner{err: errors.New("db")}, days: 5, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(tt.planner, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{ProjectID: 1, Days: tt.days})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
