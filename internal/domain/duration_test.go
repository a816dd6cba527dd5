package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

func TestExecutionDuration_MagnitudeFallback(t *testing.T) {
	tests := []struct {
		name string
		d    ExecutionDuration
		want float64
	}{
		{name: "value wins", d: ExecutionDuration{Value: 3, Range: &DurationRange{Max: ptr.Ptr(5.0)}}, want: 3},
		{name: "range max", d: ExecutionDuration{Range: &DurationRange{Min: ptr.Ptr(2.0), Max: ptr.Ptr(5.0)}}, want: 5},
		{name: "range min", d: ExecutionDuration{Range: &DurationRange{Min: ptr.Ptr(2.0)}}, want: 2},
		{name: "nothing", d: ExecutionDuration{}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.Magnitude())
		})
	}
}

func TestExecutionDuration_Days(t *testing.T) {
	assert.Equal(t, 3, ExecutionDuration{Value: 2.5, Unit: UnitDays}.Days())
	assert.Equal(t, 2, ExecutionDuration{Value: 30, Unit: UnitHours}.Days())
	assert.Equal(t, 48.0, ExecutionDuration{Value: 2, Unit: UnitDays}.Hours())
}

func TestBlockedRange_OverlapsIsHalfOpen(t *testing.T) {
	r := BlockedRange{Start: mustUTC("2026-10-20T10:00:00Z"), End: mustUTC("2026-10-20T10:30:00Z")}

	assert.True(t, r.Overlaps(mustUTC("2026-10-20T09:30:00Z"), mustUTC("2026-10-20T11:30:00Z")))
	assert.False(t, r.Overlaps(mustUTC("2026-10-20T10:30:00Z"), mustUTC("2026-10-20T12:30:00Z")))
	assert.False(t, r.Overlaps(mustUTC("2026-10-20T08:00:00Z"), mustUTC("2026-10-20T10:00:00Z")))
}

func TestDaySchedule_IsValid(t *testing.T) {
	assert.True(t, DefaultDaySchedule().IsValid())
	assert.True(t, DaySchedule{Defined: true, Available: false}.IsValid())
	assert.False(t, DaySchedule{Defined: true, Available: true, StartTime: "17:00", EndTime: "09:00"}.IsValid())
	assert.False(t, DaySchedule{Defined: true, Available: true, StartTime: "bad", EndTime: "09:00"}.IsValid())
}
