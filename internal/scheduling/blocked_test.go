package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestIntervalsFor_ExplicitDateCoversWholeDay(t *testing.T) {
	snap := domain.EmptySnapshot()
	snap.BlockedDates = []types.Date{day("2026-10-20")}
	e := New(snap, daysParams(1), mustTime(defaultNow), nil)

	got := e.IntervalsFor(day("2026-10-20"))

	require.Len(t, got, 1)
	assert.Equal(t, mustTime("2026-10-20T00:00:00Z"), got[0].Start.UTC())
	assert.Equal(t, mustTime("2026-10-21T00:00:00Z"), got[0].End.UTC())
	assert.Equal(t, 480.0, e.OverlapMinutes(day("2026-10-20"), "09:00", "17:00"))
}

func TestIntervalsFor_ClipsMultiDayRange(t *testing.T) {
	snap := snapshotWith(rng("2026-10-19T15:00:00Z", "2026-10-21T11:00:00Z"))
	e := New(snap, daysParams(1), mustTime(defaultNow), nil)

	first := e.IntervalsFor(day("2026-10-19"))
	middle := e.IntervalsFor(day("2026-10-20"))
	last := e.IntervalsFor(day("2026-10-21"))

	require.Len(t, first, 1)
	assert.Equal(t, mustTime("2026-10-19T15:00:00Z"), first[0].Start.UTC())
	assert.Equal(t, mustTime("2026-10-20T00:00:00Z"), first[0].End.UTC())

	require.Len(t, middle, 1)
	assert.Equal(t, 24.0, middle[0].Duration().Hours())

	require.Len(t, last, 1)
	assert.Equal(t, mustTime("2026-10-21T11:00:00Z"), last[0].End.UTC())
	assert.Equal(t, 120.0, e.OverlapMinutes(day("2026-10-21"), "09:00", "17:00"))
	assert.Empty(t, e.IntervalsFor(day("2026-10-22")))
}

func TestIntervalsFor_UTCMidnightEndExtendsToLocalDayEnd(t *testing.T) {
	loc, err := NormalizeTimezone("Asia/Tokyo")
	require.NoError(t, err)

	// Блокировка 20.10 00:00-09:00 по Токио, конец ровно в полночь UTC
	snap := snapshotWith(rng("2026-10-19T15:00:00Z", "2026-10-20T00:00:00Z"))
	snap.Timezone = "Asia/Tokyo"
	snap.Location = loc
	e := New(snap, daysParams(1), mustTime(defaultNow), nil)

	got := e.IntervalsFor(day("2026-10-20"))

	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(day("2026-10-20").In(loc)))
	assert.True(t, got[0].End.Equal(day("2026-10-21").In(loc)))
	assert.True(t, e.IsDateBlocked(day("2026-10-20")))
}

func TestIntervalsFor_NonMidnightEndIsLiteral(t *testing.T) {
	loc, err := NormalizeTimezone("Asia/Tokyo")
	require.NoError(t, err)

	snap := snapshotWith(rng("2026-10-19T15:00:00Z", "2026-10-20T01:00:00Z"))
	snap.Timezone = "Asia/Tokyo"
	snap.Location = loc
	e := New(snap, daysParams(1), mustTime(defaultNow), nil)

	assert.Equal(t, 60.0, e.OverlapMinutes(day("2026-10-20"), "09:00", "17:00"))
	assert.False(t, e.IsDateBlocked(day("2026-10-20")))
}

func TestNew_DropsInvalidRanges(t *testing.T) {
	snap := snapshotWith(
		rng("2026-10-20T12:00:00Z", "2026-10-20T10:00:00Z"),
		domain.BlockedRange{End: mustTime("2026-10-20T10:00:00Z")},
	)
	e := New(snap, daysParams(1), mustTime(defaultNow), nil)

	assert.Empty(t, e.IntervalsFor(day("2026-10-20")))
}

func TestMergeIntervals(t *testing.T) {
	in := []Interval{
		{Start: mustTime("2026-10-20T12:00:00Z"), End: mustTime("2026-10-20T13:00:00Z")},
		{Start: mustTime("2026-10-20T09:00:00Z"), End: mustTime("2026-10-20T10:00:00Z")},
		{Start: mustTime("2026-10-20T10:00:00Z"), End: mustTime("2026-10-20T11:00:00Z")},
		{Start: mustTime("2026-10-20T12:30:00Z"), End: mustTime("2026-10-20T12:45:00Z")},
	}

	got := mergeIntervals(in)

	require.Len(t, got, 2)
	assert.Equal(t, mustTime("2026-10-20T09:00:00Z"), got[0].Start)
	assert.Equal(t, mustTime("2026-10-20T11:00:00Z"), got[0].End)
	assert.Equal(t, mustTime("2026-10-20T13:00:00Z"), got[1].End)
	assert.Nil(t, mergeIntervals(nil))
}
