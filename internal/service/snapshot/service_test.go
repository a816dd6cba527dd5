package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	availability    *marketplace.AvailabilityResponse
	availabilityErr error
	workingHours    *marketplace.WorkingHoursResponse
	workingHoursErr error
	proposals       *marketplace.ScheduleProposalsResponse
	proposalsErr    error

	mu    sync.Mutex
	calls int
}

func (c *fakeClient) count() {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
}

func (c *fakeClient) GetAvailability(context.Context, int64, *int) (*marketplace.AvailabilityResponse, error) {
	c.count()
	return c.availability, c.availabilityErr
}

func (c *fakeClient) GetWorkingHours(context.Context, int64) (*marketplace.WorkingHoursResponse, error) {
	c.count()
	return c.workingHours, c.workingHoursErr
}

func (c *fakeClient) GetScheduleProposals(context.Context, int64, *int) (*marketplace.ScheduleProposalsResponse, error) {
	c.count()
	return c.proposals, c.proposalsErr
}

type fakeBlocks struct {
	blocks []*domain.ManualBlock
	err    error
}

func (r *fakeBlocks) List(context.Context, domain.ManualBlocksFilter) ([]*domain.ManualBlock, error) {
	return r.blocks, r.err
}

type fakeMetrics struct {
	mu       sync.Mutex
	failOpen []string
}

func (m *fakeMetrics) IncSnapshotFailOpen(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failOpen = append(m.failOpen, source)
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string]interface{}
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: make(map[string]interface{})}
}

func (c *memoryCache) Key(endpoint string, projectID int64, subprojectIndex *int) string {
	return generationKey(projectID, subprojectIndex) + ":" + endpoint
}

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	if !ok {
		return false
	}
	switch d := dest.(type) {
	case *marketplace.AvailabilityResponse:
		*d = *v.(*marketplace.AvailabilityResponse)
	case *marketplace.WorkingHoursResponse:
		*d = *v.(*marketplace.WorkingHoursResponse)
	case *marketplace.ScheduleProposalsResponse:
		*d = *v.(*marketplace.ScheduleProposalsResponse)
	default:
		return false
	}
	return true
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	c.sets++
}

func healthyClient() *fakeClient {
	return &fakeClient{
		availability: &marketplace.AvailabilityResponse{
			Success:      true,
			BlockedDates: []string{"2026-10-21", "21.10.2026", "2026-10-23T00:00:00.000Z"},
			BlockedRanges: []marketplace.BlockedRange{
				{StartDate: "2026-10-20T10:00:00Z", EndDate: "2026-10-20T12:00:00Z", Reason: ptr.Ptr("booking")},
				{StartDate: "garbage", EndDate: "2026-10-20T12:00:00Z"},
				{StartDate: "2026-10-20T12:00:00Z", EndDate: "2026-10-20T11:00:00Z"},
			},
			ResourcePolicy: &marketplace.ResourcePolicy{MinResources: 2, TotalResources: 4, MinOverlapPercentage: 50},
		},
		workingHours: &marketplace.WorkingHoursResponse{
			Success:  true,
			Timezone: "Europe/Moscow",
			Availability: map[string]marketplace.DayAvailability{
				"monday":  {Available: ptr.Ptr(true), StartTime: "10:00", EndTime: "18:00"},
				"Sunday":  {Available: ptr.Ptr(false)},
				"tuesday": {StartTime: "08:00", EndTime: "12:00"},
				"friday":  {Available: ptr.Ptr(true), StartTime: "19:00", EndTime: "10:00"},
				"funday":  {Available: ptr.Ptr(true), StartTime: "10:00", EndTime: "18:00"},
			},
		},
		proposals: &marketplace.ScheduleProposalsResponse{
			Success:              true,
			Mode:                 "days",
			EarliestBookableDate: "2026-10-22T00:00:00.000Z",
			EarliestProposal:     &marketplace.ProposalWindow{Start: "2026-10-22T07:00:00Z", End: "2026-10-22T15:00:00Z"},
			ShortestThroughputProposal: &marketplace.ProposalWindow{
				Start: "not-a-time", End: "2026-10-22T15:00:00Z",
			},
		},
	}
}

func TestService_Load(t *testing.T) {
	manual := &domain.ManualBlock{
		ID:        1,
		ProjectID: 42,
		StartsAt:  time.Date(2026, 10, 24, 9, 0, 0, 0, time.UTC),
		EndsAt:    time.Date(2026, 10, 24, 13, 0, 0, 0, time.UTC),
	}
	svc := NewService(healthyClient(), &fakeBlocks{blocks: []*domain.ManualBlock{manual}}, nil, nil, nopLogger{})

	snap, err := svc.Load(context.Background(), 42, ptr.Ptr(0))
	require.NoError(t, err)

	assert.Equal(t, "Europe/Moscow", snap.Timezone)
	assert.False(t, snap.IsDegraded())

	assert.Equal(t, domain.DaySchedule{Defined: true, Available: true, StartTime: "10:00", EndTime: "18:00"}, snap.Weekly[time.Monday])
	assert.Equal(t, domain.DaySchedule{Defined: true, Available: false}, snap.Weekly[time.Sunday])
	assert.Equal(t, domain.DaySchedule{Defined: true, Available: true, StartTime: "08:00", EndTime: "12:00"}, snap.Weekly[time.Tuesday])
	assert.False(t, snap.Weekly[time.Friday].Defined)
	assert.False(t, snap.Weekly[time.Wednesday].Defined)

	assert.Equal(t, []types.Date{{Year: 2026, Month: time.October, Day: 21}, {Year: 2026, Month: time.October, Day: 23}}, snap.BlockedDates)

	require.Len(t, snap.BlockedRanges, 2)
	assert.Equal(t, "booking", snap.BlockedRanges[0].Reason)
	assert.Equal(t, domain.ManualBlockReason, snap.BlockedRanges[1].Reason)

	require.NotNil(t, snap.ResourcePolicy)
	assert.Equal(t, 4, snap.ResourcePolicy.TotalResources)

	require.NotNil(t, snap.Proposal)
	assert.Equal(t, domain.ModeDays, snap.Proposal.Mode)
	assert.Equal(t, types.Date{Year: 2026, Month: time.October, Day: 22}, snap.Proposal.EarliestBookableDate)
	require.NotNil(t, snap.Proposal.EarliestProposal)
	assert.Equal(t, snap.Proposal.EarliestProposal.End, snap.Proposal.EarliestProposal.ExecutionEnd)
	assert.Nil(t, snap.Proposal.ShortestThroughputProposal)

	// funday, пятница 19-10, "21.10.2026", два интервала, окно с мусором
	assert.Equal(t, 6, snap.SkippedEntries)
}

func TestService_Load_FailsOpen(t *testing.T) {
	client := &fakeClient{
		availabilityErr: marketplace.ErrInvalidResponse,
		workingHoursErr: marketplace.ErrCircuitOpen,
		proposalsErr:    marketplace.ErrUnsuccessful,
	}
	metrics := &fakeMetrics{}
	svc := NewService(client, &fakeBlocks{}, nil, metrics, nopLogger{})

	snap, err := svc.Load(context.Background(), 42, nil)
	require.NoError(t, err)

	assert.True(t, snap.IsDegraded())
	assert.ElementsMatch(t, []string{SourceAvailability, SourceWorkingHours, SourceProposals}, snap.Degraded)
	assert.ElementsMatch(t, []string{SourceAvailability, SourceWorkingHours}, metrics.failOpen)
	assert.Equal(t, domain.DefaultWeeklyAvailability(), snap.Weekly)
	assert.Equal(t, time.UTC, snap.Location)
	assert.Empty(t, snap.BlockedDates)
	assert.Empty(t, snap.BlockedRanges)
	assert.Nil(t, snap.Proposal)
}

func TestService_Load_ManualBlocksStillMergedWhenFailingOpen(t *testing.T) {
	client := &fakeClient{availabilityErr: errors.New("boom"), workingHoursErr: errors.New("boom"), proposalsErr: errors.New("boom")}
	blocks := &fakeBlocks{blocks: []*domain.ManualBlock{{
		StartsAt: time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 10, 20, 17, 0, 0, 0, time.UTC),
		Reason:   ptr.Ptr("vacation"),
	}}}
	svc := NewService(client, blocks, nil, nil, nopLogger{})

	snap, err := svc.Load(context.Background(), 1, nil)
	require.NoError(t, err)

	require.Len(t, snap.BlockedRanges, 1)
	assert.Equal(t, "vacation", snap.BlockedRanges[0].Reason)
}

func TestService_Load_ManualBlocksError(t *testing.T) {
	svc := NewService(healthyClient(), &fakeBlocks{err: errors.New("db down")}, nil, nil, nopLogger{})

	_, err := svc.Load(context.Background(), 1, nil)

	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Load_UsesCache(t *testing.T) {
	client := healthyClient()
	cache := newMemoryCache()
	svc := NewService(client, &fakeBlocks{}, cache, nil, nopLogger{})

	first, err := svc.Load(context.Background(), 42, ptr.Ptr(1))
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, 3, cache.sets)
	assert.Contains(t, cache.data, "42:working_hours")
	assert.Contains(t, cache.data, "42:1:availability")

	second, err := svc.Load(context.Background(), 42, ptr.Ptr(1))
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	assert.Equal(t, first, second)
}

func TestService_Load_FailedSourcesAreNotCached(t *testing.T) {
	client := healthyClient()
	client.availability = nil
	client.availabilityErr = marketplace.ErrInvalidResponse
	cache := newMemoryCache()
	svc := NewService(client, &fakeBlocks{}, cache, nil, nopLogger{})

	_, err := svc.Load(context.Background(), 42, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, cache.sets)
	assert.NotContains(t, cache.data, "42:availability")
}

func TestService_Generations(t *testing.T) {
	svc := NewService(healthyClient(), &fakeBlocks{}, nil, nil, nopLogger{})

	first := svc.nextGeneration("42:1")
	second := svc.nextGeneration("42:1")
	other := svc.nextGeneration("42")

	assert.False(t, svc.isCurrent("42:1", first))
	assert.True(t, svc.isCurrent("42:1", second))
	assert.True(t, svc.isCurrent("42", other))

	// более новая загрузка завершилась раньше старой
	svc.releaseGeneration("42:1")
	assert.False(t, svc.isCurrent("42:1", first))
	third := svc.nextGeneration("42:1")
	assert.NotEqual(t, first, third)
	assert.False(t, svc.isCurrent("42:1", first))

	svc.releaseGeneration("42:1")
	svc.releaseGeneration("42:1")
	svc.releaseGeneration("42")
	assert.Empty(t, svc.generations)
}

func TestService_Load_ReleasesGenerations(t *testing.T) {
	svc := NewService(healthyClient(), &fakeBlocks{}, nil, nil, nopLogger{})

	for i := 0; i < 3; i++ {
		_, err := svc.Load(context.Background(), int64(i+1), ptr.Ptr(i))
		require.NoError(t, err)
	}
	_, err := svc.Load(context.Background(), 1, nil)
	require.NoError(t, err)

	assert.Empty(t, svc.generations)
}

func TestParseWeekly_AvailableWithoutHoursIsSkipped(t *testing.T) {
	weekly, skipped := parseWeekly(map[string]marketplace.DayAvailability{
		"wed": {Available: ptr.Ptr(true)},
	})

	assert.Equal(t, 1, skipped)
	assert.Equal(t, domain.DefaultDaySchedule(), weekly[time.Wednesday])
}

func TestParseInstant(t *testing.T) {
	got, ok := parseInstant("2026-10-20T12:00:00+03:00")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC), got)

	got, ok = parseInstant("2026-10-20")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC), got)

	_, ok = parseInstant("20 Oct")
	assert.False(t, ok)
}
