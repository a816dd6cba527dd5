package snapshot

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-SchedulingService/internal/scheduling"
)

// Источники данных снапшота
const (
	SourceAvailability = "availability"
	SourceWorkingHours = "working_hours"
	SourceProposals    = "schedule_proposals"
)

// Service собирает снапшот данных для пары (проект, пакет)
type Service struct {
	client  MarketplaceClient
	blocks  ManualBlockRepository
	cache   Cache
	metrics Metrics
	logger  Logger

	mu          sync.Mutex
	generations map[string]*generationState
}

// generationState номер последней загрузки ключа и число незавершенных загрузок
type generationState struct {
	current  uint64
	inflight int
}

// NewService создает новый экземпляр сервиса снапшотов. cache и metrics могут быть nil
func NewService(
	client MarketplaceClient,
	blocks ManualBlockRepository,
	cache Cache,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		client:      client,
		blocks:      blocks,
		cache:       cache,
		metrics:     metrics,
		logger:      logger,
		generations: make(map[string]*generationState),
	}
}

type fetched struct {
	availability *marketplace.AvailabilityResponse
	workingHours *marketplace.WorkingHoursResponse
	proposals    *marketplace.ScheduleProposalsResponse

	// fresh ответы, полученные из маркетплейса, а не из кэша
	fresh map[string]interface{}

	availabilityErr error
	workingHoursErr error
	proposalsErr    error

	manualBlocks []*domain.ManualBlock
}

// Load загружает три источника маркетплейса параллельно и ручные блокировки из БД.
// Ошибка маркетплейса не прерывает загрузку: занятость и расписание заменяются
// значениями по умолчанию (fail open), подсказки считаются отсутствующими.
// Ошибкой завершается только чтение ручных блокировок
func (s *Service) Load(ctx context.Context, projectID int64, subprojectIndex *int) (*domain.Snapshot, error) {
	key := generationKey(projectID, subprojectIndex)
	generation := s.nextGeneration(key)
	defer s.releaseGeneration(key)

	s.logger.Info("Load: loading snapshot for project=%d, subproject=%v (generation=%d)",
		projectID, subprojectIndex, generation)

	f := &fetched{fresh: make(map[string]interface{})}
	var freshMu sync.Mutex
	remember := func(source string, value interface{}) {
		freshMu.Lock()
		f.fresh[source] = value
		freshMu.Unlock()
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var resp marketplace.AvailabilityResponse
		if s.cacheGet(gctx, marketplace.EndpointAvailability, projectID, subprojectIndex, &resp) {
			f.availability = &resp
			return nil
		}
		f.availability, f.availabilityErr = s.client.GetAvailability(gctx, projectID, subprojectIndex)
		if f.availabilityErr == nil {
			remember(marketplace.EndpointAvailability, f.availability)
		}
		return nil
	})

	g.Go(func() error {
		var resp marketplace.WorkingHoursResponse
		if s.cacheGet(gctx, marketplace.EndpointWorkingHours, projectID, nil, &resp) {
			f.workingHours = &resp
			return nil
		}
		f.workingHours, f.workingHoursErr = s.client.GetWorkingHours(gctx, projectID)
		if f.workingHoursErr == nil {
			remember(marketplace.EndpointWorkingHours, f.workingHours)
		}
		return nil
	})

	g.Go(func() error {
		var resp marketplace.ScheduleProposalsResponse
		if s.cacheGet(gctx, marketplace.EndpointScheduleProposals, projectID, subprojectIndex, &resp) {
			f.proposals = &resp
			return nil
		}
		f.proposals, f.proposalsErr = s.client.GetScheduleProposals(gctx, projectID, subprojectIndex)
		if f.proposalsErr == nil {
			remember(marketplace.EndpointScheduleProposals, f.proposals)
		}
		return nil
	})

	g.Go(func() error {
		blocks, err := s.blocks.List(gctx, domain.ManualBlocksFilter{ProjectID: projectID})
		if err != nil {
			return err
		}
		f.manualBlocks = blocks
		return nil
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("Load: failed to load manual blocks for project=%d: %v", projectID, err)
		return nil, fmt.Errorf("%w: failed to load manual blocks: %v", ErrInternal, err)
	}

	if s.isCurrent(key, generation) {
		s.storeFresh(ctx, projectID, subprojectIndex, f.fresh)
	} else {
		s.logger.Info("Load: generation %d for project=%d is stale, skipping cache update", generation, projectID)
	}

	snapshot := s.build(projectID, f)

	s.logger.Info("Load: snapshot for project=%d ready (tz=%s, blockedDates=%d, blockedRanges=%d, skipped=%d, degraded=%v)",
		projectID, snapshot.Timezone, len(snapshot.BlockedDates), len(snapshot.BlockedRanges),
		snapshot.SkippedEntries, snapshot.Degraded)
	return snapshot, nil
}

// build собирает снапшот из ответов, применяя fail open для недоступных источников
func (s *Service) build(projectID int64, f *fetched) *domain.Snapshot {
	snapshot := domain.EmptySnapshot()

	if f.workingHoursErr != nil || f.workingHours == nil {
		s.failOpen(projectID, SourceWorkingHours, f.workingHoursErr)
		snapshot.Degraded = append(snapshot.Degraded, SourceWorkingHours)
	} else {
		weekly, skipped := parseWeekly(f.workingHours.Availability)
		snapshot.Weekly = weekly
		snapshot.SkippedEntries += skipped

		loc, err := scheduling.NormalizeTimezone(f.workingHours.Timezone)
		if err != nil {
			s.logger.Warn("Load: project=%d has unknown timezone, using UTC: %v", projectID, err)
		}
		snapshot.Timezone = loc.String()
		snapshot.Location = loc
	}

	if f.availabilityErr != nil || f.availability == nil {
		s.failOpen(projectID, SourceAvailability, f.availabilityErr)
		snapshot.Degraded = append(snapshot.Degraded, SourceAvailability)
	} else {
		dates, skippedDates := parseBlockedDates(f.availability.BlockedDates)
		ranges, skippedRanges := parseBlockedRanges(f.availability.BlockedRanges)
		snapshot.BlockedDates = dates
		snapshot.BlockedRanges = ranges
		snapshot.ResourcePolicy = parseResourcePolicy(f.availability.ResourcePolicy)
		snapshot.SkippedEntries += skippedDates + skippedRanges
	}

	if f.proposalsErr != nil || f.proposals == nil {
		s.logger.Info("Load: schedule proposals for project=%d unavailable, local scan will be used: %v",
			projectID, f.proposalsErr)
		snapshot.Degraded = append(snapshot.Degraded, SourceProposals)
	} else {
		proposal, skipped := parseProposal(f.proposals)
		snapshot.Proposal = proposal
		snapshot.SkippedEntries += skipped
	}

	for _, b := range f.manualBlocks {
		r := b.ToBlockedRange()
		if !r.IsValid() {
			snapshot.SkippedEntries++
			continue
		}
		snapshot.BlockedRanges = append(snapshot.BlockedRanges, r)
	}

	return snapshot
}

// failOpen фиксирует замену источника значениями по умолчанию.
// Доступность на клиенте может оказаться шире реальной, конфликт разрешается при создании бронирования
func (s *Service) failOpen(projectID int64, source string, err error) {
	s.logger.Warn("Load: %s for project=%d unavailable, failing open with defaults: %v", source, projectID, err)
	if s.metrics != nil {
		s.metrics.IncSnapshotFailOpen(source)
	}
}

func (s *Service) cacheGet(ctx context.Context, endpoint string, projectID int64, subprojectIndex *int, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	return s.cache.Get(ctx, s.cache.Key(endpoint, projectID, subprojectIndex), dest)
}

func (s *Service) storeFresh(ctx context.Context, projectID int64, subprojectIndex *int, fresh map[string]interface{}) {
	if s.cache == nil {
		return
	}
	for endpoint, value := range fresh {
		sub := subprojectIndex
		if endpoint == marketplace.EndpointWorkingHours {
			sub = nil
		}
		s.cache.Set(ctx, s.cache.Key(endpoint, projectID, sub), value)
	}
}

// nextGeneration начинает новую загрузку для ключа и возвращает ее номер
func (s *Service) nextGeneration(key string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.generations[key]
	if !ok {
		state = &generationState{}
		s.generations[key] = state
	}
	state.current++
	state.inflight++
	return state.current
}

// releaseGeneration завершает загрузку. Ключ удаляется, когда незавершенных загрузок не осталось
func (s *Service) releaseGeneration(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.generations[key]
	if !ok {
		return
	}
	state.inflight--
	if state.inflight <= 0 {
		delete(s.generations, key)
	}
}

// isCurrent сообщает, что после загрузки generation не начиналась более новая
func (s *Service) isCurrent(key string, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.generations[key]
	return ok && state.current == generation
}

func generationKey(projectID int64, subprojectIndex *int) string {
	if subprojectIndex == nil {
		return fmt.Sprintf("%d", projectID)
	}
	return fmt.Sprintf("%d:%d", projectID, *subprojectIndex)
}
