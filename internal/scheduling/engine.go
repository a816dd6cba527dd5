package scheduling

import (
	"math"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Params параметры пакета, для которого считается расписание
type Params struct {
	Mode      domain.ExecutionMode
	Execution domain.ExecutionDuration
	Buffer    domain.BufferDuration
}

// ParamsFromConfig собирает параметры из конфигурации пакета
func ParamsFromConfig(cfg *domain.PackageConfig) Params {
	return Params{
		Mode:      cfg.Mode,
		Execution: cfg.Execution,
		Buffer:    cfg.Buffer,
	}
}

// Engine движок доступности и расписания.
// Не хранит изменяемого состояния: все методы - чистые функции от снапшота,
// параметров пакета и момента now, зафиксированных при создании
type Engine struct {
	loc          *time.Location
	weekly       domain.WeeklyAvailability
	blockedDates map[types.Date]struct{}
	ranges       []domain.BlockedRange
	policy       *domain.ResourcePolicy

	params Params
	now    time.Time
	today  types.Date

	logger Logger
}

// New создает движок для снапшота. logger может быть nil
func New(snapshot *domain.Snapshot, params Params, now time.Time, logger Logger) *Engine {
	if snapshot == nil {
		snapshot = domain.EmptySnapshot()
	}
	if logger == nil {
		logger = nopLogger{}
	}

	loc := snapshot.Location
	if loc == nil {
		loc = time.UTC
	}

	blocked := make(map[types.Date]struct{}, len(snapshot.BlockedDates))
	for _, d := range snapshot.BlockedDates {
		blocked[d] = struct{}{}
	}

	ranges := make([]domain.BlockedRange, 0, len(snapshot.BlockedRanges))
	for _, r := range snapshot.BlockedRanges {
		if r.IsValid() {
			ranges = append(ranges, r)
		}
	}

	if !params.Mode.IsValid() {
		params.Mode = domain.DefaultExecutionMode
	}

	return &Engine{
		loc:          loc,
		weekly:       snapshot.Weekly,
		blockedDates: blocked,
		ranges:       ranges,
		policy:       snapshot.ResourcePolicy,
		params:       params,
		now:          now,
		today:        types.DateIn(now, loc),
		logger:       logger,
	}
}

// Location зона специалиста
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Mode режим выполнения пакета
func (e *Engine) Mode() domain.ExecutionMode {
	return e.params.Mode
}

// Today текущая дата в зоне специалиста
func (e *Engine) Today() types.Date {
	return e.today
}

// Now момент, относительно которого ведется расчет
func (e *Engine) Now() time.Time {
	return e.now
}

// ResourcePolicy политика ресурсов из снапшота
func (e *Engine) ResourcePolicy() *domain.ResourcePolicy {
	return e.policy
}

// ExecutionDuration длительность выполнения работ для часового режима
func (e *Engine) ExecutionDuration() time.Duration {
	return time.Duration(e.executionMinutes()) * time.Minute
}

// executionMinutes длительность выполнения в минутах для часового режима
func (e *Engine) executionMinutes() int {
	return int(math.Round(e.params.Execution.Hours() * 60))
}

func (e *Engine) dayStart(date types.Date) time.Time {
	return date.In(e.loc)
}
