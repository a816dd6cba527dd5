package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Interval полуинтервал [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration длина интервала
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Overlaps проверяет пересечение с [start, end). Граничащие интервалы не пересекаются
func (i Interval) Overlaps(start, end time.Time) bool {
	return i.Start.Before(end) && start.Before(i.End)
}

// clip обрезает интервал по [lo, hi). ok = false, если пересечения нет
func (i Interval) clip(lo, hi time.Time) (Interval, bool) {
	start, end := i.Start, i.End
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	if !start.Before(end) {
		return Interval{}, false
	}
	return Interval{Start: start, End: end}, true
}

// IsExplicitlyBlocked проверяет, что дата явно заблокирована целиком
func (e *Engine) IsExplicitlyBlocked(date types.Date) bool {
	_, ok := e.blockedDates[date]
	return ok
}

// IntervalsFor возвращает заблокированные интервалы даты, обрезанные по локальным суткам.
// Явная блокировка даты дает интервал на все сутки
func (e *Engine) IntervalsFor(date types.Date) []Interval {
	dayStart := e.dayStart(date)
	dayEnd := e.dayStart(date.AddDays(1))

	if e.IsExplicitlyBlocked(date) {
		return []Interval{{Start: dayStart, End: dayEnd}}
	}

	intervals := make([]Interval, 0)
	for _, r := range e.ranges {
		raw := Interval{Start: r.Start, End: effectiveEnd(r, date, e.loc)}
		if clipped, ok := raw.clip(dayStart, dayEnd); ok {
			intervals = append(intervals, clipped)
		}
	}
	return intervals
}

// OverlapMinutes считает, сколько минут рабочего окна [workingStart, workingEnd) даты
// покрыто блокировками. Пересекающиеся интервалы объединяются, чтобы не считать минуты дважды
func (e *Engine) OverlapMinutes(date types.Date, workingStart, workingEnd types.TimeString) float64 {
	base := e.dayStart(date)
	windowStart := workingStart.On(base, e.loc)
	windowEnd := workingEnd.On(base, e.loc)

	clipped := make([]Interval, 0)
	for _, i := range e.IntervalsFor(date) {
		if c, ok := i.clip(windowStart, windowEnd); ok {
			clipped = append(clipped, c)
		}
	}

	var total time.Duration
	for _, i := range mergeIntervals(clipped) {
		total += i.Duration()
	}
	return total.Minutes()
}

// mergeIntervals сортирует интервалы по началу и склеивает пересекающиеся и смежные
func mergeIntervals(in []Interval) []Interval {
	if len(in) == 0 {
		return nil
	}

	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []Interval{sorted[0]}
	for _, cur := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !cur.Start.After(last.End) {
			if cur.End.After(last.End) {
				last.End = cur.End
			}
			continue
		}
		merged = append(merged, cur)
	}
	return merged
}
