package snapshot

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// parseWeekly переводит расписание по названиям дней в массив по time.Weekday.
// Неизвестные дни и некорректные часы пропускаются, такие дни остаются не настроенными
func parseWeekly(in map[string]marketplace.DayAvailability) (domain.WeeklyAvailability, int) {
	weekly := domain.DefaultWeeklyAvailability()
	skipped := 0

	for name, entry := range in {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			skipped++
			continue
		}

		if entry.Available != nil && !*entry.Available {
			weekly[day] = domain.DaySchedule{Defined: true, Available: false}
			continue
		}

		start, errStart := types.NewTimeStringFromString(entry.StartTime)
		end, errEnd := types.NewTimeStringFromString(entry.EndTime)
		if errStart != nil || errEnd != nil {
			skipped++
			continue
		}

		schedule := domain.DaySchedule{Defined: true, Available: true, StartTime: start, EndTime: end}
		if !schedule.IsValid() {
			skipped++
			continue
		}
		weekly[day] = schedule
	}

	return weekly, skipped
}

// parseBlockedDates парсит явно заблокированные даты, некорректные пропускаются
func parseBlockedDates(in []string) ([]types.Date, int) {
	dates := make([]types.Date, 0, len(in))
	skipped := 0
	for _, s := range in {
		d, err := types.ParseDate(s)
		if err != nil {
			skipped++
			continue
		}
		dates = append(dates, d)
	}
	return dates, skipped
}

// parseBlockedRanges парсит интервалы занятости, интервалы с некорректными границами пропускаются
func parseBlockedRanges(in []marketplace.BlockedRange) ([]domain.BlockedRange, int) {
	ranges := make([]domain.BlockedRange, 0, len(in))
	skipped := 0
	for _, r := range in {
		start, okStart := parseInstant(r.StartDate)
		end, okEnd := parseInstant(r.EndDate)
		if !okStart || !okEnd {
			skipped++
			continue
		}

		blocked := domain.BlockedRange{Start: start, End: end}
		if r.Reason != nil {
			blocked.Reason = *r.Reason
		}
		if !blocked.IsValid() {
			skipped++
			continue
		}
		ranges = append(ranges, blocked)
	}
	return ranges, skipped
}

func parseResourcePolicy(in *marketplace.ResourcePolicy) *domain.ResourcePolicy {
	if in == nil {
		return nil
	}
	return &domain.ResourcePolicy{
		MinResources:         in.MinResources,
		TotalResources:       in.TotalResources,
		MinOverlapPercentage: in.MinOverlapPercentage,
	}
}

// parseProposal переводит ответ оптимизатора в доменную модель.
// Некорректная дата или окно отбрасываются по отдельности
func parseProposal(in *marketplace.ScheduleProposalsResponse) (*domain.ScheduleProposal, int) {
	if in == nil {
		return nil, 0
	}

	skipped := 0
	proposal := &domain.ScheduleProposal{Mode: domain.ExecutionMode(strings.ToLower(in.Mode))}
	if !proposal.Mode.IsValid() {
		proposal.Mode = ""
	}

	if in.EarliestBookableDate != "" {
		if d, err := types.ParseDate(in.EarliestBookableDate); err == nil {
			proposal.EarliestBookableDate = d
		} else {
			skipped++
		}
	}

	var ok bool
	if proposal.EarliestProposal, ok = parseWindow(in.EarliestProposal); !ok {
		skipped++
	}
	if proposal.ShortestThroughputProposal, ok = parseWindow(in.ShortestThroughputProposal); !ok {
		skipped++
	}

	return proposal, skipped
}

// parseWindow возвращает ok = false, если окно пришло, но его не удалось разобрать
func parseWindow(in *marketplace.ProposalWindow) (*domain.ProposalWindow, bool) {
	if in == nil {
		return nil, true
	}

	start, okStart := parseInstant(in.Start)
	end, okEnd := parseInstant(in.End)
	if !okStart || !okEnd || !end.After(start) {
		return nil, false
	}

	window := &domain.ProposalWindow{Start: start, End: end, ExecutionEnd: end}
	if execEnd, ok := parseInstant(in.ExecutionEnd); ok {
		window.ExecutionEnd = execEnd
	}
	return window, true
}

// parseInstant парсит ISO 8601 момент. Дата без времени считается полночью UTC
func parseInstant(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), true
	}
	if t, err := time.Parse(types.DateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
