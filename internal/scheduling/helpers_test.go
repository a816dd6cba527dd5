package scheduling

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// 2026-10-19 - понедельник
const defaultNow = "2026-10-19T06:00:00Z"

func mustTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func day(s string) types.Date {
	d, err := types.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func hoursParams(execHours float64) Params {
	return Params{
		Mode:      domain.ModeHours,
		Execution: domain.ExecutionDuration{Value: execHours, Unit: domain.UnitHours},
	}
}

func daysParams(execDays float64) Params {
	return Params{
		Mode:      domain.ModeDays,
		Execution: domain.ExecutionDuration{Value: execDays, Unit: domain.UnitDays},
	}
}

func rng(start, end string) domain.BlockedRange {
	return domain.BlockedRange{Start: mustTime(start), End: mustTime(end), Reason: "booking"}
}

func snapshotWith(ranges ...domain.BlockedRange) *domain.Snapshot {
	s := domain.EmptySnapshot()
	s.BlockedRanges = ranges
	return s
}

func closedOn(s *domain.Snapshot, days ...time.Weekday) *domain.Snapshot {
	for _, d := range days {
		s.Weekly[d] = domain.DaySchedule{Defined: true, Available: false}
	}
	return s
}

func slotStarts(slots []domain.Slot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Start.String())
	}
	return out
}

type recordingLogger struct {
	infos  []string
	warns  []string
	errors []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.infos = append(l.infos, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Warn(format string, v ...interface{}) {
	l.warns = append(l.warns, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Error(format string, v ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, v...))
}
