package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// ExceedsWorkingDay сообщает, что работы не помещаются в рабочий день даты.
// Это сигнал неверной настройки часового режима, а не ошибка
func (e *Engine) ExceedsWorkingDay(date types.Date) bool {
	execMinutes := e.executionMinutes()
	return execMinutes <= 0 || execMinutes > e.HoursFor(date).Minutes()
}

// HourModeMisconfigured сообщает, что работы не помещаются ни в один рабочий день недели
// и проекту стоит использовать дневной режим
func (e *Engine) HourModeMisconfigured() bool {
	if e.params.Mode != domain.ModeHours {
		return false
	}
	for offset := 0; offset < 7; offset++ {
		date := e.today.AddDays(offset)
		if e.IsWorkingDay(date) && !e.ExceedsWorkingDay(date) {
			return false
		}
	}
	return true
}

// GenerateSlots возвращает допустимые времена начала работ на дату (часовой режим).
// Кандидаты идут с шагом 30 минут от начала рабочего дня до (конец - длительность) включительно.
// Слот отбрасывается, если:
// - его начало уже прошло;
// - [начало, начало + длительность) пересекается с блокировками даты;
// - задан буфер и окно буфера после слота пересекается с какой-либо блокировкой
func (e *Engine) GenerateSlots(date types.Date) []domain.Slot {
	slots := make([]domain.Slot, 0)

	if !e.IsWorkingDay(date) || e.ExceedsWorkingDay(date) {
		return slots
	}

	window := e.HoursFor(date)
	execMinutes := e.executionMinutes()
	execDuration := time.Duration(execMinutes) * time.Minute
	lastStart := window.End.Minutes() - execMinutes

	blocked := e.IntervalsFor(date)
	base := e.dayStart(date)

	for m := window.Start.Minutes(); m <= lastStart; m += domain.SlotStepMinutes {
		startTime, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}

		slotStart := startTime.On(base, e.loc)
		slotEnd := slotStart.Add(execDuration)

		if slotStart.Before(e.now) {
			continue
		}
		if overlapsAny(slotStart, slotEnd, blocked) {
			continue
		}
		if !e.params.Buffer.IsZero() && e.bufferCollides(slotEnd) {
			continue
		}

		slots = append(slots, domain.Slot{Date: date, Start: startTime})
	}

	return slots
}

// bufferCollides проверяет, что окно буфера после end пересекается с блокировкой
func (e *Engine) bufferCollides(end time.Time) bool {
	bufferEnd := e.bufferEnd(end)
	for _, r := range e.ranges {
		if r.Overlaps(end, bufferEnd) {
			return true
		}
	}
	return false
}

func overlapsAny(start, end time.Time, intervals []Interval) bool {
	for _, i := range intervals {
		if i.Overlaps(start, end) {
			return true
		}
	}
	return false
}
