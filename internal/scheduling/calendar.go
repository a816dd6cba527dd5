package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WorkingWindow рабочие часы дня в локальном времени специалиста
type WorkingWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// Minutes длина рабочего окна в минутах
func (w WorkingWindow) Minutes() int {
	return w.End.Minutes() - w.Start.Minutes()
}

// Hours длина рабочего окна в часах
func (w WorkingWindow) Hours() float64 {
	return float64(w.Minutes()) / 60
}

// daySchedule возвращает расписание дня недели.
// Ненастроенный или некорректный день считается рабочим с часами по умолчанию
func (e *Engine) daySchedule(date types.Date) domain.DaySchedule {
	entry := e.weekly.Day(date.Weekday())
	if !entry.Defined || !entry.IsValid() {
		return domain.DefaultDaySchedule()
	}
	return entry
}

// IsWorkingDay проверяет, что дата является рабочим днем по недельному расписанию.
// Выходные отдельно не блокируются, решает только расписание
func (e *Engine) IsWorkingDay(date types.Date) bool {
	return e.daySchedule(date).Available
}

// HoursFor возвращает рабочие часы даты или 09:00-17:00, если день не настроен
func (e *Engine) HoursFor(date types.Date) WorkingWindow {
	entry := e.daySchedule(date)
	if !entry.Available {
		return WorkingWindow{Start: domain.DefaultWorkingStart, End: domain.DefaultWorkingEnd}
	}
	return WorkingWindow{Start: entry.StartTime, End: entry.EndTime}
}

// workingBounds возвращает рабочее окно даты как моменты времени
func (e *Engine) workingBounds(date types.Date) (time.Time, time.Time) {
	w := e.HoursFor(date)
	return w.Start.On(date.In(e.loc), e.loc), w.End.On(date.In(e.loc), e.loc)
}
