package scheduling

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DayStatus результат оценки даты
type DayStatus string

const (
	DayAvailable        DayStatus = "available"
	DayPast             DayStatus = "past"
	DayBlockedDate      DayStatus = "blocked_date"
	DayNonWorking       DayStatus = "non_working_day"
	DayPartiallyBlocked DayStatus = "partially_blocked"
	DayNoSlots          DayStatus = "no_slots"
)

// IsDateBlocked проверяет, заблокирована ли дата.
// В дневном режиме: явная блокировка, нерабочий день или 4+ часа блокировок в рабочее время.
// В часовом режиме порог не применяется: дата заблокирована, только если на нее нет ни одного слота
func (e *Engine) IsDateBlocked(date types.Date) bool {
	if e.params.Mode == domain.ModeHours {
		return len(e.GenerateSlots(date)) == 0
	}
	return e.isDayBlocked(date)
}

// isDayBlocked правило дневного режима
func (e *Engine) isDayBlocked(date types.Date) bool {
	if e.IsExplicitlyBlocked(date) || !e.IsWorkingDay(date) {
		return true
	}
	return e.exceedsPartialBlock(date)
}

func (e *Engine) exceedsPartialBlock(date types.Date) bool {
	w := e.HoursFor(date)
	return e.OverlapMinutes(date, w.Start, w.End) >= domain.PartialBlockThresholdMinutes
}

// isDayUsable день засчитывается при отсчете рабочих дней.
// Порог частичной блокировки действует только в дневном режиме
func (e *Engine) isDayUsable(date types.Date) bool {
	if e.params.Mode == domain.ModeHours {
		return e.isDayOpen(date)
	}
	return !e.isDayBlocked(date)
}

// isDayOpen день пригоден для отсчета рабочих часов буфера: рабочий и не заблокирован целиком
func (e *Engine) isDayOpen(date types.Date) bool {
	return e.IsWorkingDay(date) && !e.IsExplicitlyBlocked(date)
}

// Evaluate возвращает статус даты с причиной недоступности
func (e *Engine) Evaluate(date types.Date) DayStatus {
	if e.isPast(date) {
		return DayPast
	}
	if e.IsExplicitlyBlocked(date) {
		return DayBlockedDate
	}
	if !e.IsWorkingDay(date) {
		return DayNonWorking
	}

	if e.params.Mode == domain.ModeHours {
		if len(e.GenerateSlots(date)) == 0 {
			return DayNoSlots
		}
		return DayAvailable
	}

	if e.exceedsPartialBlock(date) {
		return DayPartiallyBlocked
	}
	return DayAvailable
}

// IsBookable проверяет, что на дату можно начать работы
func (e *Engine) IsBookable(date types.Date) bool {
	return e.Evaluate(date) == DayAvailable
}

// isPast дата раньше сегодняшней в поясе специалиста.
// Сегодняшний день не считается прошедшим ни в одном режиме: в часовом режиме
// прошедшие слоты отсекает GenerateSlots
func (e *Engine) isPast(date types.Date) bool {
	return date.Before(e.today)
}
