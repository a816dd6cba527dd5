package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// DaySchedule расписание одного дня недели
// Defined = false означает, что день не настроен (используются часы по умолчанию)
type DaySchedule struct {
	Defined   bool
	Available bool
	StartTime types.TimeString
	EndTime   types.TimeString
}

// IsValid проверяет инвариант: для рабочего дня начало строго раньше конца (без перехода через полночь)
func (d DaySchedule) IsValid() bool {
	if !d.Available {
		return true
	}
	return d.StartTime.IsValid() && d.EndTime.IsValid() && d.StartTime.IsBefore(d.EndTime)
}

// WeeklyAvailability недельное расписание, индексируется time.Weekday (Sunday = 0)
type WeeklyAvailability [7]DaySchedule

// Day возвращает расписание дня недели
func (w WeeklyAvailability) Day(day time.Weekday) DaySchedule {
	return w[day]
}

// DefaultDaySchedule расписание для ненастроенного дня
func DefaultDaySchedule() DaySchedule {
	return DaySchedule{
		Defined:   false,
		Available: true,
		StartTime: DefaultWorkingStart,
		EndTime:   DefaultWorkingEnd,
	}
}

// DefaultWeeklyAvailability расписание "каждый день 09:00-17:00"
func DefaultWeeklyAvailability() WeeklyAvailability {
	var w WeeklyAvailability
	for i := range w {
		w[i] = DefaultDaySchedule()
	}
	return w
}
