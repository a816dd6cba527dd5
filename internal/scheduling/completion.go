package scheduling

import (
	"math"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Completion прогноз завершения работ
type Completion struct {
	Start          time.Time
	ExecutionEnd   time.Time
	BufferEnd      time.Time
	CompletionDate types.Date
	BufferEndDate  types.Date
}

// AdvanceWorkingDays возвращает дату, на которой набирается n рабочих незаблокированных дней.
// Сама start засчитывается первым днем, если она рабочая.
// При n <= 1 start возвращается без изменений, даже если это нерабочий день
func (e *Engine) AdvanceWorkingDays(start types.Date, n int) types.Date {
	if n <= 1 {
		return start
	}

	cursor := e.newCursor(e.dayStart(start), e.isDayUsable)
	counted := 0
	for {
		date, _, ok := cursor.Next()
		if !ok {
			e.logger.Warn("AdvanceWorkingDays: walk limit of %d days reached from %s (counted %d of %d), returning %s",
				domain.MaxWalkDays, start, counted, n, cursor.Date())
			return cursor.Date()
		}
		counted++
		if counted == n {
			return date
		}
	}
}

// AddWorkingHoursForBuffer отсчитывает hours рабочих часов начиная с момента start.
// Учитывается только время внутри рабочих окон, нерабочие и целиком заблокированные дни
// пропускаются, остаток переносится на начало следующего рабочего дня
func (e *Engine) AddWorkingHoursForBuffer(start time.Time, hours float64) time.Time {
	remaining := time.Duration(math.Round(hours*60)) * time.Minute
	if remaining <= 0 {
		return start
	}

	cursor := e.newCursor(start, e.isDayOpen)
	for {
		_, window, ok := cursor.Next()
		if !ok {
			reached := e.dayStart(cursor.Date())
			e.logger.Warn("AddWorkingHoursForBuffer: walk limit of %d days reached from %s with %s left, returning %s",
				domain.MaxWalkDays, start.Format(time.RFC3339), remaining, reached.Format(time.RFC3339))
			return reached
		}

		available := window.Duration()
		if remaining <= available {
			return window.Start.Add(remaining)
		}
		remaining -= available
	}
}

// bufferEnd конец буфера, начинающегося в момент from.
// Часовой буфер отсчитывается рабочими часами, дневной - рабочими днями со следующего дня
func (e *Engine) bufferEnd(from time.Time) time.Time {
	buffer := e.params.Buffer
	if buffer.IsZero() {
		return from
	}

	if buffer.Unit == domain.UnitDays {
		next := types.DateIn(from, e.loc).AddDays(1)
		date := e.AdvanceWorkingDays(next, buffer.Days())
		_, end := e.workingBounds(date)
		return end
	}
	return e.AddWorkingHoursForBuffer(from, buffer.Value)
}

// CalculateCompletionDate прогноз для дневного режима: работы занимают ceil(длительность) рабочих дней
// начиная с start. Буфер, если нужен, начинается со следующего дня после завершения
func (e *Engine) CalculateCompletionDate(start types.Date, includeBuffer bool) Completion {
	startAt, _ := e.workingBounds(start)

	completionDate := e.AdvanceWorkingDays(start, e.params.Execution.Days())
	_, executionEnd := e.workingBounds(completionDate)

	result := Completion{
		Start:          startAt,
		ExecutionEnd:   executionEnd,
		BufferEnd:      executionEnd,
		CompletionDate: completionDate,
		BufferEndDate:  completionDate,
	}

	if includeBuffer {
		result.BufferEnd = e.bufferEnd(executionEnd)
		result.BufferEndDate = types.DateIn(result.BufferEnd, e.loc)
	}
	return result
}

// CalculateCompletionDateTime прогноз для часового режима: длительность прибавляется к началу
// напрямую (работы помещаются в один день), буфер - рабочими часами или днями
func (e *Engine) CalculateCompletionDateTime(start time.Time, includeBuffer bool) Completion {
	executionEnd := start.Add(time.Duration(e.executionMinutes()) * time.Minute)

	result := Completion{
		Start:          start,
		ExecutionEnd:   executionEnd,
		BufferEnd:      executionEnd,
		CompletionDate: types.DateIn(executionEnd, e.loc),
		BufferEndDate:  types.DateIn(executionEnd, e.loc),
	}

	if includeBuffer {
		result.BufferEnd = e.bufferEnd(executionEnd)
		result.BufferEndDate = types.DateIn(result.BufferEnd, e.loc)
	}
	return result
}
