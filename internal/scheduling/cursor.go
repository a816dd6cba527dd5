package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// workingCursor перебирает вперед рабочие окна подходящих дней, начиная с момента from.
// Количество пройденных календарных дней ограничено limit, чтобы календарь,
// в котором нет ни одного подходящего дня, не приводил к бесконечному циклу
type workingCursor struct {
	e      *Engine
	usable func(types.Date) bool
	from   time.Time

	date    types.Date
	steps   int
	limit   int
	started bool
}

func (e *Engine) newCursor(from time.Time, usable func(types.Date) bool) *workingCursor {
	return &workingCursor{
		e:      e,
		usable: usable,
		from:   from,
		date:   types.DateIn(from, e.loc),
		limit:  domain.MaxWalkDays,
	}
}

// Next возвращает следующий подходящий день и его рабочее окно.
// Окно первого дня обрезается по from. ok = false, когда ограничение исчерпано
func (c *workingCursor) Next() (types.Date, Interval, bool) {
	for {
		if c.started {
			if c.steps >= c.limit {
				return types.Date{}, Interval{}, false
			}
			c.steps++
			c.date = c.date.AddDays(1)
		}
		c.started = true

		if !c.usable(c.date) {
			continue
		}

		start, end := c.e.workingBounds(c.date)
		if c.from.After(start) {
			start = c.from
		}
		if !start.Before(end) {
			continue
		}
		return c.date, Interval{Start: start, End: end}, true
	}
}

// Date последняя дата, до которой дошел курсор
func (c *workingCursor) Date() types.Date {
	return c.date
}
