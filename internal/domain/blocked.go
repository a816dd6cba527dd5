package domain

import "time"

// BlockedRange интервал, в который специалист недоступен (бронирования, буферы, ручные блокировки)
type BlockedRange struct {
	Start  time.Time
	End    time.Time
	Reason string
}

// IsValid проверяет инвариант End > Start
func (r BlockedRange) IsValid() bool {
	return !r.Start.IsZero() && r.End.After(r.Start)
}

// Overlaps проверяет пересечение с полуинтервалом [start, end)
// Граничащие интервалы пересечением не считаются
func (r BlockedRange) Overlaps(start, end time.Time) bool {
	return r.Start.Before(end) && start.Before(r.End)
}
