package domain

import "math"

// DurationUnit единица длительности
type DurationUnit string

const (
	UnitHours DurationUnit = "hours"
	UnitDays  DurationUnit = "days"
)

// IsValid проверяет, что единица поддерживается
func (u DurationUnit) IsValid() bool {
	return u == UnitHours || u == UnitDays
}

// ExecutionMode гранулярность выполнения работ
type ExecutionMode string

const (
	ModeHours ExecutionMode = "hours"
	ModeDays  ExecutionMode = "days"
)

// IsValid проверяет, что режим поддерживается
func (m ExecutionMode) IsValid() bool {
	return m == ModeHours || m == ModeDays
}

// DurationRange допустимый диапазон длительности
type DurationRange struct {
	Min *float64
	Max *float64
}

// ExecutionDuration длительность выполнения работ
type ExecutionDuration struct {
	Value float64
	Unit  DurationUnit
	Range *DurationRange
}

// Magnitude возвращает величину длительности.
// Если Value не задано, используется Range.Max, затем Range.Min
func (d ExecutionDuration) Magnitude() float64 {
	if d.Value > 0 {
		return d.Value
	}
	if d.Range != nil {
		if d.Range.Max != nil && *d.Range.Max > 0 {
			return *d.Range.Max
		}
		if d.Range.Min != nil && *d.Range.Min > 0 {
			return *d.Range.Min
		}
	}
	return 0
}

// Hours длительность в часах (дни считаются как 24 часа)
func (d ExecutionDuration) Hours() float64 {
	if d.Unit == UnitDays {
		return d.Magnitude() * 24
	}
	return d.Magnitude()
}

// Days длительность в целых днях с округлением вверх
func (d ExecutionDuration) Days() int {
	if d.Unit == UnitHours {
		return int(math.Ceil(d.Magnitude() / 24))
	}
	return int(math.Ceil(d.Magnitude()))
}

// BufferDuration обязательный простой после выполнения работ
type BufferDuration struct {
	Value float64
	Unit  DurationUnit
}

// IsZero проверяет, что буфер не задан
func (b BufferDuration) IsZero() bool {
	return b.Value <= 0
}

// Days буфер в целых днях с округлением вверх
func (b BufferDuration) Days() int {
	return int(math.Ceil(b.Value))
}
