package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// Slot допустимое время начала работ в часовом режиме. Вычисляется, не хранится
type Slot struct {
	Date  types.Date
	Start types.TimeString
}
