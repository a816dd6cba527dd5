package domain

import "github.com/m04kA/SMC-SchedulingService/pkg/types"

// Рабочие часы по умолчанию: используются для дней без настройки
// и при недоступности сервиса рабочих часов (fail open)
const (
	DefaultWorkingStart types.TimeString = "09:00"
	DefaultWorkingEnd   types.TimeString = "17:00"
)

// Политики движка расписания (не настраиваются)
const (
	// PartialBlockThresholdMinutes день в дневном режиме недоступен, если заблокировано 4 часа и более
	PartialBlockThresholdMinutes = 4 * 60

	// SlotStepMinutes шаг генерации слотов в часовом режиме
	SlotStepMinutes = 30

	// MinDateScanDays глубина поиска ближайшей доступной даты
	MinDateScanDays = 120

	// MaxWalkDays ограничение обхода календаря (~3 года) при расчете даты завершения
	MaxWalkDays = 3*365 + 1
)

// Значения конфигурации пакета по умолчанию
const (
	DefaultExecutionMode  = ModeDays
	DefaultExecutionValue = 1.0
)

// Ограничения валидации
const (
	MaxHourModeExecutionHours = 24
	MaxExecutionDays          = 365
	MaxBufferHours            = 24 * 30
	MaxBufferDays             = 90
	MaxReasonLength           = 500
	MaxManualBlockDays        = 366
	MaxAvailableDatesDays     = MinDateScanDays
)

// Форматы времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ManualBlockReason причина по умолчанию для ручных блокировок
const ManualBlockReason = "manual"
