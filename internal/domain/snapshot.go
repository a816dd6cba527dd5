package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Snapshot неизменяемый срез данных внешних сервисов для одной пары (проект, пакет).
// Любой расчет - чистая функция от снапшота и выбранных пользователем параметров.
// При обновлении данных снапшот заменяется целиком, а не изменяется
type Snapshot struct {
	Timezone       string
	Location       *time.Location
	Weekly         WeeklyAvailability
	BlockedDates   []types.Date
	BlockedRanges  []BlockedRange
	ResourcePolicy *ResourcePolicy
	Proposal       *ScheduleProposal

	// Degraded перечисляет источники, замененные значениями по умолчанию из-за ошибки загрузки
	Degraded []string
	// SkippedEntries количество отброшенных некорректных записей
	SkippedEntries int
}

// EmptySnapshot снапшот без блокировок с расписанием по умолчанию
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Timezone: "UTC",
		Location: time.UTC,
		Weekly:   DefaultWeeklyAvailability(),
	}
}

// IsDegraded сообщает, что часть данных заменена значениями по умолчанию
func (s *Snapshot) IsDegraded() bool {
	return len(s.Degraded) > 0
}
