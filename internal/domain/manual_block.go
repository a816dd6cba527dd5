package domain

import "time"

// ManualBlock блокировка, внесенная специалистом вручную
type ManualBlock struct {
	ID        int64
	ProjectID int64
	StartsAt  time.Time
	EndsAt    time.Time
	Reason    *string
	CreatedBy int64
	CreatedAt time.Time
}

// ToBlockedRange конвертирует ручную блокировку в интервал снапшота
func (b *ManualBlock) ToBlockedRange() BlockedRange {
	reason := ManualBlockReason
	if b.Reason != nil && *b.Reason != "" {
		reason = *b.Reason
	}
	return BlockedRange{Start: b.StartsAt, End: b.EndsAt, Reason: reason}
}

// IsOwnedBy проверяет, что блокировку создал указанный пользователь
func (b *ManualBlock) IsOwnedBy(userID int64) bool {
	return b.CreatedBy == userID
}

// ManualBlocksFilter фильтр выборки ручных блокировок
type ManualBlocksFilter struct {
	ProjectID int64      // Обязательный параметр
	From      *time.Time // Блокировки, заканчивающиеся после From (опционально)
	To        *time.Time // Блокировки, начинающиеся до To (опционально)
}
