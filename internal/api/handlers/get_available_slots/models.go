package get_available_slots

import (
	"time"

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date             string          `json:"date"`
	Timezone         string          `json:"timezone"`
	DurationMinutes  int             `json:"durationMinutes"`
	Slots            []AvailableSlot `json:"slots"`
	Misconfigured    bool            `json:"misconfigured"`
	RecommendDayMode bool            `json:"recommendDayMode"`
	Degraded         []string        `json:"degraded,omitempty"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	StartTime string    `json:"startTime"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			StartsAt:  slot.StartsAt,
			EndsAt:    slot.EndsAt,
		}
	}

	return &AvailableSlotsResponse{
		Date:             resp.Date.String(),
		Timezone:         resp.Timezone,
		DurationMinutes:  resp.DurationMinutes,
		Slots:            slots,
		Misconfigured:    resp.Misconfigured,
		RecommendDayMode: resp.RecommendDayMode,
		Degraded:         resp.Degraded,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(projectID int64, subprojectIndex *int, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
		Date:            date,
	}, nil
}
