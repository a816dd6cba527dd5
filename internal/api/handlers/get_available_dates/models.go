package get_available_dates

import (
	getAvailableDates "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_dates"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	From     string          `json:"from"`
	Timezone string          `json:"timezone"`
	Mode     string          `json:"mode"`
	Dates    []DateAvailable `json:"dates"`
	Degraded []string        `json:"degraded,omitempty"`
}

// DateAvailable доступность одной даты
type DateAvailable struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableDates.Response) *AvailableDatesResponse {
	dates := make([]DateAvailable, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = DateAvailable{
			Date:      d.Date.String(),
			Available: d.Available,
			Reason:    d.Reason,
		}
	}

	return &AvailableDatesResponse{
		From:     resp.From.String(),
		Timezone: resp.Timezone,
		Mode:     resp.Mode,
		Dates:    dates,
		Degraded: resp.Degraded,
	}
}
