package get_completion

import (
	"time"

	getCompletion "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_completion"
)

// CompletionResponse HTTP response model
type CompletionResponse struct {
	Mode           string  `json:"mode"`
	Timezone       string  `json:"timezone"`
	ViewerTimezone string  `json:"viewerTimezone"`
	Start          Moment  `json:"start"`
	ExecutionEnd   Moment  `json:"executionEnd"`
	CompletionDate string  `json:"completionDate"`
	BufferEnd      *Moment `json:"bufferEnd,omitempty"`
	BufferEndDate  *string `json:"bufferEndDate,omitempty"`
}

// Moment момент времени в UTC и в зонах специалиста и клиента
type Moment struct {
	Instant time.Time `json:"instant"`
	Local   string    `json:"local"`
	Viewer  string    `json:"viewer"`
}

func fromMoment(m getCompletion.Moment) Moment {
	return Moment{Instant: m.Instant, Local: m.Local, Viewer: m.Viewer}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCompletion.Response) *CompletionResponse {
	out := &CompletionResponse{
		Mode:           resp.Mode,
		Timezone:       resp.Timezone,
		ViewerTimezone: resp.ViewerTimezone,
		Start:          fromMoment(resp.Start),
		ExecutionEnd:   fromMoment(resp.ExecutionEnd),
		CompletionDate: resp.CompletionDate.String(),
	}

	if resp.BufferEnd != nil {
		bufferEnd := fromMoment(*resp.BufferEnd)
		out.BufferEnd = &bufferEnd
	}
	if resp.BufferEndDate != nil {
		bufferEndDate := resp.BufferEndDate.String()
		out.BufferEndDate = &bufferEndDate
	}

	return out
}
