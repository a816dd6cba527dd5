package marketplace

// Эндпоинты маркетплейса, используются в метриках и логах
const (
	EndpointAvailability      = "availability"
	EndpointWorkingHours      = "working_hours"
	EndpointScheduleProposals = "schedule_proposals"
)

// AvailabilityResponse занятость специалиста по проекту
type AvailabilityResponse struct {
	Success        bool            `json:"success" yaml:"success"`
	Message        string          `json:"message,omitempty" yaml:"message,omitempty"`
	BlockedDates   []string        `json:"blockedDates" yaml:"blockedDates"`
	BlockedRanges  []BlockedRange  `json:"blockedRanges" yaml:"blockedRanges"`
	ResourcePolicy *ResourcePolicy `json:"resourcePolicy,omitempty" yaml:"resourcePolicy,omitempty"`
}

// BlockedRange интервал занятости. Даты в ISO 8601, могут быть некорректными
type BlockedRange struct {
	StartDate string  `json:"startDate" yaml:"startDate"`
	EndDate   string  `json:"endDate" yaml:"endDate"`
	Reason    *string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// ResourcePolicy политика ресурсов проекта
type ResourcePolicy struct {
	MinResources         int     `json:"minResources" yaml:"minResources"`
	TotalResources       int     `json:"totalResources" yaml:"totalResources"`
	MinOverlapPercentage float64 `json:"minOverlapPercentage" yaml:"minOverlapPercentage"`
}

// WorkingHoursResponse недельное расписание специалиста.
// Ключи Availability - названия дней недели в нижнем регистре ("monday", ...)
type WorkingHoursResponse struct {
	Success      bool                       `json:"success" yaml:"success"`
	Message      string                     `json:"message,omitempty" yaml:"message,omitempty"`
	Availability map[string]DayAvailability `json:"availability" yaml:"availability"`
	Timezone     string                     `json:"timezone" yaml:"timezone"`
}

// DayAvailability расписание дня недели
type DayAvailability struct {
	Available *bool  `json:"available,omitempty" yaml:"available,omitempty"`
	StartTime string `json:"startTime" yaml:"startTime"`
	EndTime   string `json:"endTime" yaml:"endTime"`
}

// ScheduleProposalsResponse подсказки оптимизатора маркетплейса
type ScheduleProposalsResponse struct {
	Success                    bool            `json:"success" yaml:"success"`
	Message                    string          `json:"message,omitempty" yaml:"message,omitempty"`
	Mode                       string          `json:"mode" yaml:"mode"`
	EarliestBookableDate       string          `json:"earliestBookableDate" yaml:"earliestBookableDate"`
	EarliestProposal           *ProposalWindow `json:"earliestProposal,omitempty" yaml:"earliestProposal,omitempty"`
	ShortestThroughputProposal *ProposalWindow `json:"shortestThroughputProposal,omitempty" yaml:"shortestThroughputProposal,omitempty"`
}

// ProposalWindow окно выполнения работ
type ProposalWindow struct {
	Start        string `json:"start" yaml:"start"`
	End          string `json:"end" yaml:"end"`
	ExecutionEnd string `json:"executionEnd" yaml:"executionEnd"`
}

// ErrorResponse модель ошибки от маркетплейса
type ErrorResponse struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
}
