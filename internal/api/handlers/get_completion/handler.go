package get_completion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getCompletion "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_completion"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
	msgMissingDate            = "дата начала обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime            = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidIncludeBuffer   = "некорректное значение includeBuffer"
	msgTimeRequired           = "для часового режима требуется время начала"
	msgInvalidData            = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetCompletionUseCase
	logger  Logger
}

func NewHandler(useCase GetCompletionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/completion
// Query params: date (required), time (HH:MM, required in hours mode),
// subprojectIndex, includeBuffer, viewerTimezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	query := r.URL.Query()

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/completion - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/completion - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	date, err := handlers.ParseOptionalDate(r, "date")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/completion - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	if date == nil {
		h.logger.Warn("GET /projects/{id}/completion - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	var startTime *types.TimeString
	if raw := query.Get("time"); raw != "" {
		ts, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /projects/{id}/completion - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		startTime = &ts
	}

	includeBuffer, err := handlers.ParseBool(r, "includeBuffer")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/completion - Invalid includeBuffer: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIncludeBuffer)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCompletion.Request{
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
		Date:            *date,
		Time:            startTime,
		IncludeBuffer:   includeBuffer,
		ViewerTimezone:  query.Get("viewerTimezone"),
	})
	if err != nil {
		switch {
		case errors.Is(err, getCompletion.ErrTimeRequired):
			h.logger.Warn("GET /projects/{id}/completion - Missing start time for hours mode: project_id=%d", projectID)
			handlers.RespondBadRequest(w, msgTimeRequired)

		case errors.Is(err, getCompletion.ErrInvalidInput):
			h.logger.Warn("GET /projects/{id}/completion - Invalid input: project_id=%d, error=%v", projectID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /projects/{id}/completion - Failed to project completion: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /projects/{id}/completion - Completion projected: project_id=%d, start=%s, completion=%s",
		projectID, date, result.CompletionDate)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
