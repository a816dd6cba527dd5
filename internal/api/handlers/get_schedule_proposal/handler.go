package get_schedule_proposal

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getScheduleProposal "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_schedule_proposal"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
	msgInvalidData            = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetScheduleProposalUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleProposalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/schedule-proposal
// Query params: subprojectIndex, viewerTimezone (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/schedule-proposal - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/schedule-proposal - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getScheduleProposal.Request{
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
		ViewerTimezone:  r.URL.Query().Get("viewerTimezone"),
	})
	if err != nil {
		if errors.Is(err, getScheduleProposal.ErrInvalidInput) {
			h.logger.Warn("GET /projects/{id}/schedule-proposal - Invalid input: project_id=%d, error=%v", projectID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("GET /projects/{id}/schedule-proposal - Failed to reconcile proposal: project_id=%d, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{id}/schedule-proposal - Earliest date resolved: project_id=%d, source=%s, scanned_days=%d",
		projectID, result.Source, result.ScannedDays)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
