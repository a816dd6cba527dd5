package list_manual_blocks

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks"
)

const (
	msgInvalidProjectID = "некорректный ID проекта"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidPeriod    = "некорректный период, ожидается RFC3339"
)

type Handler struct {
	service BlockService
	logger  Logger
}

func NewHandler(service BlockService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/manual-blocks
// Query params: from, to (optional, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/manual-blocks - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /projects/{id}/manual-blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	serviceReq, err := ToServiceRequest(r, userID, projectID)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/manual-blocks - Invalid period: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, blocks.ErrInvalidTimeRange) {
			h.logger.Warn("GET /projects/{id}/manual-blocks - Invalid period: project_id=%d, error=%v", projectID, err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}

		h.logger.Error("GET /projects/{id}/manual-blocks - Failed to list blocks: project_id=%d, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{id}/manual-blocks - Blocks retrieved: project_id=%d, count=%d",
		projectID, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
