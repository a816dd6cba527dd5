package create_manual_block

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
	msgInvalidProjectID   = "некорректный ID проекта"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidTimeRange   = "некорректный период блокировки"
	msgInvalidData        = "некорректные данные блокировки"
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

// Handle POST /api/v1/projects/{projectId}/manual-blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /projects/{id}/manual-blocks - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /projects/{id}/manual-blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateManualBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /projects/{id}/manual-blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), req.ToServiceRequest(userID, projectID))
	if err != nil {
		switch {
		case errors.Is(err, blocks.ErrInvalidTimeRange):
			h.logger.Warn("POST /projects/{id}/manual-blocks - Invalid time range: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, blocks.ErrInvalidInput):
			h.logger.Warn("POST /projects/{id}/manual-blocks - Invalid data: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, blocks.ErrAccessDenied):
			h.logger.Warn("POST /projects/{id}/manual-blocks - Access denied: project_id=%d, user_id=%d",
				projectID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /projects/{id}/manual-blocks - Failed to create block: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /projects/{id}/manual-blocks - Block created: project_id=%d, block_id=%d, user_id=%d",
		projectID, result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
