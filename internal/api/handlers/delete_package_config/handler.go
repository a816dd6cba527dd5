package delete_package_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
	msgMissingUserID          = "отсутствует ID пользователя"
	msgNotFound               = "конфигурация не найдена"
	msgForbidden              = "доступ запрещен"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/projects/{projectId}/package-config
// Query params: subprojectIndex (optional, без него удаляется конфигурация проекта)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /projects/{id}/package-config - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("DELETE /projects/{id}/package-config - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /projects/{id}/package-config - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Delete(r.Context(), &models.DeleteConfigRequest{
		UserID:          userID,
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
	})
	if err != nil {
		switch {
		case errors.Is(err, config.ErrConfigNotFound):
			h.logger.Warn("DELETE /projects/{id}/package-config - Config not found: project_id=%d, subproject=%v",
				projectID, subprojectIndex)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, config.ErrAccessDenied):
			h.logger.Warn("DELETE /projects/{id}/package-config - Access denied: project_id=%d, user_id=%d",
				projectID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /projects/{id}/package-config - Failed to delete config: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /projects/{id}/package-config - Config deleted: project_id=%d, subproject=%v",
		projectID, subprojectIndex)
	handlers.RespondNoContent(w)
}
