package get_package_config

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
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

// Handle GET /api/v1/projects/{projectId}/package-config
// Query params: subprojectIndex (optional)
// Публичный эндпоинт, при отсутствии настроек возвращает конфигурацию по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/package-config - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/package-config - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	cfg, err := h.service.Get(r.Context(), &models.GetConfigRequest{
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
	})
	if err != nil {
		h.logger.Error("GET /projects/{id}/package-config - Failed to get config: project_id=%d, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{id}/package-config - Config retrieved: project_id=%d, level=%s",
		projectID, cfg.Level)
	handlers.RespondJSON(w, http.StatusOK, cfg)
}
