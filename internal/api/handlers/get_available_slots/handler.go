package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
	msgMissingDate            = "дата обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgWrongMode              = "слоты доступны только для часового режима"
	msgInvalidData            = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/available-slots
// Query params: date (required, YYYY-MM-DD), subprojectIndex (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-slots - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-slots - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /projects/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(projectID, subprojectIndex, dateStr)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrWrongMode):
			h.logger.Warn("GET /projects/{id}/available-slots - Day mode package: project_id=%d, subproject=%v",
				projectID, subprojectIndex)
			handlers.RespondBadRequest(w, msgWrongMode)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /projects/{id}/available-slots - Invalid input: project_id=%d, error=%v", projectID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("GET /projects/{id}/available-slots - Failed to get slots: project_id=%d, error=%v",
				projectID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /projects/{id}/available-slots - Slots retrieved: project_id=%d, date=%s, slots_count=%d",
		projectID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
