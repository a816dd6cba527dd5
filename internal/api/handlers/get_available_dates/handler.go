package get_available_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SchedulingService/internal/api/handlers"
	getAvailableDates "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_dates"
)

const (
	msgInvalidProjectID       = "некорректный ID проекта"
	msgInvalidSubprojectIndex = "некорректный индекс пакета"
	msgInvalidFrom            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays            = "некорректное количество дней"
	msgInvalidData            = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/projects/{projectId}/available-dates
// Query params: subprojectIndex, from (YYYY-MM-DD), days (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	projectID, err := strconv.ParseInt(vars["projectId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-dates - Invalid project ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProjectID)
		return
	}

	subprojectIndex, err := handlers.ParseOptionalInt(r, "subprojectIndex")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-dates - Invalid subproject index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSubprojectIndex)
		return
	}

	from, err := handlers.ParseOptionalDate(r, "from")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-dates - Invalid from date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFrom)
		return
	}

	days, err := handlers.ParseOptionalInt(r, "days")
	if err != nil {
		h.logger.Warn("GET /projects/{id}/available-dates - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	req := &getAvailableDates.Request{
		ProjectID:       projectID,
		SubprojectIndex: subprojectIndex,
		From:            from,
	}
	if days != nil {
		req.Days = *days
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, getAvailableDates.ErrInvalidInput) {
			h.logger.Warn("GET /projects/{id}/available-dates - Invalid input: project_id=%d, error=%v", projectID, err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}

		h.logger.Error("GET /projects/{id}/available-dates - Failed to get dates: project_id=%d, error=%v",
			projectID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /projects/{id}/available-dates - Dates retrieved: project_id=%d, from=%s, days=%d",
		projectID, result.From, len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
