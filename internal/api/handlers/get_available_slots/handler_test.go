package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/projects/{projectId}/available-slots", h.Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	date := types.Date{Year: 2026, Month: time.October, Day: 20}
	start := time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		Timezone:        "UTC",
		DurationMinutes: 120,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", StartsAt: start, EndsAt: start.Add(2 * time.Hour)},
		},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/projects/5/available-slots?date=2026-10-20&subprojectIndex=1")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.got.ProjectID)
	require.NotNil(t, uc.got.SubprojectIndex)
	assert.Equal(t, 1, *uc.got.SubprojectIndex)
	assert.Equal(t, date, uc.got.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "2026-10-20", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.True(t, body.Slots[0].EndsAt.Equal(start.Add(2*time.Hour)))
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad project", target: "/api/v1/projects/x/available-slots?date=2026-10-20", wantStatus: http.StatusBadRequest},
		{name: "missing date", target: "/api/v1/projects/1/available-slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/projects/1/available-slots?date=20-10-2026", wantStatus: http.StatusBadRequest},
		{name: "bad subproject", target: "/api/v1/projects/1/available-slots?date=2026-10-20&subprojectIndex=a", wantStatus: http.StatusBadRequest},
		{name: "day mode", target: "/api/v1/projects/1/available-slots?date=2026-10-20", err: getAvailableSlots.ErrWrongMode, wantStatus: http.StatusBadRequest},
		{name: "internal", target: "/api/v1/projects/1/available-slots?date=2026-10-20", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.err, resp: &getAvailableSlots.Response{}}

			rec := serve(NewHandler(uc, nopLogger{}), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
