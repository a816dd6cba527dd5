package list_manual_blocks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks"
	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.ListBlocksRequest
	err error
}

func (f *fakeService) List(_ context.Context, req *models.ListBlocksRequest) (*models.BlockListResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.BlockListResponse{Blocks: []models.BlockResponse{{ID: 1, ProjectID: req.ProjectID}}}, nil
}

func serve(svc *fakeService, path string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/projects/{projectId}/manual-blocks", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(middleware.UserIDHeader, "9")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		err        error
		wantStatus int
	}{
		{name: "listed", path: "/projects/42/manual-blocks", wantStatus: http.StatusOK},
		{name: "bad project id", path: "/projects/abc/manual-blocks", wantStatus: http.StatusBadRequest},
		{name: "bad from", path: "/projects/42/manual-blocks?from=2026-10-20", wantStatus: http.StatusBadRequest},
		{name: "inverted period", path: "/projects/42/manual-blocks", err: blocks.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "internal", path: "/projects/42/manual-blocks", err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.path)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandler_ParsesPeriod(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, "/projects/42/manual-blocks?from=2026-10-20T00:00:00Z&to=2026-10-27T00:00:00%2B03:00")

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.From)
	require.NotNil(t, svc.req.To)
	assert.True(t, svc.req.From.Equal(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)))
	assert.True(t, svc.req.To.Equal(time.Date(2026, 10, 26, 21, 0, 0, 0, time.UTC)))
	assert.Equal(t, int64(9), svc.req.UserID)
}
