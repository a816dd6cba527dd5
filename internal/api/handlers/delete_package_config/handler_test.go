package delete_package_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config"
	"github.com/m04kA/SMC-SchedulingService/internal/service/config/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	req *models.DeleteConfigRequest
	err error
}

func (f *fakeService) Delete(_ context.Context, req *models.DeleteConfigRequest) error {
	f.req = req
	return f.err
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		userID     string
		err        error
		wantStatus int
	}{
		{name: "deleted", path: "/projects/42/package-config?subprojectIndex=1", userID: "9", wantStatus: http.StatusNoContent},
		{name: "no user", path: "/projects/42/package-config", wantStatus: http.StatusUnauthorized},
		{name: "bad project id", path: "/projects/abc/package-config", userID: "9", wantStatus: http.StatusBadRequest},
		{name: "bad subproject index", path: "/projects/42/package-config?subprojectIndex=x", userID: "9", wantStatus: http.StatusBadRequest},
		{name: "not found", path: "/projects/42/package-config", userID: "9", err: config.ErrConfigNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", path: "/projects/42/package-config", userID: "9", err: config.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "internal", path: "/projects/42/package-config", userID: "9", err: errors.New("db"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			r := mux.NewRouter()
			r.Use(middleware.Auth)
			r.HandleFunc("/projects/{projectId}/package-config", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodDelete)

			req := httptest.NewRequest(http.MethodDelete, tt.path, nil)
			if tt.userID != "" {
				req.Header.Set(middleware.UserIDHeader, tt.userID)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusNoContent {
				assert.Equal(t, int64(42), svc.req.ProjectID)
				assert.Equal(t, int64(9), svc.req.UserID)
				if assert.NotNil(t, svc.req.SubprojectIndex) {
					assert.Equal(t, 1, *svc.req.SubprojectIndex)
				}
			}
		})
	}
}
