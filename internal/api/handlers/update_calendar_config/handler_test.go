package update_calendar_config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/api/middleware"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings/models"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeService struct {
	got *models.UpdateSettingsRequest
	err error
}

func (f *fakeService) Update(_ context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	cfg := domain.DefaultCalendarConfig()
	req.ApplyToConfig(&cfg)
	return models.FromDomainConfig(cfg), nil
}

func serve(svc *fakeService, body, adminID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/calendar/config", strings.NewReader(body))
	if adminID != "" {
		req = req.WithContext(middleware.WithAdminID(req.Context(), adminID))
	}
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	svc := &fakeService{}

	rec := serve(svc, `{"businessHours":{"start":"8:00"},"workingDays":[1,3,5],"slotDuration":45}`, "admin-1")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "admin-1", svc.got.AdminID)
	assert.Equal(t, "8:00", *svc.got.BusinessHoursStart)
	assert.Nil(t, svc.got.BusinessHoursEnd)
	assert.Nil(t, svc.got.BufferTime)
	assert.Equal(t, []int{1, 3, 5}, svc.got.WorkingDays)
	assert.Contains(t, rec.Body.String(), `"start":"08:00"`)
	assert.Contains(t, rec.Body.String(), `"slotDuration":45`)
}

func TestHandle_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		adminID string
		err     error
		code    int
	}{
		{name: "no admin", body: `{}`, code: http.StatusUnauthorized},
		{name: "broken body", body: `[`, adminID: "admin-1", code: http.StatusBadRequest},
		{name: "empty update", body: `{}`, adminID: "admin-1", err: settings.ErrEmptyUpdate, code: http.StatusBadRequest},
		{name: "invalid config", body: `{"slotDuration":1}`, adminID: "admin-1",
			err: fmt.Errorf("%w: slotDuration must be between 15 and 240", settings.ErrInvalidInput), code: http.StatusBadRequest},
		{name: "unexpected", body: `{"slotDuration":30}`, adminID: "admin-1",
			err: fmt.Errorf("boom"), code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, serve(&fakeService{err: tt.err}, tt.body, tt.adminID).Code)
		})
	}
}
