package get_calendar_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/settings/models"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) Get(context.Context) (*models.SettingsResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return models.FromDomainConfig(domain.DefaultCalendarConfig()), nil
}

func TestHandle_Defaults(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/calendar/config", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"businessHours":{"start":"09:00","end":"17:00","timezone":"America/New_York"},
		"workingDays":[1,2,3,4,5],
		"slotDuration":30,
		"bufferTime":0,
		"advanceBookingDays":1,
		"maxBookingDays":30
	}}`, rec.Body.String())
}

func TestHandle_Error(t *testing.T) {
	rec := httptest.NewRecorder()

	NewHandler(&fakeService{err: errors.New("boom")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/calendar/config", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
