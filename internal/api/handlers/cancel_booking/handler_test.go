package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/service/bookings/models"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeService struct {
	got *models.CancelRequest
	err error
}

func (f *fakeService) Cancel(_ context.Context, req *models.CancelRequest) error {
	f.got = req
	return f.err
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings?id=b-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"message":"Booking cancelled successfully"}}`, rec.Body.String())
	require.NotNil(t, svc.got.ID)
	assert.Equal(t, "b-1", *svc.got.ID)
	assert.Nil(t, svc.got.Email)
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	svc := &fakeService{err: bookings.ErrNotFoundOrCancelled}
	rec := httptest.NewRecorder()

	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings?id=b-1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Booking not found or already cancelled"}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&fakeService{err: bookings.ErrInvalidInput}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db down")}, logger.NewNop()).
		Handle(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/bookings?id=b-1", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
