package check_availability

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	checkAvailability "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/check_availability"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeUseCase struct {
	got  *checkAvailability.Request
	resp *checkAvailability.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.got = req
	return f.resp, f.err
}

func post(h *Handler, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/availability", strings.NewReader(payload)))
	return rec
}

func TestHandle_Available(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{Available: true}}

	rec := post(NewHandler(uc, logger.NewNop()), `{"date":"2025-06-02","time":"10:00","adminId":"admin-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{"available":true}}`, rec.Body.String())
	assert.Equal(t, "admin-1", uc.got.AdminID)
}

func TestHandle_Unavailable(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		Reason: "Time slot is already booked",
		Alternatives: []domain.CalendarSlot{{
			Date: "2025-06-03", Time: "10:00", Datetime: time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC), Available: true,
		}},
	}}

	rec := post(NewHandler(uc, logger.NewNop()), `{"date":"2025-06-02","time":"10:00"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"data":{
		"available":false,
		"reason":"Time slot is already booked",
		"suggestedAlternatives":[{"date":"2025-06-03","time":"10:00","datetime":"2025-06-03T10:00:00Z","available":true}]
	}}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	rec := post(NewHandler(&fakeUseCase{err: fmt.Errorf("%w: missing", checkAvailability.ErrInvalidInput)}, logger.NewNop()), `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(NewHandler(&fakeUseCase{err: errors.New("db down")}, logger.NewNop()), `{"date":"2025-06-02","time":"10:00"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = post(NewHandler(&fakeUseCase{}, logger.NewNop()), `[`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
