package list_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	listSlots "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/list_slots"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeUseCase struct {
	got  *listSlots.Request
	resp *listSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *listSlots.Request) (*listSlots.Response, error) {
	f.got = req
	return f.resp, f.err
}

func get(uc *fakeUseCase, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Slots(t *testing.T) {
	uc := &fakeUseCase{resp: &listSlots.Response{
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
		Slots: []domain.CalendarSlot{
			{Date: "2025-06-02", Time: "09:00", Datetime: time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), Available: true},
		},
		AvailableCount: 1,
	}}

	rec := get(uc, "/api/v1/availability/slots?startDate=2025-06-02&endDate=2025-06-02&adminId=admin-1&onlyAvailable=true")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &listSlots.Request{AdminID: "admin-1", StartDate: "2025-06-02", EndDate: "2025-06-02", OnlyFree: true}, uc.got)

	var out struct {
		Data SlotsResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Slots, 1)
	assert.Equal(t, "2025-06-02T09:00:00Z", out.Data.Slots[0].Datetime)
	assert.Equal(t, 1, out.Data.AvailableCount)
}

func TestHandle_Errors(t *testing.T) {
	uc := &fakeUseCase{}
	rec := get(uc, "/api/v1/availability/slots?onlyAvailable=maybe")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)

	rec = get(&fakeUseCase{err: fmt.Errorf("%w: range must not exceed 31 days", listSlots.ErrInvalidInput)}, "/api/v1/availability/slots")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "range must not exceed 31 days")

	rec = get(&fakeUseCase{err: errors.New("db down")}, "/api/v1/availability/slots")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
