package get_calendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
	getCalendar "github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/usecase/get_calendar"
	"github.com/Sudeepktiwari/qa-agentlytics-sub006/pkg/logger"
)

type fakeUseCase struct {
	got  *getCalendar.Request
	resp *getCalendar.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.got = req
	return f.resp, f.err
}

func get(h *Handler, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Calendar(t *testing.T) {
	uc := &fakeUseCase{resp: &getCalendar.Response{
		BookingType: domain.BookingTypeDemo,
		Calendar: &domain.CalendarMonth{
			Month:    6,
			Year:     2025,
			Timezone: "America/New_York",
			Days: []domain.CalendarDay{
				{Date: "2025-06-01", DayOfWeek: 0, TimeSlots: []domain.DaySlot{}, IsBlocked: true, BlockReason: "Weekend"},
				{Date: "2025-06-02", DayOfWeek: 1, Available: true, TimeSlots: []domain.DaySlot{{Time: "09:00", Available: true}}},
			},
			AvailableSlots: 1,
			BusinessHours:  domain.BusinessHours{Start: "09:00", End: "17:00", Timezone: "America/New_York"},
		},
	}}

	rec := get(NewHandler(uc, logger.NewNop()), "/api/v1/availability?month=6&year=2025&adminId=admin-1&bookingType=demo&timezone=America/New_York")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, &getCalendar.Request{AdminID: "admin-1", Month: 6, Year: 2025, Timezone: "America/New_York", BookingType: "demo"}, uc.got)

	var out struct {
		Data CalendarResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data.Days, 2)
	assert.True(t, out.Data.Days[0].IsBlocked)
	assert.Equal(t, "Weekend", out.Data.Days[0].BlockReason)
	assert.Equal(t, []TimeSlotResponse{}, out.Data.Days[0].TimeSlots)
	assert.Equal(t, "09:00", out.Data.BusinessHours.Start)
	assert.Equal(t, "demo", out.Data.BookingType)
}

func TestHandle_BadQuery(t *testing.T) {
	uc := &fakeUseCase{}

	rec := get(NewHandler(uc, logger.NewNop()), "/api/v1/availability?month=june")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	rec := get(NewHandler(&fakeUseCase{err: fmt.Errorf("%w: month must be between 1 and 12", getCalendar.ErrInvalidInput)}, logger.NewNop()),
		"/api/v1/availability?month=13&year=2025")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(NewHandler(&fakeUseCase{err: errors.New("db down")}, logger.NewNop()), "/api/v1/availability")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
