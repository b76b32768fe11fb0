package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sudeepktiwari/qa-agentlytics-sub006/internal/domain"
)

func TestRespondJSON_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "b-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"success":true,"data":{"id":"b-1"}}`, rec.Body.String())
}

func TestRespondErrorBody_OmitsEmptyFields(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondErrorBody(rec, http.StatusConflict, ErrorResponse{
		Success: true,
		Error:   "Time slot is not available",
		Reason:  "Time slot is already booked",
	})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Time slot is not available","reason":"Time slot is already booked"}`, rec.Body.String())
}

func TestRespondInternalError_DetailsOutsideProduction(t *testing.T) {
	t.Cleanup(func() { SetExposeInternalErrors(false) })

	rec := httptest.NewRecorder()
	RespondInternalError(rec, errors.New("pq: connection refused"))
	assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, rec.Body.String())

	SetExposeInternalErrors(true)
	rec = httptest.NewRecorder()
	RespondInternalError(rec, errors.New("pq: connection refused"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, []string{"pq: connection refused"}, body.Details)
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Jane", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &v))
}

func TestFromDomainSlots(t *testing.T) {
	assert.Equal(t, []SlotPayload{}, FromDomainSlots(nil))

	slots := FromDomainSlots([]domain.CalendarSlot{{
		Date:      "2025-06-03",
		Time:      "10:00",
		Datetime:  time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC),
		Available: true,
	}})
	require.Len(t, slots, 1)
	assert.Equal(t, "2025-06-03T10:00:00Z", slots[0].Datetime)
}
