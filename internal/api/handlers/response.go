package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
)

const (
	maxBodyBytes = 1 << 20

	msgInternalError = "Internal server error"
)

// exposeInternalErrors вне production текст внутренней ошибки попадает в ответ
var exposeInternalErrors atomic.Bool

// SetExposeInternalErrors включает вывод текста внутренних ошибок
func SetExposeInternalErrors(expose bool) {
	exposeInternalErrors.Store(expose)
}

// SuccessResponse конверт успешного ответа
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse конверт ответа с ошибкой
type ErrorResponse struct {
	Success               bool          `json:"success"`
	Error                 string        `json:"error"`
	Details               []string      `json:"details,omitempty"`
	Warnings              []string      `json:"warnings,omitempty"`
	Reason                string        `json:"reason,omitempty"`
	SuggestedAlternatives []SlotPayload `json:"suggestedAlternatives,omitempty"`
}

// SlotPayload слот в ответах API
type SlotPayload struct {
	Date      string `json:"date"`
	Time      string `json:"time"`
	Datetime  string `json:"datetime"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// RespondJSON пишет успешный ответ в конверте {success, data}
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, SuccessResponse{Success: true, Data: data})
}

// RespondErrorBody пишет ответ с ошибкой; success всегда false
func RespondErrorBody(w http.ResponseWriter, status int, body ErrorResponse) {
	body.Success = false
	writeJSON(w, status, body)
}

// RespondError пишет ответ с ошибкой и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondErrorBody(w, status, ErrorResponse{Error: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// RespondInternalError 500 с общим сообщением; вне production добавляет текст ошибки
func RespondInternalError(w http.ResponseWriter, err error) {
	body := ErrorResponse{Error: msgInternalError}
	if err != nil && exposeInternalErrors.Load() {
		body.Details = []string{err.Error()}
	}
	RespondErrorBody(w, http.StatusInternalServerError, body)
}

// DecodeJSON читает тело запроса в v; тело ограничено 1 MiB
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("request body is empty")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
