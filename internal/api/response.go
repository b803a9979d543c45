package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/shaiso/kamermoties/internal/service"
)

// ErrorResponse — структура ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}

// JSON отправляет JSON ответ.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// Success отправляет успешный ответ.
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}

// Error отправляет ответ с ошибкой.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorResponse{Error: message})
}

// BadRequest отправляет ошибку 400.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

// NotFound отправляет ошибку 404.
func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

// InternalError логирует err и отправляет ошибку 500.
func InternalError(w http.ResponseWriter, logger *slog.Logger, err error, message string) {
	logger.Error("internal error", "error", err)
	Error(w, http.StatusInternalServerError, message)
}

// errorMessages — тексты ошибок одного endpoint.
type errorMessages struct {
	Upstream  string
	NotFound  string
	Unhandled string
}

// HandleServiceError преобразует ошибку сервиса в HTTP ответ.
// Возвращает true, если ответ уже отправлен.
func HandleServiceError(w http.ResponseWriter, logger *slog.Logger, err error, msgs errorMessages) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, service.ErrNotFound):
		logger.Info("not found", "error", err)
		NotFound(w, msgs.NotFound)
	case errors.Is(err, service.ErrUpstreamUnavailable):
		InternalError(w, logger, err, msgs.Upstream)
	default:
		InternalError(w, logger, err, msgs.Unhandled)
	}
	return true
}
