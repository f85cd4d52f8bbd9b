// Package api - общие для HTTP-обработчиков ответы об ошибках.
package api

import (
	"net/http"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/pkg/resp"

	"go.uber.org/zap"
)

// WriteError переводит ошибку сервиса в HTTP-статус и тело {error}.
// Текст внутренних ошибок отдаётся клиенту как есть
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(r.Context(), "request failed",
			zap.String("path", r.URL.Path),
			zap.Bool("retryable", apperr.IsRetryable(err)),
			zap.Error(err),
		)
	} else {
		logger.DebugCtx(r.Context(), "request rejected",
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.String("error", err.Error()),
		)
	}
	resp.WriteError(w, status, err.Error())
}

// BadBody - тело запроса не разобрать
func BadBody(w http.ResponseWriter, r *http.Request, err error) {
	logger.DebugCtx(r.Context(), "invalid request body", zap.Error(err))
	resp.WriteError(w, http.StatusBadRequest, "Invalid request body")
}

func MethodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	resp.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
}

// Preflight - OPTIONS без CORS-заголовков запроса: 200 и пустое тело
func Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

