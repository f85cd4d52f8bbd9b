package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"rtp_casino/internal/logger"
	"rtp_casino/pkg/resp"

	"go.uber.org/zap"
)

// Recovery перехватывает panic обработчика и отвечает 500
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.ErrorCtx(r.Context(), "panic recovered",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Any("error", rec),
				zap.String("stack", string(debug.Stack())),
			)
			resp.WriteError(w, http.StatusInternalServerError, fmt.Sprint(rec))
		}()

		next.ServeHTTP(w, r)
	})
}
