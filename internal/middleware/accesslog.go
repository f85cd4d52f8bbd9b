package middleware

import (
	"net/http"
	"time"

	"rtp_casino/internal/logger"
	"rtp_casino/internal/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// AccessLog пишет строку лога и гистограмму длительности на каждый запрос
func AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := ""
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			route = rctx.RoutePattern()
		}

		metrics.RecordHTTP(r.Method, route, status, started)
		logger.InfoCtx(r.Context(), "http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(started)),
			zap.String("remote", r.RemoteAddr),
		)
	})
}
