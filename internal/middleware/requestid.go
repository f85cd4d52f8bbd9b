package middleware

import (
	"net/http"

	"rtp_casino/internal/logger"

	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-Id"

// RequestID кладёт X-Request-Id в контекст и в ответ. Пустой заголовок - новый uuid
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}
