package middleware

import (
	"bytes"
	"io"
	"net"
	"net/http"
	"time"

	"rtp_casino/internal/apperr"
	"rtp_casino/internal/logger"
	"rtp_casino/internal/repository"
	"rtp_casino/pkg/req"
	"rtp_casino/pkg/resp"

	"go.uber.org/zap"
)

type RateLimitDeps struct {
	Repo   repository.RateLimitRepository
	Limit  int64
	Window time.Duration
	// Actions - какие action считать; пусто - любой запрос
	Actions []string
}

type actionPeek struct {
	Action string `json:"action"`
}

// RateLimit - счётчик фиксированного окна по IP клиента.
// Если Redis недоступен, запрос пропускается
func RateLimit(deps RateLimitDeps) func(http.Handler) http.Handler {
	actions := make(map[string]struct{}, len(deps.Actions))
	for _, a := range deps.Actions {
		actions[a] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(actions) > 0 {
				raw, err := io.ReadAll(r.Body)
				if err != nil {
					next.ServeHTTP(w, r)
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(raw))

				peek, err := req.DecodeBytes[actionPeek](raw)
				if _, counted := actions[peek.Action]; err != nil || !counted {
					next.ServeHTTP(w, r)
					return
				}
			}

			ip := clientIP(r)
			hits, err := deps.Repo.Hit(r.Context(), ip, deps.Window)
			if err != nil {
				logger.WarnCtx(r.Context(), "rate limit check failed, request allowed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}
			if hits > deps.Limit {
				logger.WarnCtx(r.Context(), "rate limit exceeded",
					zap.String("client_ip", ip),
					zap.Int64("hits", hits),
				)
				resp.WriteError(w, http.StatusTooManyRequests, apperr.ErrRateLimited.Error())
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP - адрес без порта. X-Forwarded-For разбирает chi middleware.RealIP
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
