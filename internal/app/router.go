package app

import (
	"net/http"

	"rtp_casino/internal/api"
	authAPI "rtp_casino/internal/api/auth"
	gameAPI "rtp_casino/internal/api/game"
	"rtp_casino/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	AuthHandler *authAPI.Handler
	GameHandler *gameAPI.Handler
	// PlayLimiter - необязательный лимит на POST /games action=play
	PlayLimiter func(http.Handler) http.Handler
}

func NewRouter(deps RouterDeps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog)
	r.Use(middleware.Recovery)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-Id", "X-Request-Id"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.MethodNotAllowed(api.MethodNotAllowed)

	// Auth endpoints
	r.Route("/auth", func(rr chi.Router) {
		rr.Post("/", deps.AuthHandler.Handle)
		rr.Options("/", api.Preflight)
	})

	// Games endpoints
	r.Route("/games", func(rr chi.Router) {
		rr.Get("/", deps.GameHandler.ListSettings)
		rr.Options("/", api.Preflight)
		if deps.PlayLimiter != nil {
			rr.With(deps.PlayLimiter).Post("/", deps.GameHandler.Handle)
		} else {
			rr.Post("/", deps.GameHandler.Handle)
		}
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
