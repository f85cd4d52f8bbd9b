package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"rtp_casino/internal/config"
	"rtp_casino/internal/logger"

	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()
	defer s.ServiceProvider.Close()

	if err := logger.Init(s.ServiceProvider.LogCfg()); err != nil {
		return err
	}
	defer logger.Sync()
	if envErr != nil {
		logger.Info(".env not loaded, using process environment", zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Настройки игр по умолчанию, правки администратора не затираются
	err := s.ServiceProvider.GameService(ctx).EnsureDefaults(ctx, s.ServiceProvider.GamesCfg().Seeds())
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              s.ServiceProvider.HTTPCfg().Address(),
		Handler:           s.ServiceProvider.Router(ctx),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
