package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"slot_machine/internal/config"
)

const (
	envPath        = ".env"
	drawConfigPath = "config.yaml"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(drawConfigPath)
}

// Run поднимает HTTP-экран и ждет SIGINT/SIGTERM
func (s *App) Run() error {
	envErr := config.Load(envPath)
	s.initServiceProvider()

	log := s.ServiceProvider.Logger()
	defer func() { _ = log.Sync() }()
	if envErr != nil {
		log.Info("env file not loaded", zap.String("path", envPath), zap.Error(envErr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.serve(ctx)
}

func (s *App) serve(ctx context.Context) error {
	sp := s.ServiceProvider
	log := sp.Logger()

	srv := &http.Server{
		Addr:    sp.HTTPCfg().Address(),
		Handler: sp.Router(),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("starting server",
			zap.String("address", srv.Addr),
			zap.Int("symbols", len(sp.DrawCfg().Symbols())),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), sp.HTTPCfg().ShutdownTimeout())
		defer cancel()

		err := srv.Shutdown(shutdownCtx)
		// Воркер останавливаем после сервера, чтобы допустить активные спины
		sp.Queue().Release()
		log.Info("server stopped")
		return err
	})

	return g.Wait()
}
