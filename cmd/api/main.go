// @title calendrical API
// @version 1.0
// @description Time zone conversion and calendar arithmetic over the IANA zone database.
// @BasePath /api/v1
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pratik-mahalle/calendrical/internal/api/handlers"
	"github.com/pratik-mahalle/calendrical/internal/api/router"
	"github.com/pratik-mahalle/calendrical/internal/config"
	"github.com/pratik-mahalle/calendrical/internal/pkg/logger"
	"github.com/pratik-mahalle/calendrical/internal/pkg/validator"
	"github.com/pratik-mahalle/calendrical/internal/services"
	"github.com/pratik-mahalle/calendrical/internal/worker"
	"github.com/pratik-mahalle/calendrical/pkg/datetime"
	"github.com/pratik-mahalle/calendrical/pkg/tzdb"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger.Init(logger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		OutputPath: cfg.Logging.OutputPath,
	})
	log := logger.Default()

	provider, err := tzdb.New(tzdb.Config{
		ZoneinfoDir: cfg.Zones.ZoneinfoDir,
		CacheSize:   cfg.Zones.CacheSize,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to open zone database: %w", err)
	}
	if ids, err := provider.AvailableZoneIDs(); err != nil {
		log.Warnf("zone listing unavailable: %v", err)
	} else {
		log.Infof("zone database has %d zones", len(ids))
	}

	service := services.NewCalendarService(datetime.NewZones(provider), log)
	val := validator.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Zones.RefreshSchedule != "" {
		refresher := worker.NewZoneRefresher(provider, cfg.Zones.RefreshSchedule, log)
		if err := refresher.Start(ctx); err != nil {
			return err
		}
		defer refresher.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Server.Addr(),
		Handler: router.New(ctx, cfg, log, &router.Handlers{
			Health:   handlers.NewHealthHandler(service, log),
			Calendar: handlers.NewCalendarHandler(service, log, val),
			Zone:     handlers.NewZoneHandler(service, log, val),
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("addr", srv.Addr).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
