/*
main.go - Application entry point

PURPOSE:
  Starts the earnings breakdown HTTP API.
  Handles configuration, logging, and graceful shutdown.

STARTUP SEQUENCE:
  1. Load config (environment, then flags)
  2. Initialize zap logger
  3. Resolve default currency
  4. Configure HTTP router
  5. Start server with graceful shutdown

CONFIGURATION:
  RUN_ADDRESS            -a      listen address (default localhost:8080)
  LOG_LVL                -l      debug | info | error (default info)
  DEFAULT_CURRENCY       -c      PKR | USD (default PKR)
  WORK_DAYS_PER_MONTH    -days   default 26
  WORK_HOURS_PER_DAY     -hours  default 8
  CORS_ALLOWED_ORIGINS           comma separated

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Exit

SEE ALSO:
  - api/server.go: Router configuration
  - config/config.go: Configuration
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/warp/earnings-engine/api"
	"github.com/warp/earnings-engine/config"
	"github.com/warp/earnings-engine/currency"
	"github.com/warp/earnings-engine/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New(os.Args[1:])
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLvl); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	defer zap.L().Sync()

	if _, err := currency.Lookup(cfg.DefaultCurrency); err != nil {
		return fmt.Errorf("default currency: %w", err)
	}

	handler := api.NewHandler(cfg.Schedule(), cfg.DefaultCurrency, zap.L())
	router := api.NewRouter(handler, cfg.AllowedOrigins)

	server := &http.Server{
		Addr:         cfg.Address,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info("server starting", zap.String("address", cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	zap.L().Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	zap.L().Info("server stopped")
	return nil
}
