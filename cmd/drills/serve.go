package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sagarc03/drills"
	"github.com/sagarc03/drills/config"
	drillshttp "github.com/sagarc03/drills/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Start the drills HTTP server.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 8000, "HTTP server port (env: DRILLS_SERVER_PORT)")
	serveCmd.Flags().Uint64("lotto-seed", 0, "seed for lottery draws, 0 seeds from the clock (env: DRILLS_LOTTO_SEED)")
	serveCmd.Flags().Bool("metrics", true, "expose Prometheus metrics (env: DRILLS_METRICS_ENABLED)")
	serveCmd.Flags().String("metrics-path", "/metrics", "path for Prometheus metrics (env: DRILLS_METRICS_PATH)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg, err := config.FromContext(ctx)
	if err != nil {
		return err
	}

	service, err := drills.NewDrillsService(drills.NewRand(cfg.Lotto.Seed))
	if err != nil {
		return fmt.Errorf("create service: %w", err)
	}

	handlerConfig := drillshttp.HandlerConfig{
		CORS: cfg.CORS,
	}
	if cfg.Metrics.Enabled {
		handlerConfig.Metrics = drillshttp.NewMetrics()
		handlerConfig.MetricsPath = cfg.Metrics.Path
	}

	handler := drillshttp.NewHandler(&handlerConfig, service)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Router(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case <-sigCh:
		case <-ctx.Done():
			return
		}

		slog.Info("shutting down server...")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("server shutdown error", "err", err)
		}
	}()

	slog.Info("starting server",
		"addr", addr,
		"metrics", cfg.Metrics.Enabled,
		"cors", cfg.CORS.Enabled,
		"lotto_seeded", cfg.Lotto.Seed != 0,
	)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}

	// Wait for in-flight requests to drain.
	<-shutdownDone
	return nil
}
