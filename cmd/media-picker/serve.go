package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"media-picker/internal/filesystem"
	"media-picker/internal/handlers"
	"media-picker/internal/logging"
	"media-picker/internal/memory"
	"media-picker/internal/metrics"
	"media-picker/internal/middleware"
	"media-picker/internal/picker"
	"media-picker/internal/resize"
	"media-picker/internal/startup"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
)

var serveFlags struct {
	cleanupOnExit bool
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve pick commands over HTTP",
	Long: `Serve exposes the plugin as an HTTP command bridge. POST /api/present with a
JSON array of arguments opens the native file dialog and answers with the
normalized results; POST /api/cleanup purges owned temp files.

Prometheus metrics are served on METRICS_PORT unless METRICS_ENABLED=false.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&serveFlags.cleanupOnExit, "cleanup-on-exit", false, "Purge owned temp files during shutdown")
}

func runServe(cmd *cobra.Command, _ []string) error {
	startTime := time.Now()

	memory.ConfigureFromEnv()

	config, err := startup.LoadConfig(false)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	if config.MetricsEnabled {
		metrics.InitializeMetrics(resize.Names())
		metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
		filesystem.SetObserver(metrics.NewFilesystemObserver())
	}

	a, err := newApp(config, picker.NewDialog())
	if err != nil {
		return err
	}
	defer a.close()

	var collector *metrics.Collector
	if config.MetricsEnabled {
		collector = metrics.NewCollector(a.temp, config.StatsInterval)
		collector.Start()
	}

	h := handlers.New(a.plugin, a.temp)

	router := mux.NewRouter()
	h.Register(router)
	router.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))

	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks

	srv := &http.Server{
		Addr:              ":" + config.Port,
		Handler:           middleware.Logger(loggingConfig)(router),
		ReadHeaderTimeout: 10 * time.Second,
		// A present command waits for the user, so responses have no deadline
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsRouter := mux.NewRouter()
		metricsRouter.Handle("/metrics", h.MetricsHandler()).Methods(http.MethodGet)
		metricsRouter.HandleFunc("/health", h.LivenessCheck).Methods(http.MethodGet, http.MethodHead)
		metricsSrv = &http.Server{
			Addr:              ":" + config.MetricsPort,
			Handler:           metricsRouter,
			ReadHeaderTimeout: 10 * time.Second,
		}
	}

	serveErr := make(chan error, 2)
	go func() {
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- fmt.Errorf("server error: %w", err)
		}
	}()
	if metricsSrv != nil {
		go func() {
			if err := metricsSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				serveErr <- fmt.Errorf("metrics server error: %w", err)
			}
		}()
	}

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})

	var runErr error
	select {
	case <-cmd.Context().Done():
		startup.LogShutdownInitiated("interrupt")
	case runErr = <-serveErr:
		logging.Error("%v", runErr)
		startup.LogShutdownInitiated("server error")
	}

	shutdown(srv, metricsSrv, collector, a)
	return runErr
}

func shutdown(srv, metricsSrv *http.Server, collector *metrics.Collector, a *app) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	if collector != nil {
		startup.LogShutdownStep("Stopping metrics collector")
		collector.Stop()
		startup.LogShutdownStepComplete("Metrics collector stopped")
	}

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	if serveFlags.cleanupOnExit {
		startup.LogShutdownStep("Purging temp files")
		if resp := a.plugin.Cleanup(); resp.OK() {
			startup.LogShutdownStepComplete("Temp files purged")
		}
	}

	startup.LogShutdownComplete()
}
