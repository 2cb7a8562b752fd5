package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"media-browser/internal/filesystem"
	"media-browser/internal/handlers"
	"media-browser/internal/library"
	"media-browser/internal/logging"
	"media-browser/internal/memory"
	"media-browser/internal/metrics"
	"media-browser/internal/middleware"
	"media-browser/internal/render"
	"media-browser/internal/startup"
)

func main() {
	startTime := time.Now()

	// Before anything allocates much.
	memResult, memErr := memory.ConfigureFromEnv()

	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	var logFile io.Closer
	if config.LogFile.Path != "" {
		logFile, err = logging.EnableFile(config.LogFile)
		if err != nil {
			startup.LogFatal("Failed to open log file: %v", err)
		}
	}

	if memErr != nil {
		logging.Warn("Ignoring memory limit configuration: %v", memErr)
	}
	startup.LogMemoryConfig(memResult.Source, memResult.GoMemLimit)

	filesystem.SetObserver(metrics.NewFilesystemObserver())

	libStart := time.Now()
	opts := config.LibraryOptions()
	opts.Observer = metrics.NewLibraryObserver()
	lib, err := library.New(opts)
	if err != nil {
		startup.LogFatal("Failed to initialize library: %v", err)
	}
	startup.LogLibraryInit(lib, time.Since(libStart))

	metrics.InitializeMetrics(lib.Languages())
	metrics.SetAppInfo(startup.Version, startup.Commit, startup.GoVersion)
	prometheus.MustRegister(metrics.NewRootCollector(lib, lib.Root()))

	renderer, err := render.NewHTML()
	if err != nil {
		startup.LogFatal("Failed to parse templates: %v", err)
	}

	h := handlers.New(lib, renderer)

	router := setupRouter(h)

	startup.LogHTTPRoutes(router, config.LogStaticFiles, config.LogHealthChecks)

	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogStaticFiles = config.LogStaticFiles
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggedHandler := middleware.Logger(loggingConfig)(router)

	compressionConfig := middleware.DefaultCompressionConfig()
	handler := middleware.Recover(middleware.Compression(compressionConfig)(loggedHandler))

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsSrv = setupMetricsServer(h, config.MetricsPort)
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	go handleShutdown(srv, metricsSrv, logFile)

	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}

	// ListenAndServe returns as soon as Shutdown starts; wait for it to finish.
	<-shutdownDone
}

var shutdownDone = make(chan struct{})

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.Metrics(middleware.DefaultMetricsConfig()))
	h.RegisterRoutes(r)
	return r
}

func setupMetricsServer(h *handlers.Handlers, port string) *http.Server {
	m := http.NewServeMux()
	m.Handle("/metrics", h.MetricsHandler())
	m.HandleFunc("/health", h.LivenessCheck)

	return &http.Server{
		Addr:              ":" + port,
		Handler:           m,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func handleShutdown(srv, metricsSrv *http.Server, logFile io.Closer) {
	defer close(shutdownDone)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if metricsSrv != nil {
		startup.LogShutdownStep("Shutting down metrics server")
		if err := metricsSrv.Shutdown(ctx); err != nil {
			logging.Warn("Metrics server shutdown error: %v", err)
		} else {
			startup.LogShutdownStepComplete("Metrics server stopped")
		}
	}

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			logging.Warn("Failed to close log file: %v", err)
		}
	}
}
