package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codecard/internal/database"
	"codecard/internal/handlers"
	"codecard/internal/logging"
	"codecard/internal/metrics"
	"codecard/internal/middleware"
	"codecard/internal/startup"

	"github.com/gorilla/mux"
)

func main() {
	startTime := time.Now()

	// Load configuration
	config, err := startup.LoadConfig()
	if err != nil {
		startup.LogFatal("Configuration error: %v", err)
	}

	// Initialize job history database
	var db *database.Database
	if config.HistoryEnabled {
		dbStart := time.Now()
		db, err = database.New(context.Background(), config.DatabasePath)
		if err != nil {
			startup.LogFatal("Failed to initialize database: %v", err)
		}
		defer func() {
			if err := db.Close(); err != nil {
				logging.Warn("failed to close database: %v", err)
			}
		}()
		startup.LogDatabaseInit(time.Since(dbStart))
	} else {
		logging.Warn("Job history disabled; batches will not be recorded")
	}

	// Pre-populate metric series so dashboards see zeros, not gaps
	metrics.InitializeMetrics()

	buildInfo := startup.GetBuildInfo()
	metrics.AppInfo.WithLabelValues(buildInfo.Version, buildInfo.Commit, buildInfo.GoVersion).Set(1)

	var collector *metrics.Collector
	if db != nil {
		collector = metrics.NewCollector(db, config.StatsInterval)
		collector.Start()
	}

	// Initialize handlers
	h := handlers.New(db, config)

	// Setup router
	router := setupRouter(h)

	// Log routes dynamically
	startup.LogHTTPRoutes(router, config.LogHealthChecks)

	// Apply logging middleware
	loggingConfig := middleware.DefaultLoggingConfig()
	loggingConfig.LogHealthChecks = config.LogHealthChecks
	loggedHandler := middleware.Logger(loggingConfig)(router)

	// Apply metrics middleware
	meteredHandler := middleware.Metrics(middleware.DefaultMetricsConfig())(loggedHandler)

	// Apply compression middleware
	compressionConfig := middleware.DefaultCompressionConfig()
	handler := middleware.Compression(compressionConfig)(meteredHandler)

	// Create server
	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Metrics get their own listener so scrapes bypass the app chain
	var metricsSrv *http.Server
	if config.MetricsEnabled {
		metricsMux := http.NewServeMux()
		metricsMux.Handle("/metrics", h.MetricsHandler())
		metricsSrv = &http.Server{
			Addr:        ":" + config.MetricsPort,
			Handler:     metricsMux,
			ReadTimeout: 15 * time.Second,
		}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != http.ErrServerClosed {
				logging.Error("Metrics server error: %v", err)
			}
		}()
	}

	// Start graceful shutdown handler
	go handleShutdown(srv, metricsSrv, collector)

	// Start server
	startup.LogServerStarted(startup.ServerConfig{
		Port:            config.Port,
		MetricsPort:     config.MetricsPort,
		MetricsEnabled:  config.MetricsEnabled,
		StartupDuration: time.Since(startTime),
	})
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		startup.LogFatal("Server error: %v", err)
	}
}

func setupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Health check and version routes
	r.HandleFunc("/health", h.HealthCheck).Methods("GET")
	r.HandleFunc("/healthz", h.HealthCheck).Methods("GET")
	r.HandleFunc("/livez", h.LivenessCheck).Methods("GET", "HEAD")
	r.HandleFunc("/readyz", h.ReadinessCheck).Methods("GET")
	r.HandleFunc("/version", h.GetVersion).Methods("GET")

	// Generation API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/qr", h.GenerateQR).Methods("POST")
	api.HandleFunc("/qr/wifi", h.GenerateWifiQR).Methods("POST")
	api.HandleFunc("/qr/mailto", h.GenerateMailtoQR).Methods("POST")
	api.HandleFunc("/qr/tel", h.GenerateTelQR).Methods("POST")
	api.HandleFunc("/qr/sms", h.GenerateSMSQR).Methods("POST")
	api.HandleFunc("/qr/geo", h.GenerateGeoQR).Methods("POST")
	api.HandleFunc("/barcode", h.GenerateBarcode).Methods("POST")
	api.HandleFunc("/vcard", h.GenerateVCard).Methods("POST")
	api.HandleFunc("/vcard/qr", h.GenerateVCardQR).Methods("POST")

	// Landing page QR links
	api.HandleFunc("/landing/contact", h.GenerateContactLandingQR).Methods("POST")
	api.HandleFunc("/landing/links", h.GenerateLinksLandingQR).Methods("POST")
	api.HandleFunc("/landing/event", h.GenerateEventLandingQR).Methods("POST")

	// Batch processing and history
	api.HandleFunc("/batch", h.UploadBatch).Methods("POST")
	api.HandleFunc("/jobs", h.ListJobs).Methods("GET")
	api.HandleFunc("/stats", h.GetStats).Methods("GET")

	// Landing pages
	r.HandleFunc("/", h.Landing).Methods("GET")

	return r
}

func handleShutdown(srv, metricsSrv *http.Server, collector *metrics.Collector) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan

	startup.LogShutdownInitiated(sig.String())

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

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

	startup.LogShutdownStep("Shutting down HTTP server")
	if err := srv.Shutdown(ctx); err != nil {
		logging.Warn("Server shutdown error: %v", err)
	} else {
		startup.LogShutdownStepComplete("HTTP server stopped")
	}

	startup.LogShutdownComplete()
}
