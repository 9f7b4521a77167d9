package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/urbannest/homeserve-platform/internal/api/router"
	"github.com/urbannest/homeserve-platform/internal/bookings"
	"github.com/urbannest/homeserve-platform/internal/catalog"
	appconfig "github.com/urbannest/homeserve-platform/internal/config"
	"github.com/urbannest/homeserve-platform/internal/database"
	"github.com/urbannest/homeserve-platform/internal/observability/metrics"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting homeserve platform",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	db, err := database.Open(context.Background(), cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	apiMetrics := metrics.NewAPIMetrics(nil)

	catalogHandler := catalog.NewHandler(
		catalog.NewRepository(db),
		logger.WithComponent("catalog"),
		apiMetrics,
	)
	bookingSvc := bookings.NewService(
		bookings.NewRepository(db),
		cfg.AdminWhatsApp,
		logger.WithComponent("bookings"),
	)
	bookingsHandler := bookings.NewHandler(bookingSvc, logger.WithComponent("bookings"), apiMetrics)

	r := router.New(&router.Config{
		Logger:             logger,
		CatalogHandler:     catalogHandler,
		BookingsHandler:    bookingsHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		FrontendDir:        cfg.FrontendDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
