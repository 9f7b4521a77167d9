// Package router assembles the platform's HTTP surface.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/urbannest/homeserve-platform/internal/bookings"
	"github.com/urbannest/homeserve-platform/internal/catalog"
	httpmiddleware "github.com/urbannest/homeserve-platform/internal/http/middleware"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	CatalogHandler     *catalog.Handler
	BookingsHandler    *bookings.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// FrontendDir, when set, is served at the site root: "/" resolves to
	// its index.html and card links resolve to book_now.html inside it.
	FrontendDir string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/services", cfg.CatalogHandler.ListServices)
		api.Post("/book", cfg.BookingsHandler.CreateBooking)
	})

	if cfg.FrontendDir != "" {
		fileServer := http.FileServer(http.Dir(cfg.FrontendDir))
		r.Handle("/*", fileServer)
	}

	return r
}
