package catalog

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/urbannest/homeserve-platform/internal/observability/metrics"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Lister abstracts the catalog source so handlers can be tested with mocks.
type Lister interface {
	List(ctx context.Context) ([]Service, error)
}

// Handler serves the public catalog endpoint.
type Handler struct {
	catalog Lister
	logger  *logging.Logger
	metrics *metrics.APIMetrics
}

// NewHandler creates a catalog HTTP handler.
func NewHandler(catalog Lister, logger *logging.Logger, m *metrics.APIMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{catalog: catalog, logger: logger, metrics: m}
}

// listResponse is the wire shape the page runtime consumes.
type listResponse struct {
	OK       bool      `json:"ok"`
	Services []Service `json:"services"`
}

// ListServices returns the full catalog.
// GET /api/services
func (h *Handler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list services", "error", err)
		h.metrics.ObserveCatalogList("error")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok": false, "error": "internal server error"}`))
		return
	}

	if services == nil {
		services = []Service{}
	}

	h.metrics.ObserveCatalogList("ok")
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listResponse{OK: true, Services: services}); err != nil {
		h.logger.Error("failed to encode services", "error", err)
	}
}
