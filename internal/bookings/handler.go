package bookings

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/urbannest/homeserve-platform/internal/observability/metrics"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Handler serves the public booking intake endpoint.
type Handler struct {
	svc     *Service
	logger  *logging.Logger
	metrics *metrics.APIMetrics
}

// NewHandler creates a bookings HTTP handler.
func NewHandler(svc *Service, logger *logging.Logger, m *metrics.APIMetrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{svc: svc, logger: logger, metrics: m}
}

type createRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	Pincode   string `json:"pincode"`
	ServiceID int64  `json:"service_id"`
}

type createResponse struct {
	OK     bool   `json:"ok"`
	ID     string `json:"id"`
	WALink string `json:"wa_link"`
}

// CreateBooking records a booking request.
// POST /api/book
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	w.Header().Set("Content-Type", "application/json")

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.metrics.ObserveBookingCreated("rejected")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok": false, "error": "invalid JSON body"}`))
		return
	}

	b, err := h.svc.Create(r.Context(), CreateRequest{
		Name:      req.Name,
		Phone:     req.Phone,
		Address:   req.Address,
		Pincode:   req.Pincode,
		ServiceID: req.ServiceID,
	})
	switch {
	case errors.Is(err, ErrMissingFields):
		h.metrics.ObserveBookingCreated("rejected")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"ok": false, "error": "Missing fields"}`))
		return
	case err != nil:
		h.logger.Error("failed to create booking", "error", err)
		h.metrics.ObserveBookingCreated("error")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"ok": false, "error": "internal server error"}`))
		return
	}

	h.metrics.ObserveBookingCreated("created")
	h.metrics.ObserveBookingLatency(time.Since(start).Seconds())
	if err := json.NewEncoder(w).Encode(createResponse{OK: true, ID: b.ID, WALink: h.svc.OperatorLink(b)}); err != nil {
		h.logger.Error("failed to encode booking response", "booking_id", b.ID, "error", err)
	}
}
