package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/urbannest/homeserve-platform/pkg/logging"
)

var bookingsTracer = otel.Tracer("homeserve.internal.bookings")

// ErrMissingFields is returned when a required intake field is blank.
var ErrMissingFields = errors.New("bookings: missing fields")

// CreateRequest carries the booking intake fields from the public form.
type CreateRequest struct {
	Name      string
	Phone     string
	Address   string
	Pincode   string
	ServiceID int64
}

// Service validates and records bookings, and composes the operator
// WhatsApp notification link.
type Service struct {
	repo          *Repository
	adminWhatsApp string
	logger        *logging.Logger
}

// NewService constructs a bookings service. adminWhatsApp may be empty, in
// which case no operator notification link is produced.
func NewService(repo *Repository, adminWhatsApp string, logger *logging.Logger) *Service {
	if repo == nil {
		panic("bookings: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, adminWhatsApp: adminWhatsApp, logger: logger}
}

// Create records a booking with status "received". Only field presence is
// validated; phone numbers and pincodes are stored as submitted.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	ctx, span := bookingsTracer.Start(ctx, "bookings.create")
	defer span.End()
	span.SetAttributes(attribute.Int64("homeserve.service_id", req.ServiceID))

	b := &Booking{
		Name:      strings.TrimSpace(req.Name),
		Phone:     strings.TrimSpace(req.Phone),
		Address:   strings.TrimSpace(req.Address),
		Pincode:   strings.TrimSpace(req.Pincode),
		ServiceID: req.ServiceID,
		Status:    StatusReceived,
		CreatedAt: time.Now().UTC(),
	}
	if b.Name == "" || b.Phone == "" || b.Address == "" || b.Pincode == "" || b.ServiceID == 0 {
		return nil, ErrMissingFields
	}

	b.ID = uuid.NewString()[:8]
	if err := s.repo.Insert(ctx, b); err != nil {
		span.RecordError(err)
		return nil, err
	}

	s.logger.Info("booking received", "booking_id", b.ID, "service_id", b.ServiceID)
	return b, nil
}

// OperatorLink composes the wa.me link that notifies the operator about a
// booking, or "" when no operator number is configured. The %0A separators
// are already URL-encoded newlines for WhatsApp's text parameter.
func (s *Service) OperatorLink(b *Booking) string {
	if s.adminWhatsApp == "" {
		return ""
	}
	text := fmt.Sprintf("New Booking%%0AName:%s%%0APhone:%s%%0AServiceID:%d%%0AAddress:%s",
		b.Name, b.Phone, b.ServiceID, b.Address)
	return fmt.Sprintf("https://wa.me/%s?text=%s", s.adminWhatsApp, text)
}
