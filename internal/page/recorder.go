package page

import (
	"context"
	"strconv"

	"github.com/urbannest/homeserve-platform/internal/storage"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Recorder persists the visitor's service selection for the booking page.
type Recorder struct {
	store  storage.Store
	logger *logging.Logger
}

// NewRecorder creates a selection recorder over the durable store.
func NewRecorder(store storage.Store, logger *logging.Logger) *Recorder {
	if logger == nil {
		logger = logging.Default()
	}
	return &Recorder{store: store, logger: logger}
}

// Record writes the selected service id under KeySelectedService. Each call
// overwrites the previous selection; the last click before navigation wins.
// Write failures are logged and swallowed so a broken store never interrupts
// the visitor.
func (r *Recorder) Record(ctx context.Context, serviceID int64) {
	if err := r.store.Set(ctx, KeySelectedService, strconv.FormatInt(serviceID, 10)); err != nil {
		r.logger.Warn("selection write failed", "service_id", serviceID, "error", err)
	}
}
