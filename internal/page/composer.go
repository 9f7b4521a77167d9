package page

import (
	"context"
	"errors"

	"github.com/urbannest/homeserve-platform/internal/page/dom"
	"github.com/urbannest/homeserve-platform/internal/storage"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Composer points the WhatsApp call-to-action at the operator's number.
type Composer struct {
	doc    dom.Document
	store  storage.Store
	logger *logging.Logger
}

// NewComposer creates a contact link composer.
func NewComposer(doc dom.Document, store storage.Store, logger *logging.Logger) *Composer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Composer{doc: doc, store: store, logger: logger}
}

// Compose rewrites the call-to-action href to a wa.me deep link. A missing
// element is a no-op. A stored operator number overrides the default; it is
// concatenated verbatim, no format validation. Store read failures fall back
// to the default number.
func (c *Composer) Compose(ctx context.Context) {
	link, ok := c.doc.ElementByID(contactLinkID)
	if !ok {
		return
	}

	number := defaultContactNumber
	stored, err := c.store.Get(ctx, KeyOperatorContact)
	switch {
	case err == nil && stored != "":
		number = stored
	case err != nil && !errors.Is(err, storage.ErrNotFound):
		c.logger.Warn("operator contact read failed", "error", err)
	}

	link.SetAttr("href", waLinkPrefix+waCountryCode+number)
}
