// Package page implements the service catalog page runtime: rendering the
// catalog into cards, recording the visitor's selection for the booking page,
// and pointing the WhatsApp call-to-action at the operator's number.
package page

import (
	"context"

	"github.com/urbannest/homeserve-platform/internal/page/dom"
	"github.com/urbannest/homeserve-platform/internal/storage"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Storage keys shared with the booking page and the admin tooling.
const (
	// KeySelectedService holds the id of the service the visitor picked;
	// the booking page reads it on load.
	KeySelectedService = "service_id"
	// KeyOperatorContact optionally overrides the WhatsApp contact number.
	// Written by admin tooling, read-only here.
	KeyOperatorContact = "admin_wh"
)

const (
	containerID         = "services-grid"
	containerFallbackID = "service-list"
	contactLinkID       = "cta-whatsapp"

	bookingPageHref = "book_now.html"

	waLinkPrefix         = "https://wa.me/"
	waCountryCode        = "91"
	defaultContactNumber = "9823125293"
)

// Page wires the behaviors that run once per page load.
type Page struct {
	renderer *Renderer
	composer *Composer
}

// New assembles a page runtime over the given document, backend client and
// durable store.
func New(doc dom.Document, client *CatalogClient, store storage.Store, logger *logging.Logger) *Page {
	if logger == nil {
		logger = logging.Default()
	}
	recorder := NewRecorder(store, logger)
	return &Page{
		renderer: NewRenderer(doc, client, recorder, logger),
		composer: NewComposer(doc, store, logger),
	}
}

// Run executes the page-load behaviors. The contact link is composed before
// the catalog fetch so a slow backend never delays it. Failures degrade to
// no-ops; Run never panics or returns an error to the shell.
func (p *Page) Run(ctx context.Context) {
	p.composer.Compose(ctx)
	p.renderer.Render(ctx)
}
