package page

import (
	"context"
	"strings"

	"github.com/urbannest/homeserve-platform/internal/page/dom"
	"github.com/urbannest/homeserve-platform/pkg/logging"
)

// Renderer populates the services container with one card per catalog entry.
type Renderer struct {
	doc      dom.Document
	client   *CatalogClient
	recorder *Recorder
	logger   *logging.Logger
}

// NewRenderer creates a catalog renderer.
func NewRenderer(doc dom.Document, client *CatalogClient, recorder *Recorder, logger *logging.Logger) *Renderer {
	if logger == nil {
		logger = logging.Default()
	}
	return &Renderer{doc: doc, client: client, recorder: recorder, logger: logger}
}

// Render fetches the catalog and rebuilds the container's cards. A missing
// container is a no-op. Fetch or decode failures are logged and leave the
// container untouched; the container is only cleared once a successful
// response is in hand, so a failed load never blanks the page.
func (r *Renderer) Render(ctx context.Context) {
	container, ok := r.doc.ElementByID(containerID)
	if !ok {
		container, ok = r.doc.ElementByID(containerFallbackID)
	}
	if !ok {
		return
	}

	resp, err := r.client.Fetch(ctx)
	if err != nil {
		r.logger.Warn("catalog fetch failed", "error", err)
		return
	}
	if !resp.OK {
		r.logger.Warn("catalog fetch rejected", "error", resp.Error)
		return
	}

	container.Clear()
	for _, svc := range resp.Services {
		container.AppendChild(r.buildCard(svc))
	}
}

func (r *Renderer) buildCard(svc Service) dom.Element {
	card := r.doc.NewElement("div")
	card.SetAttr("class", "service-card")

	badge := r.doc.NewElement("div")
	badge.SetAttr("class", "badge")
	badge.SetText(titleBadge(svc.Title))
	card.AppendChild(badge)

	title := r.doc.NewElement("h4")
	title.SetText(svc.Title)
	card.AppendChild(title)

	desc := r.doc.NewElement("p")
	desc.SetText(svc.Description)
	card.AppendChild(desc)

	price := r.doc.NewElement("div")
	price.SetAttr("class", "price")
	price.SetText(svc.StartingPrice)
	card.AppendChild(price)

	link := r.doc.NewElement("a")
	link.SetAttr("href", bookingPageHref)
	link.SetText("Book Now")
	id := svc.ID
	link.OnClick(func() {
		r.recorder.Record(context.Background(), id)
	})
	card.AppendChild(link)

	return card
}

// titleBadge returns the first two characters of the title's first word.
func titleBadge(title string) string {
	fields := strings.Fields(title)
	if len(fields) == 0 {
		return ""
	}
	runes := []rune(fields[0])
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
