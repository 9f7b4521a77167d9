package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbannest/homeserve-platform/internal/page/dom"
	"github.com/urbannest/homeserve-platform/internal/storage"
)

func docWithContactLink() (*dom.MemoryDocument, dom.Element) {
	doc := dom.NewMemoryDocument()
	link := doc.NewElement("a")
	link.SetAttr("id", "cta-whatsapp")
	doc.Root().AppendChild(link)
	return doc, link
}

func TestComposeDefaultNumber(t *testing.T) {
	doc, link := docWithContactLink()
	composer := NewComposer(doc, storage.NewMemoryStore(), nil)

	composer.Compose(context.Background())
	assert.Equal(t, "https://wa.me/919823125293", link.Attr("href"))
}

func TestComposeOperatorOverride(t *testing.T) {
	ctx := context.Background()
	doc, link := docWithContactLink()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyOperatorContact, "911234567890"))

	NewComposer(doc, store, nil).Compose(ctx)

	// Verbatim concatenation behind the country prefix, no normalization.
	assert.Equal(t, "https://wa.me/91911234567890", link.Attr("href"))
}

func TestComposeEmptyOverrideFallsBack(t *testing.T) {
	ctx := context.Background()
	doc, link := docWithContactLink()
	store := storage.NewMemoryStore()
	require.NoError(t, store.Set(ctx, KeyOperatorContact, ""))

	NewComposer(doc, store, nil).Compose(ctx)
	assert.Equal(t, "https://wa.me/919823125293", link.Attr("href"))
}

func TestComposeStoreFailureFallsBack(t *testing.T) {
	doc, link := docWithContactLink()

	NewComposer(doc, failStore{}, nil).Compose(context.Background())
	assert.Equal(t, "https://wa.me/919823125293", link.Attr("href"))
}

func TestComposeMissingElementIsNoOp(t *testing.T) {
	doc := dom.NewMemoryDocument()

	// Must not panic when the call-to-action is absent.
	NewComposer(doc, storage.NewMemoryStore(), nil).Compose(context.Background())
}
