// Package dom models the page's element tree. The page runtime only needs
// lookup by id, child manipulation, attributes and click wiring, so the
// surface is deliberately small; the host shell supplies the real document.
package dom

// Element is a single node in the element tree.
type Element interface {
	// Tag returns the element's tag name ("div", "a", ...).
	Tag() string
	// ID returns the element's id attribute, empty when unset.
	ID() string

	Text() string
	SetText(text string)

	Attr(name string) string
	SetAttr(name, value string)

	Children() []Element
	AppendChild(child Element)
	// Clear removes all children.
	Clear()

	// OnClick registers the handler invoked by Click. Registering again
	// replaces the previous handler.
	OnClick(handler func())
	Click()
}

// Document is the page hosting the elements the runtime manipulates.
type Document interface {
	// ElementByID finds the attached element with the given id.
	ElementByID(id string) (Element, bool)
	// NewElement creates a detached element with the given tag name.
	NewElement(tag string) Element
}
