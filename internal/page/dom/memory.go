package dom

// MemoryDocument is an in-memory Document used by tests and by the kiosk
// shell, which renders the element tree itself.
type MemoryDocument struct {
	root *node
}

// NewMemoryDocument creates a document with an empty root element.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{root: &node{tag: "body"}}
}

// Root returns the document's root element; attach page structure here.
func (d *MemoryDocument) Root() Element {
	return d.root
}

// NewElement creates a detached element with the given tag name.
func (d *MemoryDocument) NewElement(tag string) Element {
	return &node{tag: tag}
}

// ElementByID searches the attached tree depth-first for a matching id.
func (d *MemoryDocument) ElementByID(id string) (Element, bool) {
	if id == "" {
		return nil, false
	}
	return findByID(d.root, id)
}

func findByID(n *node, id string) (Element, bool) {
	if n.attrs["id"] == id {
		return n, true
	}
	for _, child := range n.children {
		if found, ok := findByID(child, id); ok {
			return found, true
		}
	}
	return nil, false
}

type node struct {
	tag      string
	text     string
	attrs    map[string]string
	children []*node
	onClick  func()
}

func (n *node) Tag() string  { return n.tag }
func (n *node) ID() string   { return n.attrs["id"] }
func (n *node) Text() string { return n.text }

func (n *node) SetText(text string) { n.text = text }

func (n *node) Attr(name string) string { return n.attrs[name] }

func (n *node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[name] = value
}

func (n *node) Children() []Element {
	children := make([]Element, len(n.children))
	for i, child := range n.children {
		children[i] = child
	}
	return children
}

func (n *node) AppendChild(child Element) {
	if c, ok := child.(*node); ok {
		n.children = append(n.children, c)
	}
}

func (n *node) Clear() { n.children = nil }

func (n *node) OnClick(handler func()) { n.onClick = handler }

func (n *node) Click() {
	if n.onClick != nil {
		n.onClick()
	}
}
