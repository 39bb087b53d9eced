package dom

import (
	"strings"
	"unicode"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
)

// QuirksMode is the document compatibility mode selected from the DOCTYPE.
type QuirksMode int

// Quirks modes.
const (
	NoQuirks QuirksMode = iota
	Quirks
	LimitedQuirks
)

// String returns the name of the quirks mode.
func (m QuirksMode) String() string {
	switch m {
	case Quirks:
		return "quirks"
	case LimitedQuirks:
		return "limited-quirks"
	default:
		return "no-quirks"
	}
}

// DoctypeKind distinguishes a regular HTML document from an iframe srcdoc
// document, which never enters quirks mode.
type DoctypeKind int

// Doctype kinds.
const (
	HTMLDocument DoctypeKind = iota
	IframeSrcDoc
)

// Stylesheet is an opaque handle to a stylesheet attached during parsing.
// The tree stores it; interpretation belongs to the CSS collaborator.
type Stylesheet interface{}

// Document is the node arena plus document-level state. It exclusively owns
// every node; NodeIDs are handed out monotonically and never reused.
type Document struct {
	nodes  map[NodeID]*Node
	nextID NodeID

	// RootID addresses the document node itself.
	RootID NodeID

	doctypeKind DoctypeKind
	quirksMode  QuirksMode

	stylesheets []Stylesheet

	// namedIDs maps an element's id attribute to the first node registered
	// with it.
	namedIDs map[string]NodeID

	url string
}

// NewDocument creates a document with a registered root node. The url may
// be empty.
func NewDocument(url string) *Document {
	d := &Document{
		nodes:    make(map[NodeID]*Node),
		namedIDs: make(map[string]NodeID),
		url:      url,
	}
	root := &Node{Type: DocumentNodeType}
	d.RootID = d.RegisterNode(root)
	return d
}

// URL returns the document URL, or "" if none was given.
func (d *Document) URL() string {
	return d.url
}

// DoctypeKind returns the document kind.
func (d *Document) DoctypeKind() DoctypeKind {
	return d.doctypeKind
}

// SetDoctypeKind sets the document kind.
func (d *Document) SetDoctypeKind(kind DoctypeKind) {
	d.doctypeKind = kind
}

// QuirksMode returns the current quirks mode.
func (d *Document) QuirksMode() QuirksMode {
	return d.quirksMode
}

// SetQuirksMode sets the quirks mode.
func (d *Document) SetQuirksMode(mode QuirksMode) {
	d.quirksMode = mode
}

// AddStylesheet attaches a stylesheet handle to the document.
func (d *Document) AddStylesheet(sheet Stylesheet) {
	d.stylesheets = append(d.stylesheets, sheet)
}

// Stylesheets returns the attached stylesheet handles in attach order.
func (d *Document) Stylesheets() []Stylesheet {
	return d.stylesheets
}

// NodeCount returns the number of registered nodes.
func (d *Document) NodeCount() int {
	return len(d.nodes)
}

// RegisterNode assigns the next NodeID to the node and inserts it into the
// arena. The node must not already be registered.
func (d *Document) RegisterNode(n *Node) NodeID {
	if n.ID != InvalidNodeID {
		panic("dom: node already registered")
	}
	d.nextID++
	n.ID = d.nextID
	d.nodes[n.ID] = n
	d.indexNamedID(n)
	return n.ID
}

// RegisterNodeAt registers the node and attaches it under parent at the
// given index (-1 appends).
func (d *Document) RegisterNodeAt(n *Node, parent NodeID, index int) NodeID {
	id := d.RegisterNode(n)
	d.Attach(id, parent, index)
	return id
}

// NodeByID returns the node for an id, or nil.
func (d *Document) NodeByID(id NodeID) *Node {
	return d.nodes[id]
}

// ClonedNodeByID returns a copy of the node: same tag, namespace, and
// attributes, no id, no parent, no children. Used by the adoption agency.
func (d *Document) ClonedNodeByID(id NodeID) *Node {
	n := d.nodes[id]
	if n == nil {
		return nil
	}
	clone := &Node{
		Type:      n.Type,
		Location:  n.Location,
		TagName:   n.TagName,
		Namespace: n.Namespace,
		Data:      n.Data,
		Name:      n.Name,
		PublicID:  n.PublicID,
		SystemID:  n.SystemID,
	}
	if n.Attributes != nil {
		clone.Attributes = n.Attributes.Clone()
	}
	return clone
}

// Attach links child under parent at the given index (-1 or an index past
// the end appends). It refuses, returning false, when either id is unknown,
// the child is already attached elsewhere, or the attachment would create a
// cycle (parent equal to or a descendant of child).
func (d *Document) Attach(child, parent NodeID, index int) bool {
	childNode := d.nodes[child]
	parentNode := d.nodes[parent]
	if childNode == nil || parentNode == nil {
		return false
	}
	if childNode.ParentID != InvalidNodeID {
		return false
	}
	if child == parent || d.isDescendant(parent, child) {
		return false
	}

	if index < 0 || index >= len(parentNode.ChildIDs) {
		parentNode.ChildIDs = append(parentNode.ChildIDs, child)
	} else {
		parentNode.ChildIDs = append(parentNode.ChildIDs, InvalidNodeID)
		copy(parentNode.ChildIDs[index+1:], parentNode.ChildIDs[index:])
		parentNode.ChildIDs[index] = child
	}
	childNode.ParentID = parent
	return true
}

// Detach unlinks the node from its parent. The node stays registered.
func (d *Document) Detach(child NodeID) {
	childNode := d.nodes[child]
	if childNode == nil || childNode.ParentID == InvalidNodeID {
		return
	}
	parentNode := d.nodes[childNode.ParentID]
	if parentNode != nil {
		for i, id := range parentNode.ChildIDs {
			if id == child {
				parentNode.ChildIDs = append(parentNode.ChildIDs[:i], parentNode.ChildIDs[i+1:]...)
				break
			}
		}
	}
	childNode.ParentID = InvalidNodeID
}

// Relocate moves the node under a new parent (append position).
func (d *Document) Relocate(child, newParent NodeID) bool {
	childNode := d.nodes[child]
	if childNode == nil {
		return false
	}
	oldParent := childNode.ParentID
	oldIndex := -1
	if oldParent != InvalidNodeID {
		if p := d.nodes[oldParent]; p != nil {
			for i, id := range p.ChildIDs {
				if id == child {
					oldIndex = i
					break
				}
			}
		}
	}
	d.Detach(child)
	if d.Attach(child, newParent, -1) {
		return true
	}
	// Restore the original position on refusal.
	if oldParent != InvalidNodeID {
		d.Attach(child, oldParent, oldIndex)
	}
	return false
}

// isDescendant reports whether node is in the transitive-children set of
// ancestor.
func (d *Document) isDescendant(node, ancestor NodeID) bool {
	for node != InvalidNodeID {
		n := d.nodes[node]
		if n == nil {
			return false
		}
		if n.ParentID == ancestor {
			return true
		}
		node = n.ParentID
	}
	return false
}

// indexNamedID records the element in the named-id index when its id
// attribute qualifies: non-empty, at least one alphabetic character, no
// whitespace. The first registration wins.
func (d *Document) indexNamedID(n *Node) {
	if n.Type != ElementNodeType {
		return
	}
	id := n.Attr("id")
	if !validNamedID(id) {
		return
	}
	if _, taken := d.namedIDs[id]; !taken {
		d.namedIDs[id] = n.ID
	}
}

func validNamedID(id string) bool {
	if id == "" {
		return false
	}
	hasAlpha := false
	for _, r := range id {
		if unicode.IsSpace(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasAlpha = true
		}
	}
	return hasAlpha
}

// ElementByID returns the node registered under the given id attribute
// value, or nil.
func (d *Document) ElementByID(id string) *Node {
	if nid, ok := d.namedIDs[id]; ok {
		return d.nodes[nid]
	}
	return nil
}

// Constructors for the node shapes the tree builder inserts. Each returns
// an unregistered node; the caller registers and attaches it.

// NewElementNode creates an element node.
func (d *Document) NewElementNode(name, namespace string, attrs *Attributes, loc bytestream.Location) *Node {
	if attrs == nil {
		attrs = NewAttributes()
	}
	return &Node{
		Type:       ElementNodeType,
		TagName:    name,
		Namespace:  namespace,
		Attributes: attrs,
		Location:   loc,
	}
}

// NewTextNode creates a text node.
func (d *Document) NewTextNode(data string, loc bytestream.Location) *Node {
	return &Node{Type: TextNodeType, Data: data, Location: loc}
}

// NewCommentNode creates a comment node.
func (d *Document) NewCommentNode(data string, loc bytestream.Location) *Node {
	return &Node{Type: CommentNodeType, Data: data, Location: loc}
}

// NewDoctypeNode creates a doctype node.
func (d *Document) NewDoctypeNode(name, publicID, systemID string, loc bytestream.Location) *Node {
	return &Node{Type: DoctypeNodeType, Name: name, PublicID: publicID, SystemID: systemID, Location: loc}
}

// NewFragmentNode creates a document fragment node (template contents).
func (d *Document) NewFragmentNode(loc bytestream.Location) *Node {
	return &Node{Type: FragmentNodeType, Location: loc}
}

// Tree accessors used by consumers and tests.

// DocumentElement returns the root <html> element node, or nil.
func (d *Document) DocumentElement() *Node {
	root := d.nodes[d.RootID]
	if root == nil {
		return nil
	}
	for _, id := range root.ChildIDs {
		if n := d.nodes[id]; n != nil && n.Type == ElementNodeType {
			return n
		}
	}
	return nil
}

// Head returns the <head> element node, or nil.
func (d *Document) Head() *Node {
	return d.htmlChild("head")
}

// Body returns the <body> element node, or nil.
func (d *Document) Body() *Node {
	return d.htmlChild("body")
}

func (d *Document) htmlChild(tag string) *Node {
	html := d.DocumentElement()
	if html == nil {
		return nil
	}
	for _, id := range html.ChildIDs {
		if n := d.nodes[id]; n != nil && n.Type == ElementNodeType && n.TagName == tag {
			return n
		}
	}
	return nil
}

// Doctype returns the document's doctype node, or nil.
func (d *Document) Doctype() *Node {
	root := d.nodes[d.RootID]
	if root == nil {
		return nil
	}
	for _, id := range root.ChildIDs {
		if n := d.nodes[id]; n != nil && n.Type == DoctypeNodeType {
			return n
		}
	}
	return nil
}

// Title returns the concatenated text of the first <title> under <head>.
func (d *Document) Title() string {
	head := d.Head()
	if head == nil {
		return ""
	}
	for _, id := range head.ChildIDs {
		if n := d.nodes[id]; n != nil && n.IsElement(NamespaceHTML, "title") {
			return d.TextContent(id)
		}
	}
	return ""
}

// TextContent concatenates the text descendants of a node.
func (d *Document) TextContent(id NodeID) string {
	var sb strings.Builder
	d.collectText(id, &sb)
	return sb.String()
}

func (d *Document) collectText(id NodeID, sb *strings.Builder) {
	n := d.nodes[id]
	if n == nil {
		return
	}
	if n.Type == TextNodeType {
		sb.WriteString(n.Data)
		return
	}
	for _, child := range n.ChildIDs {
		d.collectText(child, sb)
	}
}

// Namespace constants re-exported for consumers of the tree.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
)
