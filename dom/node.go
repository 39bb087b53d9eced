// Package dom provides the arena-backed document tree built by the parser.
//
// Nodes are addressed by stable integer ids. The Document arena exclusively
// owns every node; parent/child links are id-based, so there is no cyclic
// ownership and parent lookup is O(1).
package dom

import "github.com/gosub-io/gosub-engine-sub000/bytestream"

// NodeID is a stable node identifier. Ids are assigned by the arena in
// increasing order and never reused within a document's lifetime.
type NodeID uint64

// InvalidNodeID is the zero NodeID; it never addresses a node.
const InvalidNodeID NodeID = 0

// NodeType tags the node variant.
type NodeType int

// Node types.
const (
	DocumentNodeType NodeType = iota + 1
	DoctypeNodeType
	ElementNodeType
	TextNodeType
	CommentNodeType
	FragmentNodeType
)

// String returns the name of the node type.
func (t NodeType) String() string {
	switch t {
	case DocumentNodeType:
		return "Document"
	case DoctypeNodeType:
		return "DocType"
	case ElementNodeType:
		return "Element"
	case TextNodeType:
		return "Text"
	case CommentNodeType:
		return "Comment"
	case FragmentNodeType:
		return "DocumentFragment"
	default:
		return "Unknown"
	}
}

// Node is a single tree node. The Type field selects which of the variant
// fields are meaningful: elements carry tag/namespace/attributes and an
// optional template-contents fragment, text and comment nodes carry Data,
// doctype nodes carry Name/PublicID/SystemID.
type Node struct {
	// ID is assigned by the arena on registration; zero until then.
	ID NodeID

	// ParentID is the owning parent, or InvalidNodeID for detached nodes
	// and the root.
	ParentID NodeID

	// ChildIDs lists the children in document order.
	ChildIDs []NodeID

	Type NodeType

	// Location is the source position the node originated from.
	Location bytestream.Location

	// Element fields.
	TagName    string
	Namespace  string
	Attributes *Attributes

	// TemplateContentsID addresses the contents fragment of a <template>
	// element. The fragment lives in the same arena but is never attached
	// to the main tree.
	TemplateContentsID NodeID

	// Data is the text for Text and Comment nodes.
	Data string

	// Doctype fields.
	Name     string
	PublicID string
	SystemID string
}

// IsElement reports whether the node is an element in the given namespace
// with the given tag name.
func (n *Node) IsElement(namespace, tagName string) bool {
	return n.Type == ElementNodeType && n.Namespace == namespace && n.TagName == tagName
}

// Attr returns the value of an attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	if n.Attributes == nil {
		return ""
	}
	val, _ := n.Attributes.Get(name)
	return val
}

// HasAttr reports whether the node has the given attribute.
func (n *Node) HasAttr(name string) bool {
	return n.Attributes != nil && n.Attributes.Has(name)
}

// SetAttr sets an attribute value, allocating the collection on first use.
func (n *Node) SetAttr(name, value string) {
	if n.Attributes == nil {
		n.Attributes = NewAttributes()
	}
	n.Attributes.Set(name, value)
}
