package treebuilder

import (
	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

// formattingEntry is one slot of the active-formatting list: either a
// marker or an element entry carrying the token data needed to re-create
// the element during reconstruction and adoption.
type formattingEntry struct {
	marker    bool
	name      string
	attrs     []tokenizer.Attr
	nodeID    dom.NodeID
	signature string
}

func (tb *TreeBuilder) pushFormattingMarker() {
	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{marker: true})
}

// clearFormattingUpToMarker pops entries until (and including) a marker.
func (tb *TreeBuilder) clearFormattingUpToMarker() {
	for len(tb.activeFormatting) > 0 {
		last := tb.activeFormatting[len(tb.activeFormatting)-1]
		tb.activeFormatting = tb.activeFormatting[:len(tb.activeFormatting)-1]
		if last.marker {
			return
		}
	}
}

// pushFormattingElement appends an entry, applying the Noah's Ark clause:
// once three identical entries (same tag, same attribute set) precede the
// next marker, the earliest of them is dropped.
func (tb *TreeBuilder) pushFormattingElement(name string, attrs []tokenizer.Attr, nodeID dom.NodeID) {
	sig := attrsSignature(attrs)

	identical := make([]int, 0, 3)
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker {
			break
		}
		if entry.name == name && entry.signature == sig {
			identical = append(identical, i)
		}
	}
	if len(identical) >= 3 {
		// identical is collected backwards; the last element is earliest.
		tb.removeFormattingEntry(identical[len(identical)-1])
	}

	tb.activeFormatting = append(tb.activeFormatting, formattingEntry{
		name:      name,
		attrs:     cloneTokenAttrs(attrs),
		nodeID:    nodeID,
		signature: sig,
	})
}

func (tb *TreeBuilder) findFormattingEntry(name string) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if entry.marker {
			break
		}
		if entry.name == name {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) findFormattingEntryByNode(id dom.NodeID) (int, bool) {
	for i := len(tb.activeFormatting) - 1; i >= 0; i-- {
		entry := tb.activeFormatting[i]
		if !entry.marker && entry.nodeID == id {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) hasFormattingEntry(name string) bool {
	_, ok := tb.findFormattingEntry(name)
	return ok
}

func (tb *TreeBuilder) removeFormattingEntry(index int) {
	if index < 0 || index >= len(tb.activeFormatting) {
		return
	}
	copy(tb.activeFormatting[index:], tb.activeFormatting[index+1:])
	tb.activeFormatting = tb.activeFormatting[:len(tb.activeFormatting)-1]
}

func (tb *TreeBuilder) removeFormattingEntryByNode(id dom.NodeID) {
	if idx, ok := tb.findFormattingEntryByNode(id); ok {
		tb.removeFormattingEntry(idx)
	}
}

func (tb *TreeBuilder) removeLastFormattingByName(name string) {
	if idx, ok := tb.findFormattingEntry(name); ok {
		tb.removeFormattingEntry(idx)
	}
}

// reconstructActiveFormattingElements re-opens formatting elements that a
// scope boundary closed, cloning them in order up to the list's tail.
func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	if len(tb.activeFormatting) == 0 {
		return
	}
	last := tb.activeFormatting[len(tb.activeFormatting)-1]
	if last.marker || tb.onOpenStack(last.nodeID) {
		return
	}

	index := len(tb.activeFormatting) - 1
	for {
		index--
		if index < 0 {
			index = 0
			break
		}
		entry := tb.activeFormatting[index]
		if entry.marker || tb.onOpenStack(entry.nodeID) {
			index++
			break
		}
	}

	for ; index < len(tb.activeFormatting); index++ {
		entry := tb.activeFormatting[index]
		id := tb.insertElement(entry.name, entry.attrs, bytestream.Location{})
		tb.activeFormatting[index].nodeID = id
	}
}

func (tb *TreeBuilder) onOpenStack(id dom.NodeID) bool {
	if id == dom.InvalidNodeID {
		return false
	}
	for _, el := range tb.openElements {
		if el == id {
			return true
		}
	}
	return false
}

func cloneTokenAttrs(attrs []tokenizer.Attr) []tokenizer.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]tokenizer.Attr, len(attrs))
	copy(out, attrs)
	return out
}

// attrsSignature builds an order-independent fingerprint of the HTML
// attributes for Noah's Ark comparisons.
func attrsSignature(attrs []tokenizer.Attr) string {
	if len(attrs) == 0 {
		return ""
	}
	collection := dom.NewAttributes()
	for _, a := range attrs {
		collection.SetNS(a.Namespace, a.Name, a.Value)
	}
	return collection.Signature()
}
