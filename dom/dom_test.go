package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
)

func TestRegisterAssignsIncreasingIDs(t *testing.T) {
	d := NewDocument("")

	a := d.RegisterNode(d.NewElementNode("div", NamespaceHTML, nil, bytestream.Location{}))
	b := d.RegisterNode(d.NewTextNode("x", bytestream.Location{}))
	assert.Greater(t, a, d.RootID)
	assert.Greater(t, b, a)
	assert.Equal(t, 3, d.NodeCount())
}

func TestRegisterTwicePanics(t *testing.T) {
	d := NewDocument("")
	n := d.NewElementNode("div", NamespaceHTML, nil, bytestream.Location{})
	d.RegisterNode(n)
	assert.Panics(t, func() { d.RegisterNode(n) })
}

func TestAttachDetachRelocate(t *testing.T) {
	d := NewDocument("")
	parent := d.RegisterNodeAt(d.NewElementNode("div", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	first := d.RegisterNodeAt(d.NewTextNode("a", bytestream.Location{}), parent, -1)
	second := d.RegisterNodeAt(d.NewTextNode("b", bytestream.Location{}), parent, -1)
	inserted := d.RegisterNode(d.NewTextNode("c", bytestream.Location{}))

	require.True(t, d.Attach(inserted, parent, 1))
	assert.Equal(t, []NodeID{first, inserted, second}, d.NodeByID(parent).ChildIDs)

	d.Detach(inserted)
	assert.Equal(t, InvalidNodeID, d.NodeByID(inserted).ParentID)
	assert.Equal(t, []NodeID{first, second}, d.NodeByID(parent).ChildIDs)

	other := d.RegisterNodeAt(d.NewElementNode("span", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	require.True(t, d.Relocate(second, other))
	assert.Equal(t, other, d.NodeByID(second).ParentID)
	assert.Equal(t, []NodeID{first}, d.NodeByID(parent).ChildIDs)
}

func TestAttachRefusesCycles(t *testing.T) {
	d := NewDocument("")
	outer := d.RegisterNodeAt(d.NewElementNode("div", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	inner := d.RegisterNodeAt(d.NewElementNode("span", NamespaceHTML, nil, bytestream.Location{}), outer, -1)

	assert.False(t, d.Attach(outer, outer, -1), "self-attach")

	d.Detach(outer)
	assert.False(t, d.Attach(outer, inner, -1), "attach to own descendant")
}

func TestRelocateIntoDescendantKeepsPosition(t *testing.T) {
	d := NewDocument("")
	outer := d.RegisterNodeAt(d.NewElementNode("div", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	inner := d.RegisterNodeAt(d.NewElementNode("span", NamespaceHTML, nil, bytestream.Location{}), outer, -1)

	require.False(t, d.Relocate(outer, inner))
	assert.Equal(t, d.RootID, d.NodeByID(outer).ParentID)
	assert.Equal(t, []NodeID{outer}, d.NodeByID(d.RootID).ChildIDs)
}

func TestParentChildInvariant(t *testing.T) {
	d := NewDocument("")
	parent := d.RegisterNodeAt(d.NewElementNode("ul", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	for i := 0; i < 3; i++ {
		d.RegisterNodeAt(d.NewElementNode("li", NamespaceHTML, nil, bytestream.Location{}), parent, -1)
	}

	for _, childID := range d.NodeByID(parent).ChildIDs {
		child := d.NodeByID(childID)
		require.Equal(t, parent, child.ParentID)
	}
}

func TestNamedIDIndex(t *testing.T) {
	d := NewDocument("")

	withID := func(id string) *Node {
		attrs := NewAttributes()
		attrs.Set("id", id)
		return d.NewElementNode("div", NamespaceHTML, attrs, bytestream.Location{})
	}

	first := d.RegisterNode(withID("main"))
	d.RegisterNode(withID("main")) // duplicate keeps the first
	d.RegisterNode(withID("123"))  // no alphabetic character
	d.RegisterNode(withID("a b"))  // whitespace
	d.RegisterNode(withID(""))     // empty

	require.NotNil(t, d.ElementByID("main"))
	assert.Equal(t, first, d.ElementByID("main").ID)
	assert.Nil(t, d.ElementByID("123"))
	assert.Nil(t, d.ElementByID("a b"))
	assert.Nil(t, d.ElementByID(""))
}

func TestClonedNodeByID(t *testing.T) {
	d := NewDocument("")
	attrs := NewAttributes()
	attrs.Set("class", "x")
	el := d.RegisterNodeAt(d.NewElementNode("b", NamespaceHTML, attrs, bytestream.Location{}), d.RootID, -1)
	d.RegisterNodeAt(d.NewTextNode("child", bytestream.Location{}), el, -1)

	clone := d.ClonedNodeByID(el)
	require.NotNil(t, clone)
	assert.Equal(t, InvalidNodeID, clone.ID)
	assert.Equal(t, InvalidNodeID, clone.ParentID)
	assert.Empty(t, clone.ChildIDs)
	assert.Equal(t, "b", clone.TagName)
	assert.Equal(t, "x", clone.Attr("class"))
}

func TestDocumentAccessors(t *testing.T) {
	d := NewDocument("https://example.com/")
	html := d.RegisterNodeAt(d.NewElementNode("html", NamespaceHTML, nil, bytestream.Location{}), d.RootID, -1)
	head := d.RegisterNodeAt(d.NewElementNode("head", NamespaceHTML, nil, bytestream.Location{}), html, -1)
	title := d.RegisterNodeAt(d.NewElementNode("title", NamespaceHTML, nil, bytestream.Location{}), head, -1)
	d.RegisterNodeAt(d.NewTextNode("Hi", bytestream.Location{}), title, -1)
	d.RegisterNodeAt(d.NewElementNode("body", NamespaceHTML, nil, bytestream.Location{}), html, -1)

	assert.Equal(t, "https://example.com/", d.URL())
	assert.Equal(t, "html", d.DocumentElement().TagName)
	assert.Equal(t, "head", d.Head().TagName)
	assert.Equal(t, "body", d.Body().TagName)
	assert.Equal(t, "Hi", d.Title())
}

func TestQuirksAndDoctypeKind(t *testing.T) {
	d := NewDocument("")
	assert.Equal(t, NoQuirks, d.QuirksMode())
	d.SetQuirksMode(LimitedQuirks)
	assert.Equal(t, LimitedQuirks, d.QuirksMode())

	d.SetDoctypeKind(IframeSrcDoc)
	assert.Equal(t, IframeSrcDoc, d.DoctypeKind())
}
