package treebuilder

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

func newTBWithStack(t *testing.T, tags ...string) *TreeBuilder {
	t.Helper()
	doc := dom.NewDocument("")
	log := errors.NewLogger()
	tok := tokenizer.New(bytestream.NewFromString(""), log)
	tb := New(tok, doc, log, Options{ScriptingEnabled: true})

	parent := doc.RootID
	for _, tag := range tags {
		node := doc.NewElementNode(tag, dom.NamespaceHTML, nil, bytestream.Location{})
		id := doc.RegisterNodeAt(node, parent, -1)
		tb.push(id)
		parent = id
	}
	return tb
}

func (tb *TreeBuilder) pushForeign(t *testing.T, tag, namespace string) {
	t.Helper()
	node := tb.doc.NewElementNode(tag, namespace, nil, bytestream.Location{})
	id := tb.doc.RegisterNodeAt(node, tb.currentNodeID(), -1)
	tb.push(id)
}

func TestScopeTerminatorsStopSearch(t *testing.T) {
	tb := newTBWithStack(t, "html", "body", "table")
	if tb.hasElementInScope("body", constants.DefaultScope) {
		t.Fatalf("hasElementInScope(body) = true, want false (table terminates default scope)")
	}
	if !tb.hasElementInScope("table", constants.DefaultScope) {
		t.Fatalf("hasElementInScope(table) = false, want true")
	}
}

func TestIntegrationPointTerminatesScope(t *testing.T) {
	tb := newTBWithStack(t, "html")
	tb.pushForeign(t, "foreignObject", dom.NamespaceSVG)

	if tb.hasElementInScope("html", constants.DefaultScope) {
		t.Fatalf("integration point must terminate the default scope")
	}
	if !tb.hasElementInTableScope("html") {
		t.Fatalf("table scope ignores integration points")
	}
}

func TestSelectScopeInverted(t *testing.T) {
	tb := newTBWithStack(t, "html", "body", "select", "optgroup", "option")
	if !tb.hasElementInSelectScope("select") {
		t.Fatalf("select should be in select scope through optgroup/option")
	}

	tb = newTBWithStack(t, "html", "body", "select", "div")
	if tb.hasElementInSelectScope("select") {
		t.Fatalf("div must terminate select scope")
	}
}

func TestGenerateImpliedEndTags(t *testing.T) {
	tb := newTBWithStack(t, "html", "body", "p", "li", "dt")
	tb.generateImpliedEndTags("")
	if got := tb.currentElement(); got == nil || got.TagName != "body" {
		t.Fatalf("currentElement = %v, want body", got)
	}

	tb = newTBWithStack(t, "html", "body", "p", "li", "dt")
	tb.generateImpliedEndTags("p")
	if got := tb.currentElement(); got == nil || got.TagName != "p" {
		t.Fatalf("currentElement = %v, want p", got)
	}
}

func TestResetInsertionMode(t *testing.T) {
	tests := []struct {
		stack []string
		want  InsertionMode
	}{
		{[]string{"html", "body", "table", "tbody", "tr", "td"}, InCell},
		{[]string{"html", "body", "table", "colgroup"}, InColumnGroup},
		{[]string{"html", "body", "table", "tbody", "tr"}, InRow},
		{[]string{"html", "body", "table"}, InTable},
		{[]string{"html", "body", "select"}, InSelect},
		{[]string{"html", "body", "table", "tbody", "tr", "td", "select"}, InSelectInTable},
		{[]string{"html", "frameset"}, InFrameset},
		{[]string{"html", "body", "div"}, InBody},
	}
	for _, tt := range tests {
		tb := newTBWithStack(t, tt.stack...)
		tb.resetInsertionMode()
		if tb.mode != tt.want {
			t.Fatalf("stack %v: mode = %v, want %v", tt.stack, tb.mode, tt.want)
		}
	}
}

func TestResetInsertionModeIdempotentOnStableStack(t *testing.T) {
	tb := newTBWithStack(t, "html", "body", "table", "tbody")
	tb.resetInsertionMode()
	first := tb.mode
	tb.resetInsertionMode()
	if tb.mode != first {
		t.Fatalf("mode changed on stable stack: %v -> %v", first, tb.mode)
	}
}

func TestFormattingMarkers(t *testing.T) {
	tb := newTBWithStack(t, "html", "body")
	tb.pushFormattingElement("b", nil, tb.currentNodeID())
	tb.pushFormattingMarker()
	tb.pushFormattingElement("i", nil, tb.currentNodeID())

	tb.clearFormattingUpToMarker()
	if len(tb.activeFormatting) != 1 {
		t.Fatalf("formatting entries = %d, want 1", len(tb.activeFormatting))
	}
	if tb.activeFormatting[0].name != "b" {
		t.Fatalf("surviving entry = %q, want b", tb.activeFormatting[0].name)
	}
}

func TestNoahsArkDropsEarliest(t *testing.T) {
	tb := newTBWithStack(t, "html", "body")
	attrs := []tokenizer.Attr{{Name: "class", Value: "x"}}

	ids := make([]dom.NodeID, 4)
	for i := range ids {
		node := tb.doc.NewElementNode("font", dom.NamespaceHTML, nil, bytestream.Location{})
		ids[i] = tb.doc.RegisterNode(node)
		tb.pushFormattingElement("font", attrs, ids[i])
	}

	if len(tb.activeFormatting) != 3 {
		t.Fatalf("entries = %d, want 3 (earliest dropped)", len(tb.activeFormatting))
	}
	if tb.activeFormatting[0].nodeID == ids[0] {
		t.Fatalf("earliest entry should have been dropped")
	}
}

func TestNoahsArkDifferentAttrsKept(t *testing.T) {
	tb := newTBWithStack(t, "html", "body")
	for i := 0; i < 4; i++ {
		attrs := []tokenizer.Attr{{Name: "class", Value: string(rune('a' + i))}}
		node := tb.doc.NewElementNode("font", dom.NamespaceHTML, nil, bytestream.Location{})
		tb.pushFormattingElement("font", attrs, tb.doc.RegisterNode(node))
	}
	if len(tb.activeFormatting) != 4 {
		t.Fatalf("entries = %d, want 4 (different attrs are not identical)", len(tb.activeFormatting))
	}
}

func TestAnyOtherEndTagStopsAtSpecial(t *testing.T) {
	tb := newTBWithStack(t, "html", "body", "span", "div")
	tb.anyOtherEndTag(tokenizer.Token{Kind: tokenizer.EndTag, Name: "span"})
	// div is special: the walk stops there and nothing is popped.
	if got := tb.currentElement(); got == nil || got.TagName != "div" {
		t.Fatalf("currentElement = %v, want div untouched", got)
	}
}
