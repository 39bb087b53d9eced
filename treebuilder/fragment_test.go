package treebuilder_test

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
	"github.com/gosub-io/gosub-engine-sub000/treebuilder"
)

func parseFragmentWithContext(t *testing.T, input, contextTag string) (*dom.Document, []dom.NodeID) {
	t.Helper()
	doc := dom.NewDocument("")
	context := doc.NewElementNode(contextTag, dom.NamespaceHTML, nil, bytestream.Location{})
	contextID := doc.RegisterNode(context)

	log := errors.NewLogger()
	tok := tokenizer.New(bytestream.NewFromString(input), log)
	tb := treebuilder.NewFragment(tok, doc, log, contextID, treebuilder.Options{ScriptingEnabled: true})
	tb.Run()

	root := doc.NodeByID(tb.FragmentRootID())
	return doc, root.ChildIDs
}

func TestFragmentInTDContext(t *testing.T) {
	doc, children := parseFragmentWithContext(t, "<b>x</b>", "td")

	if len(children) != 1 {
		t.Fatalf("fragment children = %d, want 1", len(children))
	}
	b := doc.NodeByID(children[0])
	if !b.IsElement(dom.NamespaceHTML, "b") {
		t.Fatalf("child = %q, want b", b.TagName)
	}
	if doc.TextContent(b.ID) != "x" {
		t.Fatalf("text = %q, want x", doc.TextContent(b.ID))
	}
}

func TestFragmentInTRContextSynthesizesNothing(t *testing.T) {
	doc, children := parseFragmentWithContext(t, "<td>cell</td>", "tr")

	if len(children) != 1 {
		t.Fatalf("fragment children = %d, want 1", len(children))
	}
	td := doc.NodeByID(children[0])
	if !td.IsElement(dom.NamespaceHTML, "td") {
		t.Fatalf("child = %q, want td", td.TagName)
	}
}

func TestFragmentInDivContextDropsTableParts(t *testing.T) {
	doc, children := parseFragmentWithContext(t, "<td>cell</td>", "div")

	// Stray table cells are dropped; only the text survives.
	if len(children) != 1 {
		t.Fatalf("fragment children = %d, want 1 text node", len(children))
	}
	text := doc.NodeByID(children[0])
	if text.Type != dom.TextNodeType || text.Data != "cell" {
		t.Fatalf("child = %v %q, want text 'cell'", text.Type, text.Data)
	}
}

func TestFragmentTitleContextUsesRCDATA(t *testing.T) {
	doc, children := parseFragmentWithContext(t, "<b>not markup</b>", "title")

	if len(children) != 1 {
		t.Fatalf("fragment children = %d, want 1", len(children))
	}
	text := doc.NodeByID(children[0])
	if text.Type != dom.TextNodeType || text.Data != "<b>not markup</b>" {
		t.Fatalf("title fragment = %v %q, want literal text", text.Type, text.Data)
	}
}

func TestFragmentTemplateContext(t *testing.T) {
	doc := dom.NewDocument("")
	context := doc.NewElementNode("template", dom.NamespaceHTML, nil, bytestream.Location{})
	contextID := doc.RegisterNode(context)

	log := errors.NewLogger()
	tok := tokenizer.New(bytestream.NewFromString("<div>x</div>"), log)
	tb := treebuilder.NewFragment(tok, doc, log, contextID, treebuilder.Options{ScriptingEnabled: true})
	tb.Run()

	root := doc.NodeByID(tb.FragmentRootID())
	if len(root.ChildIDs) != 1 {
		t.Fatalf("children = %d, want 1", len(root.ChildIDs))
	}
	div := doc.NodeByID(root.ChildIDs[0])
	if !div.IsElement(dom.NamespaceHTML, "div") {
		t.Fatalf("child = %q, want div", div.TagName)
	}
}

func TestFragmentFormPointerFromAncestors(t *testing.T) {
	doc := dom.NewDocument("")
	form := doc.RegisterNode(doc.NewElementNode("form", dom.NamespaceHTML, nil, bytestream.Location{}))
	context := doc.NewElementNode("div", dom.NamespaceHTML, nil, bytestream.Location{})
	contextID := doc.RegisterNode(context)
	doc.Attach(contextID, form, -1)

	log := errors.NewLogger()
	tok := tokenizer.New(bytestream.NewFromString("<input name=a>"), log)
	tb := treebuilder.NewFragment(tok, doc, log, contextID, treebuilder.Options{ScriptingEnabled: true})
	tb.Run()

	root := doc.NodeByID(tb.FragmentRootID())
	if len(root.ChildIDs) != 1 {
		t.Fatalf("children = %d, want 1", len(root.ChildIDs))
	}
}

func TestResetInsertionModeIdempotent(t *testing.T) {
	// Parsing the same fragment twice with identical context yields
	// identical trees; the mode reset depends only on the stack.
	_, first := parseFragmentWithContext(t, "<tr><td>a</td></tr>", "tbody")
	_, second := parseFragmentWithContext(t, "<tr><td>a</td></tr>", "tbody")
	if len(first) != len(second) {
		t.Fatalf("children %d vs %d", len(first), len(second))
	}
}
