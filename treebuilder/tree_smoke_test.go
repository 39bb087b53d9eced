package treebuilder_test

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/testutil"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
	"github.com/gosub-io/gosub-engine-sub000/treebuilder"
)

func parseDoc(t *testing.T, input string) (*dom.Document, errors.ParseErrors) {
	t.Helper()
	doc := dom.NewDocument("")
	log := errors.NewLogger()
	tok := tokenizer.New(bytestream.NewFromString(input), log)
	tb := treebuilder.New(tok, doc, log, treebuilder.Options{ScriptingEnabled: true})
	tb.Run()
	return doc, log.Errors()
}

func assertTree(t *testing.T, input, want string) {
	t.Helper()
	doc, _ := parseDoc(t, input)
	got := testutil.DumpTree(doc)
	if got != want {
		t.Fatalf("tree mismatch for %q\ngot:\n%s\n\nwant:\n%s", input, got, want)
	}
}

func TestSimpleDocument(t *testing.T) {
	doc, errs := parseDoc(t, "<!doctype html><p>hello</p>")
	want := `| <!DOCTYPE html>
| <html>
|   <head>
|   <body>
|     <p>
|       "hello"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
	if len(errs) != 0 {
		t.Fatalf("parse errors = %v, want none", errs)
	}
	if doc.QuirksMode() != dom.NoQuirks {
		t.Fatalf("quirks = %v, want no-quirks", doc.QuirksMode())
	}
}

func TestEmptyInputBuildsScaffolding(t *testing.T) {
	doc, errs := parseDoc(t, "")
	want := `| <html>
|   <head>
|   <body>`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
	// Only the missing-doctype class of error is acceptable here.
	for _, e := range errs {
		if e.Code != errors.ExpectedDocTypeButGotChars &&
			e.Code != errors.ExpectedDocTypeButGotStartTag &&
			e.Code != errors.ExpectedDocTypeButGotEndTag {
			t.Fatalf("unexpected error %v", e)
		}
	}
	if doc.QuirksMode() != dom.Quirks {
		t.Fatalf("missing doctype should select quirks, got %v", doc.QuirksMode())
	}
}

func TestTbodySynthesized(t *testing.T) {
	assertTree(t, "<table><tr><td>cell</td></tr></table>", `| <html>
|   <head>
|   <body>
|     <table>
|       <tbody>
|         <tr>
|           <td>
|             "cell"`)
}

func TestTemplateContentsSeparate(t *testing.T) {
	doc, _ := parseDoc(t, "<!DOCTYPE html><html><head></head><body><template><div></div></template></body>")

	body := doc.Body()
	if body == nil || len(body.ChildIDs) != 1 {
		t.Fatalf("body children = %v, want one template", body)
	}
	tmpl := doc.NodeByID(body.ChildIDs[0])
	if !tmpl.IsElement(dom.NamespaceHTML, "template") {
		t.Fatalf("child = %s, want template", tmpl.TagName)
	}
	if len(tmpl.ChildIDs) != 0 {
		t.Fatalf("template has %d direct children, want 0", len(tmpl.ChildIDs))
	}
	contents := doc.NodeByID(tmpl.TemplateContentsID)
	if contents == nil || len(contents.ChildIDs) != 1 {
		t.Fatalf("template contents = %v, want one child", contents)
	}
	if div := doc.NodeByID(contents.ChildIDs[0]); !div.IsElement(dom.NamespaceHTML, "div") {
		t.Fatalf("contents child = %s, want div", div.TagName)
	}
}

func TestFosterParenting(t *testing.T) {
	assertTree(t, "<table>x<tr></tr></table>", `| <html>
|   <head>
|   <body>
|     "x"
|     <table>
|       <tbody>
|         <tr>`)
}

func TestHeadBodyImplicitStructure(t *testing.T) {
	assertTree(t, "<title>T</title>text", `| <html>
|   <head>
|     <title>
|       "T"
|   <body>
|     "text"`)
}

func TestCommentPlacement(t *testing.T) {
	assertTree(t, "<!--before--><html><body><!--in--></body></html><!--after-->", `| <!-- before -->
| <html>
|   <head>
|   <body>
|     <!-- in -->
| <!-- after -->`)
}

func TestQuirksFromLegacyPublicID(t *testing.T) {
	doc, _ := parseDoc(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 3.2//EN">x`)
	if doc.QuirksMode() != dom.Quirks {
		t.Fatalf("quirks = %v, want quirks", doc.QuirksMode())
	}

	doc, _ = parseDoc(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN">x`)
	if doc.QuirksMode() != dom.LimitedQuirks {
		t.Fatalf("quirks = %v, want limited-quirks", doc.QuirksMode())
	}
}

func TestSelfClosingNonVoidReported(t *testing.T) {
	_, errs := parseDoc(t, "<div/>x")
	found := false
	for _, e := range errs {
		if e.Code == errors.NonVoidHTMLElementStartTagWithTrailingSolidus {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected trailing-solidus error, got %v", errs)
	}
}

func TestStopParsingLeavesTreeWellFormed(t *testing.T) {
	doc, _ := parseDoc(t, "<div><span>deep")
	body := doc.Body()
	if body == nil {
		t.Fatalf("no body")
	}
	// Every node still satisfies the parent/child invariant.
	var walk func(id dom.NodeID)
	walk = func(id dom.NodeID) {
		n := doc.NodeByID(id)
		for _, child := range n.ChildIDs {
			c := doc.NodeByID(child)
			if c.ParentID != id {
				t.Fatalf("node %d parent = %d, want %d", child, c.ParentID, id)
			}
			walk(child)
		}
	}
	walk(doc.RootID)
}
