package gosub_test

import (
	"testing"

	gosub "github.com/gosub-io/gosub-engine-sub000"
	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
)

func TestParse(t *testing.T) {
	doc, err := gosub.Parse("<html><head><title>Hi</title></head><body><p>Hello!</p></body></html>")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.Title() != "Hi" {
		t.Fatalf("title = %q, want Hi", doc.Title())
	}
	body := doc.Body()
	if body == nil || len(body.ChildIDs) != 1 {
		t.Fatalf("body = %v", body)
	}
}

func TestParseDocumentReturnsErrors(t *testing.T) {
	doc := dom.NewDocument("")
	stream := bytestream.NewFromString(`<div a="1" a="2">x`)
	parseErrs, err := gosub.ParseDocument(stream, doc)
	if err != nil {
		t.Fatalf("hard error: %v", err)
	}
	found := false
	for _, e := range parseErrs {
		if e.Code == errors.DuplicateAttribute {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate-attribute in %v", parseErrs)
	}
	if doc.Body() == nil {
		t.Fatalf("tree not built despite errors")
	}
}

func TestParseCollectErrors(t *testing.T) {
	_, err := gosub.Parse("<p>x", gosub.WithCollectErrors())
	if err == nil {
		t.Fatalf("expected collected parse errors")
	}
	var parseErrs errors.ParseErrors
	if !errorsAs(err, &parseErrs) {
		t.Fatalf("err = %T, want ParseErrors", err)
	}
}

func errorsAs(err error, target *errors.ParseErrors) bool {
	pe, ok := err.(errors.ParseErrors)
	if ok {
		*target = pe
	}
	return ok
}

func TestParseBytesDetectsEncoding(t *testing.T) {
	input := []byte(`<meta charset="utf-8"><p>héllo</p>`)
	doc, err := gosub.ParseBytes(input)
	if err != nil {
		t.Fatalf("ParseBytes error: %v", err)
	}
	body := doc.Body()
	if body == nil {
		t.Fatalf("no body")
	}
	p := doc.NodeByID(body.ChildIDs[0])
	if got := doc.TextContent(p.ID); got != "héllo" {
		t.Fatalf("text = %q, want héllo", got)
	}
}

func TestParseFragmentString(t *testing.T) {
	doc, nodes, err := gosub.ParseFragmentString("<td>Cell</td>", "tr")
	if err != nil {
		t.Fatalf("fragment error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(nodes))
	}
	td := doc.NodeByID(nodes[0])
	if !td.IsElement(dom.NamespaceHTML, "td") {
		t.Fatalf("node = %q, want td", td.TagName)
	}
}

func TestScriptingDisabledNoscript(t *testing.T) {
	doc, err := gosub.Parse("<noscript><p>shown</p></noscript>", gosub.WithScripting(false))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	// With scripting off, noscript contents parse as markup.
	found := false
	var walk func(id dom.NodeID)
	walk = func(id dom.NodeID) {
		n := doc.NodeByID(id)
		if n == nil {
			return
		}
		if n.IsElement(dom.NamespaceHTML, "p") {
			found = true
		}
		for _, c := range n.ChildIDs {
			walk(c)
		}
	}
	walk(doc.RootID)
	if !found {
		t.Fatalf("noscript contents were not parsed as markup")
	}
}

func TestIframeSrcdocNeverQuirks(t *testing.T) {
	doc, err := gosub.Parse("<p>x", gosub.WithIframeSrcdoc())
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if doc.QuirksMode() != dom.NoQuirks {
		t.Fatalf("srcdoc quirks = %v, want no-quirks", doc.QuirksMode())
	}
	if doc.DoctypeKind() != dom.IframeSrcDoc {
		t.Fatalf("kind = %v, want IframeSrcDoc", doc.DoctypeKind())
	}
}

func TestLineEndingNormalization(t *testing.T) {
	for _, input := range []string{"<pre>a\r\nb</pre>", "<pre>a\rb</pre>", "<pre>a\nb</pre>"} {
		doc, err := gosub.Parse(input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		body := doc.Body()
		pre := doc.NodeByID(body.ChildIDs[0])
		if got := doc.TextContent(pre.ID); got != "a\nb" {
			t.Fatalf("%q -> %q, want a\\nb", input, got)
		}
	}
}
