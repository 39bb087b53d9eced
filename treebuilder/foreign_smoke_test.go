package treebuilder_test

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/internal/testutil"
)

func TestForeignObjectNamespaceAlternation(t *testing.T) {
	doc, _ := parseDoc(t, "<svg><g><foreignObject><p>x</p></foreignObject></g></svg>")

	want := `| <html>
|   <head>
|   <body>
|     <svg svg>
|       <svg g>
|         <svg foreignObject>
|           <p>
|             "x"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}

	// Verify the namespaces directly.
	body := doc.Body()
	svg := doc.NodeByID(body.ChildIDs[0])
	if svg.Namespace != dom.NamespaceSVG {
		t.Fatalf("svg namespace = %q", svg.Namespace)
	}
	g := doc.NodeByID(svg.ChildIDs[0])
	fo := doc.NodeByID(g.ChildIDs[0])
	if fo.TagName != "foreignObject" || fo.Namespace != dom.NamespaceSVG {
		t.Fatalf("foreignObject = %q ns %q", fo.TagName, fo.Namespace)
	}
	p := doc.NodeByID(fo.ChildIDs[0])
	if p.Namespace != dom.NamespaceHTML {
		t.Fatalf("p namespace = %q, want HTML", p.Namespace)
	}
}

func TestSVGTagNameAdjustment(t *testing.T) {
	doc, _ := parseDoc(t, "<svg><lineargradient></lineargradient></svg>")
	body := doc.Body()
	svg := doc.NodeByID(body.ChildIDs[0])
	grad := doc.NodeByID(svg.ChildIDs[0])
	if grad.TagName != "linearGradient" {
		t.Fatalf("tag = %q, want linearGradient", grad.TagName)
	}
}

func TestForeignBreakout(t *testing.T) {
	doc, _ := parseDoc(t, "<svg><circle></circle><div>html</div>")

	want := `| <html>
|   <head>
|   <body>
|     <svg svg>
|       <svg circle>
|     <div>
|       "html"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestMathMLTextIntegrationPoint(t *testing.T) {
	doc, _ := parseDoc(t, "<math><mi>x</mi></math>")
	body := doc.Body()
	math := doc.NodeByID(body.ChildIDs[0])
	if math.Namespace != dom.NamespaceMathML {
		t.Fatalf("math namespace = %q", math.Namespace)
	}
	mi := doc.NodeByID(math.ChildIDs[0])
	if mi.TagName != "mi" || mi.Namespace != dom.NamespaceMathML {
		t.Fatalf("mi = %q ns %q", mi.TagName, mi.Namespace)
	}
	if doc.TextContent(mi.ID) != "x" {
		t.Fatalf("mi text = %q", doc.TextContent(mi.ID))
	}
}

func TestForeignAttributeAdjustment(t *testing.T) {
	doc, _ := parseDoc(t, `<svg xlink:href="#a"></svg>`)
	body := doc.Body()
	svg := doc.NodeByID(body.ChildIDs[0])
	if v, ok := svg.Attributes.GetNS("http://www.w3.org/1999/xlink", "xlink:href"); !ok || v != "#a" {
		t.Fatalf("xlink:href = %q ok=%v", v, ok)
	}
}

func TestAnnotationXMLEncodingIntegrationPoint(t *testing.T) {
	doc, _ := parseDoc(t, `<math><annotation-xml encoding="text/html"><p>x</p></annotation-xml></math>`)
	body := doc.Body()
	math := doc.NodeByID(body.ChildIDs[0])
	ann := doc.NodeByID(math.ChildIDs[0])
	p := doc.NodeByID(ann.ChildIDs[0])
	if p.Namespace != dom.NamespaceHTML || p.TagName != "p" {
		t.Fatalf("annotation-xml child = %q ns %q, want HTML p", p.TagName, p.Namespace)
	}
}
