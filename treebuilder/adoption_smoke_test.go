package treebuilder_test

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/internal/testutil"
)

func TestAdoptionAgency_B_P_Misnesting(t *testing.T) {
	doc, _ := parseDoc(t, "<b>1<p>2</b>3</p>")

	want := `| <html>
|   <head>
|   <body>
|     <b>
|       "1"
|     <p>
|       <b>
|         "2"
|       "3"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestAdoptionAgency_A_P_Misnesting(t *testing.T) {
	doc, _ := parseDoc(t, "<a><p></a></p>")

	want := `| <html>
|   <head>
|   <body>
|     <a>
|     <p>
|       <a>`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestAdoptionAgency_NestedAnchors(t *testing.T) {
	doc, _ := parseDoc(t, "<a><p>X<a>Y</a>Z</p></a>")

	want := `| <html>
|   <head>
|   <body>
|     <a>
|     <p>
|       <a>
|         "X"
|       <a>
|         "Y"
|       "Z"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestAdoptionAgency_FormattingReconstruction(t *testing.T) {
	doc, _ := parseDoc(t, "<b>bold<i>both</b>italic</i>")

	want := `| <html>
|   <head>
|   <body>
|     <b>
|       "bold"
|       <i>
|         "both"
|     <i>
|       "italic"`
	if got := testutil.DumpTree(doc); got != want {
		t.Fatalf("tree mismatch\ngot:\n%s\n\nwant:\n%s", got, want)
	}
}

func TestAdoptionAgencyTerminates(t *testing.T) {
	// Pathological nesting stays bounded by the 8x3 iteration caps.
	input := "<b><b><b><b><b><b><b><b><b><b><p>x</b></b></b></b></b></b></b></b></b></b></p>"
	doc, _ := parseDoc(t, input)
	if doc.Body() == nil {
		t.Fatalf("no body built")
	}
}

func TestNoahsArkClause(t *testing.T) {
	// Four identical <font> entries: reconstruction keeps at most three.
	doc, _ := parseDoc(t, `<p><font size=1></p><p><font size=1></p><p><font size=1></p><p><font size=1></p><p>x`)
	body := doc.Body()
	if body == nil {
		t.Fatalf("no body")
	}
	last := doc.NodeByID(body.ChildIDs[len(body.ChildIDs)-1])
	depth := 0
	for n := last; n != nil && len(n.ChildIDs) > 0; {
		child := doc.NodeByID(n.ChildIDs[0])
		if child.TagName == "font" {
			depth++
		}
		n = child
	}
	if depth > 3 {
		t.Fatalf("reconstructed %d nested fonts, want at most 3", depth)
	}
}
