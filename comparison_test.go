package gosub_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/net/html"

	gosub "github.com/gosub-io/gosub-engine-sub000"
	"github.com/gosub-io/gosub-engine-sub000/dom"
)

// Corpus shared by the oracle comparisons and the benchmarks.
const (
	simpleHTML = `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<div id="main">
<p class="intro">Hello, World!</p>
<ul>
<li>Item 1</li>
<li>Item 2</li>
<li>Item 3</li>
</ul>
</div>
</body>
</html>`

	tableHTML = `<!DOCTYPE html>
<html><body>
<table>
<caption>Numbers</caption>
<tr><th>n</th><th>sq</th></tr>
<tr><td>2</td><td>4</td></tr>
<tr><td>3</td><td>9</td></tr>
</table>
</body></html>`

	misnestedHTML = `<!DOCTYPE html><body><b>1<p>2</b>3</p><a href="/">x<div>y</div></a>`
)

// shape is a minimal structural view shared by both parsers' trees.
type shape struct {
	Tag      string
	Children []shape
}

func shapeOfOurs(doc *dom.Document, id dom.NodeID) []shape {
	n := doc.NodeByID(id)
	if n == nil {
		return nil
	}
	var out []shape
	for _, childID := range n.ChildIDs {
		child := doc.NodeByID(childID)
		if child == nil || child.Type != dom.ElementNodeType {
			continue
		}
		out = append(out, shape{Tag: child.TagName, Children: shapeOfOurs(doc, childID)})
	}
	return out
}

func shapeOfNetHTML(n *html.Node) []shape {
	var out []shape
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		out = append(out, shape{Tag: c.Data, Children: shapeOfNetHTML(c)})
	}
	return out
}

// TestOracleAgreement parses the corpus with this parser and with
// x/net/html and compares the element structure.
func TestOracleAgreement(t *testing.T) {
	for name, input := range map[string]string{
		"simple":    simpleHTML,
		"table":     tableHTML,
		"misnested": misnestedHTML,
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := gosub.Parse(input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			oracle, err := html.Parse(strings.NewReader(input))
			if err != nil {
				t.Fatalf("oracle: %v", err)
			}

			ours := shapeOfOurs(doc, doc.RootID)
			theirs := shapeOfNetHTML(oracle)
			if diff := cmp.Diff(theirs, ours); diff != "" {
				t.Fatalf("structure mismatch (-oracle +ours):\n%s", diff)
			}
		})
	}
}

// TestParseTwiceIsomorphic parses the same input into two fresh documents
// and compares the trees up to NodeID renaming.
func TestParseTwiceIsomorphic(t *testing.T) {
	first, err := gosub.Parse(misnestedHTML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	second, err := gosub.Parse(misnestedHTML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(shapeOfOurs(first, first.RootID), shapeOfOurs(second, second.RootID)); diff != "" {
		t.Fatalf("trees differ between runs:\n%s", diff)
	}
}

func BenchmarkParseSimple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := gosub.Parse(simpleHTML); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNetHTMLParseSimple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := html.Parse(strings.NewReader(simpleHTML)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGoqueryQuery(b *testing.B) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(simpleHTML))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if doc.Find("p.intro").Length() != 1 {
			b.Fatal("query mismatch")
		}
	}
}
