package treebuilder

import (
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

// useForeignContent decides, per token, whether the foreign-content rules
// apply instead of the current insertion mode. The decision keys on the
// adjusted current node, the integration points, and the token kind.
func (tb *TreeBuilder) useForeignContent(tok tokenizer.Token) bool {
	if len(tb.openElements) == 0 {
		return false
	}
	current := tb.adjustedCurrentNode()
	if current == nil || current.Namespace == dom.NamespaceHTML {
		return false
	}
	if tok.Kind == tokenizer.EOF {
		return false
	}

	if tb.isMathMLTextIntegrationPoint(current) {
		if tok.Kind == tokenizer.Text {
			return false
		}
		if tok.Kind == tokenizer.StartTag && tok.Name != "mglyph" && tok.Name != "malignmark" {
			return false
		}
	}

	if current.Namespace == dom.NamespaceMathML && strings.EqualFold(current.TagName, "annotation-xml") {
		if tok.Kind == tokenizer.StartTag && tok.Name == "svg" {
			return false
		}
	}

	if tb.isHTMLIntegrationPoint(current) {
		if tok.Kind == tokenizer.Text || tok.Kind == tokenizer.StartTag {
			return false
		}
	}

	return true
}

// processForeignContent handles a token under the foreign-content rules.
// Returns true when the token must be reprocessed by the HTML rules.
func (tb *TreeBuilder) processForeignContent(tok tokenizer.Token) bool {
	current := tb.adjustedCurrentNode()
	if current == nil {
		return false
	}

	switch tok.Kind {
	case tokenizer.Text:
		if tok.Data == "" {
			return false
		}
		data := strings.ReplaceAll(tok.Data, "\x00", "�")
		if !isAllWhitespace(data) {
			tb.framesetOK = false
		}
		tb.insertText(data, tok.Location)
		return false

	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false

	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false

	case tokenizer.StartTag:
		if constants.ForeignBreakoutElements[tok.Name] || (tok.Name == "font" && fontHasBreakoutAttrs(tok.Attrs)) {
			tb.popUntilHTMLOrIntegrationPoint()
			tb.resetInsertionMode()
			tb.forceHTMLMode = true
			return true
		}

		namespace := current.Namespace
		name := tok.Name
		if namespace == dom.NamespaceSVG {
			if adjusted, ok := constants.SVGTagNameAdjustments[strings.ToLower(name)]; ok {
				name = adjusted
			}
		}
		attrs := adjustForeignAttributes(namespace, tok.Attrs)
		tb.insertElementNS(name, namespace, attrs, tok.Location, tok.SelfClosing)
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		return false

	case tokenizer.EndTag:
		if tok.Name == "br" || tok.Name == "p" {
			tb.popUntilHTMLOrIntegrationPoint()
			tb.resetInsertionMode()
			tb.forceHTMLMode = true
			return true
		}

		// Walk the stack for a case-insensitive match; an HTML element on
		// the way hands the token back to the insertion modes.
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			n := tb.node(tb.openElements[i])
			if n == nil {
				continue
			}
			isHTML := n.Namespace == dom.NamespaceHTML

			if strings.EqualFold(n.TagName, tok.Name) {
				if tb.fragmentContextID != dom.InvalidNodeID && n.ID == tb.fragmentContextID {
					return false
				}
				if isHTML {
					tb.forceHTMLMode = true
					return true
				}
				tb.openElements = tb.openElements[:i]
				return false
			}
			if isHTML {
				tb.forceHTMLMode = true
				return true
			}
		}
		return false

	default:
		return false
	}
}

func (tb *TreeBuilder) popUntilHTMLOrIntegrationPoint() {
	for len(tb.openElements) > 0 {
		n := tb.currentElement()
		if n == nil {
			return
		}
		if n.Namespace == dom.NamespaceHTML {
			return
		}
		if tb.isHTMLIntegrationPoint(n) || tb.isMathMLTextIntegrationPoint(n) {
			return
		}
		tb.popCurrent()
	}
}

func (tb *TreeBuilder) isHTMLIntegrationPoint(n *dom.Node) bool {
	if n == nil {
		return false
	}
	// annotation-xml qualifies only with an HTML-ish encoding attribute.
	if n.Namespace == dom.NamespaceMathML && n.TagName == "annotation-xml" {
		if enc, ok := n.Attributes.Get("encoding"); ok {
			switch strings.ToLower(enc) {
			case "text/html", "application/xhtml+xml":
				return true
			}
		}
		return false
	}
	ip := constants.IntegrationPoint{Namespace: n.Namespace, LocalName: n.TagName}
	return constants.HTMLIntegrationPoints[ip]
}

func (tb *TreeBuilder) isMathMLTextIntegrationPoint(n *dom.Node) bool {
	if n == nil {
		return false
	}
	ip := constants.IntegrationPoint{Namespace: n.Namespace, LocalName: n.TagName}
	return constants.MathMLTextIntegrationPoints[ip]
}

func fontHasBreakoutAttrs(attrs []tokenizer.Attr) bool {
	for _, a := range attrs {
		switch strings.ToLower(a.Name) {
		case "color", "face", "size":
			return true
		}
	}
	return false
}

// adjustForeignAttributes applies the MathML/SVG case fixups and the
// xlink/xml/xmlns namespace adjustments.
func adjustForeignAttributes(namespace string, attrs []tokenizer.Attr) *dom.Attributes {
	out := dom.NewAttributes()
	for _, a := range attrs {
		lower := strings.ToLower(a.Name)
		name := a.Name

		switch namespace {
		case dom.NamespaceMathML:
			if adjusted, ok := constants.MathMLAttributeAdjustments[lower]; ok {
				name = adjusted
				lower = strings.ToLower(name)
			}
		case dom.NamespaceSVG:
			if adjusted, ok := constants.SVGAttributeAdjustments[lower]; ok {
				name = adjusted
				lower = strings.ToLower(name)
			}
		}

		if foreign, ok := constants.ForeignAttributeAdjustments[lower]; ok {
			adjustedName := foreign.LocalName
			if foreign.Prefix != "" {
				adjustedName = foreign.Prefix + ":" + foreign.LocalName
			}
			out.SetNS(foreign.NamespaceURL, adjustedName, a.Value)
			continue
		}
		out.SetNS("", name, a.Value)
	}
	return out
}
