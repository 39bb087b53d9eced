package treebuilder

import (
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

// Each handler processes one token under its insertion mode and returns
// whether the same token must be reprocessed against the updated mode.

func (tb *TreeBuilder) processInitial(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return false
		}
		tb.errorAt(errors.ExpectedDocTypeButGotChars, tok.Location)
	case tokenizer.Comment:
		tb.insertCommentAt(tok.Data, tok.Location, tb.doc.RootID)
		return false
	case tokenizer.DOCTYPE:
		node := tb.doc.NewDoctypeNode(tok.Name, ptrToString(tok.PublicID), ptrToString(tok.SystemID), tok.Location)
		tb.doc.RegisterNodeAt(node, tb.doc.RootID, -1)
		parseError, mode := tb.quirksFromDoctype(tok.Name, tok.PublicID, tok.SystemID, tok.ForceQuirks)
		if parseError {
			tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		}
		tb.doc.SetQuirksMode(mode)
		tb.setMode(BeforeHTML)
		return false
	case tokenizer.StartTag:
		tb.errorAt(errors.ExpectedDocTypeButGotStartTag, tok.Location)
	case tokenizer.EndTag:
		tb.errorAt(errors.ExpectedDocTypeButGotEndTag, tok.Location)
	}

	if !tb.iframeSrcdoc {
		tb.doc.SetQuirksMode(dom.Quirks)
	}
	tb.setMode(BeforeHTML)
	return true
}

func (tb *TreeBuilder) processBeforeHTML(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.Comment:
		tb.insertCommentAt(tok.Data, tok.Location, tb.doc.RootID)
		return false
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return false
		}
	case tokenizer.StartTag:
		if tok.Name == "html" {
			node := tb.doc.NewElementNode("html", dom.NamespaceHTML, htmlAttrs(tok.Attrs), tok.Location)
			id := tb.doc.RegisterNodeAt(node, tb.doc.RootID, -1)
			tb.push(id)
			tb.setMode(BeforeHead)
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "head", "body", "html", "br":
			// Fall through to implicit root creation.
		default:
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}

	node := tb.doc.NewElementNode("html", dom.NamespaceHTML, nil, tok.Location)
	id := tb.doc.RegisterNodeAt(node, tb.doc.RootID, -1)
	tb.push(id)
	tb.setMode(BeforeHead)
	return true
}

func (tb *TreeBuilder) processBeforeHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return false
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "head":
			tb.headElementID = tb.insertElement("head", tok.Attrs, tok.Location)
			tb.setMode(InHead)
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "head", "body", "html", "br":
			// Implicit head, reprocess.
		default:
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}

	tb.headElementID = tb.insertElement("head", nil, tok.Location)
	tb.setMode(InHead)
	return true
}

func (tb *TreeBuilder) processInHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			tb.insertText(tok.Data, tok.Location)
			return false
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "base", "basefont", "bgsound", "link":
			id := tb.insertElement(tok.Name, tok.Attrs, tok.Location)
			tb.popCurrent()
			if tok.SelfClosing {
				tb.tok.AcknowledgeSelfClosing()
			}
			if tok.Name == "link" {
				tb.maybeLoadLinkedStylesheet(id)
			}
			return false
		case "meta":
			tb.insertElement("meta", tok.Attrs, tok.Location)
			tb.popCurrent()
			if tok.SelfClosing {
				tb.tok.AcknowledgeSelfClosing()
			}
			// Encoding changes from <meta charset> happen in the sniffing
			// pass; a Tentative stream would be reset and re-decoded there.
			return false
		case "title":
			tb.insertElement("title", tok.Attrs, tok.Location)
			tb.originalMode = tb.mode
			tb.setMode(Text)
			tb.tok.SetState(tokenizer.RCDATAState)
			return false
		case "noscript":
			if !tb.scriptingEnabled {
				tb.insertElement("noscript", tok.Attrs, tok.Location)
				tb.setMode(InHeadNoscript)
				return false
			}
			tb.insertElement("noscript", tok.Attrs, tok.Location)
			tb.originalMode = tb.mode
			tb.setMode(Text)
			tb.tok.SetState(tokenizer.RAWTEXTState)
			return false
		case "noframes", "style":
			tb.insertElement(tok.Name, tok.Attrs, tok.Location)
			tb.originalMode = tb.mode
			tb.setMode(Text)
			tb.tok.SetState(tokenizer.RAWTEXTState)
			return false
		case "script":
			tb.insertElement("script", tok.Attrs, tok.Location)
			tb.originalMode = tb.mode
			tb.setMode(Text)
			tb.tok.SetState(tokenizer.ScriptDataState)
			return false
		case "template":
			tb.insertElement("template", tok.Attrs, tok.Location)
			tb.pushFormattingMarker()
			tb.framesetOK = false
			tb.setMode(InTemplate)
			tb.templateModes = append(tb.templateModes, InTemplate)
			return false
		case "head":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "head":
			tb.popUntil("head")
			tb.setMode(AfterHead)
			return false
		case "body", "html", "br":
			// Act as "anything else".
		case "template":
			return tb.closeTemplate(tok)
		default:
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}

	tb.popUntil("head")
	tb.setMode(AfterHead)
	return true
}

// closeTemplate implements the </template> arm shared by several modes.
func (tb *TreeBuilder) closeTemplate(tok tokenizer.Token) bool {
	if !tb.elementInStack("template") {
		tb.errorAt(errors.StrayEndTag, tok.Location)
		return false
	}
	tb.generateImpliedEndTagsThoroughly()
	if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "template") {
		tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
	}
	tb.popUntil("template")
	tb.clearFormattingUpToMarker()
	if len(tb.templateModes) > 0 {
		tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
	}
	tb.resetInsertionMode()
	return false
}

func (tb *TreeBuilder) processInHeadNoscript(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return tb.processInHead(tok)
		}
	case tokenizer.Comment:
		return tb.processInHead(tok)
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "basefont", "bgsound", "link", "meta", "noframes", "style":
			return tb.processInHead(tok)
		case "head", "noscript":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "noscript":
			tb.popUntil("noscript")
			tb.setMode(InHead)
			return false
		case "br":
			// Anything-else path below.
		default:
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}

	tb.errorAt(errors.StrayStartTag, tok.Location)
	tb.popUntil("noscript")
	tb.setMode(InHead)
	return true
}

func (tb *TreeBuilder) processAfterHead(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			tb.insertText(tok.Data, tok.Location)
			return false
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "body":
			tb.insertElement("body", tok.Attrs, tok.Location)
			tb.framesetOK = false
			tb.setMode(InBody)
			return false
		case "frameset":
			tb.insertElement("frameset", tok.Attrs, tok.Location)
			tb.setMode(InFrameset)
			return false
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			// Re-enter the head briefly for stragglers.
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if tb.headElementID != dom.InvalidNodeID {
				tb.push(tb.headElementID)
				reprocess := tb.processInHead(tok)
				tb.removeFromOpenElements(tb.headElementID)
				return reprocess
			}
			return false
		case "head":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "template":
			return tb.processInHead(tok)
		case "body", "html", "br":
			// Anything-else path.
		default:
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}

	tb.insertElement("body", nil, tok.Location)
	tb.setMode(InBody)
	return true
}

func (tb *TreeBuilder) processText(tok tokenizer.Token) bool {
	skipLF := tb.skipLeadingLF
	tb.skipLeadingLF = false

	switch tok.Kind {
	case tokenizer.Text:
		if skipLF {
			tok.Data = strings.TrimPrefix(tok.Data, "\n")
			if tok.Data == "" {
				return false
			}
		}
		tb.insertText(tok.Data, tok.Location)
		return false
	case tokenizer.EndTag:
		closed := tb.currentNodeID()
		tb.popCurrent()
		tb.setMode(tb.originalMode)
		tb.tok.SetState(tokenizer.DataState)
		if tok.Name == "style" {
			tb.handleInlineStylesheet(closed)
		}
		return false
	case tokenizer.EOF:
		// Script elements would re-run here; the core just closes up.
		tb.popCurrent()
		tb.setMode(tb.originalMode)
		tb.tok.SetState(tokenizer.DataState)
		return true
	default:
		return false
	}
}

//nolint:gocyclo // the in-body arm is the largest dispatch in WHATWG tree construction
func (tb *TreeBuilder) processInBody(tok tokenizer.Token) bool {
	if tb.skipLeadingLF {
		tb.skipLeadingLF = false
		if tok.Kind == tokenizer.Text && strings.HasPrefix(tok.Data, "\n") {
			tok.Data = tok.Data[1:]
			if tok.Data == "" {
				return false
			}
		}
	}

	switch tok.Kind {
	case tokenizer.Text:
		// Null characters are dropped here; split mixed tokens first so
		// the remainder is homogeneous.
		if strings.ContainsRune(tok.Data, 0) {
			parts := tokenizer.SplitTextNull(tok)
			if len(parts) > 1 {
				tb.tok.InsertTokensAtQueueStart(parts)
				return false
			}
			tb.errorAt(errors.UnexpectedNullCharacter, tok.Location)
			return false
		}
		tb.reconstructActiveFormattingElements()
		if !tok.IsWhitespaceOnly() {
			tb.framesetOK = false
		}
		tb.insertText(tok.Data, tok.Location)
		return false

	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false

	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false

	case tokenizer.StartTag:
		return tb.processInBodyStartTag(tok)

	case tokenizer.EndTag:
		return tb.processInBodyEndTag(tok)

	case tokenizer.EOF:
		if len(tb.templateModes) > 0 {
			return tb.processInTemplate(tok)
		}
		tb.StopParsing()
		return false
	}
	return false
}

//nolint:gocyclo // mirrors the WHATWG tag dispatch
func (tb *TreeBuilder) processInBodyStartTag(tok tokenizer.Token) bool {
	switch tok.Name {
	case "html":
		tb.errorAt(errors.StrayStartTag, tok.Location)
		if tb.elementInStack("template") {
			return false
		}
		if len(tb.openElements) > 0 {
			tb.addMissingAttributes(tb.openElements[0], tok.Attrs)
		}
		return false

	case "base", "basefont", "bgsound", "link", "meta", "noframes",
		"script", "style", "template", "title":
		return tb.processInHead(tok)

	case "body":
		tb.errorAt(errors.StrayStartTag, tok.Location)
		if len(tb.openElements) < 2 || tb.elementInStack("template") {
			return false
		}
		if body := tb.node(tb.openElements[1]); body != nil && body.IsElement(dom.NamespaceHTML, "body") {
			tb.framesetOK = false
			tb.addMissingAttributes(body.ID, tok.Attrs)
		}
		return false

	case "frameset":
		tb.errorAt(errors.StrayStartTag, tok.Location)
		if !tb.framesetOK || len(tb.openElements) < 2 {
			return false
		}
		body := tb.node(tb.openElements[1])
		if body == nil || !body.IsElement(dom.NamespaceHTML, "body") {
			return false
		}
		tb.doc.Detach(body.ID)
		tb.openElements = tb.openElements[:1]
		tb.insertElement("frameset", tok.Attrs, tok.Location)
		tb.setMode(InFrameset)
		return false

	case "address", "article", "aside", "blockquote", "center", "details",
		"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure",
		"footer", "header", "hgroup", "main", "menu", "nav", "ol",
		"search", "section", "summary", "ul":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		if cur := tb.currentElement(); cur != nil && cur.Namespace == dom.NamespaceHTML && isHeading(cur.TagName) {
			tb.errorAt(errors.StrayStartTag, tok.Location)
			tb.popCurrent()
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "pre", "listing":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		tb.skipLeadingLF = true
		tb.framesetOK = false
		return false

	case "form":
		if tb.formElementID != dom.InvalidNodeID && !tb.elementInStack("template") {
			tb.errorAt(errors.StrayStartTag, tok.Location)
			return false
		}
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		id := tb.insertElement("form", tok.Attrs, tok.Location)
		if !tb.elementInStack("template") {
			tb.formElementID = id
		}
		return false

	case "li":
		tb.framesetOK = false
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			n := tb.node(tb.openElements[i])
			if n == nil {
				continue
			}
			if n.IsElement(dom.NamespaceHTML, "li") {
				tb.generateImpliedEndTags("li")
				tb.popUntil("li")
				break
			}
			if isSpecial(n) && !n.IsElement(dom.NamespaceHTML, "address") &&
				!n.IsElement(dom.NamespaceHTML, "div") && !n.IsElement(dom.NamespaceHTML, "p") {
				break
			}
		}
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement("li", tok.Attrs, tok.Location)
		return false

	case "dd", "dt":
		tb.framesetOK = false
		for i := len(tb.openElements) - 1; i >= 0; i-- {
			n := tb.node(tb.openElements[i])
			if n == nil {
				continue
			}
			if n.IsElement(dom.NamespaceHTML, "dd") || n.IsElement(dom.NamespaceHTML, "dt") {
				tb.generateImpliedEndTags(n.TagName)
				tb.popUntil(n.TagName)
				break
			}
			if isSpecial(n) && !n.IsElement(dom.NamespaceHTML, "address") &&
				!n.IsElement(dom.NamespaceHTML, "div") && !n.IsElement(dom.NamespaceHTML, "p") {
				break
			}
		}
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "plaintext":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement("plaintext", tok.Attrs, tok.Location)
		tb.tok.SetState(tokenizer.PLAINTEXTState)
		return false

	case "button":
		if tb.hasElementInScope("button", constants.DefaultScope) {
			tb.errorAt(errors.StrayStartTag, tok.Location)
			tb.generateImpliedEndTags("")
			tb.popUntil("button")
		}
		tb.reconstructActiveFormattingElements()
		tb.insertElement("button", tok.Attrs, tok.Location)
		tb.framesetOK = false
		return false

	case "p":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement("p", tok.Attrs, tok.Location)
		return false

	case "a":
		if tb.hasFormattingEntry("a") {
			tb.errorAt(errors.StrayStartTag, tok.Location)
			tb.adoptionAgency("a")
			tb.removeLastFormattingByName("a")
			tb.removeLastOpenElementByName("a")
		}
		tb.reconstructActiveFormattingElements()
		id := tb.insertElement("a", tok.Attrs, tok.Location)
		tb.pushFormattingElement("a", tok.Attrs, id)
		tb.framesetOK = false
		return false

	case "b", "big", "code", "em", "font", "i", "s", "small", "strike",
		"strong", "tt", "u":
		tb.reconstructActiveFormattingElements()
		id := tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		tb.pushFormattingElement(tok.Name, tok.Attrs, id)
		tb.framesetOK = false
		return false

	case "nobr":
		tb.reconstructActiveFormattingElements()
		if tb.hasElementInScope("nobr", constants.DefaultScope) {
			tb.errorAt(errors.StrayStartTag, tok.Location)
			tb.adoptionAgency("nobr")
			tb.reconstructActiveFormattingElements()
		}
		id := tb.insertElement("nobr", tok.Attrs, tok.Location)
		tb.pushFormattingElement("nobr", tok.Attrs, id)
		tb.framesetOK = false
		return false

	case "applet", "marquee", "object":
		tb.reconstructActiveFormattingElements()
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		tb.pushFormattingMarker()
		tb.framesetOK = false
		return false

	case "table":
		if tb.doc.QuirksMode() != dom.Quirks && tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement("table", tok.Attrs, tok.Location)
		tb.framesetOK = false
		tb.setMode(InTable)
		return false

	case "area", "br", "embed", "img", "keygen", "wbr":
		tb.reconstructActiveFormattingElements()
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		tb.popCurrent()
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		tb.framesetOK = false
		return false

	case "image":
		// The classic typo: rewrite to <img> and reprocess.
		tb.errorAt(errors.StrayStartTag, tok.Location)
		rewritten := tok
		rewritten.Name = "img"
		tb.ProcessToken(rewritten)
		return false

	case "input":
		tb.reconstructActiveFormattingElements()
		tb.insertElement("input", tok.Attrs, tok.Location)
		tb.popCurrent()
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		if !isHiddenInput(tok.Attrs) {
			tb.framesetOK = false
		}
		return false

	case "param", "source", "track":
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		tb.popCurrent()
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		return false

	case "hr":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.insertElement("hr", tok.Attrs, tok.Location)
		tb.popCurrent()
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		tb.framesetOK = false
		return false

	case "textarea":
		tb.insertElement("textarea", tok.Attrs, tok.Location)
		tb.skipLeadingLF = true
		tb.framesetOK = false
		tb.originalMode = tb.mode
		tb.setMode(Text)
		tb.tok.SetState(tokenizer.RCDATAState)
		return false

	case "xmp":
		if tb.hasElementInButtonScope("p") {
			tb.closePElement(tok)
		}
		tb.reconstructActiveFormattingElements()
		tb.framesetOK = false
		tb.insertElement("xmp", tok.Attrs, tok.Location)
		tb.originalMode = tb.mode
		tb.setMode(Text)
		tb.tok.SetState(tokenizer.RAWTEXTState)
		return false

	case "iframe":
		tb.framesetOK = false
		tb.insertElement("iframe", tok.Attrs, tok.Location)
		tb.originalMode = tb.mode
		tb.setMode(Text)
		tb.tok.SetState(tokenizer.RAWTEXTState)
		return false

	case "noembed":
		tb.insertElement("noembed", tok.Attrs, tok.Location)
		tb.originalMode = tb.mode
		tb.setMode(Text)
		tb.tok.SetState(tokenizer.RAWTEXTState)
		return false

	case "noscript":
		if tb.scriptingEnabled {
			tb.insertElement("noscript", tok.Attrs, tok.Location)
			tb.originalMode = tb.mode
			tb.setMode(Text)
			tb.tok.SetState(tokenizer.RAWTEXTState)
			return false
		}
		tb.reconstructActiveFormattingElements()
		tb.insertElement("noscript", tok.Attrs, tok.Location)
		return false

	case "select":
		tb.reconstructActiveFormattingElements()
		tb.insertElement("select", tok.Attrs, tok.Location)
		tb.framesetOK = false
		switch tb.mode {
		case InTable, InCaption, InTableBody, InRow, InCell:
			tb.setMode(InSelectInTable)
		default:
			tb.setMode(InSelect)
		}
		return false

	case "optgroup", "option":
		if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "option") {
			tb.popCurrent()
		}
		tb.reconstructActiveFormattingElements()
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "rb", "rtc":
		if tb.hasElementInScope("ruby", constants.DefaultScope) {
			tb.generateImpliedEndTags("")
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "rp", "rt":
		if tb.hasElementInScope("ruby", constants.DefaultScope) {
			tb.generateImpliedEndTags("rtc")
		}
		tb.insertElement(tok.Name, tok.Attrs, tok.Location)
		return false

	case "math":
		tb.reconstructActiveFormattingElements()
		attrs := adjustForeignAttributes(dom.NamespaceMathML, tok.Attrs)
		tb.insertElementNS("math", dom.NamespaceMathML, attrs, tok.Location, tok.SelfClosing)
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		tb.framesetOK = false
		return false

	case "svg":
		tb.reconstructActiveFormattingElements()
		attrs := adjustForeignAttributes(dom.NamespaceSVG, tok.Attrs)
		tb.insertElementNS("svg", dom.NamespaceSVG, attrs, tok.Location, tok.SelfClosing)
		if tok.SelfClosing {
			tb.tok.AcknowledgeSelfClosing()
		}
		tb.framesetOK = false
		return false

	case "caption", "col", "colgroup", "frame", "head", "tbody", "td",
		"tfoot", "th", "thead", "tr":
		tb.errorAt(errors.StrayStartTag, tok.Location)
		return false
	}

	tb.reconstructActiveFormattingElements()
	tb.insertElement(tok.Name, tok.Attrs, tok.Location)
	// A self-closing flag here stays unacknowledged on purpose: the
	// tokenizer reports it on the next pull, and the element stays open.
	return false
}

func (tb *TreeBuilder) processInBodyEndTag(tok tokenizer.Token) bool {
	switch tok.Name {
	case "body":
		if !tb.hasElementInScope("body", constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.setMode(AfterBody)
		return false

	case "html":
		if !tb.hasElementInScope("body", constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.setMode(AfterBody)
		return true

	case "address", "article", "aside", "blockquote", "button", "center",
		"details", "dialog", "dir", "div", "dl", "fieldset", "figcaption",
		"figure", "footer", "header", "hgroup", "listing", "main", "menu",
		"nav", "ol", "pre", "search", "section", "summary", "ul":
		if !tb.hasElementInScope(tok.Name, constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, tok.Name) {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil(tok.Name)
		return false

	case "form":
		if !tb.elementInStack("template") {
			formID := tb.formElementID
			tb.formElementID = dom.InvalidNodeID
			if formID == dom.InvalidNodeID || !tb.hasElementInScope("form", constants.DefaultScope) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentElement(); cur == nil || cur.ID != formID {
				tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
			}
			tb.removeFromOpenElements(formID)
			return false
		}
		if !tb.hasElementInScope("form", constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "form") {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil("form")
		return false

	case "p":
		if !tb.hasElementInButtonScope("p") {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			tb.insertElement("p", nil, tok.Location)
		}
		tb.closePElement(tok)
		return false

	case "li":
		if !tb.hasElementInListItemScope("li") {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("li")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "li") {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil("li")
		return false

	case "dd", "dt":
		if !tb.hasElementInScope(tok.Name, constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags(tok.Name)
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, tok.Name) {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil(tok.Name)
		return false

	case "h1", "h2", "h3", "h4", "h5", "h6":
		if !tb.hasAnyElementInScope(headingElements, constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, tok.Name) {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntilAny(headingElements)
		return false

	case "a", "b", "big", "code", "em", "font", "i", "nobr", "s", "small",
		"strike", "strong", "tt", "u":
		tb.adoptionAgency(tok.Name)
		return false

	case "applet", "marquee", "object":
		if !tb.hasElementInScope(tok.Name, constants.DefaultScope) {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, tok.Name) {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil(tok.Name)
		tb.clearFormattingUpToMarker()
		return false

	case "br":
		// </br> becomes <br> with the attributes dropped.
		tb.errorAt(errors.StrayEndTag, tok.Location)
		rewritten := tokenizer.Token{Kind: tokenizer.StartTag, Name: "br", Location: tok.Location}
		return tb.processInBodyStartTag(rewritten)

	case "template":
		return tb.processInHead(tok)
	}

	tb.anyOtherEndTag(tok)
	return false
}

var headingElements = map[string]bool{
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func isHeading(tag string) bool {
	return headingElements[tag]
}

// closePElement implements "close a p element" from WHATWG HTML §13.2.6.
func (tb *TreeBuilder) closePElement(tok tokenizer.Token) {
	tb.generateImpliedEndTags("p")
	if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "p") {
		tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
	}
	tb.popUntil("p")
}

func (tb *TreeBuilder) removeLastOpenElementByName(name string) {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if n := tb.node(tb.openElements[i]); n != nil && n.IsElement(dom.NamespaceHTML, name) {
			tb.removeOpenElementAt(i)
			return
		}
	}
}

// Table modes.

var tableContexts = map[string]bool{
	"table": true,
}

var tableBodyContexts = map[string]bool{
	"tbody": true, "tfoot": true, "thead": true,
}

var tableRowContexts = map[string]bool{
	"tr": true,
}

func (tb *TreeBuilder) processInTable(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		cur := tb.currentElement()
		if cur != nil && cur.Namespace == dom.NamespaceHTML && constants.TableFosterTargets[cur.TagName] {
			// Mixed tokens are split so that whitespace-only runs stay in
			// the table and the rest is foster-parented.
			parts := tokenizer.SplitText(tok)
			if len(parts) > 1 {
				tb.tok.InsertTokensAtQueueStart(parts)
				return false
			}
			tb.pendingTableText = tb.pendingTableText[:0]
			tb.tableTextOriginalMode = tb.mode
			tb.setMode(InTableText)
			return true
		}
		return tb.inTableAnythingElse(tok)
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "caption":
			tb.clearStackBackTo(tableContexts)
			tb.pushFormattingMarker()
			tb.insertElement("caption", tok.Attrs, tok.Location)
			tb.setMode(InCaption)
			return false
		case "colgroup":
			tb.clearStackBackTo(tableContexts)
			tb.insertElement("colgroup", tok.Attrs, tok.Location)
			tb.setMode(InColumnGroup)
			return false
		case "col":
			tb.clearStackBackTo(tableContexts)
			tb.insertElement("colgroup", nil, tok.Location)
			tb.setMode(InColumnGroup)
			return true
		case "tbody", "tfoot", "thead":
			tb.clearStackBackTo(tableContexts)
			tb.insertElement(tok.Name, tok.Attrs, tok.Location)
			tb.setMode(InTableBody)
			return false
		case "td", "th", "tr":
			tb.clearStackBackTo(tableContexts)
			tb.insertElement("tbody", nil, tok.Location)
			tb.setMode(InTableBody)
			return true
		case "table":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if !tb.hasElementInTableScope("table") {
				return false
			}
			tb.popUntil("table")
			tb.resetInsertionMode()
			return true
		case "style", "script", "template":
			return tb.processInHead(tok)
		case "input":
			if isHiddenInput(tok.Attrs) {
				tb.errorAt(errors.StrayStartTag, tok.Location)
				tb.insertElement("input", tok.Attrs, tok.Location)
				tb.popCurrent()
				if tok.SelfClosing {
					tb.tok.AcknowledgeSelfClosing()
				}
				return false
			}
		case "form":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if tb.elementInStack("template") || tb.formElementID != dom.InvalidNodeID {
				return false
			}
			tb.formElementID = tb.insertElement("form", tok.Attrs, tok.Location)
			tb.popCurrent()
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "table":
			if !tb.hasElementInTableScope("table") {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.popUntil("table")
			tb.resetInsertionMode()
			return false
		case "body", "caption", "col", "colgroup", "html", "tbody", "td",
			"tfoot", "th", "thead", "tr":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EOF:
		return tb.processInBody(tok)
	}
	return tb.inTableAnythingElse(tok)
}

// inTableAnythingElse processes the token with the in-body rules under
// foster parenting.
func (tb *TreeBuilder) inTableAnythingElse(tok tokenizer.Token) bool {
	prev := tb.fosterParenting
	tb.fosterParenting = true
	reprocess := tb.processInBody(tok)
	tb.fosterParenting = prev
	return reprocess
}

func (tb *TreeBuilder) processInTableText(tok tokenizer.Token) bool {
	if tok.Kind == tokenizer.Text {
		if strings.ContainsRune(tok.Data, 0) {
			tb.errorAt(errors.UnexpectedNullCharacter, tok.Location)
			return false
		}
		tb.pendingTableText = append(tb.pendingTableText, tok)
		return false
	}

	for _, pending := range tb.pendingTableText {
		if isAllWhitespace(pending.Data) {
			tb.insertText(pending.Data, pending.Location)
			continue
		}
		tb.errorAt(errors.NonSpaceCharacterInTableText, pending.Location)
		tb.errorAt(errors.FosterParentedCharacter, pending.Location)
		prev := tb.fosterParenting
		tb.fosterParenting = true
		tb.reconstructActiveFormattingElements()
		tb.insertText(pending.Data, pending.Location)
		tb.framesetOK = false
		tb.fosterParenting = prev
	}
	tb.pendingTableText = tb.pendingTableText[:0]
	tb.setMode(tb.tableTextOriginalMode)
	return true
}

func (tb *TreeBuilder) processInCaption(tok tokenizer.Token) bool {
	closeCaption := func() bool {
		if !tb.hasElementInTableScope("caption") {
			tb.errorAt(errors.EndTagNotInScope, tok.Location)
			return false
		}
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "caption") {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntil("caption")
		tb.clearFormattingUpToMarker()
		tb.setMode(InTable)
		return true
	}

	switch tok.Kind {
	case tokenizer.StartTag:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if closeCaption() {
				return true
			}
			return false
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "caption":
			closeCaption()
			return false
		case "table":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			if closeCaption() {
				return true
			}
			return false
		case "body", "col", "colgroup", "html", "tbody", "td", "tfoot",
			"th", "thead", "tr":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}
	return tb.processInBody(tok)
}

func (tb *TreeBuilder) processInColumnGroup(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			tb.insertText(tok.Data, tok.Location)
			return false
		}
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "col":
			tb.insertElement("col", tok.Attrs, tok.Location)
			tb.popCurrent()
			if tok.SelfClosing {
				tb.tok.AcknowledgeSelfClosing()
			}
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "colgroup":
			if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "colgroup") {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.popCurrent()
			tb.setMode(InTable)
			return false
		case "col":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EOF:
		return tb.processInBody(tok)
	}

	if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, "colgroup") {
		tb.errorAt(errors.StrayStartTag, tok.Location)
		return false
	}
	tb.popCurrent()
	tb.setMode(InTable)
	return true
}

func (tb *TreeBuilder) processInTableBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.StartTag:
		switch tok.Name {
		case "tr":
			tb.clearStackBackTo(tableBodyContexts)
			tb.insertElement("tr", tok.Attrs, tok.Location)
			tb.setMode(InRow)
			return false
		case "th", "td":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			tb.clearStackBackTo(tableBodyContexts)
			tb.insertElement("tr", nil, tok.Location)
			tb.setMode(InRow)
			return true
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead":
			if !tb.hasAnyElementInScope(tableBodyContexts, constants.TableScope) {
				tb.errorAt(errors.StrayStartTag, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableBodyContexts)
			tb.popCurrent()
			tb.setMode(InTable)
			return true
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "tbody", "tfoot", "thead":
			if !tb.hasElementInTableScope(tok.Name) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableBodyContexts)
			tb.popCurrent()
			tb.setMode(InTable)
			return false
		case "table":
			if !tb.hasAnyElementInScope(tableBodyContexts, constants.TableScope) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableBodyContexts)
			tb.popCurrent()
			tb.setMode(InTable)
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th", "tr":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}
	return tb.processInTable(tok)
}

func (tb *TreeBuilder) processInRow(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.StartTag:
		switch tok.Name {
		case "th", "td":
			tb.clearStackBackTo(tableRowContexts)
			tb.insertElement(tok.Name, tok.Attrs, tok.Location)
			tb.setMode(InCell)
			tb.pushFormattingMarker()
			return false
		case "caption", "col", "colgroup", "tbody", "tfoot", "thead", "tr":
			if !tb.hasElementInTableScope("tr") {
				tb.errorAt(errors.StrayStartTag, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableRowContexts)
			tb.popCurrent()
			tb.setMode(InTableBody)
			return true
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "tr":
			if !tb.hasElementInTableScope("tr") {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableRowContexts)
			tb.popCurrent()
			tb.setMode(InTableBody)
			return false
		case "table":
			if !tb.hasElementInTableScope("tr") {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.clearStackBackTo(tableRowContexts)
			tb.popCurrent()
			tb.setMode(InTableBody)
			return true
		case "tbody", "tfoot", "thead":
			if !tb.hasElementInTableScope(tok.Name) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			if !tb.hasElementInTableScope("tr") {
				return false
			}
			tb.clearStackBackTo(tableRowContexts)
			tb.popCurrent()
			tb.setMode(InTableBody)
			return true
		case "body", "caption", "col", "colgroup", "html", "td", "th":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		}
	}
	return tb.processInTable(tok)
}

var cellElements = map[string]bool{
	"td": true, "th": true,
}

func (tb *TreeBuilder) processInCell(tok tokenizer.Token) bool {
	closeCell := func() {
		tb.generateImpliedEndTags("")
		if cur := tb.currentElement(); cur == nil || !cellElements[cur.TagName] {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.popUntilAny(cellElements)
		tb.clearFormattingUpToMarker()
		tb.setMode(InRow)
	}

	switch tok.Kind {
	case tokenizer.StartTag:
		switch tok.Name {
		case "caption", "col", "colgroup", "tbody", "td", "tfoot", "th",
			"thead", "tr":
			if !tb.hasAnyElementInScope(cellElements, constants.TableScope) {
				tb.errorAt(errors.StrayStartTag, tok.Location)
				return false
			}
			closeCell()
			return true
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "td", "th":
			if !tb.hasElementInTableScope(tok.Name) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.generateImpliedEndTags("")
			if cur := tb.currentElement(); cur == nil || !cur.IsElement(dom.NamespaceHTML, tok.Name) {
				tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
			}
			tb.popUntil(tok.Name)
			tb.clearFormattingUpToMarker()
			tb.setMode(InRow)
			return false
		case "body", "caption", "col", "colgroup", "html":
			tb.errorAt(errors.StrayEndTag, tok.Location)
			return false
		case "table", "tbody", "tfoot", "thead", "tr":
			if !tb.hasElementInTableScope(tok.Name) {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			closeCell()
			return true
		}
	}
	return tb.processInBody(tok)
}

func (tb *TreeBuilder) processInSelect(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if strings.ContainsRune(tok.Data, 0) {
			parts := tokenizer.SplitTextNull(tok)
			if len(parts) > 1 {
				tb.tok.InsertTokensAtQueueStart(parts)
				return false
			}
			tb.errorAt(errors.UnexpectedNullCharacter, tok.Location)
			return false
		}
		tb.insertText(tok.Data, tok.Location)
		return false
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "option":
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "option") {
				tb.popCurrent()
			}
			tb.insertElement("option", tok.Attrs, tok.Location)
			return false
		case "optgroup":
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "option") {
				tb.popCurrent()
			}
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "optgroup") {
				tb.popCurrent()
			}
			tb.insertElement("optgroup", tok.Attrs, tok.Location)
			return false
		case "select":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if !tb.hasElementInSelectScope("select") {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionMode()
			return false
		case "input", "keygen", "textarea":
			tb.errorAt(errors.StrayStartTag, tok.Location)
			if !tb.hasElementInSelectScope("select") {
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionMode()
			return true
		case "script", "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTag:
		switch tok.Name {
		case "optgroup":
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "option") {
				if len(tb.openElements) > 1 {
					if prev := tb.node(tb.openElements[len(tb.openElements)-2]); prev != nil && prev.IsElement(dom.NamespaceHTML, "optgroup") {
						tb.popCurrent()
					}
				}
			}
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "optgroup") {
				tb.popCurrent()
			} else {
				tb.errorAt(errors.StrayEndTag, tok.Location)
			}
			return false
		case "option":
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "option") {
				tb.popCurrent()
			} else {
				tb.errorAt(errors.StrayEndTag, tok.Location)
			}
			return false
		case "select":
			if !tb.hasElementInSelectScope("select") {
				tb.errorAt(errors.EndTagNotInScope, tok.Location)
				return false
			}
			tb.popUntil("select")
			tb.resetInsertionMode()
			return false
		case "template":
			return tb.processInHead(tok)
		}
	case tokenizer.EOF:
		return tb.processInBody(tok)
	}
	tb.errorAt(errors.StrayStartTag, tok.Location)
	return false
}

var selectBreakers = map[string]bool{
	"caption": true, "table": true, "tbody": true, "tfoot": true,
	"thead": true, "tr": true, "td": true, "th": true,
}

func (tb *TreeBuilder) processInSelectInTable(tok tokenizer.Token) bool {
	if tok.Kind == tokenizer.StartTag && selectBreakers[tok.Name] {
		tb.errorAt(errors.StrayStartTag, tok.Location)
		tb.popUntil("select")
		tb.resetInsertionMode()
		return true
	}
	if tok.Kind == tokenizer.EndTag && selectBreakers[tok.Name] {
		tb.errorAt(errors.StrayEndTag, tok.Location)
		if !tb.hasElementInTableScope(tok.Name) {
			return false
		}
		tb.popUntil("select")
		tb.resetInsertionMode()
		return true
	}
	return tb.processInSelect(tok)
}

func (tb *TreeBuilder) processInTemplate(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text, tokenizer.Comment, tokenizer.DOCTYPE:
		return tb.processInBody(tok)
	case tokenizer.StartTag:
		switch tok.Name {
		case "base", "basefont", "bgsound", "link", "meta", "noframes",
			"script", "style", "template", "title":
			return tb.processInHead(tok)
		case "caption", "colgroup", "tbody", "tfoot", "thead":
			tb.switchTemplateMode(InTable)
			return true
		case "col":
			tb.switchTemplateMode(InColumnGroup)
			return true
		case "tr":
			tb.switchTemplateMode(InTableBody)
			return true
		case "td", "th":
			tb.switchTemplateMode(InRow)
			return true
		default:
			tb.switchTemplateMode(InBody)
			return true
		}
	case tokenizer.EndTag:
		if tok.Name == "template" {
			return tb.processInHead(tok)
		}
		tb.errorAt(errors.StrayEndTag, tok.Location)
		return false
	case tokenizer.EOF:
		if !tb.elementInStack("template") {
			tb.StopParsing()
			return false
		}
		tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		tb.popUntil("template")
		tb.clearFormattingUpToMarker()
		if len(tb.templateModes) > 0 {
			tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
		}
		tb.resetInsertionMode()
		return true
	}
	return false
}

func (tb *TreeBuilder) switchTemplateMode(mode InsertionMode) {
	if len(tb.templateModes) > 0 {
		tb.templateModes = tb.templateModes[:len(tb.templateModes)-1]
	}
	tb.templateModes = append(tb.templateModes, mode)
	tb.setMode(mode)
}

func (tb *TreeBuilder) processAfterBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return tb.processInBody(tok)
		}
	case tokenizer.Comment:
		// Comments after the body attach to <html>.
		if len(tb.openElements) > 0 {
			tb.insertCommentAt(tok.Data, tok.Location, tb.openElements[0])
		} else {
			tb.insertCommentAt(tok.Data, tok.Location, tb.doc.RootID)
		}
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		if tok.Name == "html" {
			return tb.processInBody(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "html" {
			if tb.fragmentContextID != dom.InvalidNodeID {
				tb.errorAt(errors.StrayEndTag, tok.Location)
				return false
			}
			tb.setMode(AfterAfterBody)
			return false
		}
	case tokenizer.EOF:
		tb.StopParsing()
		return false
	}

	tb.errorAt(errors.StrayStartTag, tok.Location)
	tb.setMode(InBody)
	return true
}

func (tb *TreeBuilder) processInFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		ws := whitespaceOnly(tok.Data)
		if ws != "" {
			tb.insertText(ws, tok.Location)
		}
		if ws != tok.Data {
			tb.errorAt(errors.StrayStartTag, tok.Location)
		}
		return false
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "frameset":
			tb.insertElement("frameset", tok.Attrs, tok.Location)
			return false
		case "frame":
			tb.insertElement("frame", tok.Attrs, tok.Location)
			tb.popCurrent()
			if tok.SelfClosing {
				tb.tok.AcknowledgeSelfClosing()
			}
			return false
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "frameset" {
			if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "html") {
				tb.errorAt(errors.StrayEndTag, tok.Location)
				return false
			}
			tb.popCurrent()
			if cur := tb.currentElement(); cur != nil && !cur.IsElement(dom.NamespaceHTML, "frameset") {
				tb.setMode(AfterFrameset)
			}
			return false
		}
	case tokenizer.EOF:
		if cur := tb.currentElement(); cur != nil && !cur.IsElement(dom.NamespaceHTML, "html") {
			tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
		}
		tb.StopParsing()
		return false
	}
	tb.errorAt(errors.StrayStartTag, tok.Location)
	return false
}

func (tb *TreeBuilder) processAfterFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Text:
		ws := whitespaceOnly(tok.Data)
		if ws != "" {
			tb.insertText(ws, tok.Location)
		}
		if ws != tok.Data {
			tb.errorAt(errors.StrayStartTag, tok.Location)
		}
		return false
	case tokenizer.Comment:
		tb.insertComment(tok.Data, tok.Location)
		return false
	case tokenizer.DOCTYPE:
		tb.errorAt(errors.DocTypeNotAllowed, tok.Location)
		return false
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EndTag:
		if tok.Name == "html" {
			tb.setMode(AfterAfterFrameset)
			return false
		}
	case tokenizer.EOF:
		tb.StopParsing()
		return false
	}
	tb.errorAt(errors.StrayStartTag, tok.Location)
	return false
}

func (tb *TreeBuilder) processAfterAfterBody(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Comment:
		tb.insertCommentAt(tok.Data, tok.Location, tb.doc.RootID)
		return false
	case tokenizer.DOCTYPE:
		return tb.processInBody(tok)
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return tb.processInBody(tok)
		}
	case tokenizer.StartTag:
		if tok.Name == "html" {
			return tb.processInBody(tok)
		}
	case tokenizer.EOF:
		tb.StopParsing()
		return false
	}

	tb.errorAt(errors.StrayStartTag, tok.Location)
	tb.setMode(InBody)
	return true
}

func (tb *TreeBuilder) processAfterAfterFrameset(tok tokenizer.Token) bool {
	switch tok.Kind {
	case tokenizer.Comment:
		tb.insertCommentAt(tok.Data, tok.Location, tb.doc.RootID)
		return false
	case tokenizer.DOCTYPE:
		return tb.processInBody(tok)
	case tokenizer.Text:
		if tok.IsWhitespaceOnly() {
			return tb.processInBody(tok)
		}
	case tokenizer.StartTag:
		switch tok.Name {
		case "html":
			return tb.processInBody(tok)
		case "noframes":
			return tb.processInHead(tok)
		}
	case tokenizer.EOF:
		tb.StopParsing()
		return false
	}
	tb.errorAt(errors.StrayStartTag, tok.Location)
	return false
}

func whitespaceOnly(data string) string {
	var sb strings.Builder
	for _, r := range data {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Stylesheet hooks.

// handleInlineStylesheet parses the text of a just-closed <style> element
// and attaches the result to the document.
func (tb *TreeBuilder) handleInlineStylesheet(styleID dom.NodeID) {
	if tb.sheets == nil {
		return
	}
	text := tb.doc.TextContent(styleID)
	if sheet := tb.sheets.LoadInline(text, tb.doc.URL(), tb.doc.QuirksMode() == dom.Quirks); sheet != nil {
		tb.doc.AddStylesheet(sheet)
	}
}

// maybeLoadLinkedStylesheet loads <link rel=stylesheet href=...>. The
// in-head rules handle link tags delegated from other modes too, so
// body-level links load the same way.
func (tb *TreeBuilder) maybeLoadLinkedStylesheet(linkID dom.NodeID) {
	if tb.sheets == nil {
		return
	}
	n := tb.node(linkID)
	if n == nil {
		return
	}
	if !strings.EqualFold(n.Attr("rel"), "stylesheet") {
		return
	}
	href := n.Attr("href")
	if href == "" {
		return
	}
	sheet, err := tb.sheets.LoadLinked(href, tb.doc.URL(), tb.doc.QuirksMode() == dom.Quirks)
	if err != nil || sheet == nil {
		return
	}
	tb.doc.AddStylesheet(sheet)
}
