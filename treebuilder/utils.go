package treebuilder

import (
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

// Scope walks. Each walk goes bottom-up: finding the target succeeds,
// hitting a boundary fails. Foreign integration points bound the non-table
// scopes.

func (tb *TreeBuilder) hasElementInScope(tagName string, scope map[string]bool) bool {
	return tb.scopeWalk(tagName, scope, true)
}

func (tb *TreeBuilder) hasElementInTableScope(tagName string) bool {
	return tb.scopeWalk(tagName, constants.TableScope, false)
}

func (tb *TreeBuilder) hasElementInButtonScope(tagName string) bool {
	return tb.hasElementInScope(tagName, constants.ButtonScope)
}

func (tb *TreeBuilder) hasElementInListItemScope(tagName string) bool {
	return tb.hasElementInScope(tagName, constants.ListItemScope)
}

// hasElementInSelectScope uses the inverted rule: everything that is not
// optgroup or option is a boundary.
func (tb *TreeBuilder) hasElementInSelectScope(tagName string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		n := tb.node(tb.openElements[i])
		if n == nil {
			continue
		}
		if n.Namespace == dom.NamespaceHTML && n.TagName == tagName {
			return true
		}
		if n.Namespace != dom.NamespaceHTML || !constants.SelectScope[n.TagName] {
			return false
		}
	}
	return false
}

func (tb *TreeBuilder) scopeWalk(tagName string, scope map[string]bool, foreignBounds bool) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		n := tb.node(tb.openElements[i])
		if n == nil {
			continue
		}
		if n.Namespace == dom.NamespaceHTML {
			if n.TagName == tagName {
				return true
			}
			if scope[n.TagName] {
				return false
			}
			continue
		}
		if foreignBounds {
			ip := constants.IntegrationPoint{Namespace: n.Namespace, LocalName: n.TagName}
			if constants.ForeignScopeBoundaries[ip] {
				return false
			}
		}
	}
	return false
}

func (tb *TreeBuilder) hasAnyElementInScope(tagSet map[string]bool, scope map[string]bool) bool {
	// The table scope ignores integration points, as hasElementInTableScope does.
	foreignBounds := len(scope) != len(constants.TableScope)
	for name := range constants.TableScope {
		foreignBounds = foreignBounds || !scope[name]
	}
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		n := tb.node(tb.openElements[i])
		if n == nil {
			continue
		}
		if n.Namespace == dom.NamespaceHTML {
			if tagSet[n.TagName] {
				return true
			}
			if scope[n.TagName] {
				return false
			}
			continue
		}
		ip := constants.IntegrationPoint{Namespace: n.Namespace, LocalName: n.TagName}
		if foreignBounds && constants.ForeignScopeBoundaries[ip] {
			return false
		}
	}
	return false
}

// generateImpliedEndTags pops the implied-end-tag elements, keeping except.
func (tb *TreeBuilder) generateImpliedEndTags(except string) {
	for len(tb.openElements) > 0 {
		n := tb.currentElement()
		if n == nil || n.Namespace != dom.NamespaceHTML {
			return
		}
		if constants.ImpliedEndTagElements[n.TagName] && n.TagName != except {
			tb.popCurrent()
			continue
		}
		return
	}
}

// generateImpliedEndTagsThoroughly is the </template> variant.
func (tb *TreeBuilder) generateImpliedEndTagsThoroughly() {
	for len(tb.openElements) > 0 {
		n := tb.currentElement()
		if n == nil || n.Namespace != dom.NamespaceHTML {
			return
		}
		if constants.ThoroughlyImpliedEndTagElements[n.TagName] {
			tb.popCurrent()
			continue
		}
		return
	}
}

// clearStackBackTo pops until one of the given elements (or html/template)
// is current; used by the table modes.
func (tb *TreeBuilder) clearStackBackTo(tagNames map[string]bool) {
	for len(tb.openElements) > 0 {
		n := tb.currentElement()
		if n == nil {
			return
		}
		if n.Namespace == dom.NamespaceHTML && (tagNames[n.TagName] || n.TagName == "html" || n.TagName == "template") {
			return
		}
		tb.popCurrent()
	}
}

func isSpecial(n *dom.Node) bool {
	if n == nil || n.Type != dom.ElementNodeType {
		return false
	}
	switch n.Namespace {
	case dom.NamespaceHTML:
		return constants.SpecialElements[n.TagName]
	case dom.NamespaceMathML:
		return constants.SpecialMathMLElements[n.TagName]
	case dom.NamespaceSVG:
		return constants.SpecialSVGElements[n.TagName]
	}
	return false
}

// anyOtherEndTag walks the stack for a matching element, popping through
// it; a special element aborts the walk with an error.
func (tb *TreeBuilder) anyOtherEndTag(tok tokenizer.Token) {
	target := strings.ToLower(tok.Name)
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		n := tb.node(tb.openElements[i])
		if n == nil {
			continue
		}
		if n.Namespace == dom.NamespaceHTML && n.TagName == target {
			tb.generateImpliedEndTags(target)
			if cur := tb.currentElement(); cur == nil || cur.ID != n.ID {
				tb.errorAt(errors.EndTagNotAtTopOfStack, tok.Location)
			}
			tb.openElements = tb.openElements[:i]
			return
		}
		if isSpecial(n) {
			tb.errorAt(errors.SpecialNode, tok.Location)
			return
		}
	}
}

// resetInsertionMode scans the stack bottom-up and picks the mode from the
// fixed table; the fragment context substitutes for the last (bottom-most)
// entry.
func (tb *TreeBuilder) resetInsertionMode() {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		last := i == 0
		nodeID := tb.openElements[i]
		if last && tb.fragmentContextID != dom.InvalidNodeID {
			nodeID = tb.fragmentContextID
		}
		n := tb.node(nodeID)
		if n == nil {
			continue
		}
		if n.Namespace != dom.NamespaceHTML {
			continue
		}
		switch n.TagName {
		case "select":
			// Inside a table the select handles table tokens differently.
			for j := i - 1; j >= 0; j-- {
				anc := tb.node(tb.openElements[j])
				if anc == nil || anc.Namespace != dom.NamespaceHTML {
					continue
				}
				if anc.TagName == "template" {
					break
				}
				if anc.TagName == "table" {
					tb.setMode(InSelectInTable)
					return
				}
			}
			tb.setMode(InSelect)
			return
		case "td", "th":
			if !last {
				tb.setMode(InCell)
				return
			}
		case "tr":
			tb.setMode(InRow)
			return
		case "tbody", "thead", "tfoot":
			tb.setMode(InTableBody)
			return
		case "caption":
			tb.setMode(InCaption)
			return
		case "colgroup":
			tb.setMode(InColumnGroup)
			return
		case "table":
			tb.setMode(InTable)
			return
		case "template":
			if len(tb.templateModes) > 0 {
				tb.setMode(tb.templateModes[len(tb.templateModes)-1])
				return
			}
		case "head":
			if !last {
				tb.setMode(InHead)
				return
			}
		case "body":
			tb.setMode(InBody)
			return
		case "frameset":
			tb.setMode(InFrameset)
			return
		case "html":
			if tb.headElementID == dom.InvalidNodeID {
				tb.setMode(BeforeHead)
			} else {
				tb.setMode(AfterHead)
			}
			return
		}
		if last {
			tb.setMode(InBody)
			return
		}
	}
	tb.setMode(InBody)
}

// Quirks-mode identification from the DOCTYPE token.

func (tb *TreeBuilder) quirksFromDoctype(name string, publicID, systemID *string, forceQuirks bool) (bool, dom.QuirksMode) {
	nameLower := strings.ToLower(name)
	public := ptrToString(publicID)
	system := ptrToString(systemID)

	wellFormed := map[[3]string]bool{
		{"html", "", ""}:                         true,
		{"html", "", "about:legacy-compat"}:      true,
		{"html", "-//W3C//DTD HTML 4.0//EN", ""}: true,
		{"html", "-//W3C//DTD HTML 4.0//EN", "http://www.w3.org/TR/REC-html40/strict.dtd"}:                true,
		{"html", "-//W3C//DTD HTML 4.01//EN", ""}:                                                         true,
		{"html", "-//W3C//DTD HTML 4.01//EN", "http://www.w3.org/TR/html4/strict.dtd"}:                    true,
		{"html", "-//W3C//DTD XHTML 1.0 Strict//EN", "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd"}: true,
		{"html", "-//W3C//DTD XHTML 1.1//EN", "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd"}:             true,
	}
	parseError := !wellFormed[[3]string{nameLower, public, system}]

	// The srcdoc case is the "parser cannot change mode" flag: the document
	// stays in no-quirks regardless of the doctype shape.
	if tb.iframeSrcdoc {
		return parseError, dom.NoQuirks
	}
	if forceQuirks || nameLower != "html" {
		return parseError, dom.Quirks
	}

	publicLower := strings.ToLower(public)
	systemLower := strings.ToLower(system)

	switch {
	case constants.QuirkyPublicMatches[publicLower]:
		return parseError, dom.Quirks
	case constants.QuirkySystemMatches[systemLower]:
		return parseError, dom.Quirks
	case hasAnyPrefix(publicLower, constants.QuirkyPublicPrefixes):
		return parseError, dom.Quirks
	case hasAnyPrefix(publicLower, constants.LimitedQuirkyPublicPrefixes):
		return parseError, dom.LimitedQuirks
	case hasAnyPrefix(publicLower, constants.HTML4PublicPrefixes):
		if systemID == nil {
			return parseError, dom.Quirks
		}
		return parseError, dom.LimitedQuirks
	}
	return parseError, dom.NoQuirks
}

func hasAnyPrefix(needle string, prefixes []string) bool {
	if needle == "" {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(needle, prefix) {
			return true
		}
	}
	return false
}

func isHiddenInput(attrs []tokenizer.Attr) bool {
	for _, attr := range attrs {
		if attr.Namespace == "" && strings.EqualFold(attr.Name, "type") && strings.EqualFold(attr.Value, "hidden") {
			return true
		}
	}
	return false
}
