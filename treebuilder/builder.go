package treebuilder

import (
	"github.com/sirupsen/logrus"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/css"
	"github.com/gosub-io/gosub-engine-sub000/dom"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
	"github.com/gosub-io/gosub-engine-sub000/tokenizer"
)

// TreeBuilder drives tree construction. It pulls tokens from the tokenizer
// (supplying the adjusted current node's namespace on every pull), mutates
// the document arena, and appends tree-construction errors to the shared
// error log.
type TreeBuilder struct {
	doc *dom.Document
	tok *tokenizer.Tokenizer
	log *errors.Logger

	mode         InsertionMode
	originalMode InsertionMode

	// templateModes parallels the open <template> elements and controls
	// mode restoration on </template>.
	templateModes []InsertionMode

	openElements []dom.NodeID

	activeFormatting []formattingEntry

	headElementID dom.NodeID
	formElementID dom.NodeID

	framesetOK      bool
	fosterParenting bool

	// skipLeadingLF eats the newline immediately after <pre>, <listing>,
	// and <textarea>.
	skipLeadingLF bool

	pendingTableText      []tokenizer.Token
	tableTextOriginalMode InsertionMode

	// Fragment parsing context.
	fragmentContextID dom.NodeID
	fragmentRootID    dom.NodeID

	scriptingEnabled bool
	iframeSrcdoc     bool

	// parserFinished stops the loop; set by stop-parsing arms. The pause
	// flag is the hook a script-running host would drive; the core never
	// sets it.
	parserFinished bool
	parserPaused   bool

	// forceHTMLMode makes the next dispatch skip the foreign-content rules
	// after a breakout, so reprocessing cannot loop.
	forceHTMLMode bool

	sheets *css.Loader

	trace logrus.FieldLogger
}

// Options configures a tree builder.
type Options struct {
	// ScriptingEnabled affects <noscript> handling. Defaults to true in
	// the public entry points.
	ScriptingEnabled bool

	// IframeSrcdoc marks the document as an iframe srcdoc document, which
	// pins it to no-quirks.
	IframeSrcdoc bool

	// Stylesheets enables the stylesheet hooks. Nil disables them.
	Stylesheets *css.Loader

	// Trace receives insertion-mode transitions and adoption-agency
	// invocations at debug level. Nil disables tracing.
	Trace logrus.FieldLogger
}

// New creates a tree builder for full document parsing into doc.
func New(tok *tokenizer.Tokenizer, doc *dom.Document, log *errors.Logger, opts Options) *TreeBuilder {
	tb := &TreeBuilder{
		doc:              doc,
		tok:              tok,
		log:              log,
		mode:             Initial,
		originalMode:     Initial,
		framesetOK:       true,
		scriptingEnabled: opts.ScriptingEnabled,
		iframeSrcdoc:     opts.IframeSrcdoc,
		sheets:           opts.Stylesheets,
		trace:            opts.Trace,
	}
	if opts.IframeSrcdoc {
		doc.SetDoctypeKind(dom.IframeSrcDoc)
	}
	return tb
}

// NewFragment creates a tree builder for fragment parsing with the given
// context node (registered in doc). It seeds the open-elements stack with a
// synthetic html root, inherits quirks from the context's document, sets
// the form pointer from the context's ancestors, resets the insertion mode,
// and puts the tokenizer into the state the context element dictates.
func NewFragment(tok *tokenizer.Tokenizer, doc *dom.Document, log *errors.Logger, contextID dom.NodeID, opts Options) *TreeBuilder {
	tb := New(tok, doc, log, opts)
	tb.framesetOK = false
	tb.fragmentContextID = contextID

	doc.SetDoctypeKind(dom.HTMLDocument)

	html := doc.NewElementNode("html", dom.NamespaceHTML, nil, bytestream.Location{})
	tb.fragmentRootID = doc.RegisterNodeAt(html, doc.RootID, -1)
	tb.openElements = append(tb.openElements, tb.fragmentRootID)

	context := doc.NodeByID(contextID)
	if context == nil {
		tb.mode = InBody
		return tb
	}

	if context.IsElement(dom.NamespaceHTML, "template") {
		tb.templateModes = append(tb.templateModes, InTemplate)
	}

	// Nearest form ancestor (the context itself counts).
	for id := contextID; id != dom.InvalidNodeID; {
		n := doc.NodeByID(id)
		if n == nil {
			break
		}
		if n.IsElement(dom.NamespaceHTML, "form") {
			tb.formElementID = id
			break
		}
		id = n.ParentID
	}

	tb.resetInsertionMode()

	if context.Namespace == dom.NamespaceHTML {
		switch context.TagName {
		case "title", "textarea":
			tok.SetLastStartTag(context.TagName)
			tok.SetState(tokenizer.RCDATAState)
		case "style", "xmp", "iframe", "noembed", "noframes":
			tok.SetLastStartTag(context.TagName)
			tok.SetState(tokenizer.RAWTEXTState)
		case "script":
			tok.SetLastStartTag(context.TagName)
			tok.SetState(tokenizer.ScriptDataState)
		case "noscript":
			if tb.scriptingEnabled {
				tok.SetLastStartTag(context.TagName)
				tok.SetState(tokenizer.RAWTEXTState)
			}
		case "plaintext":
			tok.SetLastStartTag(context.TagName)
			tok.SetState(tokenizer.PLAINTEXTState)
		}
	}

	return tb
}

// Document returns the document being built.
func (tb *TreeBuilder) Document() *dom.Document {
	return tb.doc
}

// FragmentRootID returns the synthetic root of a fragment parse.
func (tb *TreeBuilder) FragmentRootID() dom.NodeID {
	return tb.fragmentRootID
}

// Run pulls tokens until the stream ends or an arm stops parsing. Each
// iteration checks the pause flag so a host driving script execution could
// slice the loop.
func (tb *TreeBuilder) Run() {
	for !tb.parserFinished && !tb.parserPaused {
		pd := tokenizer.ParserData{AdjustedNodeNamespace: tb.adjustedCurrentNamespace()}
		tok := tb.tok.NextToken(pd)
		tb.ProcessToken(tok)
		if tok.Kind == tokenizer.EOF {
			break
		}
	}
}

// StopParsing makes Run return after the current token.
func (tb *TreeBuilder) StopParsing() {
	tb.parserFinished = true
}

// ProcessToken dispatches one token, honoring the reprocess contract: a
// handler returning true re-dispatches the same token against the updated
// mode.
func (tb *TreeBuilder) ProcessToken(tok tokenizer.Token) {
	for {
		if !tb.forceHTMLMode && tb.useForeignContent(tok) {
			if !tb.processForeignContent(tok) {
				return
			}
			continue
		}
		tb.forceHTMLMode = false

		if tb.trace != nil {
			tb.trace.WithFields(logrus.Fields{
				"mode":  tb.mode.String(),
				"token": tok.Kind.String(),
			}).Debug("dispatch")
		}

		var reprocess bool
		switch tb.mode {
		case Initial:
			reprocess = tb.processInitial(tok)
		case BeforeHTML:
			reprocess = tb.processBeforeHTML(tok)
		case BeforeHead:
			reprocess = tb.processBeforeHead(tok)
		case InHead:
			reprocess = tb.processInHead(tok)
		case InHeadNoscript:
			reprocess = tb.processInHeadNoscript(tok)
		case AfterHead:
			reprocess = tb.processAfterHead(tok)
		case Text:
			reprocess = tb.processText(tok)
		case InBody:
			reprocess = tb.processInBody(tok)
		case InTable:
			reprocess = tb.processInTable(tok)
		case InTableText:
			reprocess = tb.processInTableText(tok)
		case InCaption:
			reprocess = tb.processInCaption(tok)
		case InColumnGroup:
			reprocess = tb.processInColumnGroup(tok)
		case InTableBody:
			reprocess = tb.processInTableBody(tok)
		case InRow:
			reprocess = tb.processInRow(tok)
		case InCell:
			reprocess = tb.processInCell(tok)
		case InSelect:
			reprocess = tb.processInSelect(tok)
		case InSelectInTable:
			reprocess = tb.processInSelectInTable(tok)
		case InTemplate:
			reprocess = tb.processInTemplate(tok)
		case AfterBody:
			reprocess = tb.processAfterBody(tok)
		case InFrameset:
			reprocess = tb.processInFrameset(tok)
		case AfterFrameset:
			reprocess = tb.processAfterFrameset(tok)
		case AfterAfterBody:
			reprocess = tb.processAfterAfterBody(tok)
		case AfterAfterFrameset:
			reprocess = tb.processAfterAfterFrameset(tok)
		default:
			reprocess = tb.processInBody(tok)
		}
		if !reprocess {
			return
		}
	}
}

func (tb *TreeBuilder) setMode(mode InsertionMode) {
	if tb.trace != nil && mode != tb.mode {
		tb.trace.WithFields(logrus.Fields{
			"from": tb.mode.String(),
			"to":   mode.String(),
		}).Debug("insertion mode")
	}
	tb.mode = mode
}

// Node/stack accessors.

func (tb *TreeBuilder) node(id dom.NodeID) *dom.Node {
	return tb.doc.NodeByID(id)
}

func (tb *TreeBuilder) currentNodeID() dom.NodeID {
	if len(tb.openElements) == 0 {
		return tb.doc.RootID
	}
	return tb.openElements[len(tb.openElements)-1]
}

func (tb *TreeBuilder) currentNode() *dom.Node {
	return tb.node(tb.currentNodeID())
}

func (tb *TreeBuilder) currentElement() *dom.Node {
	if len(tb.openElements) == 0 {
		return nil
	}
	return tb.node(tb.openElements[len(tb.openElements)-1])
}

// adjustedCurrentNode is the context node while a fragment parse has only
// the synthetic root open; otherwise the top of the stack.
func (tb *TreeBuilder) adjustedCurrentNode() *dom.Node {
	if tb.fragmentContextID != dom.InvalidNodeID && len(tb.openElements) == 1 {
		return tb.node(tb.fragmentContextID)
	}
	return tb.currentElement()
}

func (tb *TreeBuilder) adjustedCurrentNamespace() string {
	n := tb.adjustedCurrentNode()
	if n == nil || len(tb.openElements) == 0 {
		return dom.NamespaceHTML
	}
	return n.Namespace
}

func (tb *TreeBuilder) errorAt(code string, loc bytestream.Location) {
	tb.log.Add(code, loc.Line, loc.Column)
}

// Stack manipulation.

func (tb *TreeBuilder) push(id dom.NodeID) {
	tb.openElements = append(tb.openElements, id)
}

func (tb *TreeBuilder) popCurrent() dom.NodeID {
	if len(tb.openElements) == 0 {
		return dom.InvalidNodeID
	}
	id := tb.openElements[len(tb.openElements)-1]
	tb.openElements = tb.openElements[:len(tb.openElements)-1]
	return id
}

func (tb *TreeBuilder) popUntil(name string) {
	for len(tb.openElements) > 0 {
		id := tb.popCurrent()
		if n := tb.node(id); n != nil && n.Namespace == dom.NamespaceHTML && n.TagName == name {
			return
		}
	}
}

func (tb *TreeBuilder) popUntilAny(names map[string]bool) {
	for len(tb.openElements) > 0 {
		id := tb.popCurrent()
		if n := tb.node(id); n != nil && n.Namespace == dom.NamespaceHTML && names[n.TagName] {
			return
		}
	}
}

func (tb *TreeBuilder) elementInStack(name string) bool {
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		if n := tb.node(tb.openElements[i]); n != nil && n.Namespace == dom.NamespaceHTML && n.TagName == name {
			return true
		}
	}
	return false
}

func (tb *TreeBuilder) indexOfOpenElement(id dom.NodeID) (int, bool) {
	for i, el := range tb.openElements {
		if el == id {
			return i, true
		}
	}
	return -1, false
}

func (tb *TreeBuilder) removeOpenElementAt(index int) {
	if index < 0 || index >= len(tb.openElements) {
		return
	}
	copy(tb.openElements[index:], tb.openElements[index+1:])
	tb.openElements = tb.openElements[:len(tb.openElements)-1]
}

func (tb *TreeBuilder) removeFromOpenElements(id dom.NodeID) {
	if idx, ok := tb.indexOfOpenElement(id); ok {
		tb.removeOpenElementAt(idx)
	}
}

func (tb *TreeBuilder) insertOpenElementAt(index int, id dom.NodeID) {
	if index < 0 {
		index = 0
	}
	if index > len(tb.openElements) {
		index = len(tb.openElements)
	}
	tb.openElements = append(tb.openElements, dom.InvalidNodeID)
	copy(tb.openElements[index+1:], tb.openElements[index:])
	tb.openElements[index] = id
}

// Insertion locations.

type insertionLocation struct {
	parentID dom.NodeID
	beforeID dom.NodeID // InvalidNodeID appends
}

// appropriateInsertionLocation implements the WHATWG insertion-point
// selection: template contents override, then foster parenting when the
// flag is set and the target is a table context.
func (tb *TreeBuilder) appropriateInsertionLocation() insertionLocation {
	target := tb.currentNodeID()

	if cur := tb.currentElement(); cur != nil && cur.IsElement(dom.NamespaceHTML, "template") {
		return insertionLocation{parentID: tb.templateContents(cur.ID)}
	}

	if tb.fosterParenting {
		if cur := tb.currentElement(); cur != nil && cur.Namespace == dom.NamespaceHTML && constants.TableFosterTargets[cur.TagName] {
			return tb.fosterInsertionLocation()
		}
	}
	return insertionLocation{parentID: target}
}

// fosterInsertionLocation places nodes immediately before the nearest table
// in that table's parent. Template contents win when the template is deeper
// than the table; a parentless table falls back to the element above it.
func (tb *TreeBuilder) fosterInsertionLocation() insertionLocation {
	tableIdx := -1
	templateIdx := -1
	for i := len(tb.openElements) - 1; i >= 0; i-- {
		n := tb.node(tb.openElements[i])
		if n == nil || n.Namespace != dom.NamespaceHTML {
			continue
		}
		if tableIdx < 0 && n.TagName == "table" {
			tableIdx = i
		}
		if templateIdx < 0 && n.TagName == "template" {
			templateIdx = i
		}
		if tableIdx >= 0 && templateIdx >= 0 {
			break
		}
	}

	if templateIdx >= 0 && (tableIdx < 0 || templateIdx > tableIdx) {
		return insertionLocation{parentID: tb.templateContents(tb.openElements[templateIdx])}
	}
	if tableIdx < 0 {
		if len(tb.openElements) > 0 {
			return insertionLocation{parentID: tb.openElements[0]}
		}
		return insertionLocation{parentID: tb.doc.RootID}
	}

	tableID := tb.openElements[tableIdx]
	table := tb.node(tableID)
	if table.ParentID != dom.InvalidNodeID {
		return insertionLocation{parentID: table.ParentID, beforeID: tableID}
	}
	if tableIdx > 0 {
		return insertionLocation{parentID: tb.openElements[tableIdx-1]}
	}
	return insertionLocation{parentID: tb.doc.RootID}
}

// templateContents returns (creating on demand) the contents fragment of a
// template element.
func (tb *TreeBuilder) templateContents(templateID dom.NodeID) dom.NodeID {
	n := tb.node(templateID)
	if n == nil {
		return tb.doc.RootID
	}
	if n.TemplateContentsID == dom.InvalidNodeID {
		frag := tb.doc.NewFragmentNode(n.Location)
		n.TemplateContentsID = tb.doc.RegisterNode(frag)
	}
	return n.TemplateContentsID
}

// insertNodeAt attaches a registered node at the location. It does not
// merge text nodes; insertTextAt does that before calling it.
func (tb *TreeBuilder) insertNodeAt(id dom.NodeID, loc insertionLocation) {
	parent := tb.node(loc.parentID)
	if parent == nil {
		return
	}
	if loc.beforeID == dom.InvalidNodeID {
		tb.doc.Attach(id, loc.parentID, -1)
		return
	}
	for i, child := range parent.ChildIDs {
		if child == loc.beforeID {
			tb.doc.Attach(id, loc.parentID, i)
			return
		}
	}
	tb.doc.Attach(id, loc.parentID, -1)
}

// insertElement creates, registers, attaches, and pushes an HTML element
// for a start tag. Template elements get their contents fragment up front.
func (tb *TreeBuilder) insertElement(name string, attrs []tokenizer.Attr, loc bytestream.Location) dom.NodeID {
	return tb.insertElementNS(name, dom.NamespaceHTML, htmlAttrs(attrs), loc, false)
}

func (tb *TreeBuilder) insertElementNS(name, namespace string, attrs *dom.Attributes, loc bytestream.Location, selfClosing bool) dom.NodeID {
	node := tb.doc.NewElementNode(name, namespace, attrs, loc)
	id := tb.doc.RegisterNode(node)
	if node.IsElement(dom.NamespaceHTML, "template") {
		frag := tb.doc.NewFragmentNode(loc)
		node.TemplateContentsID = tb.doc.RegisterNode(frag)
	}
	tb.insertNodeAt(id, tb.appropriateInsertionLocation())
	if !selfClosing {
		tb.push(id)
	}
	return id
}

func htmlAttrs(attrs []tokenizer.Attr) *dom.Attributes {
	out := dom.NewAttributes()
	for _, a := range attrs {
		out.SetNS(a.Namespace, a.Name, a.Value)
	}
	return out
}

func (tb *TreeBuilder) insertComment(data string, loc bytestream.Location) {
	node := tb.doc.NewCommentNode(data, loc)
	id := tb.doc.RegisterNode(node)
	tb.insertNodeAt(id, tb.appropriateInsertionLocation())
}

func (tb *TreeBuilder) insertCommentAt(data string, loc bytestream.Location, parentID dom.NodeID) {
	node := tb.doc.NewCommentNode(data, loc)
	id := tb.doc.RegisterNode(node)
	tb.doc.Attach(id, parentID, -1)
}

func (tb *TreeBuilder) insertText(data string, loc bytestream.Location) {
	if data == "" {
		return
	}
	tb.insertTextAt(data, loc, tb.appropriateInsertionLocation())
}

func (tb *TreeBuilder) insertTextAt(data string, loc bytestream.Location, at insertionLocation) {
	parent := tb.node(at.parentID)
	if parent == nil {
		return
	}

	// Coalesce with the text node just before the insertion point.
	beforeIdx := len(parent.ChildIDs)
	if at.beforeID != dom.InvalidNodeID {
		for i, child := range parent.ChildIDs {
			if child == at.beforeID {
				beforeIdx = i
				break
			}
		}
	}
	if beforeIdx > 0 {
		if prev := tb.node(parent.ChildIDs[beforeIdx-1]); prev != nil && prev.Type == dom.TextNodeType {
			prev.Data += data
			return
		}
	}

	node := tb.doc.NewTextNode(data, loc)
	id := tb.doc.RegisterNode(node)
	tb.insertNodeAt(id, at)
}

// addMissingAttributes merges token attributes into an existing element,
// keeping existing values (used for duplicate <html> and <body> tags).
func (tb *TreeBuilder) addMissingAttributes(id dom.NodeID, attrs []tokenizer.Attr) {
	n := tb.node(id)
	if n == nil || len(tb.templateModes) > 0 {
		return
	}
	for _, a := range attrs {
		if a.Namespace != "" {
			if !n.Attributes.HasNS(a.Namespace, a.Name) {
				n.Attributes.SetNS(a.Namespace, a.Name, a.Value)
			}
			continue
		}
		if !n.HasAttr(a.Name) {
			n.SetAttr(a.Name, a.Value)
		}
	}
}

func isAllWhitespace(s string) bool {
	for _, r := range s {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
		default:
			return false
		}
	}
	return true
}

func ptrToString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
