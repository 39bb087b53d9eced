package tokenizer

import (
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
)

// ParserData is the contextual information the tree builder supplies on
// every NextToken call. The adjusted current node's namespace is the only
// tree state the tokenizer depends on: it decides whether "<![CDATA[" opens
// a CDATA section or a bogus comment.
type ParserData struct {
	AdjustedNodeNamespace string
}

// Tokenizer is the HTML5 tokenization state machine. It pulls characters
// from the byte stream on demand and appends parse errors to the shared
// error log.
type Tokenizer struct {
	stream *bytestream.ByteStream
	log    *errors.Logger

	state     State
	textMode  State
	reconsume bool

	// diagnosedUpTo guards the input-stream character diagnostics against
	// double-reporting when a character is reconsumed.
	diagnosedUpTo int

	// Current tag token under construction.
	currentTagKind        TokenKind
	currentTagLoc         bytestream.Location
	currentTagName        []rune
	currentTagAttrs       []Attr
	currentTagAttrIndex   map[string]struct{}
	currentTagSelfClosing bool

	currentAttrName        []rune
	currentAttrValue       []rune
	currentAttrValueHasAmp bool

	currentComment    []rune
	currentCommentLoc bytestream.Location

	currentDoctypeLoc         bytestream.Location
	currentDoctypeName        []rune
	doctypePublic             []rune
	doctypePublicSet          bool
	doctypeSystem             []rune
	doctypeSystemSet          bool
	currentDoctypeForceQuirks bool

	// Appropriate-end-tag matching for RCDATA/RAWTEXT/script data.
	lastStartTagName string
	tempBuffer       []rune

	textBuffer   strings.Builder
	textHasAmp   bool
	textStartLoc bytestream.Location

	queue []Token

	allowCDATA bool

	unackedSelfClosing bool
	unackedLoc         bytestream.Location
}

// New creates a tokenizer over the stream, logging into log.
func New(stream *bytestream.ByteStream, log *errors.Logger) *Tokenizer {
	return &Tokenizer{
		stream:   stream,
		log:      log,
		state:    DataState,
		textMode: DataState,
	}
}

// SetState switches the tokenizer state. The tree builder uses this to
// enter RCDATA, RAWTEXT, script data, and PLAINTEXT for the corresponding
// elements.
func (t *Tokenizer) SetState(state State) {
	t.state = state
	switch state {
	case DataState, RCDATAState, RAWTEXTState, ScriptDataState, PLAINTEXTState, CDATASectionState:
		t.textMode = state
	}
}

// State returns the current state.
func (t *Tokenizer) State() State {
	return t.state
}

// SetLastStartTag seeds the appropriate-end-tag check, used when fragment
// parsing starts inside an RCDATA/RAWTEXT/script element.
func (t *Tokenizer) SetLastStartTag(name string) {
	t.lastStartTagName = name
}

// AcknowledgeSelfClosing marks the pending self-closing flag as honored.
// If a self-closing start tag is not acknowledged before the next token is
// requested, the tokenizer reports it as a parse error.
func (t *Tokenizer) AcknowledgeSelfClosing() {
	t.unackedSelfClosing = false
}

// InsertTokensAtQueueStart pushes tokens onto the front of the pending
// queue. The tree builder uses this to re-queue the sub-tokens of a mixed
// text split.
func (t *Tokenizer) InsertTokensAtQueueStart(tokens []Token) {
	if len(tokens) == 0 {
		return
	}
	t.queue = append(append([]Token(nil), tokens...), t.queue...)
}

// NextToken returns the next token. Once the stream is drained, EOF tokens
// are returned indefinitely. Each call either drains the queue or advances
// the byte stream.
func (t *Tokenizer) NextToken(pd ParserData) Token {
	t.allowCDATA = pd.AdjustedNodeNamespace != "" && pd.AdjustedNodeNamespace != constants.NamespaceHTML

	if t.unackedSelfClosing {
		t.log.Add(errors.NonVoidHTMLElementStartTagWithTrailingSolidus, t.unackedLoc.Line, t.unackedLoc.Column)
		t.unackedSelfClosing = false
	}

	for len(t.queue) == 0 {
		t.step()
	}
	tok := t.queue[0]
	t.queue = t.queue[1:]

	if tok.Kind == StartTag && tok.SelfClosing {
		t.unackedSelfClosing = true
		t.unackedLoc = tok.Location
	}
	return tok
}

//nolint:gocyclo // state machine dispatcher
func (t *Tokenizer) step() {
	switch t.state {
	case DataState:
		t.stateData()
	case RCDATAState:
		t.stateRCDATA()
	case RAWTEXTState:
		t.stateRawText(RAWTEXTLessThanSignState)
	case ScriptDataState:
		t.stateRawText(ScriptDataLessThanSignState)
	case PLAINTEXTState:
		t.statePlaintext()
	case TagOpenState:
		t.stateTagOpen()
	case EndTagOpenState:
		t.stateEndTagOpen()
	case TagNameState:
		t.stateTagName()
	case RCDATALessThanSignState:
		t.stateTextLessThanSign(RCDATAState, RCDATAEndTagOpenState)
	case RCDATAEndTagOpenState:
		t.stateTextEndTagOpen(RCDATAState, RCDATAEndTagNameState)
	case RCDATAEndTagNameState:
		t.stateTextEndTagName(RCDATAState)
	case RAWTEXTLessThanSignState:
		t.stateTextLessThanSign(RAWTEXTState, RAWTEXTEndTagOpenState)
	case RAWTEXTEndTagOpenState:
		t.stateTextEndTagOpen(RAWTEXTState, RAWTEXTEndTagNameState)
	case RAWTEXTEndTagNameState:
		t.stateTextEndTagName(RAWTEXTState)
	case ScriptDataLessThanSignState:
		t.stateScriptDataLessThanSign()
	case ScriptDataEndTagOpenState:
		t.stateTextEndTagOpen(ScriptDataState, ScriptDataEndTagNameState)
	case ScriptDataEndTagNameState:
		t.stateTextEndTagName(ScriptDataState)
	case ScriptDataEscapeStartState:
		t.stateScriptDataEscapeStart()
	case ScriptDataEscapeStartDashState:
		t.stateScriptDataEscapeStartDash()
	case ScriptDataEscapedState:
		t.stateScriptDataEscaped()
	case ScriptDataEscapedDashState:
		t.stateScriptDataEscapedDash()
	case ScriptDataEscapedDashDashState:
		t.stateScriptDataEscapedDashDash()
	case ScriptDataEscapedLessThanSignState:
		t.stateScriptDataEscapedLessThanSign()
	case ScriptDataEscapedEndTagOpenState:
		t.stateTextEndTagOpen(ScriptDataEscapedState, ScriptDataEscapedEndTagNameState)
	case ScriptDataEscapedEndTagNameState:
		t.stateTextEndTagName(ScriptDataEscapedState)
	case ScriptDataDoubleEscapeStartState:
		t.stateScriptDataDoubleEscapeStart()
	case ScriptDataDoubleEscapedState:
		t.stateScriptDataDoubleEscaped()
	case ScriptDataDoubleEscapedDashState:
		t.stateScriptDataDoubleEscapedDash()
	case ScriptDataDoubleEscapedDashDashState:
		t.stateScriptDataDoubleEscapedDashDash()
	case ScriptDataDoubleEscapedLessThanSignState:
		t.stateScriptDataDoubleEscapedLessThanSign()
	case ScriptDataDoubleEscapeEndState:
		t.stateScriptDataDoubleEscapeEnd()
	case BeforeAttributeNameState:
		t.stateBeforeAttributeName()
	case AttributeNameState:
		t.stateAttributeName()
	case AfterAttributeNameState:
		t.stateAfterAttributeName()
	case BeforeAttributeValueState:
		t.stateBeforeAttributeValue()
	case AttributeValueDoubleQuotedState:
		t.stateAttributeValueQuoted('"')
	case AttributeValueSingleQuotedState:
		t.stateAttributeValueQuoted('\'')
	case AttributeValueUnquotedState:
		t.stateAttributeValueUnquoted()
	case AfterAttributeValueQuotedState:
		t.stateAfterAttributeValueQuoted()
	case SelfClosingStartTagState:
		t.stateSelfClosingStartTag()
	case BogusCommentState:
		t.stateBogusComment()
	case MarkupDeclarationOpenState:
		t.stateMarkupDeclarationOpen()
	case CommentStartState:
		t.stateCommentStart()
	case CommentStartDashState:
		t.stateCommentStartDash()
	case CommentState:
		t.stateComment()
	case CommentLessThanSignState:
		t.stateCommentLessThanSign()
	case CommentLessThanSignBangState:
		t.stateCommentLessThanSignBang()
	case CommentLessThanSignBangDashState:
		t.stateCommentLessThanSignBangDash()
	case CommentLessThanSignBangDashDashState:
		t.stateCommentLessThanSignBangDashDash()
	case CommentEndDashState:
		t.stateCommentEndDash()
	case CommentEndState:
		t.stateCommentEnd()
	case CommentEndBangState:
		t.stateCommentEndBang()
	case DOCTYPEState:
		t.stateDoctype()
	case BeforeDOCTYPENameState:
		t.stateBeforeDoctypeName()
	case DOCTYPENameState:
		t.stateDoctypeName()
	case AfterDOCTYPENameState:
		t.stateAfterDoctypeName()
	case AfterDOCTYPEPublicKeywordState:
		t.stateAfterDoctypePublicKeyword()
	case BeforeDOCTYPEPublicIdentifierState:
		t.stateBeforeDoctypePublicIdentifier()
	case DOCTYPEPublicIdentifierDoubleQuotedState:
		t.stateDoctypePublicIdentifier('"')
	case DOCTYPEPublicIdentifierSingleQuotedState:
		t.stateDoctypePublicIdentifier('\'')
	case AfterDOCTYPEPublicIdentifierState:
		t.stateAfterDoctypePublicIdentifier()
	case BetweenDOCTYPEPublicAndSystemIdentifiersState:
		t.stateBetweenDoctypePublicAndSystemIdentifiers()
	case AfterDOCTYPESystemKeywordState:
		t.stateAfterDoctypeSystemKeyword()
	case BeforeDOCTYPESystemIdentifierState:
		t.stateBeforeDoctypeSystemIdentifier()
	case DOCTYPESystemIdentifierDoubleQuotedState:
		t.stateDoctypeSystemIdentifier('"')
	case DOCTYPESystemIdentifierSingleQuotedState:
		t.stateDoctypeSystemIdentifier('\'')
	case AfterDOCTYPESystemIdentifierState:
		t.stateAfterDoctypeSystemIdentifier()
	case BogusDOCTYPEState:
		t.stateBogusDoctype()
	case CDATASectionState:
		t.stateCDATASection()
	case CDATASectionBracketState:
		t.stateCDATASectionBracket()
	case CDATASectionEndState:
		t.stateCDATASectionEnd()
	default:
		t.state = DataState
	}
}

// getChar consumes the next character. Surrogates are diagnosed and handed
// back as U+FFFD; control characters and noncharacters are diagnosed once
// and passed through. The second return is false at end of data.
func (t *Tokenizer) getChar() (rune, bool) {
	if t.reconsume {
		t.reconsume = false
		t.stream.Prev()
	}

	pos := t.stream.Tell()
	loc := t.stream.Location()
	c := t.stream.ReadAndNext()

	switch c.Kind {
	case bytestream.StreamEnd, bytestream.StreamEmpty:
		return 0, false
	case bytestream.CharSurrogate:
		if pos >= t.diagnosedUpTo {
			t.log.Add(errors.SurrogateInInputStream, loc.Line, loc.Column)
			t.diagnosedUpTo = pos + 1
		}
		return '�', true
	}

	r := c.Rune
	if pos >= t.diagnosedUpTo {
		if constants.IsControl(r) {
			t.log.Add(errors.ControlCharacterInInputStream, loc.Line, loc.Column)
		} else if constants.IsNoncharacter(r) {
			t.log.Add(errors.NoncharacterInInputStream, loc.Line, loc.Column)
		}
		t.diagnosedUpTo = pos + 1
	}
	return r, true
}

func (t *Tokenizer) reconsumeCurrent() {
	t.reconsume = true
}

func (t *Tokenizer) emitError(code string) {
	loc := t.stream.Location()
	t.log.Add(code, loc.Line, loc.Column)
}

func (t *Tokenizer) emit(tok Token) {
	t.queue = append(t.queue, tok)
}

func (t *Tokenizer) emitEOF() {
	t.flushText()
	t.emit(Token{Kind: EOF, Location: t.stream.Location()})
}

// consumeCaseInsensitive consumes lit when the upcoming characters match it
// ASCII case-insensitively.
func (t *Tokenizer) consumeCaseInsensitive(lit string) bool {
	offset := 0
	if t.reconsume {
		offset = -1
	}
	for i, want := range lit {
		c := t.stream.LookAhead(offset + i)
		if c.Kind != bytestream.CharRune || constants.ToLower(c.Rune) != constants.ToLower(want) {
			return false
		}
	}
	t.reconsume = false
	t.stream.NextN(offset + len(lit))
	return true
}

// consumeIf consumes lit on an exact match.
func (t *Tokenizer) consumeIf(lit string) bool {
	offset := 0
	if t.reconsume {
		offset = -1
	}
	for i, want := range lit {
		c := t.stream.LookAhead(offset + i)
		if !c.IsRune(want) {
			return false
		}
	}
	t.reconsume = false
	t.stream.NextN(offset + len(lit))
	return true
}

// Text buffering. Text is accumulated across state steps and flushed as a
// single Text token; character references are decoded at flush time for the
// Data and RCDATA modes.

func (t *Tokenizer) appendTextRune(r rune) {
	if t.textBuffer.Len() == 0 {
		t.textStartLoc = t.stream.Location()
	}
	if r == '&' {
		t.textHasAmp = true
	}
	t.textBuffer.WriteRune(r)
}

func (t *Tokenizer) flushText() {
	if t.textBuffer.Len() == 0 {
		return
	}
	data := t.textBuffer.String()
	t.textBuffer.Reset()

	if (t.textMode == DataState || t.textMode == RCDATAState) && t.textHasAmp {
		data = t.decodeEntitiesInText(data, false)
	}
	t.textHasAmp = false

	t.emit(Token{Kind: Text, Data: data, Location: t.textStartLoc})
}

// Tag construction.

func (t *Tokenizer) startTag(kind TokenKind, first rune) {
	t.currentTagKind = kind
	t.currentTagLoc = t.stream.Location()
	t.currentTagName = t.currentTagName[:0]
	t.currentTagAttrs = t.currentTagAttrs[:0]
	t.currentTagAttrIndex = make(map[string]struct{}, 4)
	t.currentAttrName = t.currentAttrName[:0]
	t.currentAttrValue = t.currentAttrValue[:0]
	t.currentAttrValueHasAmp = false
	t.currentTagSelfClosing = false
	t.currentTagName = append(t.currentTagName, constants.ToLower(first))
}

func (t *Tokenizer) finishAttribute() {
	if len(t.currentAttrName) == 0 {
		return
	}
	name := internAttr(string(t.currentAttrName))
	t.currentAttrName = t.currentAttrName[:0]

	if _, exists := t.currentTagAttrIndex[name]; exists {
		t.emitError(errors.DuplicateAttribute)
		t.currentAttrValue = t.currentAttrValue[:0]
		t.currentAttrValueHasAmp = false
		return
	}

	value := ""
	if len(t.currentAttrValue) > 0 {
		value = string(t.currentAttrValue)
	}
	if t.currentAttrValueHasAmp {
		value = t.decodeEntitiesInText(value, true)
	}
	t.currentTagAttrs = append(t.currentTagAttrs, Attr{Name: name, Value: value})
	t.currentTagAttrIndex[name] = struct{}{}

	t.currentAttrValue = t.currentAttrValue[:0]
	t.currentAttrValueHasAmp = false
}

func (t *Tokenizer) emitCurrentTag() {
	t.finishAttribute()
	name := internTag(string(t.currentTagName))
	var attrs []Attr
	if t.currentTagKind == StartTag {
		attrs = append([]Attr(nil), t.currentTagAttrs...)
	} else {
		if len(t.currentTagAttrs) > 0 {
			t.emitError(errors.EndTagWithAttributes)
		}
		if t.currentTagSelfClosing {
			t.emitError(errors.EndTagWithTrailingSolidus)
			t.currentTagSelfClosing = false
		}
	}

	tok := Token{
		Kind:        t.currentTagKind,
		Name:        name,
		Attrs:       attrs,
		SelfClosing: t.currentTagSelfClosing,
		Location:    t.currentTagLoc,
	}
	if tok.Kind == StartTag {
		t.lastStartTagName = name
	}

	t.currentTagName = t.currentTagName[:0]
	t.currentTagAttrs = t.currentTagAttrs[:0]
	t.currentTagAttrIndex = nil
	t.currentTagSelfClosing = false
	t.currentTagKind = StartTag

	t.emit(tok)
}

func (t *Tokenizer) emitComment() {
	data := string(t.currentComment)
	t.currentComment = t.currentComment[:0]
	t.emit(Token{Kind: Comment, Data: data, Location: t.currentCommentLoc})
}

func (t *Tokenizer) emitDoctype() {
	tok := Token{
		Kind:        DOCTYPE,
		Name:        string(t.currentDoctypeName),
		ForceQuirks: t.currentDoctypeForceQuirks,
		Location:    t.currentDoctypeLoc,
	}
	if t.doctypePublicSet {
		s := string(t.doctypePublic)
		tok.PublicID = &s
	}
	if t.doctypeSystemSet {
		s := string(t.doctypeSystem)
		tok.SystemID = &s
	}
	t.emit(tok)
}

func (t *Tokenizer) resetDoctype() {
	t.currentDoctypeLoc = t.stream.Location()
	t.currentDoctypeName = t.currentDoctypeName[:0]
	t.doctypePublic = t.doctypePublic[:0]
	t.doctypePublicSet = false
	t.doctypeSystem = t.doctypeSystem[:0]
	t.doctypeSystemSet = false
	t.currentDoctypeForceQuirks = false
}

// Data, RCDATA, RAWTEXT, script data, PLAINTEXT.

func (t *Tokenizer) stateData() {
	t.textMode = DataState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.flushText()
			t.state = TagOpenState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			// U+0000 stays in the data; the tree builder decides its fate.
			t.appendTextRune(0)
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateRCDATA() {
	t.textMode = RCDATAState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.state = RCDATALessThanSignState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
		default:
			t.appendTextRune(c)
		}
	}
}

// stateRawText handles both RAWTEXT and script data; they differ only in
// which less-than-sign state they enter.
func (t *Tokenizer) stateRawText(ltState State) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.state = ltState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) statePlaintext() {
	t.textMode = PLAINTEXTState
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitEOF()
			return
		}
		if c == 0 {
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
			continue
		}
		t.appendTextRune(c)
	}
}

// Tag open / name.

func (t *Tokenizer) stateTagOpen() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFBeforeTagName)
		t.appendTextRune('<')
		t.emitEOF()
		return
	}
	switch {
	case c == '!':
		t.state = MarkupDeclarationOpenState
	case c == '/':
		t.state = EndTagOpenState
	case c == '?':
		t.emitError(errors.UnexpectedQuestionMarkInsteadOfTagName)
		t.currentComment = t.currentComment[:0]
		t.currentCommentLoc = t.stream.Location()
		t.reconsumeCurrent()
		t.state = BogusCommentState
	case constants.IsASCIIAlpha(c):
		t.startTag(StartTag, c)
		t.state = TagNameState
	default:
		t.emitError(errors.InvalidFirstCharacterOfTagName)
		t.appendTextRune('<')
		t.reconsumeCurrent()
		t.state = DataState
	}
}

func (t *Tokenizer) stateEndTagOpen() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFBeforeTagName)
		t.appendTextRune('<')
		t.appendTextRune('/')
		t.emitEOF()
		return
	}
	switch {
	case c == '>':
		t.emitError(errors.MissingEndTagName)
		t.state = DataState
	case constants.IsASCIIAlpha(c):
		t.startTag(EndTag, c)
		t.state = TagNameState
	default:
		t.emitError(errors.InvalidFirstCharacterOfTagName)
		t.currentComment = t.currentComment[:0]
		t.currentCommentLoc = t.stream.Location()
		t.reconsumeCurrent()
		t.state = BogusCommentState
	}
}

func (t *Tokenizer) stateTagName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInTag)
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.state = BeforeAttributeNameState
			return
		case c == '/':
			t.state = SelfClosingStartTagState
			return
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		case c == 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentTagName = append(t.currentTagName, '�')
		default:
			t.currentTagName = append(t.currentTagName, constants.ToLower(c))
		}
	}
}

// RCDATA/RAWTEXT/script end-tag matching. These states share shape: "</"
// followed by the appropriate end tag re-enters tag parsing, anything else
// is literal text.

func (t *Tokenizer) stateTextLessThanSign(textState, endTagOpenState State) {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.state = endTagOpenState
		return
	}
	t.appendTextRune('<')
	if ok {
		t.reconsumeCurrent()
	}
	t.state = textState
}

func (t *Tokenizer) stateTextEndTagOpen(textState, endTagNameState State) {
	c, ok := t.getChar()
	if ok && constants.IsASCIIAlpha(c) {
		t.startTag(EndTag, c)
		t.tempBuffer = append(t.tempBuffer, c)
		t.state = endTagNameState
		return
	}
	t.appendTextRune('<')
	t.appendTextRune('/')
	if ok {
		t.reconsumeCurrent()
	}
	t.state = textState
}

func (t *Tokenizer) stateTextEndTagName(textState State) {
	for {
		c, ok := t.getChar()
		if ok {
			switch {
			case (c == '\t' || c == '\n' || c == '\f' || c == ' ') && t.isAppropriateEndTag():
				t.flushTextBeforeTag()
				t.state = BeforeAttributeNameState
				return
			case c == '/' && t.isAppropriateEndTag():
				t.flushTextBeforeTag()
				t.state = SelfClosingStartTagState
				return
			case c == '>' && t.isAppropriateEndTag():
				t.flushTextBeforeTag()
				t.emitCurrentTag()
				t.state = DataState
				return
			case constants.IsASCIIAlpha(c):
				t.currentTagName = append(t.currentTagName, constants.ToLower(c))
				t.tempBuffer = append(t.tempBuffer, c)
				continue
			}
		}
		// Not an appropriate end tag: emit the buffered "</" + name as text.
		t.appendTextRune('<')
		t.appendTextRune('/')
		for _, r := range t.tempBuffer {
			t.appendTextRune(r)
		}
		t.currentTagName = t.currentTagName[:0]
		t.currentTagKind = StartTag
		if ok {
			t.reconsumeCurrent()
		}
		t.state = textState
		return
	}
}

// flushTextBeforeTag flushes accumulated raw text so it precedes the end
// tag token in the queue.
func (t *Tokenizer) flushTextBeforeTag() {
	t.flushText()
}

func (t *Tokenizer) isAppropriateEndTag() bool {
	return t.lastStartTagName != "" && string(t.currentTagName) == t.lastStartTagName
}

// Script data escaping states.

func (t *Tokenizer) stateScriptDataLessThanSign() {
	c, ok := t.getChar()
	if ok {
		switch c {
		case '/':
			t.tempBuffer = t.tempBuffer[:0]
			t.state = ScriptDataEndTagOpenState
			return
		case '!':
			t.appendTextRune('<')
			t.appendTextRune('!')
			t.state = ScriptDataEscapeStartState
			return
		}
	}
	t.appendTextRune('<')
	if ok {
		t.reconsumeCurrent()
	}
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscapeStart() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.appendTextRune('-')
		t.state = ScriptDataEscapeStartDashState
		return
	}
	if ok {
		t.reconsumeCurrent()
	}
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscapeStartDash() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.appendTextRune('-')
		t.state = ScriptDataEscapedDashDashState
		return
	}
	if ok {
		t.reconsumeCurrent()
	}
	t.state = ScriptDataState
}

func (t *Tokenizer) stateScriptDataEscaped() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInScriptHTMLCommentLikeText)
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
			t.state = ScriptDataEscapedDashState
			return
		case '<':
			t.state = ScriptDataEscapedLessThanSignState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateScriptDataEscapedDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
		t.state = ScriptDataEscapedDashDashState
	case '<':
		t.state = ScriptDataEscapedLessThanSignState
	case 0:
		t.emitError(errors.UnexpectedNullCharacter)
		t.appendTextRune('�')
		t.state = ScriptDataEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataEscapedState
	}
}

func (t *Tokenizer) stateScriptDataEscapedDashDash() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInScriptHTMLCommentLikeText)
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
		case '<':
			t.state = ScriptDataEscapedLessThanSignState
			return
		case '>':
			t.appendTextRune('>')
			t.state = ScriptDataState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
			t.state = ScriptDataEscapedState
			return
		default:
			t.appendTextRune(c)
			t.state = ScriptDataEscapedState
			return
		}
	}
}

func (t *Tokenizer) stateScriptDataEscapedLessThanSign() {
	c, ok := t.getChar()
	if ok {
		if c == '/' {
			t.tempBuffer = t.tempBuffer[:0]
			t.state = ScriptDataEscapedEndTagOpenState
			return
		}
		if constants.IsASCIIAlpha(c) {
			t.tempBuffer = t.tempBuffer[:0]
			t.appendTextRune('<')
			t.reconsumeCurrent()
			t.state = ScriptDataDoubleEscapeStartState
			return
		}
	}
	t.appendTextRune('<')
	if ok {
		t.reconsumeCurrent()
	}
	t.state = ScriptDataEscapedState
}

func (t *Tokenizer) stateScriptDataDoubleEscapeStart() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.state = ScriptDataEscapedState
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
			t.appendTextRune(c)
			if string(t.tempBuffer) == "script" {
				t.state = ScriptDataDoubleEscapedState
			} else {
				t.state = ScriptDataEscapedState
			}
			return
		case constants.IsASCIIAlpha(c):
			t.tempBuffer = append(t.tempBuffer, constants.ToLower(c))
			t.appendTextRune(c)
		default:
			t.reconsumeCurrent()
			t.state = ScriptDataEscapedState
			return
		}
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscaped() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInScriptHTMLCommentLikeText)
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
			t.state = ScriptDataDoubleEscapedDashState
			return
		case '<':
			t.appendTextRune('<')
			t.state = ScriptDataDoubleEscapedLessThanSignState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
		default:
			t.appendTextRune(c)
		}
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInScriptHTMLCommentLikeText)
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.appendTextRune('-')
		t.state = ScriptDataDoubleEscapedDashDashState
	case '<':
		t.appendTextRune('<')
		t.state = ScriptDataDoubleEscapedLessThanSignState
	case 0:
		t.emitError(errors.UnexpectedNullCharacter)
		t.appendTextRune('�')
		t.state = ScriptDataDoubleEscapedState
	default:
		t.appendTextRune(c)
		t.state = ScriptDataDoubleEscapedState
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedDashDash() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInScriptHTMLCommentLikeText)
			t.emitEOF()
			return
		}
		switch c {
		case '-':
			t.appendTextRune('-')
		case '<':
			t.appendTextRune('<')
			t.state = ScriptDataDoubleEscapedLessThanSignState
			return
		case '>':
			t.appendTextRune('>')
			t.state = ScriptDataState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.appendTextRune('�')
			t.state = ScriptDataDoubleEscapedState
			return
		default:
			t.appendTextRune(c)
			t.state = ScriptDataDoubleEscapedState
			return
		}
	}
}

func (t *Tokenizer) stateScriptDataDoubleEscapedLessThanSign() {
	c, ok := t.getChar()
	if ok && c == '/' {
		t.tempBuffer = t.tempBuffer[:0]
		t.appendTextRune('/')
		t.state = ScriptDataDoubleEscapeEndState
		return
	}
	if ok {
		t.reconsumeCurrent()
	}
	t.state = ScriptDataDoubleEscapedState
}

func (t *Tokenizer) stateScriptDataDoubleEscapeEnd() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.state = ScriptDataDoubleEscapedState
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
			t.appendTextRune(c)
			if string(t.tempBuffer) == "script" {
				t.state = ScriptDataEscapedState
			} else {
				t.state = ScriptDataDoubleEscapedState
			}
			return
		case constants.IsASCIIAlpha(c):
			t.tempBuffer = append(t.tempBuffer, constants.ToLower(c))
			t.appendTextRune(c)
		default:
			t.reconsumeCurrent()
			t.state = ScriptDataDoubleEscapedState
			return
		}
	}
}

// Attributes.

func (t *Tokenizer) stateBeforeAttributeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.state = AfterAttributeNameState
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			continue
		case c == '/' || c == '>':
			t.reconsumeCurrent()
			t.state = AfterAttributeNameState
			return
		case c == '=':
			t.emitError(errors.UnexpectedEqualsSignBeforeAttributeName)
			t.finishAttribute()
			t.currentAttrName = append(t.currentAttrName[:0], c)
			t.state = AttributeNameState
			return
		default:
			t.finishAttribute()
			t.reconsumeCurrent()
			t.state = AttributeNameState
			return
		}
	}
}

func (t *Tokenizer) stateAttributeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.state = AfterAttributeNameState
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ' || c == '/' || c == '>':
			t.reconsumeCurrent()
			t.state = AfterAttributeNameState
			return
		case c == '=':
			t.state = BeforeAttributeValueState
			return
		case c == 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentAttrName = append(t.currentAttrName, '�')
		case c == '"' || c == '\'' || c == '<':
			t.emitError(errors.UnexpectedCharacterInAttributeName)
			t.currentAttrName = append(t.currentAttrName, c)
		default:
			t.currentAttrName = append(t.currentAttrName, constants.ToLower(c))
		}
	}
}

func (t *Tokenizer) stateAfterAttributeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInTag)
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			continue
		case c == '/':
			t.finishAttribute()
			t.state = SelfClosingStartTagState
			return
		case c == '=':
			t.state = BeforeAttributeValueState
			return
		case c == '>':
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.finishAttribute()
			t.reconsumeCurrent()
			t.state = AttributeNameState
			return
		}
	}
}

func (t *Tokenizer) stateBeforeAttributeValue() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.state = AttributeValueUnquotedState
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '"':
			t.state = AttributeValueDoubleQuotedState
			return
		case '\'':
			t.state = AttributeValueSingleQuotedState
			return
		case '>':
			t.emitError(errors.MissingAttributeValue)
			t.finishAttribute()
			t.emitCurrentTag()
			t.state = DataState
			return
		default:
			t.reconsumeCurrent()
			t.state = AttributeValueUnquotedState
			return
		}
	}
}

func (t *Tokenizer) stateAttributeValueQuoted(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInTag)
			t.emitEOF()
			return
		}
		switch c {
		case quote:
			t.state = AfterAttributeValueQuotedState
			return
		case '&':
			t.currentAttrValueHasAmp = true
			t.currentAttrValue = append(t.currentAttrValue, '&')
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentAttrValue = append(t.currentAttrValue, '�')
		default:
			t.currentAttrValue = append(t.currentAttrValue, c)
		}
	}
}

func (t *Tokenizer) stateAttributeValueUnquoted() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInTag)
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.state = BeforeAttributeNameState
			return
		case c == '&':
			t.currentAttrValueHasAmp = true
			t.currentAttrValue = append(t.currentAttrValue, '&')
		case c == '>':
			t.emitCurrentTag()
			t.state = DataState
			return
		case c == 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentAttrValue = append(t.currentAttrValue, '�')
		case c == '"' || c == '\'' || c == '<' || c == '=' || c == '`':
			t.emitError(errors.UnexpectedCharacterInUnquotedAttributeValue)
			t.currentAttrValue = append(t.currentAttrValue, c)
		default:
			t.currentAttrValue = append(t.currentAttrValue, c)
		}
	}
}

func (t *Tokenizer) stateAfterAttributeValueQuoted() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInTag)
		t.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.finishAttribute()
		t.state = BeforeAttributeNameState
	case '/':
		t.finishAttribute()
		t.state = SelfClosingStartTagState
	case '>':
		t.finishAttribute()
		t.emitCurrentTag()
		t.state = DataState
	default:
		t.emitError(errors.MissingWhitespaceBetweenAttributes)
		t.finishAttribute()
		t.reconsumeCurrent()
		t.state = BeforeAttributeNameState
	}
}

func (t *Tokenizer) stateSelfClosingStartTag() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInTag)
		t.emitEOF()
		return
	}
	if c == '>' {
		t.currentTagSelfClosing = true
		t.emitCurrentTag()
		t.state = DataState
		return
	}
	t.emitError(errors.UnexpectedSolidusInTag)
	t.reconsumeCurrent()
	t.state = BeforeAttributeNameState
}

// Markup declaration, comments, bogus comment.

func (t *Tokenizer) stateMarkupDeclarationOpen() {
	if t.consumeIf("--") {
		t.currentComment = t.currentComment[:0]
		t.currentCommentLoc = t.stream.Location()
		t.state = CommentStartState
		return
	}
	if t.consumeCaseInsensitive("doctype") {
		t.state = DOCTYPEState
		return
	}
	if t.consumeIf("[CDATA[") {
		if t.allowCDATA {
			t.flushText()
			t.textMode = CDATASectionState
			t.state = CDATASectionState
			return
		}
		t.emitError(errors.CDATAInHTMLContent)
		t.currentComment = append(t.currentComment[:0], []rune("[CDATA[")...)
		t.currentCommentLoc = t.stream.Location()
		t.state = BogusCommentState
		return
	}
	t.emitError(errors.IncorrectlyOpenedComment)
	t.currentComment = t.currentComment[:0]
	t.currentCommentLoc = t.stream.Location()
	t.state = BogusCommentState
}

func (t *Tokenizer) stateBogusComment() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitComment()
			t.emitEOF()
			return
		}
		switch c {
		case '>':
			t.emitComment()
			t.state = DataState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentComment = append(t.currentComment, '�')
		default:
			t.currentComment = append(t.currentComment, c)
		}
	}
}

func (t *Tokenizer) stateCommentStart() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInComment)
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.state = CommentStartDashState
	case '>':
		t.emitError(errors.AbruptClosingOfEmptyComment)
		t.emitComment()
		t.state = DataState
	default:
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateCommentStartDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInComment)
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.state = CommentEndState
	case '>':
		t.emitError(errors.AbruptClosingOfEmptyComment)
		t.emitComment()
		t.state = DataState
	default:
		t.currentComment = append(t.currentComment, '-')
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateComment() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInComment)
			t.emitComment()
			t.emitEOF()
			return
		}
		switch c {
		case '<':
			t.currentComment = append(t.currentComment, c)
			t.state = CommentLessThanSignState
			return
		case '-':
			t.state = CommentEndDashState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentComment = append(t.currentComment, '�')
		default:
			t.currentComment = append(t.currentComment, c)
		}
	}
}

func (t *Tokenizer) stateCommentLessThanSign() {
	c, ok := t.getChar()
	if !ok {
		t.reconsumeCurrent()
		t.state = CommentState
		return
	}
	switch c {
	case '!':
		t.currentComment = append(t.currentComment, c)
		t.state = CommentLessThanSignBangState
	case '<':
		t.currentComment = append(t.currentComment, c)
	default:
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

func (t *Tokenizer) stateCommentLessThanSignBang() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.state = CommentLessThanSignBangDashState
		return
	}
	if ok {
		t.reconsumeCurrent()
	}
	t.state = CommentState
}

func (t *Tokenizer) stateCommentLessThanSignBangDash() {
	c, ok := t.getChar()
	if ok && c == '-' {
		t.state = CommentLessThanSignBangDashDashState
		return
	}
	if ok {
		t.reconsumeCurrent()
	}
	t.state = CommentEndDashState
}

func (t *Tokenizer) stateCommentLessThanSignBangDashDash() {
	c, ok := t.getChar()
	if !ok || c == '>' {
		if ok {
			t.reconsumeCurrent()
		}
		t.state = CommentEndState
		return
	}
	t.emitError(errors.NestedComment)
	t.reconsumeCurrent()
	t.state = CommentEndState
}

func (t *Tokenizer) stateCommentEndDash() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInComment)
		t.emitComment()
		t.emitEOF()
		return
	}
	if c == '-' {
		t.state = CommentEndState
		return
	}
	t.currentComment = append(t.currentComment, '-')
	t.reconsumeCurrent()
	t.state = CommentState
}

func (t *Tokenizer) stateCommentEnd() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInComment)
			t.emitComment()
			t.emitEOF()
			return
		}
		switch c {
		case '>':
			t.emitComment()
			t.state = DataState
			return
		case '!':
			t.state = CommentEndBangState
			return
		case '-':
			t.currentComment = append(t.currentComment, '-')
		default:
			t.currentComment = append(t.currentComment, '-', '-')
			t.reconsumeCurrent()
			t.state = CommentState
			return
		}
	}
}

func (t *Tokenizer) stateCommentEndBang() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInComment)
		t.emitComment()
		t.emitEOF()
		return
	}
	switch c {
	case '-':
		t.currentComment = append(t.currentComment, '-', '-', '!')
		t.state = CommentEndDashState
	case '>':
		t.emitError(errors.IncorrectlyClosedComment)
		t.emitComment()
		t.state = DataState
	default:
		t.currentComment = append(t.currentComment, '-', '-', '!')
		t.reconsumeCurrent()
		t.state = CommentState
	}
}

// DOCTYPE states.

func (t *Tokenizer) stateDoctype() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInDoctype)
		t.resetDoctype()
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.state = BeforeDOCTYPENameState
	case '>':
		t.reconsumeCurrent()
		t.state = BeforeDOCTYPENameState
	default:
		t.emitError(errors.MissingWhitespaceBeforeDoctypeName)
		t.reconsumeCurrent()
		t.state = BeforeDOCTYPENameState
	}
}

func (t *Tokenizer) stateBeforeDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.resetDoctype()
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			continue
		case c == '>':
			t.emitError(errors.MissingDoctypeName)
			t.resetDoctype()
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		case c == 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.resetDoctype()
			t.currentDoctypeName = append(t.currentDoctypeName, '�')
			t.state = DOCTYPENameState
			return
		default:
			t.resetDoctype()
			t.currentDoctypeName = append(t.currentDoctypeName, constants.ToLower(c))
			t.state = DOCTYPENameState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			t.state = AfterDOCTYPENameState
			return
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		case c == 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.currentDoctypeName = append(t.currentDoctypeName, '�')
		default:
			t.currentDoctypeName = append(t.currentDoctypeName, constants.ToLower(c))
		}
	}
}

func (t *Tokenizer) stateAfterDoctypeName() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch {
		case c == '\t' || c == '\n' || c == '\f' || c == ' ':
			continue
		case c == '>':
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.reconsumeCurrent()
			if t.consumeCaseInsensitive("public") {
				t.state = AfterDOCTYPEPublicKeywordState
				return
			}
			if t.consumeCaseInsensitive("system") {
				t.state = AfterDOCTYPESystemKeywordState
				return
			}
			t.reconsume = false
			t.emitError(errors.InvalidCharacterSequenceAfterDoctypeName)
			t.currentDoctypeForceQuirks = true
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateAfterDoctypePublicKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInDoctype)
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.state = BeforeDOCTYPEPublicIdentifierState
	case '"':
		t.emitError(errors.MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctypePublicSet = true
		t.state = DOCTYPEPublicIdentifierDoubleQuotedState
	case '\'':
		t.emitError(errors.MissingWhitespaceAfterDoctypePublicKeyword)
		t.doctypePublicSet = true
		t.state = DOCTYPEPublicIdentifierSingleQuotedState
	case '>':
		t.emitError(errors.MissingDoctypePublicIdentifier)
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError(errors.MissingQuoteBeforeDoctypePublicIdentifier)
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateBeforeDoctypePublicIdentifier() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '"':
			t.doctypePublicSet = true
			t.state = DOCTYPEPublicIdentifierDoubleQuotedState
			return
		case '\'':
			t.doctypePublicSet = true
			t.state = DOCTYPEPublicIdentifierSingleQuotedState
			return
		case '>':
			t.emitError(errors.MissingDoctypePublicIdentifier)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError(errors.MissingQuoteBeforeDoctypePublicIdentifier)
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypePublicIdentifier(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case quote:
			t.state = AfterDOCTYPEPublicIdentifierState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.doctypePublic = append(t.doctypePublic, '�')
		case '>':
			t.emitError(errors.AbruptDoctypePublicIdentifier)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.doctypePublic = append(t.doctypePublic, c)
		}
	}
}

func (t *Tokenizer) stateAfterDoctypePublicIdentifier() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInDoctype)
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.state = BetweenDOCTYPEPublicAndSystemIdentifiersState
	case '>':
		t.emitDoctype()
		t.state = DataState
	case '"':
		t.emitError(errors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctypeSystemSet = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case '\'':
		t.emitError(errors.MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers)
		t.doctypeSystemSet = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	default:
		t.emitError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateBetweenDoctypePublicAndSystemIdentifiers() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '>':
			t.emitDoctype()
			t.state = DataState
			return
		case '"':
			t.doctypeSystemSet = true
			t.state = DOCTYPESystemIdentifierDoubleQuotedState
			return
		case '\'':
			t.doctypeSystemSet = true
			t.state = DOCTYPESystemIdentifierSingleQuotedState
			return
		default:
			t.emitError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemKeyword() {
	c, ok := t.getChar()
	if !ok {
		t.emitError(errors.EOFInDoctype)
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.emitEOF()
		return
	}
	switch c {
	case '\t', '\n', '\f', ' ':
		t.state = BeforeDOCTYPESystemIdentifierState
	case '"':
		t.emitError(errors.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctypeSystemSet = true
		t.state = DOCTYPESystemIdentifierDoubleQuotedState
	case '\'':
		t.emitError(errors.MissingWhitespaceAfterDoctypeSystemKeyword)
		t.doctypeSystemSet = true
		t.state = DOCTYPESystemIdentifierSingleQuotedState
	case '>':
		t.emitError(errors.MissingDoctypeSystemIdentifier)
		t.currentDoctypeForceQuirks = true
		t.emitDoctype()
		t.state = DataState
	default:
		t.emitError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
		t.currentDoctypeForceQuirks = true
		t.reconsumeCurrent()
		t.state = BogusDOCTYPEState
	}
}

func (t *Tokenizer) stateBeforeDoctypeSystemIdentifier() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '"':
			t.doctypeSystemSet = true
			t.state = DOCTYPESystemIdentifierDoubleQuotedState
			return
		case '\'':
			t.doctypeSystemSet = true
			t.state = DOCTYPESystemIdentifierSingleQuotedState
			return
		case '>':
			t.emitError(errors.MissingDoctypeSystemIdentifier)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError(errors.MissingQuoteBeforeDoctypeSystemIdentifier)
			t.currentDoctypeForceQuirks = true
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateDoctypeSystemIdentifier(quote rune) {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case quote:
			t.state = AfterDOCTYPESystemIdentifierState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
			t.doctypeSystem = append(t.doctypeSystem, '�')
		case '>':
			t.emitError(errors.AbruptDoctypeSystemIdentifier)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.doctypeSystem = append(t.doctypeSystem, c)
		}
	}
}

func (t *Tokenizer) stateAfterDoctypeSystemIdentifier() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInDoctype)
			t.currentDoctypeForceQuirks = true
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '\t', '\n', '\f', ' ':
			continue
		case '>':
			t.emitDoctype()
			t.state = DataState
			return
		default:
			t.emitError(errors.UnexpectedCharacterAfterDoctypeSystemIdentifier)
			t.reconsumeCurrent()
			t.state = BogusDOCTYPEState
			return
		}
	}
}

func (t *Tokenizer) stateBogusDoctype() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitDoctype()
			t.emitEOF()
			return
		}
		switch c {
		case '>':
			t.emitDoctype()
			t.state = DataState
			return
		case 0:
			t.emitError(errors.UnexpectedNullCharacter)
		}
	}
}

// CDATA sections.

func (t *Tokenizer) stateCDATASection() {
	for {
		c, ok := t.getChar()
		if !ok {
			t.emitError(errors.EOFInCDATA)
			t.emitEOF()
			return
		}
		if c == ']' {
			t.state = CDATASectionBracketState
			return
		}
		t.appendTextRune(c)
	}
}

func (t *Tokenizer) stateCDATASectionBracket() {
	c, ok := t.getChar()
	if ok && c == ']' {
		t.state = CDATASectionEndState
		return
	}
	t.appendTextRune(']')
	if ok {
		t.reconsumeCurrent()
	}
	t.state = CDATASectionState
}

func (t *Tokenizer) stateCDATASectionEnd() {
	for {
		c, ok := t.getChar()
		if ok && c == ']' {
			t.appendTextRune(']')
			continue
		}
		if ok && c == '>' {
			t.flushText()
			t.textMode = DataState
			t.state = DataState
			return
		}
		t.appendTextRune(']')
		t.appendTextRune(']')
		if ok {
			t.reconsumeCurrent()
		}
		t.state = CDATASectionState
		return
	}
}
