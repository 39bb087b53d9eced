package tokenizer

// State identifies a tokenizer state.
type State int

// Tokenizer states from the WHATWG HTML specification. The
// character-reference states are not among them: references are decoded
// when text and attribute values are flushed (see entities.go).
// See: https://html.spec.whatwg.org/multipage/parsing.html#tokenization
const (
	DataState State = iota
	RCDATAState
	RAWTEXTState
	ScriptDataState
	PLAINTEXTState
	TagOpenState
	EndTagOpenState
	TagNameState
	RCDATALessThanSignState
	RCDATAEndTagOpenState
	RCDATAEndTagNameState
	RAWTEXTLessThanSignState
	RAWTEXTEndTagOpenState
	RAWTEXTEndTagNameState
	ScriptDataLessThanSignState
	ScriptDataEndTagOpenState
	ScriptDataEndTagNameState
	ScriptDataEscapeStartState
	ScriptDataEscapeStartDashState
	ScriptDataEscapedState
	ScriptDataEscapedDashState
	ScriptDataEscapedDashDashState
	ScriptDataEscapedLessThanSignState
	ScriptDataEscapedEndTagOpenState
	ScriptDataEscapedEndTagNameState
	ScriptDataDoubleEscapeStartState
	ScriptDataDoubleEscapedState
	ScriptDataDoubleEscapedDashState
	ScriptDataDoubleEscapedDashDashState
	ScriptDataDoubleEscapedLessThanSignState
	ScriptDataDoubleEscapeEndState
	BeforeAttributeNameState
	AttributeNameState
	AfterAttributeNameState
	BeforeAttributeValueState
	AttributeValueDoubleQuotedState
	AttributeValueSingleQuotedState
	AttributeValueUnquotedState
	AfterAttributeValueQuotedState
	SelfClosingStartTagState
	BogusCommentState
	MarkupDeclarationOpenState
	CommentStartState
	CommentStartDashState
	CommentState
	CommentLessThanSignState
	CommentLessThanSignBangState
	CommentLessThanSignBangDashState
	CommentLessThanSignBangDashDashState
	CommentEndDashState
	CommentEndState
	CommentEndBangState
	DOCTYPEState
	BeforeDOCTYPENameState
	DOCTYPENameState
	AfterDOCTYPENameState
	AfterDOCTYPEPublicKeywordState
	BeforeDOCTYPEPublicIdentifierState
	DOCTYPEPublicIdentifierDoubleQuotedState
	DOCTYPEPublicIdentifierSingleQuotedState
	AfterDOCTYPEPublicIdentifierState
	BetweenDOCTYPEPublicAndSystemIdentifiersState
	AfterDOCTYPESystemKeywordState
	BeforeDOCTYPESystemIdentifierState
	DOCTYPESystemIdentifierDoubleQuotedState
	DOCTYPESystemIdentifierSingleQuotedState
	AfterDOCTYPESystemIdentifierState
	BogusDOCTYPEState
	CDATASectionState
	CDATASectionBracketState
	CDATASectionEndState
)

// String returns the name of the state for diagnostics.
func (s State) String() string {
	names := [...]string{
		"Data",
		"RCDATA",
		"RAWTEXT",
		"ScriptData",
		"PLAINTEXT",
		"TagOpen",
		"EndTagOpen",
		"TagName",
		"RCDATALessThanSign",
		"RCDATAEndTagOpen",
		"RCDATAEndTagName",
		"RAWTEXTLessThanSign",
		"RAWTEXTEndTagOpen",
		"RAWTEXTEndTagName",
		"ScriptDataLessThanSign",
		"ScriptDataEndTagOpen",
		"ScriptDataEndTagName",
		"ScriptDataEscapeStart",
		"ScriptDataEscapeStartDash",
		"ScriptDataEscaped",
		"ScriptDataEscapedDash",
		"ScriptDataEscapedDashDash",
		"ScriptDataEscapedLessThanSign",
		"ScriptDataEscapedEndTagOpen",
		"ScriptDataEscapedEndTagName",
		"ScriptDataDoubleEscapeStart",
		"ScriptDataDoubleEscaped",
		"ScriptDataDoubleEscapedDash",
		"ScriptDataDoubleEscapedDashDash",
		"ScriptDataDoubleEscapedLessThanSign",
		"ScriptDataDoubleEscapeEnd",
		"BeforeAttributeName",
		"AttributeName",
		"AfterAttributeName",
		"BeforeAttributeValue",
		"AttributeValueDoubleQuoted",
		"AttributeValueSingleQuoted",
		"AttributeValueUnquoted",
		"AfterAttributeValueQuoted",
		"SelfClosingStartTag",
		"BogusComment",
		"MarkupDeclarationOpen",
		"CommentStart",
		"CommentStartDash",
		"Comment",
		"CommentLessThanSign",
		"CommentLessThanSignBang",
		"CommentLessThanSignBangDash",
		"CommentLessThanSignBangDashDash",
		"CommentEndDash",
		"CommentEnd",
		"CommentEndBang",
		"DOCTYPE",
		"BeforeDOCTYPEName",
		"DOCTYPEName",
		"AfterDOCTYPEName",
		"AfterDOCTYPEPublicKeyword",
		"BeforeDOCTYPEPublicIdentifier",
		"DOCTYPEPublicIdentifierDoubleQuoted",
		"DOCTYPEPublicIdentifierSingleQuoted",
		"AfterDOCTYPEPublicIdentifier",
		"BetweenDOCTYPEPublicAndSystemIdentifiers",
		"AfterDOCTYPESystemKeyword",
		"BeforeDOCTYPESystemIdentifier",
		"DOCTYPESystemIdentifierDoubleQuoted",
		"DOCTYPESystemIdentifierSingleQuoted",
		"AfterDOCTYPESystemIdentifier",
		"BogusDOCTYPE",
		"CDATASection",
		"CDATASectionBracket",
		"CDATASectionEnd",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}
