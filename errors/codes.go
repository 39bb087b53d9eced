package errors

// Tokenizer error codes, as named by the WHATWG HTML specification.
// See: https://html.spec.whatwg.org/multipage/parsing.html#parse-errors
const (
	AbruptClosingOfEmptyComment                               = "abrupt-closing-of-empty-comment"
	AbruptDoctypePublicIdentifier                             = "abrupt-doctype-public-identifier"
	AbruptDoctypeSystemIdentifier                             = "abrupt-doctype-system-identifier"
	AbsenceOfDigitsInNumericCharReference                     = "absence-of-digits-in-numeric-character-reference"
	CDATAInHTMLContent                                        = "cdata-in-html-content"
	CharacterReferenceOutsideUnicodeRange                     = "character-reference-outside-unicode-range"
	ControlCharacterInInputStream                             = "control-character-in-input-stream"
	ControlCharacterReference                                 = "control-character-reference"
	DuplicateAttribute                                        = "duplicate-attribute"
	EndTagWithAttributes                                      = "end-tag-with-attributes"
	EndTagWithTrailingSolidus                                 = "end-tag-with-trailing-solidus"
	EOFBeforeTagName                                          = "eof-before-tag-name"
	EOFInCDATA                                                = "eof-in-cdata"
	EOFInComment                                              = "eof-in-comment"
	EOFInDoctype                                              = "eof-in-doctype"
	EOFInScriptHTMLCommentLikeText                            = "eof-in-script-html-comment-like-text"
	EOFInTag                                                  = "eof-in-tag"
	IncorrectlyClosedComment                                  = "incorrectly-closed-comment"
	IncorrectlyOpenedComment                                  = "incorrectly-opened-comment"
	InvalidCharacterSequenceAfterDoctypeName                  = "invalid-character-sequence-after-doctype-name"
	InvalidFirstCharacterOfTagName                            = "invalid-first-character-of-tag-name"
	MissingAttributeValue                                     = "missing-attribute-value"
	MissingDoctypeName                                        = "missing-doctype-name"
	MissingDoctypePublicIdentifier                            = "missing-doctype-public-identifier"
	MissingDoctypeSystemIdentifier                            = "missing-doctype-system-identifier"
	MissingEndTagName                                         = "missing-end-tag-name"
	MissingQuoteBeforeDoctypePublicIdentifier                 = "missing-quote-before-doctype-public-identifier"
	MissingQuoteBeforeDoctypeSystemIdentifier                 = "missing-quote-before-doctype-system-identifier"
	MissingSemicolonAfterCharacterReference                   = "missing-semicolon-after-character-reference"
	MissingWhitespaceAfterDoctypePublicKeyword                = "missing-whitespace-after-doctype-public-keyword"
	MissingWhitespaceAfterDoctypeSystemKeyword                = "missing-whitespace-after-doctype-system-keyword"
	MissingWhitespaceBeforeDoctypeName                        = "missing-whitespace-before-doctype-name"
	MissingWhitespaceBetweenAttributes                        = "missing-whitespace-between-attributes"
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers = "missing-whitespace-between-doctype-public-and-system-identifiers"
	NestedComment                                             = "nested-comment"
	NoncharacterCharacterReference                            = "noncharacter-character-reference"
	NoncharacterInInputStream                                 = "noncharacter-in-input-stream"
	NonVoidHTMLElementStartTagWithTrailingSolidus             = "non-void-html-element-start-tag-with-trailing-solidus"
	NullCharacterReference                                    = "null-character-reference"
	SurrogateCharacterReference                               = "surrogate-character-reference"
	SurrogateInInputStream                                    = "surrogate-in-input-stream"
	UnexpectedCharacterAfterDoctypeSystemIdentifier           = "unexpected-character-after-doctype-system-identifier"
	UnexpectedCharacterInAttributeName                        = "unexpected-character-in-attribute-name"
	UnexpectedCharacterInUnquotedAttributeValue               = "unexpected-character-in-unquoted-attribute-value"
	UnexpectedEqualsSignBeforeAttributeName                   = "unexpected-equals-sign-before-attribute-name"
	UnexpectedNullCharacter                                   = "unexpected-null-character"
	UnexpectedQuestionMarkInsteadOfTagName                    = "unexpected-question-mark-instead-of-tag-name"
	UnexpectedSolidusInTag                                    = "unexpected-solidus-in-tag"
	UnknownNamedCharacterReference                            = "unknown-named-character-reference"
)

// Tree-construction error codes.
const (
	ExpectedDocTypeButGotStartTag = "expected-doctype-but-got-start-tag"
	ExpectedDocTypeButGotEndTag   = "expected-doctype-but-got-end-tag"
	ExpectedDocTypeButGotChars    = "expected-doctype-but-got-chars"
	DocTypeNotAllowed             = "doctype-not-allowed"
	EndTagNotInScope              = "end-tag-not-in-scope"
	EndTagNotAtTopOfStack         = "end-tag-not-at-top-of-stack"
	StrayStartTag                 = "stray-start-tag"
	StrayEndTag                   = "stray-end-tag"
	SpecialNode                   = "special-node"
	NonSpaceCharacterInTableText  = "non-space-character-in-table-text"
	FosterParentedCharacter       = "foster-parented-character"
	StylesheetContentTypeMismatch = "stylesheet-content-type-mismatch"
)

// messages maps error codes to short descriptions. Codes missing from the
// table still round-trip; Message falls back to the code itself.
var messages = map[string]string{
	AbruptClosingOfEmptyComment:                   "empty comment closed abruptly",
	AbruptDoctypePublicIdentifier:                 "doctype public identifier ended by '>'",
	AbruptDoctypeSystemIdentifier:                 "doctype system identifier ended by '>'",
	AbsenceOfDigitsInNumericCharReference:         "numeric character reference has no digits",
	CDATAInHTMLContent:                            "CDATA section outside foreign content",
	CharacterReferenceOutsideUnicodeRange:         "character reference above U+10FFFF",
	ControlCharacterInInputStream:                 "control character in input stream",
	ControlCharacterReference:                     "character reference names a control character",
	DuplicateAttribute:                            "attribute repeated on the same tag",
	EndTagWithAttributes:                          "end tag carries attributes",
	EndTagWithTrailingSolidus:                     "end tag with trailing solidus",
	EOFBeforeTagName:                              "end of input where a tag name was expected",
	EOFInCDATA:                                    "end of input inside a CDATA section",
	EOFInComment:                                  "end of input inside a comment",
	EOFInDoctype:                                  "end of input inside a doctype",
	EOFInScriptHTMLCommentLikeText:                "end of input inside script comment-like text",
	EOFInTag:                                      "end of input inside a tag",
	IncorrectlyClosedComment:                      "comment closed incorrectly",
	IncorrectlyOpenedComment:                      "comment opened incorrectly",
	InvalidCharacterSequenceAfterDoctypeName:      "invalid sequence after doctype name",
	InvalidFirstCharacterOfTagName:                "invalid first character of tag name",
	MissingAttributeValue:                         "attribute value missing after '='",
	MissingDoctypeName:                            "doctype name missing",
	MissingDoctypePublicIdentifier:                "doctype public identifier missing",
	MissingDoctypeSystemIdentifier:                "doctype system identifier missing",
	MissingEndTagName:                             "end tag name missing",
	MissingQuoteBeforeDoctypePublicIdentifier:     "doctype public identifier not quoted",
	MissingQuoteBeforeDoctypeSystemIdentifier:     "doctype system identifier not quoted",
	MissingSemicolonAfterCharacterReference:       "character reference not terminated by ';'",
	MissingWhitespaceAfterDoctypePublicKeyword:    "whitespace missing after PUBLIC",
	MissingWhitespaceAfterDoctypeSystemKeyword:    "whitespace missing after SYSTEM",
	MissingWhitespaceBeforeDoctypeName:            "whitespace missing before doctype name",
	MissingWhitespaceBetweenAttributes:            "whitespace missing between attributes",
	MissingWhitespaceBetweenDoctypePublicAndSystemIdentifiers: "whitespace missing between doctype identifiers",
	NestedComment:                  "'<!--' inside a comment",
	NoncharacterCharacterReference: "character reference names a noncharacter",
	NoncharacterInInputStream:      "noncharacter in input stream",
	NonVoidHTMLElementStartTagWithTrailingSolidus: "self-closing flag on a non-void HTML element",
	NullCharacterReference:                          "character reference names U+0000",
	SurrogateCharacterReference:                     "character reference names a surrogate",
	SurrogateInInputStream:                          "surrogate code point in input stream",
	UnexpectedCharacterAfterDoctypeSystemIdentifier: "unexpected character after doctype system identifier",
	UnexpectedCharacterInAttributeName:              "unexpected character in attribute name",
	UnexpectedCharacterInUnquotedAttributeValue:     "unexpected character in unquoted attribute value",
	UnexpectedEqualsSignBeforeAttributeName:         "'=' before attribute name",
	UnexpectedNullCharacter:                         "unexpected U+0000",
	UnexpectedQuestionMarkInsteadOfTagName:          "'?' instead of a tag name",
	UnexpectedSolidusInTag:                          "unexpected '/' inside a tag",
	UnknownNamedCharacterReference:                  "unknown named character reference",

	ExpectedDocTypeButGotStartTag: "document starts with a start tag instead of a doctype",
	ExpectedDocTypeButGotEndTag:   "document starts with an end tag instead of a doctype",
	ExpectedDocTypeButGotChars:    "document starts with text instead of a doctype",
	DocTypeNotAllowed:             "doctype token in an unexpected position",
	EndTagNotInScope:              "end tag for an element that is not in scope",
	EndTagNotAtTopOfStack:         "end tag closed elements that were still open",
	StrayStartTag:                 "start tag ignored in this context",
	StrayEndTag:                   "end tag ignored in this context",
	SpecialNode:                   "end tag walk hit a special element",
	NonSpaceCharacterInTableText:  "non-whitespace text directly inside a table",
	FosterParentedCharacter:       "text relocated out of a table",
	StylesheetContentTypeMismatch: "linked stylesheet served with a non-CSS content type",
}

// Message returns the short description for an error code.
func Message(code string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	return code
}
