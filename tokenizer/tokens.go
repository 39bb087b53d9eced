// Package tokenizer implements the HTML5 tokenization stage: a state machine
// that turns the character stream into DOCTYPE, tag, comment, text, and EOF
// tokens, recording parse errors in the shared error log.
package tokenizer

import (
	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
)

// TokenKind tags the Token variant.
type TokenKind int

// Token kinds produced by the tokenizer.
const (
	DOCTYPE TokenKind = iota + 1
	StartTag
	EndTag
	Comment
	Text
	EOF
)

// String returns the name of the token kind.
func (t TokenKind) String() string {
	switch t {
	case DOCTYPE:
		return "DocType"
	case StartTag:
		return "StartTag"
	case EndTag:
		return "EndTag"
	case Comment:
		return "Comment"
	case Text:
		return "Text"
	case EOF:
		return "Eof"
	default:
		return "Unknown"
	}
}

// Attr is a tokenized attribute. Namespace is filled in later by the tree
// builder's foreign-attribute adjustment; the tokenizer always leaves it
// empty.
type Attr struct {
	Namespace string
	Name      string
	Value     string
}

// Token is the tokenizer output, a tagged union keyed by Kind.
type Token struct {
	Kind TokenKind

	// Name is the tag name for StartTag/EndTag and the DOCTYPE name.
	Name string

	// Data is the payload for Comment and Text tokens.
	Data string

	// Attrs holds attributes for StartTag tokens. Names are unique; the
	// tokenizer drops duplicates with a duplicate-attribute error.
	Attrs []Attr

	// SelfClosing is set for tags written with a trailing solidus.
	SelfClosing bool

	// PublicID and SystemID are the DOCTYPE identifiers; nil means absent.
	PublicID *string
	SystemID *string

	// ForceQuirks is set for malformed DOCTYPEs.
	ForceQuirks bool

	// Location is the source position where the token started.
	Location bytestream.Location
}

// AttrVal returns the value of an attribute by name, or "".
func (t *Token) AttrVal(name string) string {
	for _, a := range t.Attrs {
		if a.Namespace == "" && a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the token carries the attribute.
func (t *Token) HasAttr(name string) bool {
	for _, a := range t.Attrs {
		if a.Namespace == "" && a.Name == name {
			return true
		}
	}
	return false
}

// IsWhitespaceOnly reports whether a Text token contains only HTML
// whitespace.
func (t *Token) IsWhitespaceOnly() bool {
	for _, r := range t.Data {
		switch r {
		case '\t', '\n', '\f', '\r', ' ':
		default:
			return false
		}
	}
	return true
}

// textClass classifies a rune for mixed-text splitting.
type textClass int

const (
	classRegular textClass = iota
	classWhitespace
	classNull
)

func classify(r rune) textClass {
	switch r {
	case 0:
		return classNull
	case '\t', '\n', '\f', '\r', ' ':
		return classWhitespace
	default:
		return classRegular
	}
}

// SplitText splits a Text token into homogeneous sub-tokens grouped by
// character class (null, whitespace, regular), preserving order. Several
// insertion modes discriminate on whitespace-vs-other, so the tree builder
// re-queues these at the front of the token queue.
func SplitText(tok Token) []Token {
	return splitBy(tok, classify)
}

// SplitTextNull splits a Text token into null and non-null runs only.
func SplitTextNull(tok Token) []Token {
	return splitBy(tok, func(r rune) textClass {
		if r == 0 {
			return classNull
		}
		return classRegular
	})
}

func splitBy(tok Token, class func(rune) textClass) []Token {
	if tok.Kind != Text || tok.Data == "" {
		return []Token{tok}
	}
	var out []Token
	runes := []rune(tok.Data)
	start := 0
	current := class(runes[0])
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || class(runes[i]) != current {
			out = append(out, Token{
				Kind:     Text,
				Data:     string(runes[start:i]),
				Location: tok.Location,
			})
			if i < len(runes) {
				start = i
				current = class(runes[i])
			}
		}
	}
	return out
}

// internTag and internAttr avoid re-allocating hot names.
func internTag(name string) string {
	return constants.InternTagName(name)
}

func internAttr(name string) string {
	return constants.InternAttributeName(name)
}
