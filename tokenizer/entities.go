package tokenizer

import (
	"strconv"

	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
)

// Character references are decoded when text or attribute values are
// flushed rather than through dedicated states; the outcome is identical
// and keeps the per-character hot path free of reference bookkeeping.

// decodeNumericEntity resolves the digits of a numeric reference, applying
// the windows-1252 replacement table and the invalid-range rules.
func (t *Tokenizer) decodeNumericEntity(text string, isHex bool) rune {
	base := 10
	if isHex {
		base = 16
	}
	codepoint, err := strconv.ParseInt(text, base, 32)
	if err != nil {
		t.emitError(errors.CharacterReferenceOutsideUnicodeRange)
		return '�'
	}

	cp := int(codepoint)
	if replacement, ok := constants.NumericReplacements[cp]; ok {
		t.emitError(errors.ControlCharacterReference)
		return replacement
	}

	switch {
	case cp == 0:
		t.emitError(errors.NullCharacterReference)
		return '�'
	case cp > 0x10FFFF:
		t.emitError(errors.CharacterReferenceOutsideUnicodeRange)
		return '�'
	case cp >= 0xD800 && cp <= 0xDFFF:
		t.emitError(errors.SurrogateCharacterReference)
		return '�'
	case constants.IsNoncharacter(rune(cp)):
		t.emitError(errors.NoncharacterCharacterReference)
		return rune(cp)
	case constants.IsControl(rune(cp)):
		t.emitError(errors.ControlCharacterReference)
		return rune(cp)
	}
	return rune(cp)
}

// decodeEntitiesInText decodes the character references in text. Attribute
// values follow the stricter rules: a legacy reference followed by an
// alphanumeric or '=' stays literal.
func (t *Tokenizer) decodeEntitiesInText(text string, inAttribute bool) string {
	out := make([]rune, 0, len(text))
	runes := []rune(text)
	i := 0
	for i < len(runes) {
		if runes[i] != '&' {
			out = append(out, runes[i])
			i++
			continue
		}

		j := i + 1
		if j < len(runes) && runes[j] == '#' {
			consumed, replacement, ok := t.decodeNumericRef(runes, j+1)
			if ok {
				out = append(out, replacement)
				i = consumed
			} else {
				t.emitError(errors.AbsenceOfDigitsInNumericCharReference)
				out = append(out, runes[i:consumed]...)
				i = consumed
			}
			continue
		}

		// Named reference: collect alphanumerics.
		for j < len(runes) && constants.IsASCIIAlphaNum(runes[j]) {
			j++
		}
		name := string(runes[i+1 : j])
		hasSemicolon := j < len(runes) && runes[j] == ';'

		if name == "" {
			out = append(out, '&')
			i++
			continue
		}

		if hasSemicolon {
			if value, ok := constants.NamedEntities[name]; ok {
				out = append(out, []rune(value)...)
				i = j + 1
				continue
			}
		}

		// Longest legacy prefix match (semicolon optional).
		bestLen := 0
		best := ""
		for k := len(name); k > 0; k-- {
			prefix := name[:k]
			if constants.LegacyEntities[prefix] {
				if v, ok := constants.NamedEntities[prefix]; ok {
					best = v
					bestLen = k
					break
				}
			}
		}
		if bestLen > 0 {
			next := rune(0)
			if i+1+bestLen < len(runes) {
				next = runes[i+1+bestLen]
			}
			terminated := next == ';'
			if inAttribute && !terminated && (constants.IsASCIIAlphaNum(next) || next == '=') {
				// Legacy reference glued to more name characters stays as-is
				// inside attribute values.
				out = append(out, '&')
				i++
				continue
			}
			if !terminated {
				t.emitError(errors.MissingSemicolonAfterCharacterReference)
			}
			out = append(out, []rune(best)...)
			i = i + 1 + bestLen
			if terminated {
				i++
			}
			continue
		}

		if hasSemicolon {
			if !inAttribute {
				t.emitError(errors.UnknownNamedCharacterReference)
			}
			out = append(out, runes[i:j+1]...)
			i = j + 1
			continue
		}
		out = append(out, '&')
		i++
	}
	return string(out)
}

// decodeNumericRef parses "&#..." starting at the first digit position.
// Returns the index after the consumed reference, the replacement rune, and
// whether digits were found.
func (t *Tokenizer) decodeNumericRef(runes []rune, start int) (int, rune, bool) {
	j := start
	isHex := false
	if j < len(runes) && (runes[j] == 'x' || runes[j] == 'X') {
		isHex = true
		j++
	}

	digitStart := j
	if isHex {
		for j < len(runes) && constants.IsASCIIHexDigit(runes[j]) {
			j++
		}
	} else {
		for j < len(runes) && constants.IsASCIIDigit(runes[j]) {
			j++
		}
	}

	if j == digitStart {
		// "&#" or "&#x" with no digits: caller keeps the text literal.
		return j, 0, false
	}

	replacement := t.decodeNumericEntity(string(runes[digitStart:j]), isHex)
	if j < len(runes) && runes[j] == ';' {
		j++
	} else {
		t.emitError(errors.MissingSemicolonAfterCharacterReference)
	}
	return j, replacement, true
}
