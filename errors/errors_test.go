package errors

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseErrorFormatting(t *testing.T) {
	e := &ParseError{Code: UnexpectedNullCharacter, Message: Message(UnexpectedNullCharacter), Line: 3, Column: 7}
	assert.Equal(t, "unexpected-null-character at 3:7: unexpected U+0000", e.Error())

	e = &ParseError{Code: DuplicateAttribute, Message: Message(DuplicateAttribute)}
	assert.Equal(t, "duplicate-attribute: attribute repeated on the same tag", e.Error())
}

func TestLoggerPreservesOrder(t *testing.T) {
	log := NewLogger()
	log.Add(EOFInTag, 1, 5)
	log.Add(DuplicateAttribute, 2, 1)
	log.Add(StrayEndTag, 2, 9)

	errs := log.Errors()
	require.Len(t, errs, 3)
	assert.Equal(t, EOFInTag, errs[0].Code)
	assert.Equal(t, DuplicateAttribute, errs[1].Code)
	assert.Equal(t, StrayEndTag, errs[2].Code)
	assert.Equal(t, 3, log.Len())
}

func TestParseErrorsUnwrap(t *testing.T) {
	log := NewLogger()
	log.Add(NestedComment, 1, 1)
	log.Add(EOFInComment, 1, 9)

	var err error = log.Errors()
	var pe *ParseError
	require.True(t, goerrors.As(err, &pe))
	assert.Equal(t, NestedComment, pe.Code)
}

func TestMessageFallsBackToCode(t *testing.T) {
	assert.Equal(t, "some-future-code", Message("some-future-code"))
}
