// Package errors defines parse errors and the shared error log for the
// HTML5 parser.
package errors

import (
	"fmt"
	"strings"
)

// ParseError is a single recoverable parse error with its source position.
type ParseError struct {
	// Code is the error code (e.g. "unexpected-null-character"). Tokenizer
	// codes follow the WHATWG HTML specification; tree-construction codes
	// are listed in codes.go.
	Code string

	// Message is a short human-readable description.
	Message string

	// Line and Column are the 1-based position where the error occurred.
	Line   int
	Column int
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Code, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ParseErrors is a collection of parse errors. It implements the error
// interface so the whole accumulated log can be returned from a parse call.
type ParseErrors []*ParseError

// Error implements the error interface.
func (e ParseErrors) Error() string {
	if len(e) == 0 {
		return "no parse errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parse errors:\n", len(e))
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("  - ")
		sb.WriteString(err.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying errors for errors.Is/As support.
func (e ParseErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Logger accumulates parse errors in source order. The tokenizer and the
// tree builder append to the same Logger during a parse; every append
// happens on the single parser call stack, so no locking is needed.
type Logger struct {
	errs ParseErrors
}

// NewLogger creates an empty error log.
func NewLogger() *Logger {
	return &Logger{}
}

// Add appends an error with the given code and position.
func (l *Logger) Add(code string, line, column int) {
	l.errs = append(l.errs, &ParseError{
		Code:    code,
		Message: Message(code),
		Line:    line,
		Column:  column,
	})
}

// Errors returns the accumulated errors in append order.
func (l *Logger) Errors() ParseErrors {
	return l.errs
}

// Len returns the number of accumulated errors.
func (l *Logger) Len() int {
	return len(l.errs)
}
