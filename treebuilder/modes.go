// Package treebuilder implements the HTML5 tree construction stage: the
// insertion-mode machine that turns the token stream into the document tree.
package treebuilder

// InsertionMode selects how the next token is processed.
type InsertionMode int

// Insertion modes.
// See: https://html.spec.whatwg.org/multipage/parsing.html#insertion-mode
const (
	Initial InsertionMode = iota
	BeforeHTML
	BeforeHead
	InHead
	InHeadNoscript
	AfterHead
	InBody
	Text
	InTable
	InTableText
	InCaption
	InColumnGroup
	InTableBody
	InRow
	InCell
	InSelect
	InSelectInTable
	InTemplate
	AfterBody
	InFrameset
	AfterFrameset
	AfterAfterBody
	AfterAfterFrameset
)

// String returns the mode name.
func (m InsertionMode) String() string {
	names := [...]string{
		"initial",
		"before html",
		"before head",
		"in head",
		"in head noscript",
		"after head",
		"in body",
		"text",
		"in table",
		"in table text",
		"in caption",
		"in column group",
		"in table body",
		"in row",
		"in cell",
		"in select",
		"in select in table",
		"in template",
		"after body",
		"in frameset",
		"after frameset",
		"after after body",
		"after after frameset",
	}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "unknown"
}
