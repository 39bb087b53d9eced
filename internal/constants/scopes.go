package constants

// Scope terminator sets for the "has an element in scope" walks. Foreign
// integration points also terminate the non-table scopes; the tree builder
// checks those via the integration-point tables rather than these sets.

func scopeSet(extra ...string) map[string]bool {
	set := map[string]bool{
		"applet": true, "caption": true, "html": true, "table": true,
		"td": true, "th": true, "marquee": true, "object": true,
		"template": true,
	}
	for _, name := range extra {
		set[name] = true
	}
	return set
}

// DefaultScope terminates the regular scope.
var DefaultScope = scopeSet()

// ListItemScope adds ol and ul.
var ListItemScope = scopeSet("ol", "ul")

// ButtonScope adds button.
var ButtonScope = scopeSet("button")

// TableScope is the narrow table scope.
var TableScope = map[string]bool{
	"html": true, "table": true, "template": true,
}

// SelectScope is inverted: every element EXCEPT these terminates it.
var SelectScope = map[string]bool{
	"optgroup": true, "option": true,
}

// ForeignScopeBoundaries are the MathML/SVG elements that terminate the
// regular, list-item, and button scopes.
var ForeignScopeBoundaries = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "mi"}:             true,
	{Namespace: NamespaceMathML, LocalName: "mo"}:             true,
	{Namespace: NamespaceMathML, LocalName: "mn"}:             true,
	{Namespace: NamespaceMathML, LocalName: "ms"}:             true,
	{Namespace: NamespaceMathML, LocalName: "mtext"}:          true,
	{Namespace: NamespaceMathML, LocalName: "annotation-xml"}: true,
	{Namespace: NamespaceSVG, LocalName: "foreignObject"}:     true,
	{Namespace: NamespaceSVG, LocalName: "desc"}:              true,
	{Namespace: NamespaceSVG, LocalName: "title"}:             true,
}
