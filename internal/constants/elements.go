// Package constants holds the static WHATWG HTML tables shared by the
// tokenizer and the tree builder.
package constants

// Namespace URLs used during parsing.
const (
	NamespaceHTML   = "http://www.w3.org/1999/xhtml"
	NamespaceSVG    = "http://www.w3.org/2000/svg"
	NamespaceMathML = "http://www.w3.org/1998/Math/MathML"
	NamespaceXLink  = "http://www.w3.org/1999/xlink"
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
)

// VoidElements have no end tag.
var VoidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// FormattingElements participate in the active formatting list and the
// adoption agency algorithm.
var FormattingElements = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true,
	"font": true, "i": true, "nobr": true, "s": true, "small": true,
	"strike": true, "strong": true, "tt": true, "u": true,
}

// SpecialElements stop "any other end tag" walks and the adoption agency's
// furthest-block search.
var SpecialElements = map[string]bool{
	"address": true, "applet": true, "area": true, "article": true,
	"aside": true, "base": true, "basefont": true, "bgsound": true,
	"blockquote": true, "body": true, "br": true, "button": true,
	"caption": true, "center": true, "col": true, "colgroup": true,
	"dd": true, "details": true, "dialog": true, "dir": true, "div": true,
	"dl": true, "dt": true, "embed": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"frame": true, "frameset": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "head": true, "header": true,
	"hgroup": true, "hr": true, "html": true, "iframe": true, "img": true,
	"input": true, "keygen": true, "li": true, "link": true,
	"listing": true, "main": true, "marquee": true, "menu": true,
	"menuitem": true, "meta": true, "nav": true, "noembed": true,
	"noframes": true, "noscript": true, "object": true, "ol": true,
	"p": true, "param": true, "plaintext": true, "pre": true,
	"script": true, "search": true, "section": true, "select": true,
	"source": true, "style": true, "summary": true, "table": true,
	"tbody": true, "td": true, "template": true, "textarea": true,
	"tfoot": true, "th": true, "thead": true, "title": true, "tr": true,
	"track": true, "ul": true, "wbr": true, "xmp": true,
}

// SpecialMathMLElements and SpecialSVGElements extend the special category
// into foreign content for the adoption agency and end-tag walks.
var SpecialMathMLElements = map[string]bool{
	"mi": true, "mo": true, "mn": true, "ms": true, "mtext": true,
	"annotation-xml": true,
}

var SpecialSVGElements = map[string]bool{
	"foreignObject": true, "desc": true, "title": true,
}

// ImpliedEndTagElements may be closed by "generate implied end tags".
var ImpliedEndTagElements = map[string]bool{
	"dd": true, "dt": true, "li": true, "optgroup": true, "option": true,
	"p": true, "rb": true, "rp": true, "rt": true, "rtc": true,
}

// ThoroughlyImpliedEndTagElements extends the implied set for the
// "generate all implied end tags thoroughly" variant.
var ThoroughlyImpliedEndTagElements = map[string]bool{
	"caption": true, "colgroup": true, "dd": true, "dt": true, "li": true,
	"optgroup": true, "option": true, "p": true, "rb": true, "rp": true,
	"rt": true, "rtc": true, "tbody": true, "td": true, "tfoot": true,
	"th": true, "thead": true, "tr": true,
}

// TableFosterTargets are the elements whose presence as the insertion target
// triggers foster parenting.
var TableFosterTargets = map[string]bool{
	"table": true, "tbody": true, "tfoot": true, "thead": true, "tr": true,
}

// TableAllowedChildren may be inserted directly inside a table context
// without foster parenting.
var TableAllowedChildren = map[string]bool{
	"caption": true, "colgroup": true, "tbody": true, "tfoot": true,
	"thead": true, "tr": true, "td": true, "th": true, "script": true,
	"template": true, "style": true,
}

// FormattingMarkerElements open a boundary in the active formatting list.
// Template is handled separately but belongs to the same family.
var FormattingMarkerElements = map[string]bool{
	"applet": true, "caption": true, "marquee": true, "object": true,
	"table": true, "td": true, "th": true, "template": true,
}

// ForeignBreakoutElements force the parser out of SVG/MathML content.
var ForeignBreakoutElements = map[string]bool{
	"b": true, "big": true, "blockquote": true, "body": true, "br": true,
	"center": true, "code": true, "dd": true, "div": true, "dl": true,
	"dt": true, "em": true, "embed": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "head": true,
	"hr": true, "i": true, "img": true, "li": true, "listing": true,
	"menu": true, "meta": true, "nobr": true, "ol": true, "p": true,
	"pre": true, "ruby": true, "s": true, "small": true, "span": true,
	"strong": true, "strike": true, "sub": true, "sup": true,
	"table": true, "tt": true, "u": true, "ul": true, "var": true,
}

// IntegrationPoint identifies a foreign element by namespace and local name.
type IntegrationPoint struct {
	Namespace string
	LocalName string
}

// HTMLIntegrationPoints are foreign elements whose children are parsed as
// HTML. annotation-xml only qualifies with an HTML-ish encoding attribute,
// which the tree builder checks separately.
var HTMLIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceSVG, LocalName: "foreignObject"}: true,
	{Namespace: NamespaceSVG, LocalName: "desc"}:          true,
	{Namespace: NamespaceSVG, LocalName: "title"}:         true,
}

// MathMLTextIntegrationPoints are the MathML token elements.
var MathMLTextIntegrationPoints = map[IntegrationPoint]bool{
	{Namespace: NamespaceMathML, LocalName: "mi"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mo"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mn"}:    true,
	{Namespace: NamespaceMathML, LocalName: "ms"}:    true,
	{Namespace: NamespaceMathML, LocalName: "mtext"}: true,
}
