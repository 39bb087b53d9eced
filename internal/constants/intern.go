package constants

// String interning for hot tag and attribute names: handing back the shared
// string avoids one allocation per tag during tokenization.

var internedTagNames = map[string]string{}

var internedAttrNames = map[string]string{}

func init() {
	for _, name := range []string{
		"html", "head", "body", "title", "meta", "link", "style", "script",
		"base", "template", "noscript",
		"header", "footer", "nav", "section", "article", "aside", "main",
		"div", "p", "span", "h1", "h2", "h3", "h4", "h5", "h6",
		"blockquote", "pre", "code", "em", "strong", "b", "i", "u", "s",
		"small", "big", "tt", "nobr", "font", "a", "img", "br", "hr", "wbr",
		"ul", "ol", "li", "dl", "dt", "dd",
		"table", "thead", "tbody", "tfoot", "tr", "th", "td", "caption",
		"colgroup", "col",
		"form", "input", "button", "select", "option", "optgroup",
		"textarea", "label", "fieldset", "legend",
		"iframe", "embed", "object", "param", "video", "audio", "source",
		"track", "canvas", "svg", "math",
	} {
		internedTagNames[name] = name
	}
	for _, name := range []string{
		"id", "class", "style", "href", "src", "alt", "title", "name",
		"type", "value", "rel", "target", "width", "height", "lang",
		"charset", "content", "http-equiv", "action", "method", "placeholder",
		"disabled", "checked", "selected", "readonly", "required", "multiple",
		"data-id", "role", "aria-label", "aria-hidden", "tabindex",
	} {
		internedAttrNames[name] = name
	}
}

// InternTagName returns the shared instance of a common tag name, or the
// input unchanged.
func InternTagName(name string) string {
	if interned, ok := internedTagNames[name]; ok {
		return interned
	}
	return name
}

// InternAttributeName returns the shared instance of a common attribute
// name, or the input unchanged.
func InternAttributeName(name string) string {
	if interned, ok := internedAttrNames[name]; ok {
		return interned
	}
	return name
}
