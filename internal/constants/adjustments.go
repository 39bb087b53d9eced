package constants

// ForeignAttribute is a namespaced attribute adjustment target.
type ForeignAttribute struct {
	Prefix       string
	LocalName    string
	NamespaceURL string
}

// SVGTagNameAdjustments maps lowercased SVG tag names to their camelCase
// form, applied when inserting elements in the SVG namespace.
var SVGTagNameAdjustments = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// SVGAttributeAdjustments maps lowercased SVG attribute names to their
// camelCase form.
var SVGAttributeAdjustments = map[string]string{
	"attributename":       "attributeName",
	"attributetype":       "attributeType",
	"basefrequency":       "baseFrequency",
	"baseprofile":         "baseProfile",
	"calcmode":            "calcMode",
	"clippathunits":       "clipPathUnits",
	"diffuseconstant":     "diffuseConstant",
	"edgemode":            "edgeMode",
	"filterunits":         "filterUnits",
	"glyphref":            "glyphRef",
	"gradienttransform":   "gradientTransform",
	"gradientunits":       "gradientUnits",
	"kernelmatrix":        "kernelMatrix",
	"kernelunitlength":    "kernelUnitLength",
	"keypoints":           "keyPoints",
	"keysplines":          "keySplines",
	"keytimes":            "keyTimes",
	"lengthadjust":        "lengthAdjust",
	"limitingconeangle":   "limitingConeAngle",
	"markerheight":        "markerHeight",
	"markerunits":         "markerUnits",
	"markerwidth":         "markerWidth",
	"maskcontentunits":    "maskContentUnits",
	"maskunits":           "maskUnits",
	"numoctaves":          "numOctaves",
	"pathlength":          "pathLength",
	"patterncontentunits": "patternContentUnits",
	"patterntransform":    "patternTransform",
	"patternunits":        "patternUnits",
	"pointsatx":           "pointsAtX",
	"pointsaty":           "pointsAtY",
	"pointsatz":           "pointsAtZ",
	"preservealpha":       "preserveAlpha",
	"preserveaspectratio": "preserveAspectRatio",
	"primitiveunits":      "primitiveUnits",
	"refx":                "refX",
	"refy":                "refY",
	"repeatcount":         "repeatCount",
	"repeatdur":           "repeatDur",
	"requiredextensions":  "requiredExtensions",
	"requiredfeatures":    "requiredFeatures",
	"specularconstant":    "specularConstant",
	"specularexponent":    "specularExponent",
	"spreadmethod":        "spreadMethod",
	"startoffset":         "startOffset",
	"stddeviation":        "stdDeviation",
	"stitchtiles":         "stitchTiles",
	"surfacescale":        "surfaceScale",
	"systemlanguage":      "systemLanguage",
	"tablevalues":         "tableValues",
	"targetx":             "targetX",
	"targety":             "targetY",
	"textlength":          "textLength",
	"viewbox":             "viewBox",
	"viewtarget":          "viewTarget",
	"xchannelselector":    "xChannelSelector",
	"ychannelselector":    "yChannelSelector",
	"zoomandpan":          "zoomAndPan",
}

// MathMLAttributeAdjustments has a single entry.
var MathMLAttributeAdjustments = map[string]string{
	"definitionurl": "definitionURL",
}

// ForeignAttributeAdjustments maps xlink/xml/xmlns attribute names to their
// namespaced form.
var ForeignAttributeAdjustments = map[string]ForeignAttribute{
	"xlink:actuate": {Prefix: "xlink", LocalName: "actuate", NamespaceURL: NamespaceXLink},
	"xlink:arcrole": {Prefix: "xlink", LocalName: "arcrole", NamespaceURL: NamespaceXLink},
	"xlink:href":    {Prefix: "xlink", LocalName: "href", NamespaceURL: NamespaceXLink},
	"xlink:role":    {Prefix: "xlink", LocalName: "role", NamespaceURL: NamespaceXLink},
	"xlink:show":    {Prefix: "xlink", LocalName: "show", NamespaceURL: NamespaceXLink},
	"xlink:title":   {Prefix: "xlink", LocalName: "title", NamespaceURL: NamespaceXLink},
	"xlink:type":    {Prefix: "xlink", LocalName: "type", NamespaceURL: NamespaceXLink},
	"xml:lang":      {Prefix: "xml", LocalName: "lang", NamespaceURL: NamespaceXML},
	"xml:space":     {Prefix: "xml", LocalName: "space", NamespaceURL: NamespaceXML},
	"xmlns":         {Prefix: "", LocalName: "xmlns", NamespaceURL: NamespaceXMLNS},
	"xmlns:xlink":   {Prefix: "xmlns", LocalName: "xlink", NamespaceURL: NamespaceXMLNS},
}
