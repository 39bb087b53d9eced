package constants

// Named character-reference data. NamedEntities maps an entity name (without
// the leading ampersand or trailing semicolon) to its expansion. The table
// carries the full legacy (semicolon-optional) set plus the references that
// occur in practice; lookup is longest-match, so prefixes of longer names
// resolve correctly when the tail fails to match.

// LegacyEntities are the names that may appear without a trailing semicolon.
var LegacyEntities = map[string]bool{}

func legacy(names ...string) {
	for _, n := range names {
		LegacyEntities[n] = true
	}
}

func init() {
	legacy(
		"AElig", "AMP", "Aacute", "Acirc", "Agrave", "Aring", "Atilde",
		"Auml", "COPY", "Ccedil", "ETH", "Eacute", "Ecirc", "Egrave",
		"Euml", "GT", "Iacute", "Icirc", "Igrave", "Iuml", "LT", "Ntilde",
		"Oacute", "Ocirc", "Ograve", "Oslash", "Otilde", "Ouml", "QUOT",
		"REG", "THORN", "Uacute", "Ucirc", "Ugrave", "Uuml", "Yacute",
		"aacute", "acirc", "acute", "aelig", "agrave", "amp", "aring",
		"atilde", "auml", "brvbar", "ccedil", "cedil", "cent", "copy",
		"curren", "deg", "divide", "eacute", "ecirc", "egrave", "eth",
		"euml", "frac12", "frac14", "frac34", "gt", "iacute", "icirc",
		"iexcl", "igrave", "iquest", "iuml", "laquo", "lt", "macr",
		"micro", "middot", "nbsp", "not", "ntilde", "oacute", "ocirc",
		"ograve", "ordf", "ordm", "oslash", "otilde", "ouml", "para",
		"plusmn", "pound", "quot", "raquo", "reg", "sect", "shy", "sup1",
		"sup2", "sup3", "szlig", "thorn", "times", "uacute", "ucirc",
		"ugrave", "uml", "uuml", "yacute", "yen", "yuml",
	)
}

// NamedEntities holds the expansion for each known entity name.
var NamedEntities = map[string]string{
	// Markup-significant and uppercase legacy aliases.
	"amp": "&", "AMP": "&", "lt": "<", "LT": "<", "gt": ">", "GT": ">",
	"quot": "\"", "QUOT": "\"", "apos": "'", "NewLine": "\n",

	// Latin-1 range (all legacy).
	"nbsp": " ", "iexcl": "¡", "cent": "¢", "pound": "£",
	"curren": "¤", "yen": "¥", "brvbar": "¦", "sect": "§",
	"uml": "¨", "copy": "©", "COPY": "©", "ordf": "ª",
	"laquo": "«", "not": "¬", "shy": "­", "reg": "®",
	"REG": "®", "macr": "¯", "deg": "°", "plusmn": "±",
	"sup2": "²", "sup3": "³", "acute": "´", "micro": "µ",
	"para": "¶", "middot": "·", "cedil": "¸", "sup1": "¹",
	"ordm": "º", "raquo": "»", "frac14": "¼", "frac12": "½",
	"frac34": "¾", "iquest": "¿",
	"Agrave": "À", "Aacute": "Á", "Acirc": "Â", "Atilde": "Ã",
	"Auml": "Ä", "Aring": "Å", "AElig": "Æ", "Ccedil": "Ç",
	"Egrave": "È", "Eacute": "É", "Ecirc": "Ê", "Euml": "Ë",
	"Igrave": "Ì", "Iacute": "Í", "Icirc": "Î", "Iuml": "Ï",
	"ETH": "Ð", "Ntilde": "Ñ", "Ograve": "Ò", "Oacute": "Ó",
	"Ocirc": "Ô", "Otilde": "Õ", "Ouml": "Ö", "times": "×",
	"Oslash": "Ø", "Ugrave": "Ù", "Uacute": "Ú", "Ucirc": "Û",
	"Uuml": "Ü", "Yacute": "Ý", "THORN": "Þ", "szlig": "ß",
	"agrave": "à", "aacute": "á", "acirc": "â", "atilde": "ã",
	"auml": "ä", "aring": "å", "aelig": "æ", "ccedil": "ç",
	"egrave": "è", "eacute": "é", "ecirc": "ê", "euml": "ë",
	"igrave": "ì", "iacute": "í", "icirc": "î", "iuml": "ï",
	"eth": "ð", "ntilde": "ñ", "ograve": "ò", "oacute": "ó",
	"ocirc": "ô", "otilde": "õ", "ouml": "ö", "divide": "÷",
	"oslash": "ø", "ugrave": "ù", "uacute": "ú", "ucirc": "û",
	"uuml": "ü", "yacute": "ý", "thorn": "þ", "yuml": "ÿ",

	// Latin Extended / ligatures.
	"OElig": "Œ", "oelig": "œ", "Scaron": "Š", "scaron": "š",
	"Yuml": "Ÿ", "fnof": "ƒ", "circ": "ˆ", "tilde": "˜",

	// Greek.
	"Alpha": "Α", "Beta": "Β", "Gamma": "Γ", "Delta": "Δ",
	"Epsilon": "Ε", "Zeta": "Ζ", "Eta": "Η", "Theta": "Θ",
	"Iota": "Ι", "Kappa": "Κ", "Lambda": "Λ", "Mu": "Μ",
	"Nu": "Ν", "Xi": "Ξ", "Omicron": "Ο", "Pi": "Π",
	"Rho": "Ρ", "Sigma": "Σ", "Tau": "Τ", "Upsilon": "Υ",
	"Phi": "Φ", "Chi": "Χ", "Psi": "Ψ", "Omega": "Ω",
	"alpha": "α", "beta": "β", "gamma": "γ", "delta": "δ",
	"epsilon": "ε", "zeta": "ζ", "eta": "η", "theta": "θ",
	"iota": "ι", "kappa": "κ", "lambda": "λ", "mu": "μ",
	"nu": "ν", "xi": "ξ", "omicron": "ο", "pi": "π",
	"rho": "ρ", "sigmaf": "ς", "sigma": "σ", "tau": "τ",
	"upsilon": "υ", "phi": "φ", "chi": "χ", "psi": "ψ",
	"omega": "ω", "thetasym": "ϑ", "upsih": "ϒ", "piv": "ϖ",

	// General punctuation.
	"ensp": " ", "emsp": " ", "thinsp": " ", "zwnj": "‌",
	"zwj": "‍", "lrm": "‎", "rlm": "‏", "ndash": "–",
	"mdash": "—", "lsquo": "‘", "rsquo": "’", "sbquo": "‚",
	"ldquo": "“", "rdquo": "”", "bdquo": "„", "dagger": "†",
	"Dagger": "‡", "bull": "•", "hellip": "…", "permil": "‰",
	"prime": "′", "Prime": "″", "lsaquo": "‹", "rsaquo": "›",
	"oline": "‾", "frasl": "⁄", "euro": "€",

	// Letterlike symbols and arrows.
	"image": "ℑ", "weierp": "℘", "real": "ℜ", "trade": "™",
	"alefsym": "ℵ", "larr": "←", "uarr": "↑", "rarr": "→",
	"darr": "↓", "harr": "↔", "crarr": "↵", "lArr": "⇐",
	"uArr": "⇑", "rArr": "⇒", "dArr": "⇓", "hArr": "⇔",

	// Mathematical operators.
	"forall": "∀", "part": "∂", "exist": "∃", "empty": "∅",
	"nabla": "∇", "isin": "∈", "notin": "∉", "ni": "∋",
	"prod": "∏", "sum": "∑", "minus": "−", "lowast": "∗",
	"radic": "√", "prop": "∝", "infin": "∞", "ang": "∠",
	"and": "∧", "or": "∨", "cap": "∩", "cup": "∪",
	"int": "∫", "there4": "∴", "sim": "∼", "cong": "≅",
	"asymp": "≈", "ne": "≠", "equiv": "≡", "le": "≤",
	"ge": "≥", "sub": "⊂", "sup": "⊃", "nsub": "⊄",
	"sube": "⊆", "supe": "⊇", "oplus": "⊕", "otimes": "⊗",
	"perp": "⊥", "sdot": "⋅",

	// Technical and geometric symbols.
	"lceil": "⌈", "rceil": "⌉", "lfloor": "⌊", "rfloor": "⌋",
	"lang": "⟨", "rang": "⟩", "loz": "◊", "spades": "♠",
	"clubs": "♣", "hearts": "♥", "diams": "♦",
}

// NumericReplacements remaps numeric character references in the
// windows-1252 C1 range onto their intended characters.
var NumericReplacements = map[int]rune{
	0x80: '€', 0x82: '‚', 0x83: 'ƒ', 0x84: '„',
	0x85: '…', 0x86: '†', 0x87: '‡', 0x88: 'ˆ',
	0x89: '‰', 0x8A: 'Š', 0x8B: '‹', 0x8C: 'Œ',
	0x8E: 'Ž', 0x91: '‘', 0x92: '’', 0x93: '“',
	0x94: '”', 0x95: '•', 0x96: '–', 0x97: '—',
	0x98: '˜', 0x99: '™', 0x9A: 'š', 0x9B: '›',
	0x9C: 'œ', 0x9E: 'ž', 0x9F: 'Ÿ',
}

// MaxEntityNameLen bounds the longest-match search in the tokenizer.
var MaxEntityNameLen = func() int {
	max := 0
	for name := range NamedEntities {
		if len(name) > max {
			max = len(name)
		}
	}
	return max
}()
