// Package encoding implements the encoding sniffing that feeds the byte
// stream: BOM detection, transport-declared overrides, and the <meta>
// prescan over the first kilobyte.
package encoding

import (
	"bytes"
	"strings"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
)

// prescanWindow bounds the meta prescan, per the sniffing algorithm.
const prescanWindow = 1024

// utf8Labels and asciiLabels map encoding labels onto the two decoders the
// byte stream implements. Anything unrecognized decodes as ASCII with
// replacement, the conservative reading of a windows-1252 fallback.
var utf8Labels = map[string]bool{
	"utf-8": true, "utf8": true, "unicode-1-1-utf-8": true,
	"unicode11utf8": true, "unicode20utf8": true, "x-unicode20utf8": true,
}

var asciiLabels = map[string]bool{
	"ascii": true, "us-ascii": true, "ansi_x3.4-1968": true,
	"windows-1252": true, "windows1252": true, "cp1252": true,
	"x-cp1252": true, "iso-8859-1": true, "iso8859-1": true,
	"latin1": true, "latin-1": true, "l1": true,
}

// Detect sniffs the encoding of the document bytes. A transport-declared
// label (e.g. from Content-Type) wins over the prescan and yields a
// Certain confidence; BOMs are Certain too; a meta prescan result is
// Tentative; the fallback is Tentative ASCII-with-replacement.
func Detect(data []byte, transportLabel string) (bytestream.Encoding, bytestream.Confidence) {
	if enc, ok := detectBOM(data); ok {
		return enc, bytestream.Certain
	}
	if transportLabel != "" {
		return encodingForLabel(transportLabel), bytestream.Certain
	}
	if label, ok := prescanMeta(data); ok {
		return encodingForLabel(label), bytestream.Tentative
	}
	return bytestream.ASCII, bytestream.Tentative
}

// StripBOM removes a leading UTF-8 byte order mark.
func StripBOM(data []byte) []byte {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return data[3:]
	}
	return data
}

func detectBOM(data []byte) (bytestream.Encoding, bool) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		return bytestream.UTF8, true
	}
	// UTF-16 BOMs: the byte stream has no UTF-16 decoder, so the caller
	// gets UTF-8 and the transcoding happens upstream. Reported anyway so
	// the confidence is honest.
	if len(data) >= 2 && ((data[0] == 0xFE && data[1] == 0xFF) || (data[0] == 0xFF && data[1] == 0xFE)) {
		return bytestream.UTF8, true
	}
	return bytestream.UTF8, false
}

func encodingForLabel(label string) bytestream.Encoding {
	normalized := strings.ToLower(strings.TrimSpace(label))
	switch {
	case utf8Labels[normalized]:
		return bytestream.UTF8
	case asciiLabels[normalized]:
		return bytestream.ASCII
	default:
		return bytestream.ASCII
	}
}

// prescanMeta scans the head of the byte buffer for <meta charset=...> or
// <meta http-equiv="content-type" content="...charset=...">.
func prescanMeta(data []byte) (string, bool) {
	window := data
	if len(window) > prescanWindow {
		window = window[:prescanWindow]
	}

	lower := bytes.ToLower(window)
	for i := 0; i < len(lower); {
		idx := bytes.Index(lower[i:], []byte("<meta"))
		if idx < 0 {
			return "", false
		}
		start := i + idx
		end := bytes.IndexByte(lower[start:], '>')
		if end < 0 {
			return "", false
		}
		tag := string(lower[start : start+end])

		if charset := attrValue(tag, "charset"); charset != "" {
			return charset, true
		}
		if strings.Contains(attrValue(tag, "http-equiv"), "content-type") {
			if content := attrValue(tag, "content"); content != "" {
				if cs := charsetFromContent(content); cs != "" {
					return cs, true
				}
			}
		}
		i = start + end + 1
	}
	return "", false
}

// attrValue extracts a crude attribute value out of a lowercased tag
// string; good enough for the prescan, which tolerates false negatives.
func attrValue(tag, name string) string {
	// Skip quoted values; the name must follow whitespace or '/'.
	idx, quote := -1, byte(0)
	for i := 0; i < len(tag) && idx < 0; i++ {
		switch c := tag[i]; {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case i > 0 && strings.IndexByte(" \t\n\f\r/", tag[i-1]) >= 0 && strings.HasPrefix(tag[i:], name+"="):
			idx = i
		}
	}
	if idx < 0 {
		return ""
	}
	rest := tag[idx+len(name)+1:]
	if rest == "" {
		return ""
	}
	switch rest[0] {
	case '"', '\'':
		if end := strings.IndexByte(rest[1:], rest[0]); end >= 0 {
			return rest[1 : 1+end]
		}
		return ""
	default:
		end := strings.IndexAny(rest, " \t\n\f\r>/")
		if end < 0 {
			return rest
		}
		return rest[:end]
	}
}

func charsetFromContent(content string) string {
	idx := strings.Index(content, "charset=")
	if idx < 0 {
		return ""
	}
	return strings.Trim(content[idx+len("charset="):], " \t\"'")
}
