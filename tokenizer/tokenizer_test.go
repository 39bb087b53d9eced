package tokenizer

import (
	"testing"

	"github.com/gosub-io/gosub-engine-sub000/bytestream"
	"github.com/gosub-io/gosub-engine-sub000/errors"
	"github.com/gosub-io/gosub-engine-sub000/internal/constants"
)

func newTestTokenizer(input string) (*Tokenizer, *errors.Logger) {
	log := errors.NewLogger()
	return New(bytestream.NewFromString(input), log), log
}

func collect(t *testing.T, input string) []Token {
	t.Helper()
	tok, _ := newTestTokenizer(input)
	var out []Token
	for {
		next := tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})
		out = append(out, next)
		if next.Kind == EOF {
			return out
		}
	}
}

func TestSimpleTagSequence(t *testing.T) {
	tokens := collect(t, "<p class=\"x\">hi</p>")

	if len(tokens) != 4 {
		t.Fatalf("token count = %d, want 4", len(tokens))
	}
	if tokens[0].Kind != StartTag || tokens[0].Name != "p" {
		t.Fatalf("tokens[0] = %v %q, want StartTag p", tokens[0].Kind, tokens[0].Name)
	}
	if got := tokens[0].AttrVal("class"); got != "x" {
		t.Fatalf("class attr = %q, want %q", got, "x")
	}
	if tokens[1].Kind != Text || tokens[1].Data != "hi" {
		t.Fatalf("tokens[1] = %v %q, want Text hi", tokens[1].Kind, tokens[1].Data)
	}
	if tokens[2].Kind != EndTag || tokens[2].Name != "p" {
		t.Fatalf("tokens[2] = %v %q, want EndTag p", tokens[2].Kind, tokens[2].Name)
	}
	if tokens[3].Kind != EOF {
		t.Fatalf("tokens[3] = %v, want EOF", tokens[3].Kind)
	}
}

func TestTagNameLowercased(t *testing.T) {
	tokens := collect(t, "<DIV ID=a></DIV>")
	if tokens[0].Name != "div" {
		t.Fatalf("name = %q, want div", tokens[0].Name)
	}
	if got := tokens[0].AttrVal("id"); got != "a" {
		t.Fatalf("id = %q, want a", got)
	}
}

func TestDuplicateAttributeDropsSecond(t *testing.T) {
	tok, log := newTestTokenizer(`<div a="1" a="2">`)
	start := tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})

	if got := start.AttrVal("a"); got != "1" {
		t.Fatalf("attr a = %q, want 1 (first wins)", got)
	}
	if len(start.Attrs) != 1 {
		t.Fatalf("attr count = %d, want 1", len(start.Attrs))
	}
	found := false
	for _, e := range log.Errors() {
		if e.Code == errors.DuplicateAttribute {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate-attribute error, got %v", log.Errors())
	}
}

func TestDoctypeToken(t *testing.T) {
	tokens := collect(t, `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`)

	dt := tokens[0]
	if dt.Kind != DOCTYPE || dt.Name != "html" {
		t.Fatalf("doctype = %v %q", dt.Kind, dt.Name)
	}
	if dt.PublicID == nil || *dt.PublicID != "-//W3C//DTD HTML 4.01//EN" {
		t.Fatalf("public id = %v", dt.PublicID)
	}
	if dt.SystemID == nil || *dt.SystemID != "http://www.w3.org/TR/html4/strict.dtd" {
		t.Fatalf("system id = %v", dt.SystemID)
	}
	if dt.ForceQuirks {
		t.Fatalf("force quirks set on well-formed doctype")
	}
}

func TestCommentToken(t *testing.T) {
	tokens := collect(t, "<!-- hello -->")
	if tokens[0].Kind != Comment || tokens[0].Data != " hello " {
		t.Fatalf("comment = %v %q", tokens[0].Kind, tokens[0].Data)
	}
}

func TestNamedEntityDecoding(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a&amp;b", "a&b"},
		{"&lt;tag&gt;", "<tag>"},
		{"&copy 2024", "© 2024"}, // legacy, no semicolon
		{"&notit;", "¬it;"},      // longest legacy prefix
		{"&unknown;", "&unknown;"},
	}
	for _, tt := range tests {
		tokens := collect(t, tt.input)
		if tokens[0].Kind != Text || tokens[0].Data != tt.want {
			t.Fatalf("%q -> %q, want %q", tt.input, tokens[0].Data, tt.want)
		}
	}
}

func TestNumericEntityDecoding(t *testing.T) {
	tokens := collect(t, "&#65;&#x42;")
	if tokens[0].Data != "AB" {
		t.Fatalf("numeric refs = %q, want AB", tokens[0].Data)
	}

	// windows-1252 remapping of &#150;
	tokens = collect(t, "&#150;")
	if tokens[0].Data != "–" {
		t.Fatalf("&#150; = %q, want en dash", tokens[0].Data)
	}
}

func TestAttributeEntityLegacyRule(t *testing.T) {
	tok, _ := newTestTokenizer(`<a href="?a=b&copy=1">`)
	start := tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})
	if got := start.AttrVal("href"); got != "?a=b&copy=1" {
		t.Fatalf("href = %q, want literal ampersand preserved", got)
	}
}

func TestRCDATAAppropriateEndTag(t *testing.T) {
	tok, _ := newTestTokenizer("abc</x></title>after")
	tok.SetLastStartTag("title")
	tok.SetState(RCDATAState)

	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}
	first := tok.NextToken(pd)
	if first.Kind != Text || first.Data != "abc</x>" {
		t.Fatalf("rcdata text = %v %q, want Text \"abc</x>\"", first.Kind, first.Data)
	}
	second := tok.NextToken(pd)
	if second.Kind != EndTag || second.Name != "title" {
		t.Fatalf("end tag = %v %q, want </title>", second.Kind, second.Name)
	}
}

func TestScriptDataEscaping(t *testing.T) {
	tok, _ := newTestTokenizer("<!--<script>x</script>--></script>")
	tok.SetLastStartTag("script")
	tok.SetState(ScriptDataState)

	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}
	text := tok.NextToken(pd)
	if text.Kind != Text || text.Data != "<!--<script>x</script>-->" {
		t.Fatalf("script text = %q", text.Data)
	}
	end := tok.NextToken(pd)
	if end.Kind != EndTag || end.Name != "script" {
		t.Fatalf("end = %v %q", end.Kind, end.Name)
	}
}

func TestCDATAOnlyInForeignContent(t *testing.T) {
	input := "<![CDATA[x]]>"

	tok, log := newTestTokenizer(input)
	got := tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceSVG})
	if got.Kind != Text || got.Data != "x" {
		t.Fatalf("foreign CDATA = %v %q, want Text x", got.Kind, got.Data)
	}
	if log.Len() != 0 {
		t.Fatalf("unexpected errors: %v", log.Errors())
	}

	tok, log = newTestTokenizer(input)
	got = tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})
	if got.Kind != Comment || got.Data != "[CDATA[x]]" {
		t.Fatalf("html CDATA = %v %q, want bogus comment", got.Kind, got.Data)
	}
	if log.Len() == 0 || log.Errors()[0].Code != errors.CDATAInHTMLContent {
		t.Fatalf("expected cdata-in-html-content, got %v", log.Errors())
	}
}

func TestEOFForever(t *testing.T) {
	tok, _ := newTestTokenizer("")
	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}
	for i := 0; i < 3; i++ {
		if got := tok.NextToken(pd); got.Kind != EOF {
			t.Fatalf("kind = %v, want EOF", got.Kind)
		}
	}
}

func TestUnacknowledgedSelfClosingReported(t *testing.T) {
	tok, log := newTestTokenizer("<div/><span>")
	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}

	first := tok.NextToken(pd)
	if !first.SelfClosing {
		t.Fatalf("expected self-closing start tag")
	}
	// No acknowledgement: the next pull reports the error.
	tok.NextToken(pd)
	found := false
	for _, e := range log.Errors() {
		if e.Code == errors.NonVoidHTMLElementStartTagWithTrailingSolidus {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected trailing-solidus error, got %v", log.Errors())
	}
}

func TestAcknowledgedSelfClosingNotReported(t *testing.T) {
	tok, log := newTestTokenizer("<br/><span>")
	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}

	tok.NextToken(pd)
	tok.AcknowledgeSelfClosing()
	tok.NextToken(pd)
	for _, e := range log.Errors() {
		if e.Code == errors.NonVoidHTMLElementStartTagWithTrailingSolidus {
			t.Fatalf("unexpected trailing-solidus error")
		}
	}
}

func TestSurrogateReplaced(t *testing.T) {
	log := errors.NewLogger()
	stream := bytestream.NewFromBytes([]byte{0xED, 0xA0, 0x80}, bytestream.UTF8)
	tok := New(stream, log)

	got := tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})
	if got.Kind != Text || got.Data != "�" {
		t.Fatalf("surrogate output = %v %q, want U+FFFD", got.Kind, got.Data)
	}
	if log.Len() != 1 || log.Errors()[0].Code != errors.SurrogateInInputStream {
		t.Fatalf("errors = %v, want one surrogate-in-input-stream", log.Errors())
	}
}

func TestInsertTokensAtQueueStart(t *testing.T) {
	tok, _ := newTestTokenizer("<b>")
	pd := ParserData{AdjustedNodeNamespace: constants.NamespaceHTML}

	tok.InsertTokensAtQueueStart([]Token{
		{Kind: Text, Data: "first"},
		{Kind: Text, Data: "second"},
	})
	if got := tok.NextToken(pd); got.Data != "first" {
		t.Fatalf("front = %q, want first", got.Data)
	}
	if got := tok.NextToken(pd); got.Data != "second" {
		t.Fatalf("next = %q, want second", got.Data)
	}
	if got := tok.NextToken(pd); got.Kind != StartTag || got.Name != "b" {
		t.Fatalf("resumed = %v %q, want <b>", got.Kind, got.Name)
	}
}

func TestTokenLocations(t *testing.T) {
	tokens := collect(t, "ab\n<p>")
	if tokens[0].Location.Line != 1 {
		t.Fatalf("text line = %d, want 1", tokens[0].Location.Line)
	}
	if tokens[1].Location.Line != 2 {
		t.Fatalf("tag line = %d, want 2", tokens[1].Location.Line)
	}
}

func TestSplitText(t *testing.T) {
	tok := Token{Kind: Text, Data: "ab \x00\x00cd"}
	parts := SplitText(tok)
	want := []string{"ab", " ", "\x00\x00", "cd"}
	if len(parts) != len(want) {
		t.Fatalf("parts = %d, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if p.Data != want[i] {
			t.Fatalf("part[%d] = %q, want %q", i, p.Data, want[i])
		}
	}
}

func TestSplitTextNull(t *testing.T) {
	tok := Token{Kind: Text, Data: "a \x00b"}
	parts := SplitTextNull(tok)
	want := []string{"a ", "\x00", "b"}
	if len(parts) != len(want) {
		t.Fatalf("parts = %d, want %d", len(parts), len(want))
	}
	for i, p := range parts {
		if p.Data != want[i] {
			t.Fatalf("part[%d] = %q, want %q", i, p.Data, want[i])
		}
	}
}

func TestEndTagWithAttributesError(t *testing.T) {
	tok, log := newTestTokenizer(`</p class="x">`)
	tok.NextToken(ParserData{AdjustedNodeNamespace: constants.NamespaceHTML})
	found := false
	for _, e := range log.Errors() {
		if e.Code == errors.EndTagWithAttributes {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected end-tag-with-attributes, got %v", log.Errors())
	}
}
