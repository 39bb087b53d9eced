package constants

import "testing"

func TestScopeSets(t *testing.T) {
	if !DefaultScope["table"] || !DefaultScope["template"] {
		t.Fatalf("default scope missing core boundaries")
	}
	if !ListItemScope["ol"] || !ListItemScope["ul"] {
		t.Fatalf("list item scope missing ol/ul")
	}
	if !ButtonScope["button"] {
		t.Fatalf("button scope missing button")
	}
	if ButtonScope["ol"] {
		t.Fatalf("button scope must not contain ol")
	}
	if len(TableScope) != 3 {
		t.Fatalf("table scope = %d entries, want 3", len(TableScope))
	}
	if !SelectScope["option"] || !SelectScope["optgroup"] || len(SelectScope) != 2 {
		t.Fatalf("select scope must contain exactly option and optgroup")
	}
}

func TestSpecialAndFormattingDisjointEnough(t *testing.T) {
	for name := range FormattingElements {
		if SpecialElements[name] {
			t.Fatalf("%q is both formatting and special", name)
		}
	}
}

func TestNamedEntities(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"amp", "&"},
		{"lt", "<"},
		{"gt", ">"},
		{"quot", "\""},
		{"nbsp", " "},
		{"copy", "©"},
		{"AElig", "Æ"},
		{"mdash", "—"},
		{"euro", "€"},
	}
	for _, tt := range tests {
		got, ok := NamedEntities[tt.name]
		if !ok {
			t.Fatalf("entity %q missing", tt.name)
		}
		if got != tt.want {
			t.Fatalf("entity %q = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestLegacyEntitiesAreNamed(t *testing.T) {
	for name := range LegacyEntities {
		if _, ok := NamedEntities[name]; !ok {
			t.Fatalf("legacy entity %q has no expansion", name)
		}
	}
}

func TestNumericReplacements(t *testing.T) {
	if NumericReplacements[0x80] != '€' {
		t.Fatalf("0x80 = %q, want euro", NumericReplacements[0x80])
	}
	if NumericReplacements[0x96] != '–' {
		t.Fatalf("0x96 = %q, want en dash", NumericReplacements[0x96])
	}
	if _, ok := NumericReplacements[0x81]; ok {
		t.Fatalf("0x81 must not be remapped")
	}
}

func TestCharClass(t *testing.T) {
	if !IsWhitespace(' ') || !IsWhitespace('\t') || IsWhitespace('x') {
		t.Fatalf("whitespace classification broken")
	}
	if !IsASCIIAlpha('a') || !IsASCIIAlpha('Z') || IsASCIIAlpha('1') {
		t.Fatalf("alpha classification broken")
	}
	if !IsASCIIHexDigit('f') || !IsASCIIHexDigit('A') || IsASCIIHexDigit('g') {
		t.Fatalf("hex classification broken")
	}
	if ToLower('A') != 'a' || ToLower('é') != 'é' {
		t.Fatalf("ToLower broken")
	}
	if IsControl('\t') || IsControl(0) || !IsControl(0x01) || !IsControl(0x7F) {
		t.Fatalf("control classification broken")
	}
	if !IsNoncharacter(0xFDD0) || !IsNoncharacter(0xFFFE) || IsNoncharacter('x') {
		t.Fatalf("noncharacter classification broken")
	}
}

func TestSVGAdjustments(t *testing.T) {
	if SVGTagNameAdjustments["foreignobject"] != "foreignObject" {
		t.Fatalf("foreignobject adjustment missing")
	}
	if SVGAttributeAdjustments["viewbox"] != "viewBox" {
		t.Fatalf("viewbox adjustment missing")
	}
	if MathMLAttributeAdjustments["definitionurl"] != "definitionURL" {
		t.Fatalf("definitionurl adjustment missing")
	}
	if ForeignAttributeAdjustments["xlink:href"].NamespaceURL != NamespaceXLink {
		t.Fatalf("xlink:href adjustment missing")
	}
}

func TestInterning(t *testing.T) {
	if InternTagName("div") != "div" || InternTagName("custom-tag") != "custom-tag" {
		t.Fatalf("tag interning broken")
	}
	if InternAttributeName("class") != "class" {
		t.Fatalf("attr interning broken")
	}
}
