package example

import (
	"reflect"
	"testing"

	"github.com/layoutsmith/layoutsmith/pkg/errors"
)

func mustParse(t *testing.T, input string) Example {
	t.Helper()
	examples, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	if len(examples) != 1 {
		t.Fatalf("Parse(%q) returned %d examples, want 1", input, len(examples))
	}
	return examples[0]
}

func elementText(t *testing.T, e Example, key string) string {
	t.Helper()
	v, ok := e.Elements.Get(key)
	if !ok {
		t.Fatalf("element %q not present", key)
	}
	s, ok := v.(Text)
	if !ok {
		t.Fatalf("element %q is %T, want Text", key, v)
	}
	return string(s)
}

func TestParseFullExample(t *testing.T) {
	e := mustParse(t, `{(width:390,height:844):{title:"Hello",button:"Click"}}`)

	wantDims := Mapping{
		{Key: "width", Val: Int(390)},
		{Key: "height", Val: Int(844)},
	}
	if !reflect.DeepEqual(e.Dimensions, wantDims) {
		t.Errorf("Dimensions = %#v, want %#v", e.Dimensions, wantDims)
	}
	if got := elementText(t, e, "title"); got != "Hello" {
		t.Errorf("title = %q, want %q", got, "Hello")
	}
	if got := elementText(t, e, "button"); got != "Click" {
		t.Errorf("button = %q, want %q", got, "Click")
	}
	if e.Width() != 390 || e.Height() != 844 {
		t.Errorf("Width/Height = %d/%d, want 390/844", e.Width(), e.Height())
	}
}

func TestParseTitleOnly(t *testing.T) {
	e := mustParse(t, `{(width:390,height:844):{title:"Welcome"}}`)
	if len(e.Elements) != 1 {
		t.Fatalf("Elements has %d entries, want 1", len(e.Elements))
	}
	if got := elementText(t, e, "title"); got != "Welcome" {
		t.Errorf("title = %q, want %q", got, "Welcome")
	}
}

func TestParseImage(t *testing.T) {
	e := mustParse(t, `{(width:390,height:844):{Image:"icon"}}`)
	if got := elementText(t, e, "Image"); got != "icon" {
		t.Errorf("Image = %q, want %q", got, "icon")
	}
}

func TestParseEmptyElements(t *testing.T) {
	e := mustParse(t, `{(width:100, height:100):{}}`)
	if len(e.Elements) != 0 {
		t.Errorf("Elements = %#v, want empty", e.Elements)
	}
}

func TestParseDeterminism(t *testing.T) {
	// Parsing the same valid input twice yields structurally equal results.
	inputs := []string{
		`{(width:390,height:844):{title:"Hello",button:"Click"}}`,
		`{(width:1,height:1):HStack:{"A","Spacer","B"}}`,
		`{(width:10,height:20):{Image:"logo",title:"Hi"}}`,
	}
	for _, input := range inputs {
		a, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		b, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q): %v", input, err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("Parse(%q) not deterministic:\n%#v\n%#v", input, a, b)
		}
	}
}

func TestParseWhitespaceTolerance(t *testing.T) {
	// Spaces around every token must not change the parsed result.
	compact := mustParse(t, `{(width:390,height:844):{title:"Hello",button:"Click"}}`)
	spaced := mustParse(t, `  {  ( width : 390 , height : 844 ) : { title : "Hello" , button : "Click" }  }  `)
	if !reflect.DeepEqual(compact, spaced) {
		t.Errorf("whitespace changed the result:\ncompact: %#v\nspaced:  %#v", compact, spaced)
	}

	hCompact := mustParse(t, `{(width:1,height:2):HStack:{"A","B"}}`)
	hSpaced := mustParse(t, ` { ( width : 1 , height : 2 ) : HStack : { "A" , "B" } } `)
	if !reflect.DeepEqual(hCompact, hSpaced) {
		t.Errorf("whitespace changed the HStack result:\ncompact: %#v\nspaced:  %#v", hCompact, hSpaced)
	}
}

func TestParseEscapedQuotes(t *testing.T) {
	e := mustParse(t, `{(width:390,height:844):{title:"Hello, \"World\"!", button:"\"OK\""}}`)
	if got := elementText(t, e, "title"); got != `Hello, "World"!` {
		t.Errorf("title = %q, want %q", got, `Hello, "World"!`)
	}
	if got := elementText(t, e, "button"); got != `"OK"` {
		t.Errorf("button = %q, want %q", got, `"OK"`)
	}
}

func TestParseEscapeFidelity(t *testing.T) {
	e := mustParse(t, `{(width:1,height:1):{title:"a\"b"}}`)
	if got := elementText(t, e, "title"); got != `a"b` {
		t.Errorf("title = %q, want %q", got, `a"b`)
	}
}

func TestParseEscapedBackslash(t *testing.T) {
	e := mustParse(t, `{(width:1,height:1):{title:"a\\b"}}`)
	if got := elementText(t, e, "title"); got != `a\b` {
		t.Errorf("title = %q, want %q", got, `a\b`)
	}
}

func TestParsePreservesUnknownEscapes(t *testing.T) {
	// A backslash that escapes neither '"' nor '\' passes through literally.
	e := mustParse(t, `{(width:1,height:1):{title:"a\nb"}}`)
	if got := elementText(t, e, "title"); got != `a\nb` {
		t.Errorf("title = %q, want %q", got, `a\nb`)
	}
}

func TestParseCommaInsideQuotes(t *testing.T) {
	e := mustParse(t, `{(width:1,height:1):{title:"a, b",button:"c"}}`)
	if got := elementText(t, e, "title"); got != "a, b" {
		t.Errorf("title = %q, want %q", got, "a, b")
	}
	if got := elementText(t, e, "button"); got != "c" {
		t.Errorf("button = %q, want %q", got, "c")
	}
}

func TestParseHStack(t *testing.T) {
	e := mustParse(t, `{(width:390,height:844):HStack:{"A","B","Spacer","C"}}`)

	v, ok := e.Elements.Get("HStack")
	if !ok {
		t.Fatal("HStack element missing")
	}
	children, ok := v.(Mapping)
	if !ok {
		t.Fatalf("HStack value is %T, want Mapping", v)
	}
	want := Mapping{
		{Key: "child0", Val: Text("A")},
		{Key: "child1", Val: Text("B")},
		{Key: "child2", Val: Text("Spacer")},
		{Key: "child3", Val: Text("C")},
	}
	if !reflect.DeepEqual(children, want) {
		t.Errorf("HStack children = %#v, want %#v", children, want)
	}
}

func TestParseHStackTrailingComma(t *testing.T) {
	e := mustParse(t, `{(width:1,height:1):HStack:{"A","B",}}`)
	v, _ := e.Elements.Get("HStack")
	if children := v.(Mapping); len(children) != 2 {
		t.Errorf("children = %#v, want 2 entries", children)
	}
}

func TestParseDuplicateKeysFirstMatchWins(t *testing.T) {
	e := mustParse(t, `{(width:1,height:1):{title:"first",title:"second"}}`)
	if len(e.Elements) != 2 {
		t.Fatalf("Elements has %d entries, want 2 (duplicates preserved)", len(e.Elements))
	}
	if got := elementText(t, e, "title"); got != "first" {
		t.Errorf("Get returned %q, want first match %q", got, "first")
	}
}

func TestParseNegativeDimensions(t *testing.T) {
	e := mustParse(t, `{(width:-1,height:+2):{}}`)
	if e.Width() != -1 || e.Height() != 2 {
		t.Errorf("Width/Height = %d/%d, want -1/2", e.Width(), e.Height())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"no braces", `(width:390,height:844):{title:"Hello"}`, errors.ErrCodeMalformedEnvelope},
		{"plain text", `not an example`, errors.ErrCodeMalformedEnvelope},
		{"empty string", ``, errors.ErrCodeMalformedEnvelope},
		{"blank string", `   `, errors.ErrCodeMalformedEnvelope},
		{"empty braces", `{}`, errors.ErrCodeEmptyInput},
		{"unclosed paren", `{(width:390,height:844:{title:"Hello"}}`, errors.ErrCodeUnbalancedParens},
		{"never closed", `{(width:390,height:844}`, errors.ErrCodeUnbalancedParens},
		{"extra closing paren", `{width:390,height:844):{title:"Hello"}}`, errors.ErrCodeSeparatorBeforeDimensions},
		{"closing paren first", `{)width:390(:{title:"Hello"}}`, errors.ErrCodeUnbalancedParens},
		{"double wrapped", `{((width:390,height:844)):{title:"Hello"}}`, errors.ErrCodeNestedParens},
		{"extra closing after dims", `{(width:390,height:844))):{title:"Hello"}}`, errors.ErrCodeMissingSeparator},
		{"missing separator", `{(width:390,height:844){title:"Hello"}}`, errors.ErrCodeMissingSeparator},
		{"missing separator space", `{(width:390,height:844) {title:"Hello"}}`, errors.ErrCodeMissingSeparator},
		{"wrong separator", `{(width:390,height:844);{title:"Hello"}}`, errors.ErrCodeMissingSeparator},
		{"colon before dims", `{width:390}`, errors.ErrCodeSeparatorBeforeDimensions},
		{"no dims at all", `{title}`, errors.ErrCodeMissingSeparator},
		{"unknown dimension key", `{(depth:1,height:2):{}}`, errors.ErrCodeUnknownDimensionKey},
		{"bare dimension value", `{(390,height:844):{title:"Hello"}}`, errors.ErrCodeUnknownDimensionKey},
		{"invalid width", `{(width:abc,height:844):{title:"Hello"}}`, errors.ErrCodeInvalidDimensionValue},
		{"float width", `{(width:1.5,height:844):{}}`, errors.ErrCodeInvalidDimensionValue},
		{"width overflow", `{(width:99999999999,height:1):{}}`, errors.ErrCodeInvalidDimensionValue},
		{"dimension without value", `{(width,height:1):{}}`, errors.ErrCodeInvalidDimensionValue},
		{"missing height", `{(width:390):{title:"Hello"}}`, errors.ErrCodeMissingDimension},
		{"missing width", `{(height:390):{title:"Hello"}}`, errors.ErrCodeMissingDimension},
		{"empty dimensions", `{():{title:"Hello"}}`, errors.ErrCodeMissingDimension},
		{"hstack no braces", `{(width:390,height:844):HStack:"A","B"}`, errors.ErrCodeMalformedHStack},
		{"hstack unquoted child", `{(width:390,height:844):HStack:{"A",B,"C"}}`, errors.ErrCodeUnquotedHStackChild},
		{"elements no braces", `{(width:390,height:844):title:"Hello"}`, errors.ErrCodeMalformedElements},
		{"unknown element key", `{(width:390,height:844):{TextField:"placeholder"}}`, errors.ErrCodeUnknownElementKey},
		{"unquoted value", `{(width:390,height:844):{title:Hello}}`, errors.ErrCodeUnquotedValue},
		{"element without value", `{(width:390,height:844):{title}}`, errors.ErrCodeUnquotedValue},
		{"half quoted value", `{(width:1,height:1):{title:"Hello}}`, errors.ErrCodeUnquotedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want %s", tt.input, tt.code)
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Parse(%q) error code = %s, want %s (err: %v)", tt.input, got, tt.code, err)
			}
		})
	}
}

func TestParseHStackExclusiveForm(t *testing.T) {
	// Braced elements reject an HStack key; the HStack form is its own branch.
	_, err := Parse(`{(width:1,height:1):{HStack:"A"}}`)
	if got := errors.GetCode(err); got != errors.ErrCodeUnknownElementKey {
		t.Errorf("error code = %s, want UNKNOWN_ELEMENT_KEY", got)
	}
}
