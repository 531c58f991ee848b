package render

import (
	"strings"
	"testing"

	"github.com/layoutsmith/layoutsmith/pkg/layout"
)

func TestToDOT(t *testing.T) {
	tree := layout.Stack{Axis: layout.Vertical, Children: []layout.Node{
		layout.Image{Name: "icon"},
		layout.Label{Text: "Hello"},
		layout.Spacer{},
		layout.Button{Label: "Click"},
	}}

	dot := ToDOT(tree)

	if !strings.HasPrefix(dot, "digraph layout {") {
		t.Errorf("missing digraph header:\n%s", dot)
	}
	for _, want := range []string{
		`label="VStack"`,
		"Image\\nicon",
		"Text\\nHello",
		"Button\\nClick",
		`label="Spacer"`,
		"n0 -> n1;",
		"n0 -> n2;",
		"n0 -> n3;",
		"n0 -> n4;",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT output missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTHorizontal(t *testing.T) {
	dot := ToDOT(layout.Stack{Axis: layout.Horizontal, Children: []layout.Node{layout.Label{Text: "A"}}})
	if !strings.Contains(dot, `label="HStack"`) {
		t.Errorf("horizontal stack should be labeled HStack:\n%s", dot)
	}
}

func TestToDOTSpacerStyle(t *testing.T) {
	dot := ToDOT(layout.Spacer{})
	if !strings.Contains(dot, "dashed") || !strings.Contains(dot, "lightgrey") {
		t.Errorf("spacer should be dashed grey:\n%s", dot)
	}
}
