// Package render turns layout trees into output artifacts: SwiftUI source
// text, and DOT/SVG/PNG diagrams of the tree itself for inspection.
package render

import (
	"fmt"
	"strings"

	"github.com/layoutsmith/layoutsmith/pkg/layout"
)

// indentWidth is the number of spaces per indentation level.
const indentWidth = 4

// SwiftUI renders a layout tree as SwiftUI source text. Rendering is pure and
// deterministic; recursion depth equals tree depth.
//
// Output is normalized: trailing whitespace is stripped from every line, line
// endings are a single '\n', and a top-level stack ends with one trailing
// newline.
func SwiftUI(node layout.Node) string {
	var b strings.Builder
	writeNode(&b, node, 0)

	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := strings.TrimRight(strings.Join(lines, "\n"), "\n")

	if _, ok := node.(layout.Stack); ok {
		out += "\n"
	}
	return out
}

func writeNode(b *strings.Builder, node layout.Node, indent int) {
	pad := strings.Repeat(" ", indent*indentWidth)

	switch n := node.(type) {
	case layout.Stack:
		keyword := "VStack"
		if n.Axis == layout.Horizontal {
			keyword = "HStack"
		}
		fmt.Fprintf(b, "%s%s {\n", pad, keyword)
		for _, child := range n.Children {
			writeNode(b, child, indent+1)
		}
		fmt.Fprintf(b, "%s}\n", pad)
		fmt.Fprintf(b, "%s.padding()\n", pad)
	case layout.Label:
		fmt.Fprintf(b, "%sText(\"%s\")\n", pad, escapeQuotes(n.Text))
		fmt.Fprintf(b, "%s    .font(.title)\n", pad)
		fmt.Fprintf(b, "%s    .padding()\n", pad)
	case layout.Button:
		fmt.Fprintf(b, "%sButton(\"%s\") { }\n", pad, escapeQuotes(n.Label))
		fmt.Fprintf(b, "%s    .padding()\n", pad)
	case layout.Image:
		fmt.Fprintf(b, "%sImage(\"%s\")\n", pad, escapeQuotes(n.Name))
	case layout.Spacer:
		fmt.Fprintf(b, "%sSpacer()\n", pad)
	}
}

// escapeQuotes re-escapes embedded double quotes for SwiftUI string literals.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
