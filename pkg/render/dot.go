package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/layoutsmith/layoutsmith/pkg/layout"
)

// ToDOT converts a layout tree to Graphviz DOT format for inspection.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Spacer nodes are drawn with dashed outlines and grey fill to distinguish
// flexible space from content nodes.
func ToDOT(root layout.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	next := 0
	writeDOTNode(&buf, root, &next)

	buf.WriteString("}\n")
	return buf.String()
}

// writeDOTNode emits the declaration for node and edges to its children,
// returning the node's identifier.
func writeDOTNode(buf *bytes.Buffer, node layout.Node, next *int) string {
	id := fmt.Sprintf("n%d", *next)
	*next++

	fmt.Fprintf(buf, "  %s [%s];\n", id, strings.Join(dotAttrs(node), ", "))

	if stack, ok := node.(layout.Stack); ok {
		for _, child := range stack.Children {
			childID := writeDOTNode(buf, child, next)
			fmt.Fprintf(buf, "  %s -> %s;\n", id, childID)
		}
	}
	return id
}

func dotAttrs(node layout.Node) []string {
	switch n := node.(type) {
	case layout.Stack:
		keyword := "VStack"
		if n.Axis == layout.Horizontal {
			keyword = "HStack"
		}
		return []string{fmt.Sprintf("label=%q", keyword), "fillcolor=lightblue"}
	case layout.Label:
		return []string{fmt.Sprintf("label=%q", "Text\n"+n.Text)}
	case layout.Button:
		return []string{fmt.Sprintf("label=%q", "Button\n"+n.Label)}
	case layout.Image:
		return []string{fmt.Sprintf("label=%q", "Image\n"+n.Name)}
	case layout.Spacer:
		return []string{`label="Spacer"`, `style="rounded,filled,dashed"`, "fillcolor=lightgrey"}
	}
	return []string{`label="?"`}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
