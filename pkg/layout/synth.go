package layout

import (
	"github.com/layoutsmith/layoutsmith/pkg/errors"
	"github.com/layoutsmith/layoutsmith/pkg/example"
)

// spacerLiteral is the child text that stands for flexible space.
const spacerLiteral = "Spacer"

// Synthesize maps the first example's element set to a layout tree by fixed
// rule. It is total over the key set: every combination of present/absent
// keys yields a defined tree, so the only failure is an empty example slice.
//
// Rule, in priority order:
//
//  1. An HStack element takes exclusive precedence: its children become a
//     horizontal stack, with the literal "Spacer" translated to flexible
//     space and everything else to a label.
//  2. Otherwise a vertical stack is built in fixed order: image, title label,
//     a spacer, and the button — the button only when its label is non-empty
//     (an empty label is a deliberate suppression signal, not an error).
func Synthesize(examples []example.Example) (Node, error) {
	if len(examples) == 0 {
		return nil, errors.New(errors.ErrCodeSynthesisFailed, "no matching layout found for the given examples")
	}
	elements := examples[0].Elements

	if v, ok := elements.Get(example.KeyHStack); ok {
		if children, ok := v.(example.Mapping); ok {
			return horizontalStack(children), nil
		}
	}

	return verticalStack(elements), nil
}

// horizontalStack translates HStack child texts in declaration order.
func horizontalStack(children example.Mapping) Node {
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		text, ok := child.Val.(example.Text)
		if !ok {
			// Post-parse, HStack children are exclusively text values.
			continue
		}
		if string(text) == spacerLiteral {
			nodes = append(nodes, Spacer{})
		} else {
			nodes = append(nodes, Label{Text: string(text)})
		}
	}
	return Stack{Axis: Horizontal, Children: nodes}
}

// verticalStack appends, in fixed order: image, title label, a spacer, and
// the button when present with a non-empty label.
func verticalStack(elements example.Mapping) Node {
	var children []Node

	if name, ok := textElement(elements, example.KeyImage); ok {
		children = append(children, Image{Name: name})
	}
	if title, ok := textElement(elements, example.KeyTitle); ok {
		children = append(children, Label{Text: title})
	}
	children = append(children, Spacer{})
	if label, ok := textElement(elements, example.KeyButton); ok && label != "" {
		children = append(children, Button{Label: label})
	}

	return Stack{Axis: Vertical, Children: children}
}

func textElement(elements example.Mapping, key string) (string, bool) {
	v, ok := elements.Get(key)
	if !ok {
		return "", false
	}
	text, ok := v.(example.Text)
	if !ok {
		return "", false
	}
	return string(text), true
}
