// Package layout defines the intermediate layout tree and the fixed-rule
// synthesizer that builds it from parsed examples.
//
// Trees are shallow (at most two levels in practice), constructed once from
// immutable examples, and consumed read-only by the renderer.
package layout

// Axis is a stack orientation.
type Axis int

const (
	// Vertical stacks children top to bottom (VStack).
	Vertical Axis = iota
	// Horizontal stacks children left to right (HStack).
	Horizontal
)

// String returns the axis name.
func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Node is a node of the layout tree.
type Node interface {
	node()
}

// Stack is a container arranging its children along an axis. Children keep
// declaration order.
type Stack struct {
	Axis     Axis
	Children []Node
}

// Label is static display text.
type Label struct {
	Text string
}

// Button is an interactive control with a label and an empty action body.
type Button struct {
	Label string
}

// Image displays a named asset.
type Image struct {
	Name string
}

// Spacer is flexible empty space between siblings; it has no content.
type Spacer struct{}

func (Stack) node()  {}
func (Label) node()  {}
func (Button) node() {}
func (Image) node()  {}
func (Spacer) node() {}
