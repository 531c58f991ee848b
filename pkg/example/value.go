// Package example parses the mockup example format into structured values.
//
// An example pairs a canvas descriptor with a flat set of UI element
// declarations:
//
//	{ (width:390, height:844) : {title:"Hello", button:"Click"} }
//	{ (width:390, height:844) : HStack:{"A", "Spacer", "B"} }
//
// Whitespace is insignificant everywhere outside quoted strings. Parsing is a
// pure, one-shot function: it either yields a complete [Example] or a
// structured error from pkg/errors, never a partial result.
package example

// Value is a tagged union over the three shapes an example can carry:
// [Int], [Text], and [Mapping].
type Value interface {
	value()
}

// Int is a signed 32-bit integer value (canvas dimensions).
type Int int

// Text is a free-text string value (element content).
type Text string

// Mapping is an ordered sequence of key/value pairs. Keys are not required
// to be unique; lookups are first-match-wins. Order is preserved so that
// multi-child structures render in declaration order.
type Mapping []Pair

// Pair is a single key/value entry of a Mapping.
type Pair struct {
	Key string
	Val Value
}

func (Int) value()     {}
func (Text) value()    {}
func (Mapping) value() {}

// Get returns the value for the first pair matching key.
func (m Mapping) Get(key string) (Value, bool) {
	for _, p := range m {
		if p.Key == key {
			return p.Val, true
		}
	}
	return nil, false
}

// Example is one parsed input: a dimensions mapping (always exactly the keys
// "width" and "height", both Int) and an elements mapping (zero or more of
// "title", "button", "Image", or a single "HStack" holding child text values).
// Examples are immutable once constructed.
type Example struct {
	Dimensions Mapping
	Elements   Mapping
}

// Width returns the parsed canvas width.
func (e Example) Width() int {
	if v, ok := e.Dimensions.Get(KeyWidth); ok {
		if n, ok := v.(Int); ok {
			return int(n)
		}
	}
	return 0
}

// Height returns the parsed canvas height.
func (e Example) Height() int {
	if v, ok := e.Dimensions.Get(KeyHeight); ok {
		if n, ok := v.(Int); ok {
			return int(n)
		}
	}
	return 0
}
