package example

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/layoutsmith/layoutsmith/pkg/errors"
)

// Dimension and element keys recognized by the scanner.
const (
	KeyWidth  = "width"
	KeyHeight = "height"
	KeyTitle  = "title"
	KeyButton = "button"
	KeyImage  = "Image"
	KeyHStack = "HStack"
)

// Parse consumes raw example text and produces the parsed examples or a
// structured error (pkg/errors codes, one per malformed-input condition).
//
// The format describes a single example per input, so the returned slice
// always holds exactly one element on success; the sequence shape exists for
// the synthesizer's contract.
//
// The top-level structure is `{ (dimension-list) : element-block }`. The
// separator scan tracks parenthesis depth because dimensions may in principle
// contain parenthesized sub-expressions and the element block always starts
// with '{'; a naive first-colon search would misfire on nested punctuation.
func Parse(input string) ([]Example, error) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) < 2 || !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return nil, errors.New(errors.ErrCodeMalformedEnvelope, "input must be enclosed in curly braces, e.g. {example}")
	}
	inner := []rune(trimmed[1 : len(trimmed)-1])
	if len(inner) == 0 {
		return nil, errors.New(errors.ErrCodeEmptyInput, "input must contain at least one example")
	}

	split, err := findSeparator(inner)
	if err != nil {
		return nil, err
	}

	dimensions, err := parseDimensions(strings.TrimSpace(string(inner[:split])))
	if err != nil {
		return nil, err
	}
	elements, err := parseElements(strings.TrimSpace(string(inner[split+1:])))
	if err != nil {
		return nil, err
	}

	return []Example{{Dimensions: dimensions, Elements: elements}}, nil
}

// findSeparator walks the interior character by character maintaining a
// parenthesis-depth counter and returns the index of the ':' separating the
// dimensions block from the element block. The separator is the first ':'
// following the ')' that returns the depth to zero; a top-level ':' seen
// before that is a structural error.
func findSeparator(inner []rune) (int, error) {
	depth := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '(':
			depth++
		case ')':
			if depth == 0 {
				return 0, errors.New(errors.ErrCodeUnbalancedParens, "mismatched parenthesis in dimensions: extra closing parenthesis")
			}
			depth--
			if depth == 0 {
				j := i + 1
				for j < len(inner) && unicode.IsSpace(inner[j]) {
					j++
				}
				if j < len(inner) && inner[j] == ':' {
					return j, nil
				}
				return 0, errors.New(errors.ErrCodeMissingSeparator, "expected ':' after dimensions '(...)', possibly missing or misplaced")
			}
		case ':':
			if depth == 0 {
				return 0, errors.New(errors.ErrCodeSeparatorBeforeDimensions, "found ':' before dimensions '(...)' were closed")
			}
		}
	}
	if depth != 0 {
		return 0, errors.New(errors.ErrCodeUnbalancedParens, "mismatched parenthesis in dimensions: not closed")
	}
	return 0, errors.New(errors.ErrCodeMissingSeparator, "could not find dimensions-elements separator ':'")
}

// parseDimensions parses the `(width: W, height: H)` block. Exactly one level
// of parentheses is permitted, both keys are required, and values must be
// base-10 signed 32-bit integers.
func parseDimensions(s string) (Mapping, error) {
	if len(s) < 2 || !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, errors.New(errors.ErrCodeMalformedDimensions, "dimensions must be enclosed in parentheses, e.g. (width: W, height: H)")
	}
	interior := s[1 : len(s)-1]
	if strings.ContainsAny(interior, "()") {
		return nil, errors.New(errors.ErrCodeNestedParens, "extra or mismatched parentheses within dimensions block")
	}

	var width, height *Int
	for _, part := range strings.Split(interior, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue // tolerate a trailing comma
		}
		rawKey, rawVal, _ := strings.Cut(part, ":")
		key := strings.TrimSpace(rawKey)
		if key != KeyWidth && key != KeyHeight {
			return nil, errors.New(errors.ErrCodeUnknownDimensionKey, "unsupported dimension key %q: must be %q or %q", key, KeyWidth, KeyHeight)
		}
		val := strings.TrimSpace(rawVal)
		n, err := strconv.ParseInt(val, 10, 32)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidDimensionValue, "invalid %s value %q", key, val)
		}
		v := Int(n)
		if key == KeyWidth {
			width = &v
		} else {
			height = &v
		}
	}

	if width == nil {
		return nil, errors.New(errors.ErrCodeMissingDimension, "missing width dimension")
	}
	if height == nil {
		return nil, errors.New(errors.ErrCodeMissingDimension, "missing height dimension")
	}
	return Mapping{
		{Key: KeyWidth, Val: *width},
		{Key: KeyHeight, Val: *height},
	}, nil
}

// parseElements parses the element block: either `HStack:{ "child", ... }`
// or `{ key:"value", ... }`.
func parseElements(s string) (Mapping, error) {
	if rest, ok := hstackBody(s); ok {
		return parseHStack(rest)
	}

	if len(s) < 2 || !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, errors.New(errors.ErrCodeMalformedElements, "elements must be enclosed in braces: %q", s)
	}
	interior := strings.TrimSpace(s[1 : len(s)-1])

	var elements Mapping
	for _, seg := range splitElements(interior) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		pair, err := parseElement(seg)
		if err != nil {
			return nil, err
		}
		elements = append(elements, pair)
	}
	return elements, nil
}

// hstackBody reports whether the element block is the HStack form and, if so,
// returns the text after the `HStack:` prefix. Whitespace around the ':' is
// tolerated like everywhere else outside quoted strings.
func hstackBody(s string) (string, bool) {
	if !strings.HasPrefix(s, KeyHStack) {
		return "", false
	}
	rest := strings.TrimLeftFunc(s[len(KeyHStack):], unicode.IsSpace)
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return strings.TrimSpace(rest[1:]), true
}

// parseHStack parses `{ "child", "child", ... }` into a single-key mapping
// whose value maps synthetic positional keys (child0, child1, ...) to the
// quoted child texts, in declaration order.
func parseHStack(s string) (Mapping, error) {
	if len(s) < 2 || !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return nil, errors.New(errors.ErrCodeMalformedHStack, "HStack elements must be enclosed in braces: %q", s)
	}

	var children Mapping
	for _, elem := range strings.Split(s[1:len(s)-1], ",") {
		elem = strings.TrimSpace(elem)
		if elem == "" {
			continue
		}
		if len(elem) < 2 || !strings.HasPrefix(elem, `"`) || !strings.HasSuffix(elem, `"`) {
			return nil, errors.New(errors.ErrCodeUnquotedHStackChild, "HStack child value must be quoted: %s", elem)
		}
		children = append(children, Pair{
			Key: fmt.Sprintf("child%d", len(children)),
			Val: Text(elem[1 : len(elem)-1]),
		})
	}
	return Mapping{{Key: KeyHStack, Val: children}}, nil
}

// splitElements splits the element-block interior on top-level commas while
// respecting quoted strings and backslash escapes. A backslash escaping '"'
// or '\' is resolved here (the backslash is dropped and the escaped character
// kept); any other backslash passes through literally. A ',' is a segment
// boundary only outside quotes.
func splitElements(s string) []string {
	var (
		segments []string
		current  strings.Builder
		inQuotes bool
		escaped  bool
	)
	for _, ch := range s {
		switch {
		case ch == '\\' && !escaped:
			escaped = true
		case ch == '"' && !escaped:
			inQuotes = !inQuotes
			current.WriteRune(ch)
		case ch == ',' && !inQuotes:
			segments = append(segments, current.String())
			current.Reset()
			escaped = false
		default:
			if escaped && ch != '"' && ch != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(ch)
			escaped = false
		}
	}
	segments = append(segments, current.String())
	return segments
}

// parseElement parses a single `key:"value"` segment. The key must be one of
// the known element keys and the value must be double-quoted.
func parseElement(seg string) (Pair, error) {
	rawKey, rawVal, _ := strings.Cut(seg, ":")
	key := strings.TrimSpace(rawKey)
	if key != KeyTitle && key != KeyButton && key != KeyImage {
		return Pair{}, errors.New(errors.ErrCodeUnknownElementKey, "unsupported element key %q: must be %q, %q, or %q", key, KeyTitle, KeyButton, KeyImage)
	}

	val := strings.TrimSpace(rawVal)
	if len(val) < 2 || !strings.HasPrefix(val, `"`) || !strings.HasSuffix(val, `"`) {
		return Pair{}, errors.New(errors.ErrCodeUnquotedValue, "value for key %q must be enclosed in double quotes: got %q", key, val)
	}
	return Pair{Key: key, Val: Text(unescape(val[1 : len(val)-1]))}, nil
}

// unescape resolves \" and \\ sequences inside a quoted value. Any other
// backslash, including a lone trailing one, is preserved literally.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && (s[i+1] == '"' || s[i+1] == '\\') {
			b.WriteByte(s[i+1])
			i++
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
