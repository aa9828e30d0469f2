// Package jsonedit plans edits on JSON documents parsed by jsonast without
// re-serializing them: untouched bytes, key order and formatting survive.
package jsonedit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/ngpatch/pkg/locate"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// DefaultIndent is the indentation width used when none can be observed.
const DefaultIndent = 2

var (
	// ErrNotArray is returned when an edit targets a node that is not an array.
	ErrNotArray = errors.New("not a JSON array")

	// ErrNotObject is returned when an edit targets a node that is not an object.
	ErrNotObject = errors.New("not a JSON object")
)

// Root returns the top-level value of a parsed JSON document.
func Root(file *srcast.SourceFile) *srcast.Node {
	if file == nil || file.Root == nil {
		return nil
	}
	if file.Root.Kind != srcast.KindDocument {
		return file.Root
	}
	if values := file.Root.NamedChildren(); len(values) > 0 {
		return values[0]
	}
	return nil
}

// FindPath follows object keys from the document root and returns the value
// at the end of the path, or nil when any step is missing or not an object.
// With no keys it returns the root value.
func FindPath(file *srcast.SourceFile, keys ...string) *srcast.Node {
	node := Root(file)
	for _, key := range keys {
		if node == nil || node.Kind != srcast.KindObject {
			return nil
		}
		node = locate.FindPropertyByName(node, key)
	}
	return node
}

func expect(node *srcast.Node, kind srcast.Kind, err error) error {
	switch {
	case node == nil:
		return fmt.Errorf("%w: node is missing", err)
	case node.Kind != kind:
		return fmt.Errorf("%w: found %s at offset %d", err, node.Kind, node.Start)
	default:
		return nil
	}
}

func indentString(width int) string {
	if width <= 0 {
		width = DefaultIndent
	}
	return strings.Repeat(" ", width)
}

// separator returns the whitespace to put in front of a new member that
// follows last: the line break and indentation in front of last when it
// starts its own line, otherwise the same inline spacing.
func separator(last *srcast.Node) string {
	trivia := last.LeadingTrivia()
	if sep, ok := srcast.LineBreakIndent(trivia); ok {
		return sep
	}
	return trivia
}

// colon returns the text between key and value of pair, e.g. ": ".
func colon(pair *srcast.Node) string {
	key := pair.ChildByField(srcast.FieldKey)
	value := pair.ChildByField(srcast.FieldValue)
	if key == nil || value == nil || pair.File == nil {
		return ": "
	}
	return pair.File.TextAt(key.End, value.Start)
}
