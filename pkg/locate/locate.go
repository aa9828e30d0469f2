// Package locate finds nodes in srcast trees by structural predicate.
//
// Absence is never an error here: every lookup returns nil or false when
// nothing matches and leaves it to the caller to decide whether that is fatal.
package locate

import (
	"strings"

	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// FindNodeOfKind returns the first node in pre-order under root whose kind is
// kind and, when text is non-empty, whose source text equals text.
func FindNodeOfKind(root *srcast.Node, kind srcast.Kind, text string) *srcast.Node {
	return srcast.FindFirst(root, func(n *srcast.Node) bool {
		return n.Kind == kind && (text == "" || n.Text() == text)
	})
}

// FindNodes returns up to limit nodes of the given kind under root in
// pre-order. A limit of zero or less means no limit.
func FindNodes(root *srcast.Node, kind srcast.Kind, limit int) []*srcast.Node {
	var found []*srcast.Node
	for node := range srcast.Flatten(root) {
		if node.Kind != kind {
			continue
		}
		found = append(found, node)
		if limit > 0 && len(found) >= limit {
			break
		}
	}
	return found
}

// Elements returns the members of an array or the properties of an object:
// its named children, without punctuation and comments.
func Elements(container *srcast.Node) []*srcast.Node {
	if container == nil {
		return nil
	}
	return container.NamedChildren()
}

// FindProperty returns the property entry (pair) of an object literal whose
// key equals name. Only immediate properties are inspected. Works for both
// TypeScript object literals and JSON objects.
func FindProperty(object *srcast.Node, name string) *srcast.Node {
	if object == nil || object.Kind != srcast.KindObject {
		return nil
	}
	for _, prop := range Elements(object) {
		if prop.Kind != srcast.KindPair {
			continue
		}
		if key, ok := PropertyKey(prop); ok && key == name {
			return prop
		}
	}
	return nil
}

// FindPropertyByName returns the value node of the property named name in
// object, or nil.
func FindPropertyByName(object *srcast.Node, name string) *srcast.Node {
	return FindProperty(object, name).ChildByField(srcast.FieldValue)
}

// PropertyKey returns the key of a pair as plain text: identifiers as
// written, string keys unquoted.
func PropertyKey(pair *srcast.Node) (string, bool) {
	key := pair.ChildByField(srcast.FieldKey)
	if key == nil {
		return "", false
	}

	switch key.Kind {
	case srcast.KindString:
		if pair.File != nil && pair.File.Language == jsonast.Language {
			return jsonast.StringValue(key)
		}
		return Unquote(key.Text()), true
	case srcast.KindPropertyIdentifier, srcast.KindIdentifier, srcast.KindNumber:
		return key.Text(), true
	default:
		return "", false
	}
}

// Unquote strips one pair of matching single, double or back quotes.
func Unquote(text string) string {
	if len(text) < 2 {
		return text
	}
	first, last := text[0], text[len(text)-1]
	if first == last && strings.ContainsRune(`'"`+"`", rune(first)) {
		return text[1 : len(text)-1]
	}
	return text
}
