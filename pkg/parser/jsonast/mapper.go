package jsonast

import (
	"bytes"

	"github.com/tailscale/hujson"

	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// mapper copies a hujson value tree into srcast nodes. hujson keeps the
// whitespace and comments around each value as Extra bytes but not the
// punctuation, so brackets, colons and commas are recovered from the value
// offsets and emitted as anonymous tokens. Comments become comment nodes.
//
// The first comment or trailing comma seen is remembered so strict parsing
// can report where the input stops being standard JSON.
type mapper struct {
	src []byte

	extension    int
	extensionMsg string
}

func (m *mapper) document(value *hujson.Value) *srcast.Node {
	doc := srcast.NewNode(srcast.KindDocument, 0, len(m.src))
	m.extra(doc, value.BeforeExtra, value.StartOffset-len(value.BeforeExtra))
	srcast.AppendChild(doc, m.value(value, ""))
	m.extra(doc, value.AfterExtra, value.EndOffset)
	return doc
}

func (m *mapper) value(value *hujson.Value, field string) *srcast.Node {
	var node *srcast.Node

	switch v := value.Value.(type) {
	case *hujson.Object:
		node = srcast.NewNode(srcast.KindObject, value.StartOffset, value.EndOffset)
		srcast.AppendChild(node, m.token("{", value.StartOffset))
		for idx := range v.Members {
			member := &v.Members[idx]
			m.extra(node, member.Name.BeforeExtra, member.Name.StartOffset-len(member.Name.BeforeExtra))
			srcast.AppendChild(node, m.pair(member))
			m.extra(node, member.Value.AfterExtra, member.Value.EndOffset)
			m.comma(node, member.Value.EndOffset+len(member.Value.AfterExtra), idx == len(v.Members)-1)
		}
		m.closing(node, v.AfterExtra, "}", value.EndOffset-1)

	case *hujson.Array:
		node = srcast.NewNode(srcast.KindArray, value.StartOffset, value.EndOffset)
		srcast.AppendChild(node, m.token("[", value.StartOffset))
		for idx := range v.Elements {
			elem := &v.Elements[idx]
			m.extra(node, elem.BeforeExtra, elem.StartOffset-len(elem.BeforeExtra))
			srcast.AppendChild(node, m.value(elem, ""))
			m.extra(node, elem.AfterExtra, elem.EndOffset)
			m.comma(node, elem.EndOffset+len(elem.AfterExtra), idx == len(v.Elements)-1)
		}
		m.closing(node, v.AfterExtra, "]", value.EndOffset-1)

	case hujson.Literal:
		node = srcast.NewNode(literalKind(v.Kind()), value.StartOffset, value.EndOffset)
	}

	node.Field = field
	return node
}

func (m *mapper) pair(member *hujson.ObjectMember) *srcast.Node {
	name, value := &member.Name, &member.Value

	pair := srcast.NewNode(srcast.KindPair, name.StartOffset, value.EndOffset)
	srcast.AppendChild(pair, m.value(name, srcast.FieldKey))
	m.extra(pair, name.AfterExtra, name.EndOffset)
	srcast.AppendChild(pair, m.token(":", name.EndOffset+len(name.AfterExtra)))
	m.extra(pair, value.BeforeExtra, value.StartOffset-len(value.BeforeExtra))
	srcast.AppendChild(pair, m.value(value, srcast.FieldValue))
	return pair
}

// comma emits the "," at offset if there is one. A comma after the last
// member is a trailing comma.
func (m *mapper) comma(parent *srcast.Node, offset int, last bool) {
	if offset >= len(m.src) || m.src[offset] != ',' {
		return
	}
	if last {
		m.note(offset, "trailing comma")
	}
	srcast.AppendChild(parent, m.token(",", offset))
}

func (m *mapper) closing(parent *srcast.Node, extra hujson.Extra, kind srcast.Kind, offset int) {
	m.extra(parent, extra, offset-len(extra))
	srcast.AppendChild(parent, m.token(kind, offset))
}

func (m *mapper) token(kind srcast.Kind, offset int) *srcast.Node {
	return srcast.NewToken(kind, offset, offset+1)
}

// extra emits a comment node for every comment in the whitespace run that
// starts at offset.
func (m *mapper) extra(parent *srcast.Node, extra hujson.Extra, offset int) {
	for idx := 0; idx < len(extra); {
		rest := extra[idx:]

		var end int
		switch {
		case bytes.HasPrefix(rest, []byte("//")):
			end = bytes.IndexByte(rest, '\n')
			if end < 0 {
				end = len(rest)
			}
			end = len(bytes.TrimRight(rest[:end], "\r"))
		case bytes.HasPrefix(rest, []byte("/*")):
			end = bytes.Index(rest[2:], []byte("*/"))
			if end < 0 {
				end = len(rest)
			} else {
				end += 4
			}
		default:
			idx++
			continue
		}

		m.note(offset+idx, "comments are not allowed")
		srcast.AppendChild(parent, srcast.NewNode(srcast.KindComment, offset+idx, offset+idx+end))
		idx += max(end, 1)
	}
}

func (m *mapper) note(offset int, msg string) {
	if m.extension < 0 || offset < m.extension {
		m.extension = offset
		m.extensionMsg = msg
	}
}

func literalKind(kind hujson.Kind) srcast.Kind {
	switch kind {
	case '"':
		return srcast.KindString
	case 't':
		return srcast.KindTrue
	case 'f':
		return srcast.KindFalse
	case 'n':
		return srcast.KindNull
	default:
		return srcast.KindNumber
	}
}
