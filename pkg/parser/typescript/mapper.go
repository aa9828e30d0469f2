package typescript

import (
	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/ngpatch/pkg/srcast"
)

// mapper copies a tree-sitter tree into srcast nodes. Every child is kept,
// anonymous tokens included, so that planners can inspect commas, braces and
// the whitespace between them. Zero-width MISSING nodes inserted by error
// recovery are dropped because they have no text in the source.
type mapper struct {
	file *srcast.SourceFile
}

func (m *mapper) mapNode(tsNode *sitter.Node, field string) *srcast.Node {
	node := &srcast.Node{
		Kind:  srcast.Kind(tsNode.Type()),
		Start: int(tsNode.StartByte()),
		End:   int(tsNode.EndByte()),
		Named: tsNode.IsNamed(),
		Field: field,
		File:  m.file,
	}

	count := int(tsNode.ChildCount())
	for idx := range count {
		child := tsNode.Child(idx)
		if child == nil || child.IsMissing() {
			continue
		}
		srcast.AppendChild(node, m.mapNode(child, tsNode.FieldNameForChild(idx)))
	}

	return node
}
