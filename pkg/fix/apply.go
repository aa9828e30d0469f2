package fix

import "bytes"

// ApplyEdits splices prepared edits into content and returns the result.
// The edits must already be in PrepareEdits order; content is not modified.
func ApplyEdits(content []byte, edits []TextEdit) []byte {
	if len(edits) == 0 {
		return content
	}

	size := len(content)
	for _, edit := range edits {
		size += len(edit.NewText) - edit.Len()
	}

	var out bytes.Buffer
	out.Grow(size)

	last := 0
	for _, edit := range edits {
		out.Write(content[last:edit.StartOffset])
		out.WriteString(edit.NewText)
		last = edit.EndOffset
	}
	out.Write(content[last:])

	return out.Bytes()
}

// Apply validates, orders and applies edits to content in one step.
func Apply(content []byte, edits ...TextEdit) ([]byte, error) {
	prepared, err := PrepareEdits(edits, len(content))
	if err != nil {
		return nil, err
	}
	return ApplyEdits(content, prepared), nil
}
