// Package srcast provides the position-tagged syntax tree shared by the
// TypeScript and JSON parser adapters.
//
// A SourceFile is an immutable view of one parse: the original bytes, a line
// index, and a tree of Nodes whose spans are byte offsets into those bytes.
// Nodes are never mutated after parsing; edits are computed against the
// original content and applied elsewhere.
package srcast

// SourceFile is an immutable view of a parsed source file.
type SourceFile struct {
	// Path is the notional file path, used for diagnostics only.
	Path string

	// Language names the grammar that produced Root ("typescript", "json").
	Language string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Root is the tree root (program for TypeScript, document for JSON).
	Root *Node

	// HasErrors is set when the parser recovered from syntax errors.
	HasErrors bool
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewSourceFile creates a SourceFile with its line index built.
// Root is left nil for the parser to fill in.
func NewSourceFile(path string, content []byte) *SourceFile {
	return &SourceFile{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}

// TextAt returns the source text for the byte range [start, end).
// Out-of-range bounds are clamped.
func (f *SourceFile) TextAt(start, end int) string {
	if f == nil {
		return ""
	}
	start = max(0, min(start, len(f.Content)))
	end = max(start, min(end, len(f.Content)))
	return string(f.Content[start:end])
}

// LineEnding returns the newline sequence used by the file.
// The first line break decides; files without one use "\n".
func (f *SourceFile) LineEnding() string {
	for _, line := range f.Lines {
		if line.NewlineStart == line.EndOffset {
			continue
		}
		if line.EndOffset-line.NewlineStart == 2 {
			return "\r\n"
		}
		return "\n"
	}
	return "\n"
}
