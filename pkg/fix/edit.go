// Package fix describes source edits as byte-offset splices over an original
// text and applies them.
//
// Edits never address a partially edited buffer: every offset refers to the
// text the edits were planned against.
package fix

import "fmt"

// EditKind classifies a TextEdit.
type EditKind int

const (
	// EditInsert adds text at a single offset.
	EditInsert EditKind = iota

	// EditRemove deletes a range.
	EditRemove

	// EditReplace deletes a range and inserts text in its place.
	EditReplace
)

func (k EditKind) String() string {
	switch k {
	case EditInsert:
		return "insert"
	case EditRemove:
		return "remove"
	case EditReplace:
		return "replace"
	default:
		return fmt.Sprintf("EditKind(%d)", int(k))
	}
}

// TextEdit replaces bytes [StartOffset, EndOffset) of the original text
// with NewText. It is a plain value; equal edits compare equal with ==.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// InsertAt returns an edit inserting text at pos.
func InsertAt(pos int, text string) TextEdit {
	return TextEdit{StartOffset: pos, EndOffset: pos, NewText: text}
}

// RemoveRange returns an edit deleting [start, end).
func RemoveRange(start, end int) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end}
}

// ReplaceRange returns an edit replacing [start, end) with text.
func ReplaceRange(start, end int, text string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: text}
}

// Kind reports which form the edit takes.
func (e TextEdit) Kind() EditKind {
	switch {
	case e.StartOffset == e.EndOffset:
		return EditInsert
	case e.NewText == "":
		return EditRemove
	default:
		return EditReplace
	}
}

// Len is the number of original bytes the edit consumes.
func (e TextEdit) Len() int {
	return e.EndOffset - e.StartOffset
}

func (e TextEdit) String() string {
	switch e.Kind() {
	case EditInsert:
		return fmt.Sprintf("insert %q at %d", e.NewText, e.StartOffset)
	case EditRemove:
		return fmt.Sprintf("remove [%d:%d]", e.StartOffset, e.EndOffset)
	default:
		return fmt.Sprintf("replace [%d:%d] with %q", e.StartOffset, e.EndOffset, e.NewText)
	}
}
