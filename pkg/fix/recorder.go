package fix

import (
	"cmp"
	"slices"
)

type side int

const (
	sideLeft side = iota
	sideRight
	sideRange
)

type recorded struct {
	edit TextEdit
	side side
}

// Recorder accumulates edits against one file's original content and
// produces the updated content. All offsets address the original content,
// regardless of how many edits were recorded before.
//
// Insertions at the same offset are emitted left-side first, each side in
// the order it was recorded.
type Recorder struct {
	path     string
	original []byte
	entries  []recorded
}

// NewRecorder starts recording edits for path whose current content is
// original.
func NewRecorder(path string, original []byte) *Recorder {
	return &Recorder{path: path, original: original}
}

// Path returns the file the recorder edits.
func (r *Recorder) Path() string { return r.path }

// Original returns the content edits are addressed against.
func (r *Recorder) Original() []byte { return r.original }

// InsertLeft inserts text at pos, before anything inserted with InsertRight
// at the same position.
func (r *Recorder) InsertLeft(pos int, text string) *Recorder {
	r.entries = append(r.entries, recorded{edit: InsertAt(pos, text), side: sideLeft})
	return r
}

// InsertRight inserts text at pos, after anything inserted with InsertLeft
// at the same position.
func (r *Recorder) InsertRight(pos int, text string) *Recorder {
	r.entries = append(r.entries, recorded{edit: InsertAt(pos, text), side: sideRight})
	return r
}

// Remove deletes [start, end) of the original content.
func (r *Recorder) Remove(start, end int) *Recorder {
	r.entries = append(r.entries, recorded{edit: RemoveRange(start, end), side: sideRange})
	return r
}

// Apply records planned edits. Insertions are recorded on the left side.
func (r *Recorder) Apply(edits ...TextEdit) *Recorder {
	for _, edit := range edits {
		entry := recorded{edit: edit, side: sideRange}
		if edit.Kind() == EditInsert {
			entry.side = sideLeft
		}
		r.entries = append(r.entries, entry)
	}
	return r
}

// Edits returns the recorded edits in application order.
func (r *Recorder) Edits() []TextEdit {
	ordered := slices.Clone(r.entries)
	slices.SortStableFunc(ordered, func(a, b recorded) int {
		return cmp.Or(
			cmp.Compare(a.edit.StartOffset, b.edit.StartOffset),
			cmp.Compare(a.side, b.side),
		)
	})

	edits := make([]TextEdit, len(ordered))
	for i, entry := range ordered {
		edits[i] = entry.edit
	}
	return edits
}

// HasChanges reports whether anything was recorded.
func (r *Recorder) HasChanges() bool {
	return len(r.entries) > 0
}

// Result applies the recorded edits to the original content. It returns a
// *ValidationError for out-of-range edits and a *ConflictError for edits
// that overlap.
func (r *Recorder) Result() ([]byte, error) {
	if !r.HasChanges() {
		return r.original, nil
	}

	prepared, err := PrepareEdits(r.Edits(), len(r.original))
	if err != nil {
		return nil, err
	}
	return ApplyEdits(r.original, prepared), nil
}
