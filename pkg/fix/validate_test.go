package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/fix"
)

func TestValidateEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		edits   []fix.TextEdit
		wantErr string
	}{
		{name: "no edits"},
		{name: "valid", edits: []fix.TextEdit{fix.ReplaceRange(0, 5, "x"), fix.InsertAt(10, "y")}},
		{name: "negative start", edits: []fix.TextEdit{fix.RemoveRange(-1, 2)}, wantErr: "start offset is negative"},
		{name: "end before start", edits: []fix.TextEdit{{StartOffset: 5, EndOffset: 3}}, wantErr: "end offset is before start offset"},
		{name: "end past content", edits: []fix.TextEdit{fix.RemoveRange(5, 11)}, wantErr: "end offset 11 exceeds content length 10"},
		{name: "insert past content", edits: []fix.TextEdit{fix.InsertAt(11, "x")}, wantErr: "exceeds content length"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.ValidateEdits(tt.edits, 10)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}

			var verr *fix.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Error(), tt.wantErr)
		})
	}
}

func TestSortEdits_Stable(t *testing.T) {
	t.Parallel()

	edits := []fix.TextEdit{
		fix.RemoveRange(5, 8),
		fix.InsertAt(5, "first"),
		fix.InsertAt(0, "head"),
		fix.InsertAt(5, "second"),
		fix.ReplaceRange(5, 6, "r"),
	}
	fix.SortEdits(edits)

	assert.Equal(t, []fix.TextEdit{
		fix.InsertAt(0, "head"),
		fix.InsertAt(5, "first"),
		fix.InsertAt(5, "second"),
		fix.ReplaceRange(5, 6, "r"),
		fix.RemoveRange(5, 8),
	}, edits)
}

func TestDetectConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		edits    []fix.TextEdit
		conflict bool
	}{
		{name: "adjacent ranges", edits: []fix.TextEdit{fix.RemoveRange(0, 3), fix.RemoveRange(3, 5)}},
		{name: "inserts share offset", edits: []fix.TextEdit{fix.InsertAt(2, "a"), fix.InsertAt(2, "b")}},
		{name: "insert before removal", edits: []fix.TextEdit{fix.InsertAt(2, "a"), fix.RemoveRange(2, 4)}},
		{name: "insert after removal", edits: []fix.TextEdit{fix.RemoveRange(2, 4), fix.InsertAt(4, "a")}},
		{name: "overlap", edits: []fix.TextEdit{fix.RemoveRange(0, 4), fix.RemoveRange(3, 5)}, conflict: true},
		{name: "insert inside removal", edits: []fix.TextEdit{fix.RemoveRange(0, 4), fix.InsertAt(2, "x")}, conflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := fix.DetectConflicts(tt.edits)
			if !tt.conflict {
				assert.NoError(t, err)
				return
			}

			var cerr *fix.ConflictError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.edits[0], cerr.First)
			assert.Equal(t, tt.edits[1], cerr.Second)
		})
	}
}

func TestPrepareEdits(t *testing.T) {
	t.Parallel()

	input := []fix.TextEdit{fix.InsertAt(4, "b"), fix.InsertAt(1, "a")}
	prepared, err := fix.PrepareEdits(input, 5)
	require.NoError(t, err)
	assert.Equal(t, []fix.TextEdit{fix.InsertAt(1, "a"), fix.InsertAt(4, "b")}, prepared)
	assert.Equal(t, fix.InsertAt(4, "b"), input[0], "input is not reordered")

	prepared, err = fix.PrepareEdits(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, prepared)

	_, err = fix.PrepareEdits([]fix.TextEdit{fix.RemoveRange(0, 3), fix.RemoveRange(1, 2)}, 5)
	var cerr *fix.ConflictError
	assert.ErrorAs(t, err, &cerr)

	_, err = fix.PrepareEdits([]fix.TextEdit{fix.RemoveRange(0, 9)}, 5)
	var verr *fix.ValidationError
	assert.ErrorAs(t, err, &verr)
}
