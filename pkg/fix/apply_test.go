package fix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/fix"
)

func TestApplyEdits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		edits   []fix.TextEdit
		want    string
	}{
		{name: "no edits", content: "abc", want: "abc"},
		{name: "insert at start", content: "abc", edits: []fix.TextEdit{fix.InsertAt(0, "x")}, want: "xabc"},
		{name: "insert at end", content: "abc", edits: []fix.TextEdit{fix.InsertAt(3, "x")}, want: "abcx"},
		{name: "remove", content: "[a, b]", edits: []fix.TextEdit{fix.RemoveRange(2, 5)}, want: "[a]"},
		{name: "replace", content: `["x"]`, edits: []fix.TextEdit{fix.ReplaceRange(0, 5, "[]")}, want: "[]"},
		{
			name:    "offsets address the original",
			content: "imports: [A]",
			edits:   []fix.TextEdit{fix.InsertAt(0, "// x\n"), fix.InsertAt(11, ", B")},
			want:    "// x\nimports: [A, B]",
		},
		{
			name:    "inserts at one offset keep order",
			content: "()",
			edits:   []fix.TextEdit{fix.InsertAt(1, "a"), fix.InsertAt(1, "b")},
			want:    "(ab)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prepared, err := fix.PrepareEdits(tt.edits, len(tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(fix.ApplyEdits([]byte(tt.content), prepared)))
		})
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	original := []byte(`["a","b","rxjs"]`)
	out, err := fix.Apply(original, fix.RemoveRange(8, 15))
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(out))
	assert.Equal(t, `["a","b","rxjs"]`, string(original))

	_, err = fix.Apply(original, fix.RemoveRange(0, 5), fix.InsertAt(3, "x"))
	assert.Error(t, err)
}
