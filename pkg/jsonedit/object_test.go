package jsonedit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/jsonedit"
)

func TestAppendProperty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "empty root", source: `{}`, want: "{\n  \"k\": true\n}"},
		{name: "compact", source: `{"a":1}`, want: `{"a":1,"k":true}`},
		{name: "spaced", source: `{"a": 1}`, want: `{"a": 1, "k": true}`},
		{
			name:   "multi line",
			source: "{\n  \"a\": 1\n}",
			want:   "{\n  \"a\": 1,\n  \"k\": true\n}",
		},
		{
			name:   "nested empty object",
			source: "{\n  \"a\": {}\n}",
			want:   "{\n  \"a\": {\n    \"k\": true\n  }\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := parse(t, tt.source)
			target := jsonedit.Root(file)
			if nested := jsonedit.FindPath(file, "a"); nested != nil && nested.Kind == "object" {
				target = nested
			}

			edits, err := jsonedit.AppendProperty(file, target, "k", "true", 0)
			require.NoError(t, err)
			assert.Equal(t, tt.want, apply(t, file, edits))
		})
	}
}

func TestAppendProperty_Indent(t *testing.T) {
	t.Parallel()

	file := parse(t, `{}`)
	edits, err := jsonedit.AppendProperty(file, jsonedit.Root(file), "k", `"v"`, 4)
	require.NoError(t, err)
	assert.Equal(t, "{\n    \"k\": \"v\"\n}", apply(t, file, edits))
}

func TestAppendProperty_NotObject(t *testing.T) {
	t.Parallel()

	file := parse(t, `[]`)
	_, err := jsonedit.AppendProperty(file, jsonedit.Root(file), "k", "1", 2)
	require.ErrorIs(t, err, jsonedit.ErrNotObject)
}

func TestInsertPropertyInOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		key    string
		want   string
	}{
		{
			name:   "middle",
			source: "{\n  \"a\": 1,\n  \"c\": 3\n}",
			key:    "b",
			want:   "{\n  \"a\": 1,\n  \"b\": 0,\n  \"c\": 3\n}",
		},
		{
			name:   "first",
			source: "{\n  \"b\": 1\n}",
			key:    "a",
			want:   "{\n  \"a\": 0,\n  \"b\": 1\n}",
		},
		{
			name:   "last",
			source: "{\n  \"a\": 1\n}",
			key:    "b",
			want:   "{\n  \"a\": 1,\n  \"b\": 0\n}",
		},
		{
			name:   "compact",
			source: `{"c":3}`,
			key:    "b",
			want:   `{"b":0,"c":3}`,
		},
		{
			name:   "first in compact object",
			source: `{"b": "1"}`,
			key:    "a",
			want:   `{"a": 0, "b": "1"}`,
		},
		{
			name:   "first in compact object with siblings",
			source: `{"b": 1,  "c": 2}`,
			key:    "a",
			want:   `{"a": 0,  "b": 1,  "c": 2}`,
		},
		{
			name:   "first in padded object",
			source: `{ "b": 1 }`,
			key:    "a",
			want:   `{ "a": 0, "b": 1 }`,
		},
		{
			name:   "empty",
			source: `{}`,
			key:    "b",
			want:   "{\n  \"b\": 0\n}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			file := parse(t, tt.source)
			edits, err := jsonedit.InsertPropertyInOrder(file, jsonedit.Root(file), tt.key, "0", 2)
			require.NoError(t, err)
			assert.Equal(t, tt.want, apply(t, file, edits))
		})
	}
}

func TestSetPropertyValue(t *testing.T) {
	t.Parallel()

	file := parse(t, `{"a": [1, 2], "b": 1}`)

	edits, err := jsonedit.SetPropertyValue(jsonedit.Root(file), "a", "null")
	require.NoError(t, err)
	assert.Equal(t, `{"a": null, "b": 1}`, apply(t, file, edits))

	edits, err = jsonedit.SetPropertyValue(jsonedit.Root(file), "missing", "1")
	require.NoError(t, err)
	assert.Empty(t, edits)
}

func TestFindPath(t *testing.T) {
	t.Parallel()

	file := parse(t, `{"rules": {"import-blacklist": ["rxjs"], "quotemark": [true, "single"]}}`)

	assert.Equal(t, `["rxjs"]`, jsonedit.FindPath(file, "rules", "import-blacklist").Text())
	assert.Same(t, jsonedit.Root(file), jsonedit.FindPath(file))
	assert.Nil(t, jsonedit.FindPath(file, "rules", "missing"))
	assert.Nil(t, jsonedit.FindPath(file, "rules", "import-blacklist", "deeper"))
	assert.Nil(t, jsonedit.FindPath(nil, "rules"))
}
