package migrate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/ngpatch/pkg/migrate"
	"github.com/yaklabco/ngpatch/pkg/parser/jsonast"
	"github.com/yaklabco/ngpatch/pkg/vtree"
)

func TestStripImportBlacklist(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		content     string
		want        string
		wantRemoved int
		wantSkipped string
	}{
		{
			name:        "last element",
			content:     `{"rules": {"import-blacklist": [true, "rxjs/Rx", "rxjs"]}}`,
			want:        `{"rules": {"import-blacklist": [true, "rxjs/Rx"]}}`,
			wantRemoved: 1,
		},
		{
			name:        "comments and trailing commas",
			content:     "{\n  // modules\n  \"rules\": {\n    \"import-blacklist\": [true, \"rxjs\",],\n  },\n}\n",
			want:        "{\n  // modules\n  \"rules\": {\n    \"import-blacklist\": [true,],\n  },\n}\n",
			wantRemoved: 1,
		},
		{
			name:        "singleton",
			content:     `{"rules": {"import-blacklist": ["rxjs"]}}`,
			want:        `{"rules": {"import-blacklist": []}}`,
			wantRemoved: 1,
		},
		{
			name: "multi line with duplicates",
			content: `{
  "rules": {
    "import-blacklist": [
      "rxjs",
      "lodash",
      "rxjs"
    ],
    "quotemark": [true, "single"]
  }
}
`,
			want: `{
  "rules": {
    "import-blacklist": [
      "lodash"
    ],
    "quotemark": [true, "single"]
  }
}
`,
			wantRemoved: 2,
		},
		{
			name:        "entry absent",
			content:     `{"rules": {"import-blacklist": ["lodash"]}}`,
			want:        `{"rules": {"import-blacklist": ["lodash"]}}`,
			wantSkipped: `"rxjs" is not blacklisted`,
		},
		{
			name:        "rule absent",
			content:     `{"rules": {}}`,
			want:        `{"rules": {}}`,
			wantSkipped: "no import-blacklist rule",
		},
		{
			name:        "rule disabled",
			content:     `{"rules": {"import-blacklist": false}}`,
			want:        `{"rules": {"import-blacklist": false}}`,
			wantSkipped: "import-blacklist is not an array",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx := context.Background()
			tree := vtree.New(vtree.NewMemoryHost(map[string]string{"tslint.json": tt.content}))

			result, err := migrate.StripImportBlacklist(ctx, tree, "tslint.json", migrate.DefaultBlacklistEntry)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, result.Removed)
			assert.Equal(t, tt.wantSkipped, result.Skipped)
			assert.Equal(t, tt.wantRemoved > 0, result.Changed())

			got, err := tree.Read(ctx, "tslint.json")
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.Equal(t, tt.wantRemoved > 0, len(tree.Changes()) == 1)
		})
	}
}

func TestStripImportBlacklist_MissingFile(t *testing.T) {
	t.Parallel()

	tree := vtree.New(vtree.NewMemoryHost(nil))

	result, err := migrate.StripImportBlacklist(context.Background(), tree, "tslint.json", "rxjs")
	require.NoError(t, err)
	assert.Equal(t, "file not found", result.Skipped)
	assert.Empty(t, tree.Changes())
}

func TestStripImportBlacklist_InvalidJSON(t *testing.T) {
	t.Parallel()

	tree := vtree.New(vtree.NewMemoryHost(map[string]string{"tslint.json": `{"rules": `}))

	_, err := migrate.StripImportBlacklist(context.Background(), tree, "tslint.json", "rxjs")
	var syntaxErr *jsonast.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestStripImportBlacklistAll(t *testing.T) {
	t.Parallel()

	tree := vtree.New(vtree.NewMemoryHost(map[string]string{
		"src/tslint.json": `{"rules": {"import-blacklist": ["rxjs"]}}`,
	}))

	results, err := migrate.StripImportBlacklistAll(context.Background(), tree, migrate.LintConfigFiles, "rxjs")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "file not found", results[0].Skipped)
	assert.True(t, results[1].Changed())
}
